package noise

import "github.com/go-gl/mathgl/mgl32"

// Billow sums octaves folded as 2|n| - 1, which turns zero crossings into
// sharp creases and gives the puffy, cloud-like look.
//
// Output lies in [-1, 2*simplex.Bound-1); the bulk of it in [-1, 1].
type Billow struct {
	FractalParams
}

// NewBillow returns a Billow generator with DefaultFractalParams(seed) and opts applied.
func NewBillow(seed uint32, opts ...Option) *Billow {
	cfg := newFractalConfig(seed, opts...)
	return &Billow{FractalParams: cfg.params}
}

// Generate2D implements Module.
// Errors: ErrInvalidOctaveCount, ErrInvalidPersistence (wrapped with "BillowNoise: ...").
func (n *Billow) Generate2D(v mgl32.Vec2) (float32, error) {
	return n.sum(MethodBillow, v, billowShape)
}

// Clone implements Module.
func (n *Billow) Clone() Module {
	c := *n
	return &c
}

func billowShape(n float32) float32 { return 2*mgl32.Abs(n) - 1 }
