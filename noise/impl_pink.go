package noise

import "github.com/go-gl/mathgl/mgl32"

// Pink is fractal Brownian motion over simplex noise ("pink noise"): each
// octave doubles (Lacunarity) the frequency and halves (Persistence) the
// amplitude of the previous one.
//
// Output is normalized by the amplitude sum, so it inherits the primitive's
// range: |v| < simplex.Bound, with most samples in [-1, 1]. Use
// ScaleBias(0.5, 0.5).Clamp(0, 1) for a hard [0, 1] image range.
type Pink struct {
	FractalParams
}

// NewPink returns a Pink generator with DefaultFractalParams(seed) and opts applied.
func NewPink(seed uint32, opts ...Option) *Pink {
	cfg := newFractalConfig(seed, opts...)
	return &Pink{FractalParams: cfg.params}
}

// Generate2D implements Module.
// Errors: ErrInvalidOctaveCount, ErrInvalidPersistence (wrapped with "PinkNoise: ...").
func (n *Pink) Generate2D(v mgl32.Vec2) (float32, error) {
	return n.sum(MethodPink, v, pinkShape)
}

// Clone implements Module.
func (n *Pink) Clone() Module {
	c := *n
	return &c
}

func pinkShape(n float32) float32 { return n }
