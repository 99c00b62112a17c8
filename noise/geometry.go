// Geometric sources: closed-form fields that are not coherent noise on
// their own but are handy building blocks in larger graphs.

package noise

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Const outputs Value for every coordinate.
type Const struct {
	Value float32
}

// NewConst returns a Const with the given value.
func NewConst(value float32) *Const {
	return &Const{Value: value}
}

// Generate2D implements Module.
func (n *Const) Generate2D(_ mgl32.Vec2) (float32, error) {
	return n.Value, nil
}

// Clone implements Module.
func (n *Const) Clone() Module {
	c := *n
	return &c
}

// Checkerboard outputs a unit checkerboard: +1 on cells where floor(x) and
// floor(y) have the same parity, -1 elsewhere.
type Checkerboard struct{}

// NewCheckerboard returns a Checkerboard.
func NewCheckerboard() *Checkerboard {
	return &Checkerboard{}
}

// Generate2D implements Module.
func (n *Checkerboard) Generate2D(v mgl32.Vec2) (float32, error) {
	x, y := int64(floor32(v[0])), int64(floor32(v[1]))
	if (x^y)&1 != 0 {
		return -1, nil
	}
	return 1, nil
}

// Clone implements Module.
func (n *Checkerboard) Clone() Module {
	return &Checkerboard{}
}

// Cylinder outputs concentric rings around the origin, i.e. cylinders whose
// base lies in the x-y plane. With d = |v*Frequency|, the value is a
// triangle wave of frac(d): 1 on integer distances, -1 halfway between.
type Cylinder struct {
	// Frequency scales the input; higher values pack the rings closer.
	Frequency float32
}

// NewCylinder returns a Cylinder with the given frequency.
func NewCylinder(frequency float32) *Cylinder {
	return &Cylinder{Frequency: frequency}
}

// Generate2D implements Module.
func (n *Cylinder) Generate2D(v mgl32.Vec2) (float32, error) {
	d := v.Mul(n.Frequency).Len()
	f := d - floor32(d)
	return 1 - 4*min(f, 1-f), nil
}

// Clone implements Module.
func (n *Cylinder) Clone() Module {
	c := *n
	return &c
}

// Sphere is concentric spheres; without 3D support it samples the z=0
// slice, which is exactly Cylinder.
type Sphere = Cylinder

// NewSphere returns a Sphere with the given frequency.
func NewSphere(frequency float32) *Sphere {
	return NewCylinder(frequency)
}

// Function delegates every evaluation to Func(x, y). Func must be pure for
// the module to be deterministic; closures over read-only state are fine.
type Function struct {
	Func Func
}

// NewFunction returns a Function wrapping fn.
func NewFunction(fn Func) *Function {
	return &Function{Func: fn}
}

// Generate2D implements Module.
// Errors: ErrUnsupported if Func is nil; otherwise whatever Func returns.
func (n *Function) Generate2D(v mgl32.Vec2) (float32, error) {
	if n.Func == nil {
		return 0, noiseErrorf(MethodFunction, ErrUnsupported, "nil function")
	}
	return n.Func(v[0], v[1])
}

// Clone implements Module. The function value is shared, not copied.
func (n *Function) Clone() Module {
	c := *n
	return &c
}
