package noise

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Clamped bounds the output of Source into [Min, Max].
type Clamped struct {
	Source Module
	Min    float32
	Max    float32
}

// NewClamped wraps a clone of src with the default bounds [-1, 1].
func NewClamped(src Module) *Clamped {
	return &Clamped{Source: src.Clone(), Min: DefaultClampMin, Max: DefaultClampMax}
}

// Generate2D implements Module. Errors from Source are returned unchanged.
func (n *Clamped) Generate2D(v mgl32.Vec2) (float32, error) {
	val, err := n.Source.Generate2D(v)
	if err != nil {
		return 0, err
	}
	return mgl32.Clamp(val, n.Min, n.Max), nil
}

// Clone implements Module; the child is cloned as well.
func (n *Clamped) Clone() Module {
	return &Clamped{Source: n.Source.Clone(), Min: n.Min, Max: n.Max}
}

// ScaledBiased maps the output of Source through value*Scale + Bias.
type ScaledBiased struct {
	Source Module
	Scale  float32
	Bias   float32
}

// NewScaledBiased wraps a clone of src with Scale=1, Bias=0 (identity).
func NewScaledBiased(src Module) *ScaledBiased {
	return &ScaledBiased{Source: src.Clone(), Scale: DefaultScale, Bias: DefaultBias}
}

// Generate2D implements Module. Errors from Source are returned unchanged.
func (n *ScaledBiased) Generate2D(v mgl32.Vec2) (float32, error) {
	val, err := n.Source.Generate2D(v)
	if err != nil {
		return 0, err
	}
	return val*n.Scale + n.Bias, nil
}

// Clone implements Module; the child is cloned as well.
func (n *ScaledBiased) Clone() Module {
	return &ScaledBiased{Source: n.Source.Clone(), Scale: n.Scale, Bias: n.Bias}
}

// Translated samples Source at v + Offset, shifting the field by -Offset.
type Translated struct {
	Source Module
	Offset mgl32.Vec2
}

// NewTranslated wraps a clone of src with a zero offset.
func NewTranslated(src Module) *Translated {
	return &Translated{Source: src.Clone()}
}

// Generate2D implements Module. Errors from Source are returned unchanged.
func (n *Translated) Generate2D(v mgl32.Vec2) (float32, error) {
	return n.Source.Generate2D(v.Add(n.Offset))
}

// Clone implements Module; the child is cloned as well.
func (n *Translated) Clone() Module {
	return &Translated{Source: n.Source.Clone(), Offset: n.Offset}
}

// Rotated samples Source at v rotated by Angle radians (counter-clockwise)
// around the origin.
type Rotated struct {
	Source Module
	Angle  float32
}

// NewRotated wraps a clone of src with a zero angle.
func NewRotated(src Module) *Rotated {
	return &Rotated{Source: src.Clone()}
}

// Generate2D implements Module. Errors from Source are returned unchanged.
func (n *Rotated) Generate2D(v mgl32.Vec2) (float32, error) {
	if n.Angle == 0 {
		return n.Source.Generate2D(v)
	}
	return n.Source.Generate2D(mgl32.Rotate2D(n.Angle).Mul2x1(v))
}

// Clone implements Module; the child is cloned as well.
func (n *Rotated) Clone() Module {
	return &Rotated{Source: n.Source.Clone(), Angle: n.Angle}
}

// Modifier passes the coordinate and the value of Source to Func and
// returns its result. It is the escape hatch for transforms the other
// modifiers do not cover (curves, thresholds, masks).
type Modifier struct {
	Source Module
	Func   ModifierFunc
}

// NewModifier wraps a clone of src with fn.
func NewModifier(src Module, fn ModifierFunc) *Modifier {
	return &Modifier{Source: src.Clone(), Func: fn}
}

// Generate2D implements Module.
// Errors: ErrUnsupported if Func is nil; errors from Source unchanged;
// otherwise whatever Func returns.
func (n *Modifier) Generate2D(v mgl32.Vec2) (float32, error) {
	if n.Func == nil {
		return 0, noiseErrorf(MethodModifier, ErrUnsupported, "nil function")
	}
	val, err := n.Source.Generate2D(v)
	if err != nil {
		return 0, err
	}
	return n.Func(v[0], v[1], val)
}

// Clone implements Module; the child is cloned, the function is shared.
func (n *Modifier) Clone() Module {
	return &Modifier{Source: n.Source.Clone(), Func: n.Func}
}
