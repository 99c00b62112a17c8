package noise

import "github.com/go-gl/mathgl/mgl32"

// Chaining methods. Go has no default methods on interfaces, so every
// Module in the package forwards to the facades in api.go.

// Compile-time checks: every module is chainable.
var (
	_ Modifiable = (*Pink)(nil)
	_ Modifiable = (*Billow)(nil)
	_ Modifiable = (*RidgedMulti)(nil)
	_ Modifiable = (*Const)(nil)
	_ Modifiable = (*Checkerboard)(nil)
	_ Modifiable = (*Cylinder)(nil)
	_ Modifiable = (*Function)(nil)
	_ Modifiable = (*OpenSimplex)(nil)
	_ Modifiable = (*Perlin)(nil)
	_ Modifiable = (*Clamped)(nil)
	_ Modifiable = (*ScaledBiased)(nil)
	_ Modifiable = (*Translated)(nil)
	_ Modifiable = (*Rotated)(nil)
	_ Modifiable = (*Modifier)(nil)
)

// Clamp wraps a clone of n with Clamped{Min: min, Max: max}.
func (n *Pink) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }

// ScaleBias wraps a clone of n with ScaledBiased{Scale: scale, Bias: bias}.
func (n *Pink) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }

// Translate wraps a clone of n with Translated{Offset: offset}.
func (n *Pink) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }

// Rotate wraps a clone of n with Rotated{Angle: angle}.
func (n *Pink) Rotate(angle float32) *Rotated { return Rotate(n, angle) }

// Modify wraps a clone of n with Modifier{Func: fn}.
func (n *Pink) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *Billow) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *Billow) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *Billow) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *Billow) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *Billow) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *RidgedMulti) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *RidgedMulti) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *RidgedMulti) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *RidgedMulti) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *RidgedMulti) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *Const) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *Const) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *Const) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *Const) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *Const) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *Checkerboard) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *Checkerboard) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *Checkerboard) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *Checkerboard) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *Checkerboard) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *Cylinder) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *Cylinder) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *Cylinder) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *Cylinder) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *Cylinder) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *Function) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *Function) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *Function) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *Function) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *Function) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *OpenSimplex) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *OpenSimplex) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *OpenSimplex) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *OpenSimplex) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *OpenSimplex) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *Perlin) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *Perlin) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *Perlin) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *Perlin) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *Perlin) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *Clamped) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *Clamped) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *Clamped) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *Clamped) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *Clamped) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *ScaledBiased) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *ScaledBiased) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *ScaledBiased) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *ScaledBiased) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *ScaledBiased) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *Translated) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *Translated) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *Translated) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *Translated) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *Translated) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *Rotated) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *Rotated) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *Rotated) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *Rotated) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *Rotated) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }

func (n *Modifier) Clamp(min, max float32) *Clamped { return Clamp(n, min, max) }
func (n *Modifier) ScaleBias(scale, bias float32) *ScaledBiased { return ScaleBias(n, scale, bias) }
func (n *Modifier) Translate(offset mgl32.Vec2) *Translated { return Translate(n, offset) }
func (n *Modifier) Rotate(angle float32) *Rotated { return Rotate(n, angle) }
func (n *Modifier) Modify(fn ModifierFunc) *Modifier { return Modify(n, fn) }
