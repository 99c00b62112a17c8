package noise

import "github.com/go-gl/mathgl/mgl32"

// Module is the capability shared by every generator and modifier: evaluate
// a scalar field at a 2D point.
//
// Implementations MUST be pure with respect to their own state: the same
// coordinate against unchanged fields yields a bit-identical result.
// Clone returns an independent copy; modifiers clone their child on wrap.
type Module interface {
	Generate2D(v mgl32.Vec2) (float32, error)
	Clone() Module
}

// Modifiable is implemented by every Module in this package. Each method
// clones the receiver and wraps it in the corresponding modifier.
type Modifiable interface {
	Module
	Clamp(min, max float32) *Clamped
	ScaleBias(scale, bias float32) *ScaledBiased
	Translate(offset mgl32.Vec2) *Translated
	Rotate(angle float32) *Rotated
	Modify(fn ModifierFunc) *Modifier
}

// Func maps a point to a noise value; see Function.
type Func func(x, y float32) (float32, error)

// ModifierFunc post-processes the value of a child module at (x, y); see Modifier.
type ModifierFunc func(x, y, value float32) (float32, error)

// FractalParams holds the octave-summation knobs shared by Pink, Billow and
// RidgedMulti. Fields may be reassigned between evaluations; Octaves is
// validated on every call.
type FractalParams struct {
	Seed        uint32  // seed of octave 0; octave k uses Seed+k
	Frequency   float32 // base frequency (>0)
	Persistence float32 // amplitude decay per octave, must be > 0, typically < 1
	Lacunarity  float32 // frequency growth per octave, typically >1
	Octaves     int     // number of octaves in [MinOctaves, MaxOctaves]
}

// DefaultFractalParams returns the documented defaults for the given seed:
// Frequency=1, Persistence=0.5, Lacunarity=2, Octaves=6.
func DefaultFractalParams(seed uint32) FractalParams {
	return FractalParams{
		Seed:        seed,
		Frequency:   DefaultFrequency,
		Persistence: DefaultPersistence,
		Lacunarity:  DefaultLacunarity,
		Octaves:     DefaultOctaves,
	}
}
