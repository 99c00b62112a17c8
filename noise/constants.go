// Package noise defines shared constants used by generators and modifiers,
// keeping defaults and validation bounds in one place.
package noise

//-----------------------------------------------------------------------------
// Module Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPink is the canonical name for the Pink generator.
	MethodPink = "PinkNoise"
	// MethodBillow is the canonical name for the Billow generator.
	MethodBillow = "BillowNoise"
	// MethodRidgedMulti is the canonical name for the RidgedMulti generator.
	MethodRidgedMulti = "RidgedMultifractalNoise"
	// MethodFunction is the canonical name for the Function source.
	MethodFunction = "FunctionNoise"
	// MethodModifier is the canonical name for the Modifier combinator.
	MethodModifier = "ModifierNoise"
)

//-----------------------------------------------------------------------------
// Octave Bounds
//-----------------------------------------------------------------------------

// MinOctaves is the smallest octave count a fractal generator accepts.
// A single octave is plain simplex noise; use simplex.Noise2D for that.
const MinOctaves = 2

// MaxOctaves is the largest octave count a fractal generator accepts.
// Past 30 octaves lacunarity^k overflows useful float32 precision.
const MaxOctaves = 30

//-----------------------------------------------------------------------------
// Fractal Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultFrequency is the base frequency of octave 0.
	DefaultFrequency float32 = 1.0
	// DefaultPersistence halves the amplitude every octave.
	DefaultPersistence float32 = 0.5
	// DefaultLacunarity doubles the frequency every octave.
	DefaultLacunarity float32 = 2.0
	// DefaultOctaves is the octave count used by the seeded constructors.
	DefaultOctaves = 6
)

const (
	// DefaultRidgedGain scales the signal that feeds the next octave's weight.
	DefaultRidgedGain float32 = 2.0
	// RidgedOffset is subtracted from |n| to turn valleys into ridges.
	RidgedOffset float32 = 1.0
)

//-----------------------------------------------------------------------------
// Modifier Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultClampMin is the lower bound used by NewClamped.
	DefaultClampMin float32 = -1.0
	// DefaultClampMax is the upper bound used by NewClamped.
	DefaultClampMax float32 = 1.0
	// DefaultScale leaves values unchanged in NewScaledBiased.
	DefaultScale float32 = 1.0
	// DefaultBias leaves values unchanged in NewScaledBiased.
	DefaultBias float32 = 0.0
)

//-----------------------------------------------------------------------------
// Backend Defaults
//-----------------------------------------------------------------------------

// perlinMaxOctaves bounds go-perlin's octave count, which it takes as int32.
const perlinMaxOctaves = MaxOctaves
