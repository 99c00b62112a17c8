// Package noise builds coherent-noise fields out of composable modules.
//
// 🚀 What is a noise module?
//
//	A Module is anything that can be asked for a scalar at a 2D coordinate:
//
//	  Generate2D(v mgl32.Vec2) (float32, error)
//
//	Generators produce values from scratch (fractal simplex noise, geometric
//	patterns, caller-supplied functions). Modifiers wrap another Module and
//	transform either its output (Clamp, ScaleBias, Modify) or its input
//	coordinate (Translate, Rotate). Every modifier is itself a Module, so
//	graphs compose without bound.
//
// ✨ Available modules:
//
//	Fractal generators (octave sums over simplex.Noise2D):
//	  • Pink        — classic fBm, amplitudes persistence^k
//	  • Billow      — octaves folded as 2|n|-1
//	  • RidgedMulti — (1-|n|)² signals with inter-octave weight feedback
//	Geometric sources:
//	  • Const, Checkerboard, Cylinder (Sphere alias), Function
//	Backend sources:
//	  • OpenSimplex (ojrac/opensimplex-go), Perlin (aquilax/go-perlin)
//	Modifiers:
//	  • Clamped, ScaledBiased, Translated, Rotated, Modifier
//
// ⚙️ Usage:
//
//	pink := noise.NewPink(0, noise.WithFrequency(0.01))
//	img := pink.ScaleBias(0.5, 0.5).Clamp(0, 1)
//	v, err := img.Generate2D(mgl32.Vec2{12, 34})
//
// Ownership:
//
//	Wrapping a module stores a Clone of it. Changing pink.Octaves after the
//	call above does not change img; rebuild the chain to pick up new params.
//
// Errors:
//
//	Fractal generators validate Octaves on every evaluation and fail with
//	ErrInvalidOctaveCount outside [MinOctaves, MaxOctaves], and Persistence
//	with ErrInvalidPersistence unless it is > 0. Function sources
//	and modifiers without a function fail with ErrUnsupported. Modifiers
//	return the error of their child unchanged.
//
// Concurrency:
//
//	Evaluation never writes to a module, so one graph may be sampled from
//	many goroutines. Mutating fields while other goroutines evaluate is a
//	data race the package does not guard against.
package noise
