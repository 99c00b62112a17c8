// Package simplex implements the 2D simplex-noise primitive that every
// generator in grunge is built on.
//
// 🚀 What is simplex noise?
//
//	Simplex noise overlays the plane with a grid of triangles (2-simplexes),
//	assigns a pseudo-random gradient to every triangle corner and blends the
//	three corner contributions of the triangle containing the sample point.
//	Compared to classic Perlin noise it has fewer directional artifacts and
//	touches three corners instead of four.
//
// ✨ Key features:
//   - Noise2D is a pure function of (coordinate, seed): no tables, no state.
//   - Gradients are derived analytically from the McEwan et al. (2012)
//     permutation polynomial, so no lookup table has to be allocated or shuffled.
//   - Single-precision arithmetic throughout; the permutation wraps with a
//     floating-point modulo so results match the reference GLSL formulation.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/grunge/simplex"
//
//	v := simplex.Noise2D(mgl32.Vec2{0.25, 1.5}, 7) // |v| < simplex.Bound
//
// Output range:
//
//	Corner contributions use a cubed falloff and are scaled by 130. About
//	half of all samples land in [-1, 1]; the extremes reach ±2.97, so
//	|v| < Bound (3) always holds. Callers that need a hard [0, 1] range
//	should rescale and clamp (noise: ScaleBias then Clamp).
//
// References:
//
//  1. Perlin, K. (2002). Improving Noise. ACM TOG 21(3).
//  2. McEwan, I., Sheets, D., Gustavson, S., Richardson, M. (2012).
//     Efficient Computational Noise in GLSL. Journal of Graphics Tools 16(2).
//  3. Gustavson, S. (2005). Simplex Noise Demystified. Linköping University.
package simplex
