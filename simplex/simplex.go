package simplex

import "github.com/go-gl/mathgl/mgl32"

// Grid constants for two dimensions.
const (
	// Skew2D maps x-y coordinates onto the simplex grid: (sqrt(3) - 1) / 2.
	Skew2D float32 = 0.366025403784439
	// Unskew2D maps simplex-grid coordinates back to x-y: (3 - sqrt(3)) / 6.
	Unskew2D float32 = 0.211324865405187

	// Scale is the output gain applied to the summed corner contributions.
	Scale float32 = 130.0

	// Bound is a hard limit on |Noise2D|. With the cubed falloff the
	// extremes reach about ±2.97; roughly half of all samples fall in [-1, 1].
	Bound float32 = 3.0
)

// Gradient decoding constants.
const (
	falloffRadius float32 = 0.5
	inv41         float32 = 0.024390243902439 // 1/41: 41 gradients on the cross-polytope
	normBase      float32 = 1.79284291400159  // Taylor inverse-sqrt, constant term
	normSlope     float32 = 0.85373472095314  // Taylor inverse-sqrt, linear term
)

// Noise2D returns the simplex noise value for v under seed.
//
// Algorithm Outline:
//  1. Skew v onto the simplex grid and floor it: i0 is the cell origin.
//  2. Unskew back to find x0, the offset of v from the cell origin.
//  3. x0.x > x0.y selects the lower triangle (i1 = unit-x), else the upper (i1 = unit-y).
//  4. Corner offsets: x1 = x0 - i1 + G2, x2 = x0 - 1 + 2*G2.
//  5. Falloff per corner: max(0, 0.5 - |xk|²)³.
//  6. Hash the corner lattice points: perm(perm(perm(y) + x) + seed).
//  7. Decode each hash into a gradient (fract-based, no table) and normalize it.
//  8. Return 130 * Σ falloff_k * dot(gradient_k, xk).
//
// Noise2D never fails and never allocates. |result| < Bound.
//
// Complexity: O(1).
func Noise2D(v mgl32.Vec2, seed uint32) float32 {
	// 1. Cell origin on the skewed grid.
	s := (v[0] + v[1]) * Skew2D
	i0 := mgl32.Vec2{floor32(v[0] + s), floor32(v[1] + s)}

	// 2. Offset from the cell origin in unskewed space.
	t := (i0[0] + i0[1]) * Unskew2D
	x0 := v.Sub(i0).Add(mgl32.Vec2{t, t})

	// 3. Middle corner of the triangle containing v.
	i1 := mgl32.Vec2{0, 1}
	if x0[0] > x0[1] {
		i1 = mgl32.Vec2{1, 0}
	}

	// 4. Remaining corners.
	x1 := x0.Sub(i1).Add(mgl32.Vec2{Unskew2D, Unskew2D})
	c2 := -1 + 2*Unskew2D
	x2 := x0.Add(mgl32.Vec2{c2, c2})
	corners := [3]mgl32.Vec2{x0, x1, x2}

	// 5. Radial falloff, cubed.
	var m [3]float32
	for k, c := range corners {
		f := falloffRadius - c.Dot(c)
		if f < 0 {
			f = 0
		}
		m[k] = f * f * f
	}

	// 6. Lattice hashes: y first, then x, then the seed.
	fseed := float32(seed)
	p := hash3([3]float32{i0[1], i0[1] + i1[1], i0[1] + 1})
	p = hash3([3]float32{p[0] + i0[0], p[1] + i0[0] + i1[0], p[2] + i0[0] + 1})
	p = hash3([3]float32{p[0] + fseed, p[1] + fseed, p[2] + fseed})

	// 7-8. Gradients, normalization and the weighted sum.
	var sum float32
	for k := range corners {
		h1 := 2*fract32(p[k]*inv41) - 1
		gy := mgl32.Abs(h1) - 0.5
		gx := h1 - floor32(h1+0.5)

		norm := normBase - normSlope*(gx*gx+gy*gy)
		sum += m[k] * norm * (gx*corners[k][0] + gy*corners[k][1])
	}

	return Scale * sum
}
