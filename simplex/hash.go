package simplex

import "math"

// Permutation polynomial constants (McEwan et al. 2012).
const (
	permMultiplier float32 = 34.0
	permModulus    float64 = 289.0
)

// PermutationHash maps t to ((34t + 1) * t) mod 289.
//
// The polynomial shuffles integer inputs in [0, 289) reasonably well; it is
// NOT a general-purpose hash. The modulo is taken on the floating-point value
// (truncated, sign of the dividend), matching the GLSL mod the gradient
// decoding was designed for.
//
// Complexity: O(1).
func PermutationHash(t float32) float32 {
	// Explicit conversions round each step to float32 and forbid FMA fusion,
	// keeping the result bit-stable across architectures.
	h := float32(float32(t*permMultiplier+1) * t)

	return float32(math.Mod(float64(h), permModulus))
}

// hash3 applies PermutationHash component-wise.
func hash3(v [3]float32) [3]float32 {
	return [3]float32{PermutationHash(v[0]), PermutationHash(v[1]), PermutationHash(v[2])}
}

// floor32 is math.Floor in single precision.
func floor32(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// fract32 returns the fractional part of x with the sign of x.
func fract32(x float32) float32 {
	return x - float32(math.Trunc(float64(x)))
}
