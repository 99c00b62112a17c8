package noise

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/grunge/simplex"
)

// octaveShape maps a raw simplex value to an octave contribution.
type octaveShape func(n float32) float32

// sum runs the shared octave loop used by Pink and Billow.
//
// Algorithm Outline:
//  1. Validate Octaves and Persistence (fields are mutable, so every call checks).
//  2. For k in [0, Octaves):
//     n     = simplex(v * Frequency * Lacunarity^k, Seed + k)
//     total += Persistence^k * shape(n)
//     norm  += Persistence^k
//  3. Return total / norm: a weighted mean of the octave values, so the result
//     stays within the range of shape over [-simplex.Bound, simplex.Bound].
//
// Complexity: O(Octaves) primitive evaluations, no allocations.
func (p *FractalParams) sum(method string, v mgl32.Vec2, shape octaveShape) (float32, error) {
	if err := validateFractal(method, p); err != nil {
		return 0, err
	}

	var total, norm float32
	freq, amp := p.Frequency, float32(1)
	for k := 0; k < p.Octaves; k++ {
		n := simplex.Noise2D(v.Mul(freq), p.Seed+uint32(k))
		total += amp * shape(n)
		norm += amp

		freq *= p.Lacunarity
		amp *= p.Persistence
	}

	return total / norm, nil
}
