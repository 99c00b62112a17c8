package noise

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/grunge/simplex"
)

// RidgedMulti is ridged multifractal noise (Musgrave): octaves are turned
// into ridges with (RidgedOffset - min(|n|, 1))² and each octave's signal sets the
// weight of the next one, so detail piles up on the ridges and stays out of
// the valleys.
type RidgedMulti struct {
	FractalParams

	// Gain scales the signal that becomes the next octave's weight
	// (weight = clamp(signal*Gain, 0, 1)). Zero leaves only octave 0.
	Gain float32
}

// NewRidgedMulti returns a RidgedMulti generator with DefaultFractalParams(seed),
// Gain=DefaultRidgedGain and opts applied.
func NewRidgedMulti(seed uint32, opts ...Option) *RidgedMulti {
	cfg := newFractalConfig(seed, opts...)
	return &RidgedMulti{FractalParams: cfg.params, Gain: cfg.gain}
}

// Generate2D implements Module.
//
// Algorithm Outline:
//
//	weight = 1
//	for k in [0, Octaves):
//	  signal = (RidgedOffset - min(|simplex(v*f_k, Seed+k)|, 1))² * weight
//	  weight = clamp(signal*Gain, 0, 1)
//	  total += Persistence^k * signal; norm += Persistence^k
//	return 2*(total/norm) - 1
//
// The simplex primitive overshoots [-1, 1], so |n| is capped at 1 before the
// ridge transform. That keeps signal in [0,1], the normalized sum in [0,1]
// and the result in [-1, 1].
//
// Errors: ErrInvalidOctaveCount, ErrInvalidPersistence (wrapped with
// "RidgedMultifractalNoise: ...").
// Complexity: O(Octaves).
func (n *RidgedMulti) Generate2D(v mgl32.Vec2) (float32, error) {
	if err := validateFractal(MethodRidgedMulti, &n.FractalParams); err != nil {
		return 0, err
	}

	var total, norm float32
	freq, amp, weight := n.Frequency, float32(1), float32(1)
	for k := 0; k < n.Octaves; k++ {
		ridge := min(mgl32.Abs(simplex.Noise2D(v.Mul(freq), n.Seed+uint32(k))), 1)
		signal := RidgedOffset - ridge
		signal *= signal
		signal *= weight

		weight = mgl32.Clamp(signal*n.Gain, 0, 1)

		total += amp * signal
		norm += amp

		freq *= n.Lacunarity
		amp *= n.Persistence
	}

	return 2*(total/norm) - 1, nil
}

// Clone implements Module.
func (n *RidgedMulti) Clone() Module {
	c := *n
	return &c
}
