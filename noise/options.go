// SPDX-License-Identifier: MIT
// Package: grunge/noise
//
// options.go — functional options for the seeded constructors.
//
// Contract:
//   • Options are functional (type Option func(*fractalConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Evaluation itself never panics.
//   • Later options override earlier ones.
//   • Options a constructor has no use for are ignored (WithGain on Pink).

package noise

import "fmt"

// fractalConfig collects everything a seeded constructor may need.
type fractalConfig struct {
	params FractalParams
	gain   float32 // RidgedMulti only
}

// Option customizes a seeded constructor (NewPink, NewBillow, NewRidgedMulti,
// NewOpenSimplex, NewPerlin).
// Complexity: applying N options costs O(N).
type Option func(*fractalConfig)

// newFractalConfig starts from DefaultFractalParams(seed) and applies opts in order.
func newFractalConfig(seed uint32, opts ...Option) fractalConfig {
	cfg := fractalConfig{
		params: DefaultFractalParams(seed),
		gain:   DefaultRidgedGain,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithFrequency sets the base frequency. Panics if f <= 0.
func WithFrequency(f float32) Option {
	if f <= 0 {
		panic(fmt.Sprintf("noise: WithFrequency(%g): frequency must be > 0", f))
	}
	return func(c *fractalConfig) {
		c.params.Frequency = f
	}
}

// WithPersistence sets the per-octave amplitude decay. Panics if p <= 0.
func WithPersistence(p float32) Option {
	if p <= 0 {
		panic(fmt.Sprintf("noise: WithPersistence(%g): persistence must be > 0", p))
	}
	return func(c *fractalConfig) {
		c.params.Persistence = p
	}
}

// WithLacunarity sets the per-octave frequency growth. Panics if l <= 0.
func WithLacunarity(l float32) Option {
	if l <= 0 {
		panic(fmt.Sprintf("noise: WithLacunarity(%g): lacunarity must be > 0", l))
	}
	return func(c *fractalConfig) {
		c.params.Lacunarity = l
	}
}

// WithOctaves sets the octave count. Panics outside [MinOctaves, MaxOctaves];
// assigning the Octaves field directly is checked at evaluation instead.
func WithOctaves(n int) Option {
	if err := validateOctaves("WithOctaves", n); err != nil {
		panic(err.Error())
	}
	return func(c *fractalConfig) {
		c.params.Octaves = n
	}
}

// WithGain sets the ridged-multifractal weight gain. Panics if g < 0.
func WithGain(g float32) Option {
	if g < 0 {
		panic(fmt.Sprintf("noise: WithGain(%g): gain must be ≥ 0", g))
	}
	return func(c *fractalConfig) {
		c.gain = g
	}
}
