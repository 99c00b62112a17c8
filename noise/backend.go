// SPDX-License-Identifier: MIT
// Package: grunge/noise
//
// backend.go — modules backed by third-party noise implementations.
//
// Both backends build their permutation tables at construction and only read
// them afterwards, so Clone shares the backend and concurrent evaluation is
// safe. Parameters are unexported: changing them means building a new module.

package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"
)

// OpenSimplex samples single-octave OpenSimplex noise (ojrac/opensimplex-go)
// at v*Frequency. Useful as a patent-free alternative basis with a slightly
// different texture than simplex.Noise2D.
type OpenSimplex struct {
	seed      uint32
	frequency float32
	noise     opensimplex.Noise32
}

// NewOpenSimplex builds an OpenSimplex module. Only WithFrequency affects it.
func NewOpenSimplex(seed uint32, opts ...Option) *OpenSimplex {
	cfg := newFractalConfig(seed, opts...)
	return &OpenSimplex{
		seed:      seed,
		frequency: cfg.params.Frequency,
		noise:     opensimplex.New32(expandSeed(seed, streamOpenSimplex)),
	}
}

// Seed returns the seed the module was built with.
func (n *OpenSimplex) Seed() uint32 { return n.seed }

// Frequency returns the input scale.
func (n *OpenSimplex) Frequency() float32 { return n.frequency }

// Generate2D implements Module. Never fails.
func (n *OpenSimplex) Generate2D(v mgl32.Vec2) (float32, error) {
	p := v.Mul(n.frequency)
	return n.noise.Eval2(p[0], p[1]), nil
}

// Clone implements Module. The read-only backend is shared.
func (n *OpenSimplex) Clone() Module {
	c := *n
	return &c
}

// Perlin samples classic Perlin fBm from aquilax/go-perlin. FractalParams map
// onto the backend as alpha = 1/Persistence, beta = Lacunarity,
// n = Octaves; Frequency scales the input.
type Perlin struct {
	params FractalParams
	noise  *perlin.Perlin
}

// NewPerlin builds a Perlin module from DefaultFractalParams(seed) and opts.
// Octaves are validated by WithOctaves; the defaults are always valid.
func NewPerlin(seed uint32, opts ...Option) *Perlin {
	cfg := newFractalConfig(seed, opts...)
	p := cfg.params
	octaves := min(p.Octaves, perlinMaxOctaves)

	return &Perlin{
		params: p,
		noise: perlin.NewPerlin(
			1/float64(p.Persistence),
			float64(p.Lacunarity),
			int32(octaves),
			expandSeed(seed, streamPerlin),
		),
	}
}

// Params returns a copy of the parameters the module was built with.
func (n *Perlin) Params() FractalParams { return n.params }

// Generate2D implements Module. Never fails.
func (n *Perlin) Generate2D(v mgl32.Vec2) (float32, error) {
	p := v.Mul(n.params.Frequency)
	return float32(n.noise.Noise2D(float64(p[0]), float64(p[1]))), nil
}

// Clone implements Module. The read-only backend is shared.
func (n *Perlin) Clone() Module {
	c := *n
	return &c
}
