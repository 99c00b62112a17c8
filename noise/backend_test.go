package noise_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grunge/noise"
)

// TestBackends_DeterministicAndSeeded checks both backends are pure and seed-sensitive.
func TestBackends_DeterministicAndSeeded(t *testing.T) {
	build := map[string]func(seed uint32) noise.Module{
		"OpenSimplex": func(s uint32) noise.Module { return noise.NewOpenSimplex(s, noise.WithFrequency(0.1)) },
		"Perlin":      func(s uint32) noise.Module { return noise.NewPerlin(s, noise.WithFrequency(0.1), noise.WithOctaves(3)) },
	}
	for name, mk := range build {
		t.Run(name, func(t *testing.T) {
			a, b, other := mk(7), mk(7), mk(8)
			differs := 0
			for i := 0; i < 40; i++ {
				p := mgl32.Vec2{float32(i)*1.3 + 0.1, float32(i)*0.7 + 0.2}
				va, err := a.Generate2D(p)
				require.NoError(t, err)
				vb, err := b.Generate2D(p)
				require.NoError(t, err)
				vo, err := other.Generate2D(p)
				require.NoError(t, err)

				assert.Equal(t, va, vb, "same seed must agree at %v", p)
				assert.GreaterOrEqual(t, va, float32(-1.5))
				assert.LessOrEqual(t, va, float32(1.5))
				if va != vo {
					differs++
				}
			}
			assert.Greater(t, differs, 20, "seeds 7 and 8 should disagree on most samples")
		})
	}
}

// TestBackends_Accessors checks constructor parameters are retained.
func TestBackends_Accessors(t *testing.T) {
	osn := noise.NewOpenSimplex(3, noise.WithFrequency(0.25))
	assert.Equal(t, uint32(3), osn.Seed())
	assert.Equal(t, float32(0.25), osn.Frequency())

	pn := noise.NewPerlin(4, noise.WithOctaves(4), noise.WithPersistence(0.25))
	params := pn.Params()
	assert.Equal(t, uint32(4), params.Seed)
	assert.Equal(t, 4, params.Octaves)
	assert.Equal(t, float32(0.25), params.Persistence)
}

// TestBackends_Chainable checks backend modules compose like any other.
func TestBackends_Chainable(t *testing.T) {
	img := noise.NewOpenSimplex(1, noise.WithFrequency(0.05)).ScaleBias(0.5, 0.5).Clamp(0, 1)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			v, err := img.Generate2D(mgl32.Vec2{float32(x), float32(y)})
			require.NoError(t, err)
			assert.True(t, v >= 0 && v <= 1)
		}
	}

	clone := noise.NewPerlin(2).Clone()
	orig := noise.NewPerlin(2)
	a, _ := orig.Generate2D(mgl32.Vec2{0.3, 0.6})
	b, _ := clone.Generate2D(mgl32.Vec2{0.3, 0.6})
	assert.Equal(t, a, b)
}
