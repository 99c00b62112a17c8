package noise_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grunge/noise"
)

// samplePoints is a fixed spread of coordinates used by the modifier laws.
var samplePoints = []mgl32.Vec2{
	{0, 0}, {0.5, 0.25}, {-3, 7}, {12.5, -4.75}, {100, 100}, {-64.25, 31.5},
}

// errFailing is returned by failingSource.
var errFailing = errors.New("child failed")

// failingSource always fails with errFailing.
func failingSource() *noise.Function {
	return noise.NewFunction(func(x, y float32) (float32, error) { return 0, errFailing })
}

// TestNewModifiers_Defaults checks the documented constructor defaults.
func TestNewModifiers_Defaults(t *testing.T) {
	src := noise.NewConst(3)

	c := noise.NewClamped(src)
	assert.Equal(t, float32(-1), c.Min)
	assert.Equal(t, float32(1), c.Max)
	v, err := c.Generate2D(mgl32.Vec2{})
	require.NoError(t, err)
	assert.Equal(t, float32(1), v)

	sb := noise.NewScaledBiased(src)
	assert.Equal(t, float32(1), sb.Scale)
	assert.Equal(t, float32(0), sb.Bias)

	tr := noise.NewTranslated(src)
	assert.Equal(t, mgl32.Vec2{}, tr.Offset)

	rot := noise.NewRotated(src)
	assert.Equal(t, float32(0), rot.Angle)
}

// TestClamp_Bounds checks values below, inside and above the window.
func TestClamp_Bounds(t *testing.T) {
	cases := []struct {
		name string
		in   float32
		want float32
	}{
		{"Below", -2, -0.5},
		{"Inside", 0.25, 0.25},
		{"Above", 3, 0.5},
		{"OnMin", -0.5, -0.5},
		{"OnMax", 0.5, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := noise.NewConst(tc.in).Clamp(-0.5, 0.5).Generate2D(mgl32.Vec2{})
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

// TestClamp_Idempotent verifies clamp(a,b).clamp(a,b) == clamp(a,b).
func TestClamp_Idempotent(t *testing.T) {
	src := noise.NewPink(2, noise.WithFrequency(0.1))
	once := src.Clamp(-0.2, 0.3)
	twice := once.Clamp(-0.2, 0.3)
	for _, p := range samplePoints {
		a, err := once.Generate2D(p)
		require.NoError(t, err)
		b, err := twice.Generate2D(p)
		require.NoError(t, err)
		assert.Equal(t, a, b, "at %v", p)
	}
}

// TestScaleBias_Identity verifies scale_bias(1,0) leaves values untouched.
func TestScaleBias_Identity(t *testing.T) {
	src := noise.NewBillow(8, noise.WithFrequency(0.2))
	id := src.ScaleBias(1.0, 0.0)
	for _, p := range samplePoints {
		a, err := src.Generate2D(p)
		require.NoError(t, err)
		b, err := id.Generate2D(p)
		require.NoError(t, err)
		assert.Equal(t, math.Float32bits(a), math.Float32bits(b), "at %v", p)
	}
}

// TestScaleBias_Affine checks value*scale + bias.
func TestScaleBias_Affine(t *testing.T) {
	v, err := noise.NewConst(0.5).ScaleBias(4, -1).Generate2D(mgl32.Vec2{})
	require.NoError(t, err)
	assert.Equal(t, float32(1), v)
}

// TestTranslate_Composition verifies translate(v1).translate(v2) samples at p+v1+v2.
func TestTranslate_Composition(t *testing.T) {
	src := noise.NewPink(1, noise.WithFrequency(0.05))
	v1 := mgl32.Vec2{3, -2}
	v2 := mgl32.Vec2{0.5, 8}
	chained := src.Translate(v1).Translate(v2)
	for _, p := range samplePoints {
		want, err := src.Generate2D(p.Add(v1).Add(v2))
		require.NoError(t, err)
		got, err := chained.Generate2D(p)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-6, "at %v", p)
	}
}

// TestTranslate_ShiftsCoordinate observes the forwarded coordinate directly.
func TestTranslate_ShiftsCoordinate(t *testing.T) {
	src := noise.NewFunction(func(x, y float32) (float32, error) { return x*10 + y, nil })
	v, err := src.Translate(mgl32.Vec2{1, 2}).Generate2D(mgl32.Vec2{3, 4})
	require.NoError(t, err)
	assert.Equal(t, float32(46), v) // (4, 6)
}

// TestRotate_QuarterTurn rotates (1,0) by π/2 and observes (0,1).
func TestRotate_QuarterTurn(t *testing.T) {
	var gx, gy float32
	probe := noise.NewFunction(func(x, y float32) (float32, error) {
		gx, gy = x, y
		return 0, nil
	})
	_, err := probe.Rotate(math.Pi/2).Generate2D(mgl32.Vec2{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, gx, 1e-6)
	assert.InDelta(t, 1, gy, 1e-6)
}

// TestRotate_PreservesRings checks rotation leaves a radially symmetric field unchanged.
func TestRotate_PreservesRings(t *testing.T) {
	cyl := noise.NewCylinder(0.7)
	rot := cyl.Rotate(1.234)
	for _, p := range samplePoints {
		a, _ := cyl.Generate2D(p)
		b, _ := rot.Generate2D(p)
		assert.InDelta(t, a, b, 1e-3, "at %v", p)
	}
}

// TestModify_ReceivesCoordinateAndValue checks the generic modifier contract.
func TestModify_ReceivesCoordinateAndValue(t *testing.T) {
	m := noise.NewConst(2).Modify(func(x, y, value float32) (float32, error) {
		return x + y*value, nil
	})
	v, err := m.Generate2D(mgl32.Vec2{1, 3})
	require.NoError(t, err)
	assert.Equal(t, float32(7), v)

	_, err = noise.NewModifier(noise.NewConst(0), nil).Generate2D(mgl32.Vec2{})
	assert.ErrorIs(t, err, noise.ErrUnsupported)
}

// TestModifiers_PropagateChildError verifies every modifier returns the
// child's error value unchanged.
func TestModifiers_PropagateChildError(t *testing.T) {
	src := failingSource()
	pass := func(x, y, v float32) (float32, error) { return v, nil }
	mods := map[string]noise.Module{
		"Clamp":     src.Clamp(0, 1),
		"ScaleBias": src.ScaleBias(2, 1),
		"Translate": src.Translate(mgl32.Vec2{1, 1}),
		"Rotate":    src.Rotate(0.5),
		"Modify":    src.Modify(pass),
		"Chain":     src.ScaleBias(0.5, 0.5).Clamp(0, 1).Rotate(1).Translate(mgl32.Vec2{2, 2}),
	}
	for name, m := range mods {
		t.Run(name, func(t *testing.T) {
			_, err := m.Generate2D(mgl32.Vec2{1, 2})
			assert.Same(t, errFailing, err)
		})
	}

	pink := noise.NewPink(0)
	pink.Octaves = 31
	_, err := pink.ScaleBias(0.5, 0.5).Clamp(0, 1).Generate2D(mgl32.Vec2{})
	assert.ErrorIs(t, err, noise.ErrInvalidOctaveCount)
}

// TestModifiers_OwnClonedSource verifies wrapping takes a snapshot: mutating
// the original afterwards does not reach the built graph.
func TestModifiers_OwnClonedSource(t *testing.T) {
	pink := noise.NewPink(0)
	wrapped := pink.Clamp(-1, 1)

	pink.Octaves = 1 // invalid on the original only
	_, err := pink.Generate2D(mgl32.Vec2{})
	require.ErrorIs(t, err, noise.ErrInvalidOctaveCount)

	_, err = wrapped.Generate2D(mgl32.Vec2{})
	assert.NoError(t, err)
}

// TestClone_Independent verifies Clone produces a deep, independent copy.
func TestClone_Independent(t *testing.T) {
	orig := noise.NewConst(1).ScaleBias(2, 0)
	clone, ok := orig.Clone().(*noise.ScaledBiased)
	require.True(t, ok)

	clone.Scale = 10
	clone.Source.(*noise.Const).Value = 5

	a, _ := orig.Generate2D(mgl32.Vec2{})
	b, _ := clone.Generate2D(mgl32.Vec2{})
	assert.Equal(t, float32(2), a)
	assert.Equal(t, float32(50), b)
}

// TestFacades_MatchMethods checks the package-level wrappers build the same
// nodes as the chaining methods.
func TestFacades_MatchMethods(t *testing.T) {
	src := noise.NewRidgedMulti(3, noise.WithFrequency(0.1))
	pairs := []struct {
		name   string
		method noise.Module
		facade noise.Module
	}{
		{"Clamp", src.Clamp(-0.1, 0.1), noise.Clamp(src, -0.1, 0.1)},
		{"ScaleBias", src.ScaleBias(3, 1), noise.ScaleBias(src, 3, 1)},
		{"Translate", src.Translate(mgl32.Vec2{4, 4}), noise.Translate(src, mgl32.Vec2{4, 4})},
		{"Rotate", src.Rotate(0.3), noise.Rotate(src, 0.3)},
	}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			for _, p := range samplePoints {
				a, err := tc.method.Generate2D(p)
				require.NoError(t, err)
				b, err := tc.facade.Generate2D(p)
				require.NoError(t, err)
				assert.Equal(t, a, b)
			}
		})
	}

	v, err := noise.Generate(noise.NewConst(4), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(4), v)
}
