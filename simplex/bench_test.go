// Package simplex_test provides benchmarks for the simplex primitive.
package simplex_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/grunge/simplex"
)

var sink float32

// BenchmarkNoise2D measures a single primitive evaluation.
func BenchmarkNoise2D(b *testing.B) {
	p := mgl32.Vec2{0.05, 0.05}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = simplex.Noise2D(p, 0)
	}
}

// BenchmarkNoise2D_Row walks a row of samples to defeat branch prediction on one cell.
func BenchmarkNoise2D_Row(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = simplex.Noise2D(mgl32.Vec2{float32(i%512) * 0.1, 3.3}, 42)
	}
}
