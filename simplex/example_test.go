package simplex_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/grunge/simplex"
)

// ExampleNoise2D samples the primitive and shows that it is a pure function.
func ExampleNoise2D() {
	p := mgl32.Vec2{3.25, -1.5}
	a := simplex.Noise2D(p, 7)
	b := simplex.Noise2D(p, 7)
	fmt.Println(a == b, a > -simplex.Bound && a < simplex.Bound)
	// Output:
	// true true
}

// ExamplePermutationHash shows the McEwan polynomial on a few lattice values.
func ExamplePermutationHash() {
	for _, t := range []float32{0, 1, 10} {
		fmt.Println(simplex.PermutationHash(t))
	}
	// Output:
	// 0
	// 35
	// 231
}
