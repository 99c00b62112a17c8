// Package grunge generates coherent noise: continuous, deterministic
// pseudo-random scalar fields over 2D coordinates, and an algebra for
// composing them.
//
// What is in the box?
//
//   - simplex/ — the scalar primitive: 2D simplex noise with a table-free
//     permutation hash, seeded by a uint32.
//   - noise/   — the Module interface and everything that implements it:
//     fractal generators (Pink, Billow, RidgedMulti), geometric sources
//     (Const, Checkerboard, Cylinder, Function), OpenSimplex and Perlin
//     backends, and modifiers (Clamp, ScaleBias, Translate, Rotate, Modify)
//     that chain at runtime.
//   - raster/  — samples a Module over a grid and writes PGM, PNG or BMP.
//   - cmd/grunge — command-line renderer built on the packages above.
//
// Quick start:
//
//	src := noise.NewPink(0, noise.WithFrequency(0.01))
//	img := src.ScaleBias(0.5, 0.5).Clamp(0, 1)
//	g, err := raster.Sample(img, raster.DefaultOptions())
//	if err != nil { ... }
//	err = raster.WritePNG(w, g)
//
// Conventions:
//
//   - Coordinates are mgl32.Vec2 (github.com/go-gl/mathgl).
//   - Evaluation returns (float32, error); errors are package sentinels,
//     matched with errors.Is.
//   - Modifiers own a clone of their child, so graphs are trees and
//     later changes to the original source do not leak in.
//   - Evaluating an unchanged graph from many goroutines is safe;
//     mutating it while evaluating is not.
package grunge
