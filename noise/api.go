// SPDX-License-Identifier: MIT
// Package noise — public API facades.
//
// Purpose:
//   - Thin entry points that work on ANY Module, including ones defined
//     outside this package that cannot carry the chaining methods.
//   - Each facade clones src and builds the same node as the matching
//     chaining method (pink.Clamp(a, b) ≡ noise.Clamp(pink, a, b)).

package noise

import "github.com/go-gl/mathgl/mgl32"

// Generate evaluates m at (x, y).
func Generate(m Module, x, y float32) (float32, error) {
	return m.Generate2D(mgl32.Vec2{x, y})
}

// Clamp wraps a clone of src, bounding its output into [min, max].
func Clamp(src Module, min, max float32) *Clamped {
	return &Clamped{Source: src.Clone(), Min: min, Max: max}
}

// ScaleBias wraps a clone of src, mapping its output through v*scale + bias.
func ScaleBias(src Module, scale, bias float32) *ScaledBiased {
	return &ScaledBiased{Source: src.Clone(), Scale: scale, Bias: bias}
}

// Translate wraps a clone of src, sampling it at v + offset.
func Translate(src Module, offset mgl32.Vec2) *Translated {
	return &Translated{Source: src.Clone(), Offset: offset}
}

// Rotate wraps a clone of src, sampling it at v rotated by angle radians.
func Rotate(src Module, angle float32) *Rotated {
	return &Rotated{Source: src.Clone(), Angle: angle}
}

// Modify wraps a clone of src, post-processing its output with fn.
func Modify(src Module, fn ModifierFunc) *Modifier {
	return NewModifier(src, fn)
}
