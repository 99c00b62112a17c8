// SPDX-License-Identifier: MIT
// Package: grunge/noise
//
// errors.go — sentinel errors for the noise package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w ("PinkNoise: octaves must be ...: %w").
//   • Modifiers NEVER wrap: a child's error is returned as the same value.
//   • Evaluation never panics; option constructors (WithX) panic on
//     meaningless values because those are programmer errors.

package noise

import (
	"errors"
	"fmt"
)

// ErrInvalidOctaveCount indicates a fractal generator's Octaves field lies
// outside [MinOctaves, MaxOctaves]. It is detected at evaluation time, since
// the field may be reassigned after construction.
// Usage: if errors.Is(err, ErrInvalidOctaveCount) { /* fix Octaves */ }.
var ErrInvalidOctaveCount = errors.New("noise: invalid octave count")

// ErrInvalidPersistence indicates a fractal generator's Persistence field is
// not positive. Like Octaves, the field is checked on every evaluation.
var ErrInvalidPersistence = errors.New("noise: invalid persistence")

// ErrUnsupported indicates a module cannot produce a value in its current
// configuration, e.g. a Function or Modifier whose function is nil.
// Usage: if errors.Is(err, ErrUnsupported) { /* supply a function */ }.
var ErrUnsupported = errors.New("noise: unsupported evaluation")

// noiseErrorf prefixes a formatted message with the module name and wraps
// the sentinel so errors.Is keeps working.
//
// Complexity: O(len(format) + Σlen(args)).
func noiseErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
