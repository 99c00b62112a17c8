package noise

// validateOctaves ensures MinOctaves ≤ n ≤ MaxOctaves.
// Returns "<Method>: octaves must be in [2,30], got <n>: noise: invalid octave count".
//
// Complexity: O(1).
func validateOctaves(method string, n int) error {
	if n < MinOctaves || n > MaxOctaves {
		return noiseErrorf(method, ErrInvalidOctaveCount,
			"octaves must be in [%d,%d], got %d", MinOctaves, MaxOctaves, n)
	}

	return nil
}

// validatePersistence ensures Persistence > 0, so the amplitude sum used to
// normalize the octaves is positive.
//
// Complexity: O(1).
func validatePersistence(method string, p float32) error {
	if !(p > 0) {
		return noiseErrorf(method, ErrInvalidPersistence,
			"persistence must be > 0, got %g", p)
	}

	return nil
}

// validateFractal runs every per-evaluation check on p.
func validateFractal(method string, p *FractalParams) error {
	if err := validateOctaves(method, p.Octaves); err != nil {
		return err
	}
	return validatePersistence(method, p.Persistence)
}
