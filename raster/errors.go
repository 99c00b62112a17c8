package raster

import "errors"

var (
	// ErrEmptyGrid indicates Width or Height is less than one.
	ErrEmptyGrid = errors.New("raster: grid must have at least one row and one column")
	// ErrGridShape indicates len(Values) differs from Width*Height.
	ErrGridShape = errors.New("raster: values do not match grid size")
	// ErrBadStep indicates a non-positive sampling step.
	ErrBadStep = errors.New("raster: step must be > 0")
	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("raster: unknown image format")
)
