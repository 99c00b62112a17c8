// types.go — sampling options, the Grid container and output formats.

package raster

import "github.com/go-gl/mathgl/mgl32"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Format names an image encoding understood by Encode.
type Format string

const (
	// PGM is binary Netpbm greymap (P5).
	PGM Format = "pgm"
	// PNG is 8-bit greyscale PNG.
	PNG Format = "png"
	// BMP is 8-bit paletted BMP.
	BMP Format = "bmp"
)

// Defaults used by DefaultOptions.
const (
	DefaultWidth  = 200
	DefaultHeight = 200
	DefaultStep   = float32(1.0)
)

// Options contains the sampling window.
type Options struct {
	// Width and Height are the number of samples per row and column.
	Width, Height int
	// Origin is the coordinate of cell (0, 0).
	Origin mgl32.Vec2
	// Step is the distance between neighbouring samples.
	Step float32
}

// DefaultOptions returns Options with default settings:
// 200×200 samples on the integer lattice starting at the origin.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Step:   DefaultStep,
	}
}

// Grid is a row-major block of sampled values. Values[y*Width+x] holds the
// sample of cell (x, y).
type Grid struct {
	Width, Height int
	Values        []float32
}
