package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Gray maps samples in [0,1] to 8-bit luminance; values outside the range
// are clamped first. NaN maps to black. On an invalid grid (see Validate)
// the image is empty.
// Complexity: O(W×H).
func (g *Grid) Gray() *image.Gray {
	if g.Validate() != nil {
		return image.NewGray(image.Rectangle{})
	}
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for i, v := range g.Values {
		img.Pix[i] = luminance(v)
	}
	return img
}

func luminance(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// WritePGM writes g as a binary greymap (P5, maxval 255).
func WritePGM(w io.Writer, g *Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", g.Width, g.Height); err != nil {
		return fmt.Errorf("raster: pgm header: %w", err)
	}
	if _, err := bw.Write(g.Gray().Pix); err != nil {
		return fmt.Errorf("raster: pgm pixels: %w", err)
	}
	return bw.Flush()
}

// WritePNG writes g as an 8-bit greyscale PNG.
func WritePNG(w io.Writer, g *Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := png.Encode(w, g.Gray()); err != nil {
		return fmt.Errorf("raster: png: %w", err)
	}
	return nil
}

// WriteBMP writes g as an 8-bit paletted BMP.
func WriteBMP(w io.Writer, g *Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := bmp.Encode(w, g.Gray()); err != nil {
		return fmt.Errorf("raster: bmp: %w", err)
	}
	return nil
}

// Encode writes g in the given format.
// Returns ErrUnknownFormat for anything but PGM, PNG or BMP, and the
// Validate error for an invalid grid.
func Encode(w io.Writer, g *Grid, format Format) error {
	switch format {
	case PGM:
		return WritePGM(w, g)
	case PNG:
		return WritePNG(w, g)
	case BMP:
		return WriteBMP(w, g)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// FormatFromPath picks a Format from the file extension of path
// (case-insensitive). Returns ErrUnknownFormat if the extension is not known.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch f := Format(ext); f {
	case PGM, PNG, BMP:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}
