package raster

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/grunge/noise"
)

// Sample evaluates m at Origin + (x, y)*Step for every cell of the window.
// The first failing cell aborts sampling; its error is wrapped as
// "raster: sample (x,y): <err>" so errors.Is still sees the module sentinel.
//
// Returns ErrEmptyGrid or ErrBadStep for invalid options.
// Complexity: O(W×H) evaluations, O(W×H) memory.
func Sample(m noise.Module, opts Options) (*Grid, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, ErrEmptyGrid
	}
	if !(opts.Step > 0) {
		return nil, ErrBadStep
	}

	g := &Grid{
		Width:  opts.Width,
		Height: opts.Height,
		Values: make([]float32, opts.Width*opts.Height),
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := opts.Origin.Add(mgl32.Vec2{float32(x), float32(y)}.Mul(opts.Step))
			v, err := m.Generate2D(p)
			if err != nil {
				return nil, fmt.Errorf("raster: sample (%d,%d): %w", x, y, err)
			}
			g.Values[g.index(x, y)] = v
		}
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the sample of cell (x, y). It panics if the cell is out of bounds.
func (g *Grid) At(x, y int) float32 {
	return g.Values[g.index(x, y)]
}

// Coordinate converts a row-major index back to (x, y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Validate reports whether g is usable: ErrEmptyGrid if Width or Height is
// less than one, ErrGridShape if len(Values) != Width*Height. Grids returned
// by Sample are always valid.
// Complexity: O(1).
func (g *Grid) Validate() error {
	if g.Width < 1 || g.Height < 1 {
		return ErrEmptyGrid
	}
	if len(g.Values) != g.Width*g.Height {
		return fmt.Errorf("%w: %d values for %dx%d", ErrGridShape, len(g.Values), g.Width, g.Height)
	}
	return nil
}

// Bounds returns the smallest and largest sample, or the Validate error.
// Complexity: O(W×H).
func (g *Grid) Bounds() (lo, hi float32, err error) {
	if err = g.Validate(); err != nil {
		return 0, 0, err
	}
	lo, hi = g.Values[0], g.Values[0]
	for _, v := range g.Values[1:] {
		lo, hi = min(lo, v), max(hi, v)
	}
	return lo, hi, nil
}

func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}
