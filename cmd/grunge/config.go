package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/grunge/noise"
	"github.com/katalvlaran/grunge/raster"
)

// Source kinds accepted by -source.
const (
	kindPink         = "pink"
	kindBillow       = "billow"
	kindRidged       = "ridged"
	kindCylinder     = "cylinder"
	kindCheckerboard = "checkerboard"
	kindOpenSimplex  = "opensimplex"
	kindPerlin       = "perlin"
)

var (
	errUnknownSource = errors.New("grunge: unknown source")
	errBadConfig     = errors.New("grunge: invalid configuration")
)

// Config represents the command-line parameters for the renderer.
type Config struct {
	Source    string
	Seed      uint64
	Frequency float64
	Octaves   int
	Width     int
	Height    int
	Output    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Source:    kindPink,
		Seed:      0,
		Frequency: 0.01,
		Octaves:   noise.DefaultOctaves,
		Width:     raster.DefaultWidth,
		Height:    raster.DefaultHeight,
		Output:    "grunge.png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Source, "source", c.Source, "pink|billow|ridged|cylinder|checkerboard|opensimplex|perlin")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "noise seed")
	fs.Float64Var(&c.Frequency, "freq", c.Frequency, "base frequency")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "octave count for fractal sources")
	fs.IntVar(&c.Width, "w", c.Width, "image width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "image height in pixels")
	fs.StringVar(&c.Output, "o", c.Output, "output file (.png, .pgm or .bmp)")
}

// Validate checks the values the noise option constructors would panic on.
func (c *Config) Validate() error {
	if c.Frequency <= 0 {
		return fmt.Errorf("%w: -freq must be > 0, got %g", errBadConfig, c.Frequency)
	}
	if c.Octaves < noise.MinOctaves || c.Octaves > noise.MaxOctaves {
		return fmt.Errorf("%w: -octaves must be in [%d,%d], got %d",
			errBadConfig, noise.MinOctaves, noise.MaxOctaves, c.Octaves)
	}
	if c.Seed > 1<<32-1 {
		return fmt.Errorf("%w: -seed must fit in 32 bits, got %d", errBadConfig, c.Seed)
	}
	return nil
}

// Module builds the configured source followed by the image post-process
// scale_bias(0.5, 0.5).clamp(0, 1), which maps [-1,1] onto [0,1] and clips
// the overshoot.
func (c *Config) Module() (noise.Module, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	seed := uint32(c.Seed)
	freq := float32(c.Frequency)
	opts := []noise.Option{noise.WithFrequency(freq), noise.WithOctaves(c.Octaves)}

	var src noise.Modifiable
	switch c.Source {
	case kindPink:
		src = noise.NewPink(seed, opts...)
	case kindBillow:
		src = noise.NewBillow(seed, opts...)
	case kindRidged:
		src = noise.NewRidgedMulti(seed, opts...)
	case kindCylinder:
		src = noise.NewCylinder(freq)
	case kindCheckerboard:
		cb := noise.NewCheckerboard()
		src = noise.NewFunction(func(x, y float32) (float32, error) {
			return cb.Generate2D(mgl32.Vec2{x, y}.Mul(freq))
		})
	case kindOpenSimplex:
		src = noise.NewOpenSimplex(seed, opts...)
	case kindPerlin:
		src = noise.NewPerlin(seed, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownSource, c.Source)
	}

	return src.ScaleBias(0.5, 0.5).Clamp(0, 1), nil
}

// Sampling returns the raster window for the configured image size.
func (c *Config) Sampling() raster.Options {
	opts := raster.DefaultOptions()
	opts.Width, opts.Height = c.Width, c.Height
	return opts
}
