// Command grunge renders a coherent-noise source to an image file.
//
//	grunge -source ridged -seed 7 -freq 0.02 -w 512 -h 512 -o ridged.png
//
// The output format follows the file extension: .png, .pgm or .bmp.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/grunge/raster"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("grunge: %v", err)
	}
	log.Printf("wrote %s (%s, %dx%d, seed %d)", cfg.Output, cfg.Source, cfg.Width, cfg.Height, cfg.Seed)
}

func run(cfg *Config) error {
	format, err := raster.FormatFromPath(cfg.Output)
	if err != nil {
		return err
	}
	m, err := cfg.Module()
	if err != nil {
		return err
	}
	g, err := raster.Sample(m, cfg.Sampling())
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := raster.Encode(f, g, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
