// SPDX-License-Identifier: MIT

// Command leftstim writes batches of embedded-figure stimuli to disk.
//
// Every set is three images sharing one id:
//
//	<figure>_<id>_onlyfigure.<ext>
//	<figure>_<id>_embeddedfigure.<ext>
//	<figure>_<id>_nofigure.<ext>
//
// Usage:
//
//	leftstim -n 30 -figure C3 -format png -out generated_images
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/leftstim/internal/config"
	"github.com/katalvlaran/leftstim/internal/generator"
	"github.com/katalvlaran/leftstim/render"
	"github.com/katalvlaran/leftstim/scene"
)

func main() {
	cfg := config.Load()

	var (
		sets    = flag.Int("n", 1, "number of stimulus sets")
		fig     = flag.String("figure", "", "figure name A1..D4 (random when empty)")
		lines   = flag.Int("lines", cfg.ExtraLines, "distractor steps per stimulus")
		grow    = flag.Float64("grow", 0.2, "chance a distractor step grows a line through the figure")
		align   = flag.Float64("align", 0, "chance to align the figure with a border")
		shift   = flag.Float64("shift", 0, "chance to shift a figure vertex onto a border")
		format  = flag.String("format", "png", "output format: png or svg")
		outDir  = flag.String("out", cfg.OutputDir, "output directory")
		seed    = flag.Int64("seed", 0, "random seed (0 = time based)")
		verbose = flag.Bool("v", false, "log recovered geometry failures")
	)
	flag.Parse()

	if *format != "png" && *format != "svg" {
		log.Fatalf("unknown format %q", *format)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create %s: %v", *outDir, err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	opts := []scene.Option{
		scene.WithRand(rng),
		scene.WithFrameSize(float64(cfg.FrameSize), float64(cfg.FrameSize)),
		scene.WithCanvasSize(cfg.CanvasSize, cfg.CanvasSize),
	}
	if *verbose {
		opts = append(opts, scene.WithLogger(log.New(os.Stderr, "[GEO] ", log.LstdFlags)))
	}

	recipe := generator.Recipe{
		Figure:      *fig,
		ExtraLines:  *lines,
		GrowChance:  *grow,
		AlignChance: *align,
		ShiftChance: *shift,
	}

	log.Printf("[GEN] %d sets, seed %d, into %s", *sets, *seed, *outDir)
	for i := 0; i < *sets; i++ {
		if err := writeSet(recipe, rng, opts, *format, *outDir); err != nil {
			log.Fatalf("[GEN] set %d: %v", i, err)
		}
	}
	log.Printf("[GEN] done")
}

// writeSet builds one stimulus and writes its three variants.
func writeSet(recipe generator.Recipe, rng *rand.Rand, opts []scene.Option, format, dir string) error {
	s, err := generator.Build(recipe, rng, opts...)
	if err != nil {
		return err
	}
	name := s.Figure().Name()
	id := uuid.NewString()

	for _, v := range generator.Variants {
		path := filepath.Join(dir, generator.FileName(name, id, v, format))
		if err = writeVariant(s, v, format, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Printf("[GEN] wrote %s", path)
	}

	return nil
}

func writeVariant(s *scene.Scene, v generator.Variant, format, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, h := s.CanvasSize()
	if format == "svg" {
		out := render.NewSVG(f, w, h)
		if err = generator.Render(s, v, out); err != nil {
			return err
		}
		out.Close()
		return f.Close()
	}

	out := render.NewRaster(w, h)
	if err = generator.Render(s, v, out); err != nil {
		return err
	}
	if err = out.EncodePNG(f); err != nil {
		return err
	}

	return f.Close()
}
