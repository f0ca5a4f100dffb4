// SPDX-License-Identifier: MIT
// Package: leftstim/scene
//
// options.go - functional options for New.
//
// Option constructors validate and panic on meaningless input. Scene
// operations never panic.

package scene

import (
	"log"
	"math/rand"
)

// Option customizes a Scene at construction time.
type Option func(*config)

// WithSeed gives the scene a deterministic random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares r as the scene's random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("scene: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithFrameSize sets the frame dimensions. Panics unless both are positive.
func WithFrameSize(w, h float64) Option {
	if w <= 0 || h <= 0 {
		panic("scene: WithFrameSize requires positive dimensions")
	}
	return func(c *config) { c.frameW, c.frameH = w, h }
}

// WithCanvasSize records the canvas dimensions renderers should use.
// Panics unless both are positive.
func WithCanvasSize(w, h int) Option {
	if w <= 0 || h <= 0 {
		panic("scene: WithCanvasSize requires positive dimensions")
	}
	return func(c *config) { c.canvasW, c.canvasH = w, h }
}

// WithLogger reports recovered geometry failures to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("scene: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithSeparation overrides the minimum closest-corner distance between lines.
// Panics on negative values.
func WithSeparation(d float64) Option {
	if d < 0 {
		panic("scene: WithSeparation requires d >= 0")
	}
	return func(c *config) { c.separation = d }
}
