// SPDX-License-Identifier: MIT
// Package: leftstim/scene
//
// config.go - internal configuration and defaults.
//
// Defaults:
//   • frame       = 300×300, centred on the origin
//   • canvas      = 500×500 (carried for renderers, no geometric effect)
//   • separation  = 40
//   • rng         = time-seeded
//   • logger      = discards everything

package scene

import (
	"io"
	"log"
	"math/rand"
	"time"
)

type config struct {
	frameW, frameH   float64
	canvasW, canvasH int
	separation       float64
	rng              *rand.Rand
	logger           *log.Logger
}

const (
	defaultFrameSize  = 300.0
	defaultCanvasSize = 500
	defaultSeparation = 40.0

	// maxSeparationAttempts bounds regeneration of a too-close candidate.
	maxSeparationAttempts = 100
	// maxStrategyAttempts bounds AddRandomLine's strategy retries.
	maxStrategyAttempts = 1000
	// minReplaceLines is the smallest scene ReplaceFigureWithLines accepts.
	minReplaceLines = 6
)

// strategy weights: side-to-side, line-to-line, side-to-line.
var strategyWeights = [...]strategy{
	sideToSide, sideToSide, sideToSide, sideToSide, sideToSide,
	lineToLine,
	sideToLine, sideToLine,
}

func newConfig(opts ...Option) config {
	cfg := config{
		frameW:     defaultFrameSize,
		frameH:     defaultFrameSize,
		canvasW:    defaultCanvasSize,
		canvasH:    defaultCanvasSize,
		separation: defaultSeparation,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard, "", 0)
	}

	return cfg
}
