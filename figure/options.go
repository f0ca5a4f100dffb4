// SPDX-License-Identifier: MIT
// Package: leftstim/figure
//
// options.go - functional options for New.
//
// Option constructors validate and panic on meaningless input; figure
// operations themselves never panic.

package figure

import (
	"math/rand"
	"time"
)

// Option customizes a Figure at construction time.
type Option func(*config)

type config struct {
	rng  *rand.Rand
	name string
}

const defaultName = "unnamed"

func newConfig(opts ...Option) config {
	cfg := config{name: defaultName}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithRand shares r as the figure's random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("figure: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed gives the figure its own deterministic random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithName labels the figure (used in output file names).
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}
