// SPDX-License-Identifier: MIT
// Package: datagen/seqgen
//
// options.go — functional options shared by the scalar generators.

package seqgen

import (
	"github.com/katalvlaran/datagen/randsrc"
)

// config aggregates construction knobs; fixed applies to Number only.
type config struct {
	src   *randsrc.Source
	fixed *int
}

// Option customizes generator construction.
type Option func(*config)

// newConfig applies options in order and guarantees a non-nil stream.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = randsrc.New()
	}

	return cfg
}

// WithSource shares an explicit entropy stream. Panics on nil.
func WithSource(src *randsrc.Source) Option {
	if src == nil {
		panic("seqgen: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithSeed gives the generator its own deterministically seeded stream.
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = randsrc.New(randsrc.WithSeed(seed)) }
}

// WithFixed pins the Number generator to a constant value, bypassing
// the [low, high] draw entirely. Ignored by the sequence variants.
func WithFixed(value int) Option {
	return func(c *config) {
		v := value
		c.fixed = &v
	}
}
