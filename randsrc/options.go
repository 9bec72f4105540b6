// SPDX-License-Identifier: MIT
// Package: datagen/randsrc
//
// options.go — functional options for Source construction.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     draw methods themselves never panic on valid streams.
//   • Determinism is explicit: seeding happens via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package randsrc

import (
	"math/rand"
)

// config holds the resolved construction knobs for a Source.
type config struct {
	// rng is the underlying stream; nil means "seed from the clock".
	rng *rand.Rand
}

// Option customizes Source construction by mutating a config instance
// before the Source is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// newConfig resolves options in order; last-wins semantics.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates the underlying stream from the given seed
// (deterministic). Use this in tests and fixtures to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) {
		// Seeded source → reproducible draw sequences.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit caller-owned stream.
// Panics on nil to surface programmer error early; prefer WithSeed for
// reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("randsrc: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
