// SPDX-License-Identifier: MIT
// Package: datagen/graphgen
//
// options.go — functional options for Generator construction.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself never panics.
//   • Determinism is explicit: seed via WithSeed or share a stream via
//     WithSource. No hidden globals.

package graphgen

import (
	"github.com/katalvlaran/datagen/randsrc"
)

// config aggregates all construction knobs for a Generator.
// It is resolved once in New and never mutated afterward.
type config struct {
	directed bool
	weighted bool
	src      *randsrc.Source
}

// Option customizes Generator construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// newConfig resolves deterministic defaults, applies options in order
// (last wins), and guarantees a non-nil entropy source.
func newConfig(opts ...Option) config {
	cfg := config{
		directed: false, // undirected unless requested
		weighted: true,  // weighted is the default policy
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		// Clock-seeded stream: diverse draws unless the caller pins a seed.
		cfg.src = randsrc.New()
	}

	return cfg
}

// WithDirected makes every accepted edge an i→j arc (i<j), producing a
// DAG consistent with the index ordering.
// Complexity: O(1).
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithUnweighted fixes every edge weight at the unit weight instead of
// drawing from [1,10].
// Complexity: O(1).
func WithUnweighted() Option {
	return func(c *config) { c.weighted = false }
}

// WithSource shares an explicit entropy stream across generators.
// Panics on nil to surface programmer error early.
// Complexity: O(1).
func WithSource(src *randsrc.Source) Option {
	if src == nil {
		panic("graphgen: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithSeed gives the generator its own stream seeded deterministically.
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = randsrc.New(randsrc.WithSeed(seed)) }
}
