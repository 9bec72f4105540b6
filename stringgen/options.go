// SPDX-License-Identifier: MIT
// Package: datagen/stringgen
//
// options.go — functional options for Generator construction.
//
// Contract:
//   • Options only record intent; validation happens once in New so the
//     empty-alphabet case surfaces as ErrEmptyAlphabet (an error, not a
//     panic — callers may construct from untrusted configuration).
//   • Determinism is explicit via WithSeed/WithSource; no hidden globals.

package stringgen

import (
	"github.com/katalvlaran/datagen/randsrc"
)

// config aggregates all construction knobs for a Generator.
type config struct {
	// alphabet as provided; nil means "unset" (default resolves in New).
	alphabet []rune
	// alphabetSet distinguishes an explicit empty alphabet (invalid)
	// from no WithAlphabet option at all (default applies).
	alphabetSet bool

	src *randsrc.Source
}

// Option customizes Generator construction.
// Complexity: applying N options costs O(N) time.
type Option func(*config)

// newConfig applies options in order; last-wins semantics.
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

// WithAlphabet sets the draw alphabet. The slice is copied so later
// caller mutation cannot bias draws. An empty (or nil) alphabet is
// recorded and rejected by New with ErrEmptyAlphabet.
// Complexity: O(len(symbols)).
func WithAlphabet(symbols []rune) Option {
	return func(c *config) {
		c.alphabet = append([]rune(nil), symbols...)
		c.alphabetSet = true
	}
}

// WithAlphabetString sets the draw alphabet from a string's runes.
// Convenience wrapper for configuration surfaces (flags, env).
// Complexity: O(len(symbols)).
func WithAlphabetString(symbols string) Option {
	return WithAlphabet([]rune(symbols))
}

// WithSource shares an explicit entropy stream.
// Panics on nil to surface programmer error early.
// Complexity: O(1).
func WithSource(src *randsrc.Source) Option {
	if src == nil {
		panic("stringgen: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithSeed gives the generator its own deterministically seeded stream.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = randsrc.New(randsrc.WithSeed(seed)) }
}
