// SPDX-License-Identifier: MIT
// Package: datagen/stringgen
//
// stringgen.go - implementation of Generate and GeneratePair.
//
// Contract:
//   - Alphabet has ≥1 symbol (enforced by New; generation assumes it).
//   - Generate: length ≥ 1 (else ErrBadLength); exactly length draws.
//   - GeneratePair: len1 ≥ 1 and len2 ≥ 1 validated eagerly in BOTH
//     modes; no partial artifact on failure.
//   - Similar mode: k ∈ {1..max(1, len1/3)} mutation attempts over a
//     copy of str1; Hamming(str1, str2) ≤ k; len(str2) == len1 and len2
//     is ignored (documented quirk, preserved).
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Draw order is fixed: str1 left-to-right, then k, then per-attempt
//     (index, symbol). Fixed seed ⇒ identical pairs.

package stringgen

import (
	"fmt"

	"github.com/katalvlaran/datagen/randsrc"
)

// File-local constants (stable method tags; mutation-count domain).
const (
	methodGenerate     = "Generate"
	methodGeneratePair = "GeneratePair"

	// minLength is the smallest admissible string length.
	minLength = 1

	// minMutations is the lower bound of the mutation-count draw; at
	// least one attempt is always made in similar mode.
	minMutations = 1

	// mutationDivisor bounds attempts to roughly a third of the string.
	mutationDivisor = 3
)

// defaultAlphabet applies when no WithAlphabet option is given.
var defaultAlphabet = []rune{'A', 'B', 'C'}

// Generator draws random strings over a fixed alphabet. Configuration
// is immutable after New; calls share no state beyond the entropy
// stream, so a Generator is safe for concurrent use.
type Generator struct {
	alphabet []rune
	src      *randsrc.Source
}

// New constructs a Generator. Defaults: alphabet {A,B,C}, clock-seeded
// entropy. An explicitly empty alphabet fails here with
// ErrEmptyAlphabet — never later, at generation time.
// Complexity: O(len(opts) + len(alphabet)).
func New(opts ...Option) (*Generator, error) {
	cfg := newConfig(opts...)

	switch {
	case !cfg.alphabetSet:
		cfg.alphabet = append([]rune(nil), defaultAlphabet...)
	case len(cfg.alphabet) == 0:
		return nil, fmt.Errorf("New: %w", ErrEmptyAlphabet)
	}

	return &Generator{alphabet: cfg.alphabet, src: cfg.src}, nil
}

// Alphabet returns a copy of the configured alphabet.
// Complexity: O(len(alphabet)).
func (g *Generator) Alphabet() []rune {
	return append([]rune(nil), g.alphabet...)
}

// Generate draws length symbols independently and uniformly (with
// replacement) from the alphabet, in order.
//
// Errors:
//   - ErrBadLength when length < 1.
//
// Complexity: O(length).
func (g *Generator) Generate(length int) (string, error) {
	if length < minLength { // positive length required
		return "", fmt.Errorf("%s: length=%d < 1: %w", methodGenerate, length, ErrBadLength)
	}

	buf := make([]rune, length)
	for i := range buf {
		buf[i] = randsrc.Choice(g.src, g.alphabet)
	}

	return string(buf), nil
}

// GeneratePair returns two strings over the alphabet.
//
// similar=false: the strings are drawn independently with lengths len1
// and len2; by chance they may still collide for small alphabets.
//
// similar=true: str2 is derived from str1 by k mutation attempts,
// k ~ Uniform{1..max(1, len1/3)}, each overwriting a uniformly chosen
// position with a uniformly chosen symbol (possibly the original one).
// Hamming(str1, str2) ≤ k is guaranteed; exact distance is not. In this
// mode len2 is validated but otherwise ignored: len(str2) == len1.
//
// Errors:
//   - ErrBadLength when len1 < 1 or len2 < 1 (both modes, validated
//     eagerly; no partial artifact).
//
// Complexity: O(len1 + len2) draws at most.
func (g *Generator) GeneratePair(len1, len2 int, similar bool) (string, string, error) {
	if len1 < minLength {
		return "", "", fmt.Errorf("%s: len1=%d < 1: %w", methodGeneratePair, len1, ErrBadLength)
	}
	if len2 < minLength {
		return "", "", fmt.Errorf("%s: len2=%d < 1: %w", methodGeneratePair, len2, ErrBadLength)
	}

	str1, err := g.Generate(len1)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", methodGeneratePair, err)
	}

	if !similar {
		str2, errGen := g.Generate(len2)
		if errGen != nil {
			return "", "", fmt.Errorf("%s: %w", methodGeneratePair, errGen)
		}

		return str1, str2, nil
	}

	// Bounded mutation of a copy of str1; len2 plays no role here.
	buf := []rune(str1)

	maxMutations := len1 / mutationDivisor
	if maxMutations < minMutations {
		maxMutations = minMutations
	}
	k := g.src.UniformInt(minMutations, maxMutations)

	for attempt := 0; attempt < k; attempt++ {
		idx := g.src.UniformInt(0, len1-1)
		buf[idx] = randsrc.Choice(g.src, g.alphabet)
	}

	return str1, string(buf), nil
}
