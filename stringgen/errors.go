// SPDX-License-Identifier: MIT
// Package: datagen/stringgen
//
// errors.go — sentinel errors for the stringgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached at call sites via %w wrapping.
//   • Generate/GeneratePair never panic; the empty-alphabet case is an
//     error from New, surfaced before any generation can happen.

package stringgen

import "errors"

// ErrEmptyAlphabet indicates construction with an alphabet of zero
// symbols. Rejected by New so generation code may assume ≥1 symbol.
// Usage: if errors.Is(err, ErrEmptyAlphabet) { /* supply symbols */ }.
var ErrEmptyAlphabet = errors.New("stringgen: alphabet is empty")

// ErrBadLength indicates a non-positive length where a positive value
// is required (Generate's length, GeneratePair's len1/len2).
// Usage: if errors.Is(err, ErrBadLength) { /* fix requested length */ }.
var ErrBadLength = errors.New("stringgen: invalid length")
