// SPDX-License-Identifier: MIT
// Package: datagen/graphgen
//
// errors.go — sentinel errors for the graphgen package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via `%w` wrapping; sentinels are
//     never redefined with formatted strings.
//   • Generate never panics at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package graphgen

import "errors"

// ErrBadSize indicates a negative size was passed to Generate.
// Size 0 is valid and yields the empty graph.
// Usage: if errors.Is(err, ErrBadSize) { /* fix the requested size */ }.
var ErrBadSize = errors.New("graphgen: invalid size")

// ErrSelfLoop indicates an attempt to connect a node to itself.
// The sampler never produces such a pair; the container still rejects it.
var ErrSelfLoop = errors.New("graphgen: self-loop not allowed")

// ErrDuplicateEdge indicates an attempt to insert a second edge for a
// pair that already has one (the unordered pair for undirected graphs,
// the ordered pair for directed ones).
var ErrDuplicateEdge = errors.New("graphgen: duplicate edge")

// ErrNodeOutOfRange indicates an edge endpoint outside [0, NodeCount).
var ErrNodeOutOfRange = errors.New("graphgen: node out of range")
