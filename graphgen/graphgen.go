// SPDX-License-Identifier: MIT
// Package: datagen/graphgen
//
// graphgen.go - implementation of the sparse graph Generator.
//
// Canonical model:
//   - Erdős–Rényi-like sampler: include each admissible pair independently
//     with probability edgeProbability.
//   - Both modes iterate unordered pairs {i,j} with i<j; directed graphs
//     orient every accepted edge i→j, so the output is a DAG consistent
//     with the index ordering (no 2-cycles by construction).
//
// Contract:
//   - size ≥ 0 (else ErrBadSize); size 0 yields the empty graph.
//   - All size nodes exist before the first edge trial.
//   - Weight policy: uniform in [minEdgeWeight, maxEdgeWeight] when
//     weighted, else the unit weight.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: exactly size·(size-1)/2 Bernoulli trials.
//   - Space: O(1) beyond the returned artifact.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j>i.
//   - Deterministic outcomes for a fixed seed due to the fixed order.

package graphgen

import (
	"fmt"

	"github.com/katalvlaran/datagen/randsrc"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodGenerate = "Generate"

	// edgeProbability is the fixed Bernoulli sparsity control: the
	// chance each candidate pair materializes as an edge.
	edgeProbability = 0.3

	// Weight domain for weighted graphs, both bounds inclusive.
	minEdgeWeight = 1
	maxEdgeWeight = 10

	// unitWeight is assigned to every edge of an unweighted graph.
	unitWeight = int64(1)
)

// Generator produces random sparse graphs. Configuration is fixed at
// construction and immutable afterward; each Generate call builds a
// fresh Graph and shares no state with other calls beyond the entropy
// stream.
type Generator struct {
	directed bool
	weighted bool
	src      *randsrc.Source
}

// New constructs a Generator. Defaults: undirected, weighted, clock-seeded
// entropy. Use WithSeed for reproducible fixtures.
// Complexity: O(len(opts)).
func New(opts ...Option) *Generator {
	cfg := newConfig(opts...)

	return &Generator{
		directed: cfg.directed,
		weighted: cfg.weighted,
		src:      cfg.src,
	}
}

// Generate samples a graph with exactly size nodes labeled 0..size-1.
// Every unordered pair {i,j}, i<j, undergoes one Bernoulli trial with
// probability 0.3 in stable (i asc, j asc) order; accepted edges carry
// a uniform weight in [1,10] (unit weight when unweighted).
//
// Errors:
//   - ErrBadSize when size < 0 (no partial artifact is returned).
//
// Determinism: fixed seed and size reproduce the edge set exactly.
// Complexity: O(size²) trials, O(size + E) result space.
func (g *Generator) Generate(size int) (*Graph, error) {
	// Validate early: negative size is a contract violation, not a clamp.
	if size < 0 {
		return nil, fmt.Errorf("%s: size=%d < 0: %w", methodGenerate, size, ErrBadSize)
	}

	// All nodes exist before any edge trial (node set is the dense range).
	out := newGraph(g.directed, g.weighted, size)

	var (
		i, j int
		w    int64
	)
	for i = 0; i < size; i++ { // stable outer order: i asc
		for j = i + 1; j < size; j++ { // inner order: j asc, j > i
			// Bernoulli trial: include the pair with fixed probability.
			if !g.src.Bernoulli(edgeProbability) {
				continue
			}

			w = unitWeight
			if g.weighted {
				w = int64(g.src.UniformInt(minEdgeWeight, maxEdgeWeight))
			}

			// i<j holds for every insertion, so directed output is a DAG.
			if err := out.addEdge(i, j, w); err != nil {
				return nil, fmt.Errorf("%s: addEdge(%d,%d,w=%d): %w", methodGenerate, i, j, w, err)
			}
		}
	}

	return out, nil
}
