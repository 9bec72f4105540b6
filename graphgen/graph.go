// SPDX-License-Identifier: MIT
// Package: datagen/graphgen
//
// graph.go - the Graph artifact produced by Generate.
//
// Model:
//   - Nodes are the dense integer range 0..NodeCount()-1; no vertex
//     catalog is stored because labels are implied by the contract.
//   - Edges live in a slice (insertion order, which Generate keeps
//     stable) plus a pair index used to reject duplicates.
//   - The artifact is immutable once Generate returns: all mutation goes
//     through the package-private addEdge.

package graphgen

// Edge is a single connection (U, V, Weight) in a generated Graph.
// For directed graphs the edge points U→V; the generator guarantees
// U < V either way.
type Edge struct {
	// U is the lower-indexed endpoint.
	U int

	// V is the higher-indexed endpoint.
	V int

	// Weight is 1 for unweighted graphs, else uniform in [1,10].
	Weight int64
}

// pairKey canonicalizes an edge's endpoints for duplicate detection.
// Undirected graphs store the unordered pair as (min,max).
type pairKey struct {
	u, v int
}

// Graph is the generated artifact: a fixed node range plus an edge set.
// Created fresh on every Generate call; safe to share between readers.
type Graph struct {
	directed bool
	weighted bool

	nodes int                  // node labels are 0..nodes-1
	edges []Edge               // stable insertion order
	index map[pairKey]struct{} // duplicate guard
}

// newGraph allocates an empty container for the chosen directedness and
// weight policy with nodes 0..n-1 already present.
// Complexity: O(1) beyond map allocation.
func newGraph(directed, weighted bool, n int) *Graph {
	return &Graph{
		directed: directed,
		weighted: weighted,
		nodes:    n,
		index:    make(map[pairKey]struct{}),
	}
}

// key returns the canonical pair key for (u,v) under the graph's
// directedness: ordered for directed graphs, sorted for undirected.
func (g *Graph) key(u, v int) pairKey {
	if !g.directed && u > v {
		u, v = v, u
	}

	return pairKey{u: u, v: v}
}

// addEdge inserts the edge u→v (u—v when undirected) with weight w.
// Returns ErrSelfLoop, ErrNodeOutOfRange or ErrDuplicateEdge on
// contract violations; the sampler's trial order makes these
// unreachable in practice, but the container does not rely on that.
// Complexity: O(1).
func (g *Graph) addEdge(u, v int, w int64) error {
	if u == v {
		return ErrSelfLoop
	}
	if u < 0 || u >= g.nodes || v < 0 || v >= g.nodes {
		return ErrNodeOutOfRange
	}

	k := g.key(u, v)
	if _, dup := g.index[k]; dup {
		return ErrDuplicateEdge
	}

	g.index[k] = struct{}{}
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})

	return nil
}

// Directed reports whether edges carry an orientation.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edge weights were drawn from [1,10]
// (true) or fixed at the unit weight (false).
func (g *Graph) Weighted() bool { return g.weighted }

// NodeCount returns the number of nodes; labels are 0..NodeCount()-1.
func (g *Graph) NodeCount() int { return g.nodes }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a defensive copy of the edge set in generation order
// (i asc, then j asc), so two graphs from the same seed compare equal
// slice-for-slice.
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdge reports whether an edge connects u and v. Directed graphs
// match the orientation u→v exactly; undirected graphs match the
// unordered pair.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.nodes || v < 0 || v >= g.nodes || u == v {
		return false
	}
	_, ok := g.index[g.key(u, v)]

	return ok
}
