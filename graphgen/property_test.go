package graphgen_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/datagen/graphgen"
)

// TestGraphInvariants uses property-based testing to sweep the
// structural invariants across randomized sizes and seeds.
// These properties must ALWAYS hold for any generated graph.
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: node count equals the requested size for all size ≥ 0.
	properties.Property("node count equals size", prop.ForAll(
		func(size int, seed int64) bool {
			g, err := graphgen.New(graphgen.WithSeed(seed)).Generate(size)
			return err == nil && g.NodeCount() == size
		},
		gen.IntRange(0, 40),
		gen.Int64(),
	))

	// Property 2: every edge is loop-free, in range, unique, and weighted
	// within [1,10].
	properties.Property("edges are valid", prop.ForAll(
		func(size int, seed int64, directed bool) bool {
			opts := []graphgen.Option{graphgen.WithSeed(seed)}
			if directed {
				opts = append(opts, graphgen.WithDirected())
			}
			g, err := graphgen.New(opts...).Generate(size)
			if err != nil {
				return false
			}

			seen := make(map[[2]int]bool)
			for _, e := range g.Edges() {
				if e.U == e.V || e.U < 0 || e.V >= size {
					return false
				}
				u, v := e.U, e.V
				if u > v {
					u, v = v, u
				}
				if seen[[2]int{u, v}] {
					return false
				}
				seen[[2]int{u, v}] = true
				if e.Weight < 1 || e.Weight > 10 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 40),
		gen.Int64(),
		gen.Bool(),
	))

	// Property 3: directed output never contains a reverse arc — the
	// generated graph is a DAG consistent with the index ordering.
	properties.Property("directed output is a DAG", prop.ForAll(
		func(size int, seed int64) bool {
			g, err := graphgen.New(graphgen.WithDirected(), graphgen.WithSeed(seed)).Generate(size)
			if err != nil {
				return false
			}
			for _, e := range g.Edges() {
				if e.U >= e.V || g.HasEdge(e.V, e.U) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 40),
		gen.Int64(),
	))

	// Property 4: a fixed seed reproduces the edge set exactly.
	properties.Property("deterministic under fixed seed", prop.ForAll(
		func(size int, seed int64) bool {
			a, errA := graphgen.New(graphgen.WithSeed(seed)).Generate(size)
			b, errB := graphgen.New(graphgen.WithSeed(seed)).Generate(size)
			if errA != nil || errB != nil {
				return false
			}
			ea, eb := a.Edges(), b.Edges()
			if len(ea) != len(eb) {
				return false
			}
			for i := range ea {
				if ea[i] != eb[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 40),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
