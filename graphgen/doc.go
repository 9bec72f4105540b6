// Package graphgen generates random sparse graphs for algorithm test
// suites: configurable directedness and edge weighting under a fixed
// Bernoulli sparsity rule.
//
// The package offers the following key components:
//
//   - Generator: constructed once with WithDirected / WithUnweighted /
//     WithSeed, then invoked via Generate(size).
//   - Graph: the produced artifact — an immutable-after-build value with
//     exactly size nodes labeled 0..size-1 and a deterministic edge order.
//
// Sampling model (Erdős–Rényi-like):
//
//	Every unordered pair {i,j} with i < j undergoes one independent
//	Bernoulli trial with probability 0.3; accepted edges carry a weight
//	drawn uniformly from [1,10] (or the unit weight 1 when the generator
//	is unweighted). The expected edge count is O(size²·0.3).
//
// Guarantees:
//
//   - No self-loops and no duplicate edges, enforced both by the trial
//     order and by the Graph container.
//   - Directed graphs only ever receive i→j edges with i < j: the output
//     has no 2-cycles and is a DAG consistent with the index ordering.
//     This is a structural contract, not an artifact of the sampler.
//   - Determinism: fixed seed + fixed size ⇒ identical edge sets and
//     weights, thanks to the stable (i asc, j asc) trial order.
//   - Negative size is rejected with ErrBadSize; size 0 yields the empty
//     graph.
package graphgen
