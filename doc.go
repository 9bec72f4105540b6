// Package datagen is a toolkit for producing randomized, structurally
// well-formed inputs for exercising algorithms under test — integer
// sequences, Gaussian samples, random strings, similarity-controlled
// string pairs, and random weighted graphs.
//
// 🚀 What does datagen give you?
//
//	A small, seedable, thread-safe generation stack:
//		• randsrc/   — the shared entropy abstraction (uniform ints, normals,
//		  Bernoulli trials, element choice), seedable for reproducible runs
//		• graphgen/  — sparse random graphs (directed or undirected, weighted
//		  or unit-weight) with hard structural guarantees: exact node count,
//		  no self-loops, no duplicate edges, directed output is always a DAG
//		• stringgen/ — random strings over a fixed alphabet, plus pairs whose
//		  edit relationship (near-identical vs. independent) is a bounded,
//		  controllable parameter
//		• seqgen/    — trivial scalar generators (linear ramps, uniform ints,
//		  Gaussian samples, single bounded numbers)
//		• registry/  — name → generator lookup behind one uniform
//		  Generate(size) contract
//
// ✨ Why choose datagen?
//
//   - Deterministic on demand – every generator accepts WithSeed(...) so a
//     fixture reproduces bit-for-bit across runs
//   - Fail-fast contracts – invalid sizes, lengths, and empty alphabets are
//     rejected with sentinel errors before any artifact is built
//   - Pure Go library core – no cgo, no hidden runtime deps
//
// Statistical plausibility, not cryptographic strength: the entropy stream
// targets test-input diversity and must never be used for security purposes.
package datagen
