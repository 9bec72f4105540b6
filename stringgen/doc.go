// Package stringgen generates random strings over a fixed alphabet and,
// through GeneratePair, pairs of strings whose edit relationship
// (near-identical vs. independent) is a bounded, controllable parameter —
// useful for seeding approximate-matching and diff-algorithm test suites.
//
// The package offers the following key components:
//
//   - Generator: constructed with WithAlphabet (default {A,B,C}) and an
//     optional seed; the alphabet must be non-empty and this is enforced
//     at construction, never deferred to generation time.
//   - Generate(length): length independent uniform draws, in order.
//   - GeneratePair(len1, len2, similar): two independent strings, or —
//     when similar — a string and a bounded mutation of it.
//
// Similarity model:
//
//	str2 starts as a copy of str1; a mutation count k is drawn uniformly
//	from {1, …, max(1, len1/3)} and k mutation attempts each overwrite a
//	uniformly chosen position with a uniformly chosen symbol. A redraw
//	may reproduce the original symbol, so k bounds *attempts*, not
//	guaranteed distinct changes: the Hamming distance between the two
//	strings is ≤ k, possibly less.
//
// Documented quirk (preserved deliberately): in similar mode len2 is
// validated but has no effect on the output — str2 always has length
// len1. Callers that need honored len2 must use similar=false.
package stringgen
