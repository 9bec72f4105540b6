// Package randsrc provides the seedable entropy abstraction shared by all
// datagen generators: uniform integer draws, normal (Gaussian) samples,
// Bernoulli trials, and uniform element choice.
//
// The package offers the following key components:
//
//   - Source: a mutex-guarded wrapper around *rand.Rand, safe for use by
//     concurrent callers sharing one stream.
//   - Options: WithSeed(seed) for reproducible runs, WithRand(r) to supply
//     a caller-owned stream. Without either, Source seeds from the wall
//     clock (diverse, non-reproducible draws).
//
// Guarantees:
//
//   - Determinism: two Sources built with the same seed produce identical
//     draw sequences for identical call sequences.
//   - Concurrency: every draw holds an internal mutex; sharing one Source
//     across goroutines is safe, though per-caller seeded Sources remain
//     the recommended pattern for reproducible concurrent tests.
//   - Domain violations (UniformInt with high < low, Choice on an empty
//     slice) are programmer errors and panic, mirroring math/rand.Intn;
//     generators validate their inputs before drawing.
//
// Not cryptographically secure: draws come from math/rand and target
// statistical plausibility only.
package randsrc
