// Package seqgen provides the simple scalar generators of the datagen
// toolkit: linear integer ramps, uniform integer sequences, Gaussian
// sample arrays, and single bounded (or fixed) numbers.
//
// These are deliberately thin wrappers over randsrc — the structurally
// interesting generators live in graphgen and stringgen — but they share
// the same discipline: parameters are validated at construction, fixed
// afterward, and every variant is seedable via WithSeed/WithSource for
// reproducible fixtures.
//
//   - Linear:    Generate(size) → []int{1, …, size}
//   - RandomInt: Generate(size) → size uniform draws in [low, high]
//   - Gaussian:  Generate(size) → size samples from N(mean, std)
//   - Number:    Generate(size) → one uniform draw in [low, high]
//     (size is ignored; WithFixed pins the value outright)
package seqgen
