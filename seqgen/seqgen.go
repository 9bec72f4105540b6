// SPDX-License-Identifier: MIT
// Package: datagen/seqgen
//
// seqgen.go - the four scalar generator variants.
//
// Contract:
//   - Construction validates domains (high ≥ low, std ≥ 0) and fails
//     with ErrBadRange; parameters are immutable afterward.
//   - Sequence variants accept size ≥ 0 (0 → empty slice); negative
//     size is ErrBadSize. Number ignores size by documented contract.
//   - Returns only sentinel errors; never panics at runtime.

package seqgen

import (
	"fmt"

	"github.com/katalvlaran/datagen/randsrc"
)

const (
	// rampStart is the first value of a Linear ramp.
	rampStart = 1
)

// Linear generates the deterministic ramp 1..size. It consumes no
// entropy; it exists so algorithm suites can request "sorted input"
// through the same registry contract as the stochastic variants.
type Linear struct{}

// NewLinear constructs a Linear generator.
func NewLinear() *Linear { return &Linear{} }

// Generate returns []int{1, …, size}. Size 0 yields an empty slice;
// negative size is ErrBadSize.
// Complexity: O(size).
func (l *Linear) Generate(size int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("Linear.Generate: size=%d < 0: %w", size, ErrBadSize)
	}

	out := make([]int, size)
	for i := range out {
		out[i] = rampStart + i
	}

	return out, nil
}

// RandomInt generates sequences of uniform integers in [low, high].
type RandomInt struct {
	low, high int
	src       *randsrc.Source
}

// NewRandomInt constructs a RandomInt generator over the inclusive
// range [low, high]. Fails with ErrBadRange when high < low.
func NewRandomInt(low, high int, opts ...Option) (*RandomInt, error) {
	if high < low {
		return nil, fmt.Errorf("NewRandomInt: high=%d < low=%d: %w", high, low, ErrBadRange)
	}
	cfg := newConfig(opts...)

	return &RandomInt{low: low, high: high, src: cfg.src}, nil
}

// Generate returns size independent uniform draws from [low, high].
// Complexity: O(size).
func (r *RandomInt) Generate(size int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("RandomInt.Generate: size=%d < 0: %w", size, ErrBadSize)
	}

	out := make([]int, size)
	for i := range out {
		out[i] = r.src.UniformInt(r.low, r.high)
	}

	return out, nil
}

// Gaussian generates float samples from the normal distribution
// N(mean, std).
type Gaussian struct {
	mean, std float64
	src       *randsrc.Source
}

// NewGaussian constructs a Gaussian generator. Fails with ErrBadRange
// when std < 0; std 0 degenerates to the constant mean.
func NewGaussian(mean, std float64, opts ...Option) (*Gaussian, error) {
	if std < 0 {
		return nil, fmt.Errorf("NewGaussian: std=%g < 0: %w", std, ErrBadRange)
	}
	cfg := newConfig(opts...)

	return &Gaussian{mean: mean, std: std, src: cfg.src}, nil
}

// Generate returns size independent samples from N(mean, std).
// Complexity: O(size).
func (g *Gaussian) Generate(size int) ([]float64, error) {
	if size < 0 {
		return nil, fmt.Errorf("Gaussian.Generate: size=%d < 0: %w", size, ErrBadSize)
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = g.src.Normal(g.mean, g.std)
	}

	return out, nil
}

// Number generates a single integer per call: uniform in [low, high],
// or the pinned value when constructed WithFixed.
type Number struct {
	low, high int
	fixed     *int
	src       *randsrc.Source
}

// NewNumber constructs a Number generator over [low, high]. Fails with
// ErrBadRange when high < low unless WithFixed pins the value.
func NewNumber(low, high int, opts ...Option) (*Number, error) {
	cfg := newConfig(opts...)
	if cfg.fixed == nil && high < low {
		return nil, fmt.Errorf("NewNumber: high=%d < low=%d: %w", high, low, ErrBadRange)
	}

	return &Number{low: low, high: high, fixed: cfg.fixed, src: cfg.src}, nil
}

// Generate returns one integer. The size argument is accepted for
// contract uniformity with the other variants and ignored.
// Complexity: O(1).
func (n *Number) Generate(_ int) (int, error) {
	if n.fixed != nil {
		return *n.fixed, nil
	}

	return n.src.UniformInt(n.low, n.high), nil
}
