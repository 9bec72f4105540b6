// SPDX-License-Identifier: MIT
// Package: datagen/registry
//
// registry.go - the Generator contract and the keyed catalog.
//
// Contract:
//   - Register: name must be non-empty, generator non-nil; re-registering
//     a name replaces the entry (last wins).
//   - Get: absent names fail with ErrNotFound wrapped with the name.
//   - All operations are safe for concurrent use (RWMutex).

package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for registry operations.
var (
	// ErrNotFound indicates a lookup for an unregistered name.
	ErrNotFound = errors.New("registry: generator not found")

	// ErrBadName indicates registration under an empty name.
	ErrBadName = errors.New("registry: empty generator name")

	// ErrNilGenerator indicates registration of a nil generator.
	ErrNilGenerator = errors.New("registry: nil generator")
)

// Generator is the uniform capability every datagen variant exposes:
// produce one artifact for a requested size. The artifact's concrete
// type is variant-specific (sequence, sample array, scalar, string, or
// graph); callers assert the type they registered.
type Generator interface {
	Generate(size int) (any, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface,
// in the manner of http.HandlerFunc.
type GeneratorFunc func(size int) (any, error)

// Generate calls f(size).
func (f GeneratorFunc) Generate(size int) (any, error) { return f(size) }

// Registry is a thread-safe name → Generator catalog.
// The zero value is not usable; construct with New.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
}

// New constructs an empty Registry.
// Complexity: O(1).
func New() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

// Register binds name to g, replacing any previous binding.
//
// Errors:
//   - ErrBadName for an empty name.
//   - ErrNilGenerator for a nil generator.
//
// Complexity: O(1).
func (r *Registry) Register(name string, g Generator) error {
	if name == "" {
		return fmt.Errorf("Register: %w", ErrBadName)
	}
	if g == nil {
		return fmt.Errorf("Register: %q: %w", name, ErrNilGenerator)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[name] = g

	return nil
}

// Get returns the generator bound to name.
//
// Errors:
//   - ErrNotFound when name is absent.
//
// Complexity: O(1).
func (r *Registry) Get(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("Get: %q: %w", name, ErrNotFound)
	}

	return g, nil
}

// Names returns the registered names in sorted order, handy for stable
// diagnostics and CLI listings.
// Complexity: O(n log n).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.generators))
	for name := range r.generators {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
