package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/datagen/graphgen"
	"github.com/katalvlaran/datagen/registry"
	"github.com/katalvlaran/datagen/seqgen"
	"github.com/katalvlaran/datagen/stringgen"
)

// TestRegisterAndGet verifies the basic bind/lookup cycle and the
// last-wins replacement semantics.
func TestRegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	first := registry.GeneratorFunc(func(int) (any, error) { return "first", nil })
	second := registry.GeneratorFunc(func(int) (any, error) { return "second", nil })

	require.NoError(t, reg.Register("s", first))
	g, err := reg.Get("s")
	require.NoError(t, err)
	v, err := g.Generate(0)
	require.NoError(t, err)
	require.Equal(t, "first", v)

	// Re-registering replaces the binding.
	require.NoError(t, reg.Register("s", second))
	g, err = reg.Get("s")
	require.NoError(t, err)
	v, err = g.Generate(0)
	require.NoError(t, err)
	require.Equal(t, "second", v)
}

// TestNotFound verifies lookup of an absent name fails with ErrNotFound.
func TestNotFound(t *testing.T) {
	t.Parallel()

	g, err := registry.New().Get("missing")
	require.Nil(t, g)
	require.True(t, errors.Is(err, registry.ErrNotFound))
}

// TestRegisterValidation verifies rejection of empty names and nil
// generators.
func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	noop := registry.GeneratorFunc(func(int) (any, error) { return nil, nil })

	require.True(t, errors.Is(reg.Register("", noop), registry.ErrBadName))
	require.True(t, errors.Is(reg.Register("x", nil), registry.ErrNilGenerator))
}

// TestNames verifies the sorted listing of registered names.
func TestNames(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	noop := registry.GeneratorFunc(func(int) (any, error) { return nil, nil })
	for _, name := range []string{"graph", "string", "linear"} {
		require.NoError(t, reg.Register(name, noop))
	}

	require.Equal(t, []string{"graph", "linear", "string"}, reg.Names())
}

// TestTypedGeneratorsThroughRegistry wires real typed generators through
// GeneratorFunc adapters and checks the artifacts survive the round
// trip — the toolkit's single public contract end to end.
func TestTypedGeneratorsThroughRegistry(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	gg := graphgen.New(graphgen.WithDirected(), graphgen.WithSeed(42))
	require.NoError(t, reg.Register("graph", registry.GeneratorFunc(func(size int) (any, error) {
		return gg.Generate(size)
	})))

	sg, err := stringgen.New(stringgen.WithAlphabetString("ACGT"), stringgen.WithSeed(42))
	require.NoError(t, err)
	require.NoError(t, reg.Register("string", registry.GeneratorFunc(func(size int) (any, error) {
		return sg.Generate(size)
	})))

	lin := seqgen.NewLinear()
	require.NoError(t, reg.Register("linear", registry.GeneratorFunc(func(size int) (any, error) {
		return lin.Generate(size)
	})))

	// Graph artifact round trip.
	g, err := reg.Get("graph")
	require.NoError(t, err)
	artifact, err := g.Generate(5)
	require.NoError(t, err)
	graph, ok := artifact.(*graphgen.Graph)
	require.True(t, ok, "expected *graphgen.Graph, got %T", artifact)
	require.Equal(t, 5, graph.NodeCount())

	// String artifact round trip.
	g, err = reg.Get("string")
	require.NoError(t, err)
	artifact, err = g.Generate(10)
	require.NoError(t, err)
	str, ok := artifact.(string)
	require.True(t, ok, "expected string, got %T", artifact)
	require.Len(t, str, 10)

	// Linear artifact round trip, and generator errors pass through.
	g, err = reg.Get("linear")
	require.NoError(t, err)
	artifact, err = g.Generate(3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, artifact)

	_, err = g.Generate(-1)
	require.True(t, errors.Is(err, seqgen.ErrBadSize))
}
