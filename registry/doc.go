// Package registry provides name → generator lookup behind the one
// uniform contract every datagen variant satisfies:
//
//	Generate(size int) (any, error)
//
// Typed generators (graphgen, stringgen, seqgen) keep their typed APIs
// and register through the GeneratorFunc adapter:
//
//	reg := registry.New()
//	gg := graphgen.New(graphgen.WithDirected(), graphgen.WithSeed(42))
//	_ = reg.Register("graph", registry.GeneratorFunc(func(size int) (any, error) {
//		return gg.Generate(size)
//	}))
//
// The registry performs no validation of generator behavior — it is a
// thread-safe keyed catalog, nothing more. Lookup of an absent name
// fails with ErrNotFound; registration under an existing name replaces
// the previous entry (last wins).
package registry
