package stringgen_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/datagen/stringgen"
)

// hammingDistance is the property-test twin of the suite helper,
// without testing.T plumbing.
func hammingDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return -1
	}
	d := 0
	for i := range ra {
		if ra[i] != rb[i] {
			d++
		}
	}
	return d
}

// TestPairProperties sweeps the similarity and length contracts across
// randomized lengths and seeds.
func TestPairProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property 1: similar pairs stay within the Hamming bound
	// max(1, len1/3) and str2 always has length len1.
	properties.Property("similar pair within Hamming bound", prop.ForAll(
		func(len1, len2 int, seed int64) bool {
			g, err := stringgen.New(stringgen.WithAlphabetString("ACGT"), stringgen.WithSeed(seed))
			if err != nil {
				return false
			}
			str1, str2, err := g.GeneratePair(len1, len2, true)
			if err != nil {
				return false
			}
			if len([]rune(str1)) != len1 || len([]rune(str2)) != len1 {
				return false
			}
			bound := len1 / 3
			if bound < 1 {
				bound = 1
			}
			d := hammingDistance(str1, str2)
			return d >= 0 && d <= bound
		},
		gen.IntRange(1, 60),
		gen.IntRange(1, 60),
		gen.Int64(),
	))

	// Property 2: independent pairs honor both lengths exactly.
	properties.Property("independent pair honors both lengths", prop.ForAll(
		func(len1, len2 int, seed int64) bool {
			g, err := stringgen.New(stringgen.WithSeed(seed))
			if err != nil {
				return false
			}
			str1, str2, err := g.GeneratePair(len1, len2, false)
			if err != nil {
				return false
			}
			return len([]rune(str1)) == len1 && len([]rune(str2)) == len2
		},
		gen.IntRange(1, 60),
		gen.IntRange(1, 60),
		gen.Int64(),
	))

	// Property 3: every symbol of every artifact comes from the alphabet.
	properties.Property("symbols come from the alphabet", prop.ForAll(
		func(length int, seed int64) bool {
			g, err := stringgen.New(stringgen.WithAlphabetString("XYZ"), stringgen.WithSeed(seed))
			if err != nil {
				return false
			}
			s, err := g.Generate(length)
			if err != nil {
				return false
			}
			for _, r := range s {
				if r != 'X' && r != 'Y' && r != 'Z' {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 80),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
