package stringgen_test

import (
	"fmt"

	"github.com/katalvlaran/datagen/stringgen"
)

// ExampleGenerator_GeneratePair draws a near-identical DNA-style pair
// with a pinned seed and shows the guarantees that hold for any seed:
// both strings have length len1 and differ in at most len1/3 positions.
func ExampleGenerator_GeneratePair() {
	gen, err := stringgen.New(
		stringgen.WithAlphabetString("ACGT"),
		stringgen.WithSeed(42),
	)
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	str1, str2, err := gen.GeneratePair(10, 12, true)
	if err != nil {
		fmt.Println("pair:", err)
		return
	}

	diff := 0
	for i := range str1 {
		if str1[i] != str2[i] {
			diff++
		}
	}

	fmt.Println("len1:", len(str1))
	fmt.Println("len2 equals len1:", len(str2) == len(str1))
	fmt.Println("within bound:", diff <= 3)
	// Output:
	// len1: 10
	// len2 equals len1: true
	// within bound: true
}
