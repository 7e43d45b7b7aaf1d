// SPDX-License-Identifier: MIT
package sampling_test

import (
	"fmt"

	"github.com/isaksamsten/briljant-sub012/sampling"
)

// ExampleWithoutReplacementSeed draws five distinct indices out of ten.
func ExampleWithoutReplacementSeed() {
	idx, _ := sampling.WithoutReplacementSeed(10, 5, 123)
	fmt.Println(idx.Data())
	// Output:
	// [2 6 9 3 7]
}

// ExampleSplit holds out 30% of ten rows for testing.
func ExampleSplit() {
	train, test, _ := sampling.Split(10, 0.3, sampling.NewLCG(42))
	fmt.Println("test: ", test.Data())
	fmt.Println("train:", train.Data())
	// Output:
	// test:  [4 6 2]
	// train: [1 7 9 8 5 3 0]
}
