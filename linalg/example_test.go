// SPDX-License-Identifier: MIT
package linalg_test

import (
	"fmt"

	"github.com/isaksamsten/briljant-sub012/array"
	"github.com/isaksamsten/briljant-sub012/linalg"
)

// ExampleDecompose factors a 2×2 matrix once and reuses the factors.
func ExampleDecompose() {
	a, _ := array.FromRows([][]float64{{4, 3}, {6, 3}})
	lu, _ := linalg.Decompose(a)
	fmt.Println(lu.Pivot(), lu.PivotSign())
	fmt.Printf("%.1f\n", lu.Determinant())

	inv, _ := lu.Inverse()
	fmt.Printf("%.3f\n", inv.Data())
	// Output:
	// [1 0] -1
	// -6.0
	// [-0.500 0.500 1.000 -0.667]
}
