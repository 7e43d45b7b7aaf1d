// SPDX-License-Identifier: MIT
package linalg_test

import (
	"fmt"
	"testing"

	"github.com/isaksamsten/briljant-sub012/array"
	"github.com/isaksamsten/briljant-sub012/linalg"
)

var (
	sinkLU  *linalg.LU
	sinkInv *array.Dense[float64]
)

func BenchmarkDecompose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randSquare(b, n, 42)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				lu, err := linalg.Decompose(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkLU = lu
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randSquare(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := linalg.Inverse(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkInv = inv
			}
		})
	}
}
