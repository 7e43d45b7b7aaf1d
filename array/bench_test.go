// SPDX-License-Identifier: MIT
// Package array_test provides benchmarks for the element-wise and product
// kernels, using deterministic random fill.
package array_test

import (
	"fmt"
	"testing"

	"github.com/isaksamsten/briljant-sub012/array"
)

// benchSizes are the square sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var sinkA *array.Dense[float64]

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, n, 1337)
			y := randDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := array.Add[float64](x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = m
			}
		})
	}
}

func BenchmarkAddStrided(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, n, 1337)
			y := randDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := array.Add[float64](x.T(), y.T())
				if err != nil {
					b.Fatal(err)
				}
				sinkA = m
			}
		})
	}
}

func BenchmarkMatMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, n, 1)
			y := randDense(b, n, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := array.MatMul[float64](x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = m
			}
		})
	}
}
