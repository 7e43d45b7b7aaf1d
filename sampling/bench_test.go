// SPDX-License-Identifier: MIT
package sampling_test

import (
	"fmt"
	"testing"

	"github.com/isaksamsten/briljant-sub012/array"
	"github.com/isaksamsten/briljant-sub012/sampling"
)

var sinkIdx *array.Dense[int32]

func BenchmarkWithoutReplacement(b *testing.B) {
	b.ReportAllocs()
	for _, tc := range []struct{ n, k int }{{1 << 10, 1 << 9}, {1 << 20, 64}, {1 << 16, 1 << 16}} {
		b.Run(fmt.Sprintf("n=%d/k=%d", tc.n, tc.k), func(b *testing.B) {
			src := sampling.NewLCG(1)
			for i := 0; i < b.N; i++ {
				idx, err := sampling.WithoutReplacement(tc.n, tc.k, src)
				if err != nil {
					b.Fatal(err)
				}
				sinkIdx = idx
			}
		})
	}
}

func BenchmarkLCG_IntN(b *testing.B) {
	src := sampling.NewLCG(1)
	s := 0
	for i := 0; i < b.N; i++ {
		s += src.IntN(1000)
	}
	_ = s
}
