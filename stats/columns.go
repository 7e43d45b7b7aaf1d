// SPDX-License-Identifier: MIT

package stats

import (
	"github.com/isaksamsten/briljant-sub012/array"
	"github.com/isaksamsten/briljant-sub012/internal/parallel"
)

// columnsParallelThreshold is the element count above which columns are
// summarized concurrently.
const columnsParallelThreshold = 1 << 16

// Columns summarizes each column of a, adding rows top to bottom.
// A nil array yields nil. Every column is one sequential reduction, so the
// result does not depend on how columns are spread over goroutines.
//
// Complexity: O(rows*cols) time, O(rows*cols) for the working copy.
func Columns(a array.Array[float64]) []Running {
	if array.IsNil(a) {
		return nil
	}
	rows, cols := a.Shape()
	out := make([]Running, cols)
	data := array.Flatten(a)

	workers := 1
	if rows*cols >= columnsParallelThreshold {
		workers = parallel.Workers(0)
	}
	parallel.Range(cols, workers, 1, func(start, end int) {
		for i := 0; i < rows; i++ {
			row := data[i*cols : (i+1)*cols]
			for j := start; j < end; j++ {
				out[j].Add(row[j])
			}
		}
	})

	return out
}
