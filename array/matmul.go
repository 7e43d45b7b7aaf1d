// SPDX-License-Identifier: MIT

package array

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/isaksamsten/briljant-sub012/internal/parallel"
)

// MatMul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: Validate non-nil operands and A.Cols == B.Rows.
//   - Stage 2: Pack Bᵀ once so every output entry is a dot product of two
//     contiguous rows; float64 rows use vecmath.DotProduct.
//   - Stage 3: Rows of C are split across workers; each entry is written once.
//
// Errors: ErrNilArray, ErrDimensionMismatch.
// Complexity: O(r*k*c) time, O(k*c + r*c) space.
func MatMul[T Element](a, b Array[T], opts ...Option) (*Dense[T], error) {
	if IsNil(a) || IsNil(b) {
		return nil, arrayErrorf(opMatMul, ErrNilArray)
	}
	ar, ak := a.Shape()
	br, bc := b.Shape()
	if ak != br {
		return nil, arrayErrorf(opMatMul, fmt.Errorf("%dx%d × %dx%d: %w", ar, ak, br, bc, ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)

	lhs := materialize(a)
	bt := transposeDense(b) // bc×ak, row j holds column j of B
	out := newDense[T](ar, bc)

	dot := genericDot[T]
	if _, ok := any(out.data).([]float64); ok {
		dot = func(x, y []T) T {
			return any(vecmath.DotProduct(any(x).([]float64), any(y).([]float64))).(T)
		}
	}

	// Threshold is compared against the number of multiply-adds, not outputs.
	work := ar * bc * max(ak, 1)
	workers := 1
	if work >= o.threshold {
		workers = parallel.Workers(o.workers)
	}
	err := parallel.For(ar, workers, 1, func(start, end int) error {
		for i := start; i < end; i++ {
			row := lhs.data[i*ak : (i+1)*ak]
			for j := 0; j < bc; j++ {
				out.data[i*bc+j] = dot(row, bt.data[j*ak:(j+1)*ak])
			}
		}
		return nil
	})
	if err != nil {
		return nil, arrayErrorf(opMatMul, err)
	}

	return out, nil
}

// Transpose returns a materialized transpose (fresh owned copy).
// For a no-copy transpose use Dense.T or View.T.
func Transpose[T Element](a Array[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, arrayErrorf(opTranspose, err)
	}

	return transposeDense(a), nil
}

func transposeDense[T Element](a Array[T]) *Dense[T] {
	r, c := a.Shape()
	out := newDense[T](c, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j*r+i] = a.get(i, j)
		}
	}

	return out
}

func genericDot[T Element](x, y []T) T {
	var sum T
	for k := range x {
		sum += x[k] * y[k]
	}

	return sum
}
