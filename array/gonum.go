// SPDX-License-Identifier: MIT

package array

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToMat copies a float64 array into a gonum *mat.Dense.
// gonum has no representation for zero-length dimensions, so an empty
// array maps to the zero-value mat.Dense (Dims() == 0, 0).
func ToMat(a Array[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("ToMat: %w", err)
	}
	r, c := a.Shape()
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}

	return mat.NewDense(r, c, materialize(a).data), nil
}

// FromMat copies any gonum matrix into a new owned array.
func FromMat(m mat.Matrix) (*Dense[float64], error) {
	if m == nil {
		return nil, fmt.Errorf("FromMat: %w", ErrNilArray)
	}
	r, c := m.Dims()
	out := newDense[float64](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}

	return out, nil
}
