// SPDX-License-Identifier: MIT

package fourier

import (
	"fmt"

	"github.com/isaksamsten/briljant-sub012/array"
)

// Convolve returns the circular convolution of two equal-length complex
// vectors, (x ⊛ y)[k] = Σ_j x[j]·y[(k-j) mod n], computed as
// IFFT(FFT(x)·FFT(y)). The result has x's shape.
//
// Errors: ErrNilArray, ErrDimensionMismatch, ErrEmptyInput, ErrShapeMismatch
// (lengths differ).
func Convolve(x, y array.Array[complex128], opts ...Option) (*array.Dense[complex128], error) {
	xs, err := vectorData(opConvolve, x)
	if err != nil {
		return nil, err
	}
	ys, err := vectorData(opConvolve, y)
	if err != nil {
		return nil, err
	}
	if len(xs) != len(ys) {
		return nil, fourierErrorf(opConvolve, fmt.Errorf("lengths %d and %d: %w", len(xs), len(ys), ErrShapeMismatch))
	}

	o := gatherOptions(opts...)
	if err = forward(xs, o); err != nil {
		return nil, fourierErrorf(opConvolve, err)
	}
	if err = forward(ys, o); err != nil {
		return nil, fourierErrorf(opConvolve, err)
	}
	for i := range xs {
		xs[i] *= ys[i]
	}
	if err = inverse(xs, o); err != nil {
		return nil, fourierErrorf(opConvolve, err)
	}

	return shaped(x, xs), nil
}
