// SPDX-License-Identifier: MIT
// Package fourier implements the discrete Fourier transform pair over
// complex vectors held in arrays.
//
// Purpose:
//   - FFT/IFFT accept 1×n or n×1 arrays (n >= 1) and return a fresh array of the same
//     shape; the input is never mutated.
//   - Power-of-two lengths use an iterative radix-2 Cooley–Tukey transform
//     (or an algo-fft plan with BackendPlanned); other lengths use the
//     direct O(n²) sum, split over output bins across workers.
//   - The inverse is conj(FFT(conj(x)))/n on every path.
//
// Determinism:
//   - Each output bin is summed in fixed input order by exactly one worker,
//     so results do not depend on the worker count.

package fourier

import (
	"fmt"
	"math/cmplx"

	"github.com/isaksamsten/briljant-sub012/array"
)

// Operation name constants for unified error wrapping.
const (
	opFFT      = "FFT"
	opIFFT     = "IFFT"
	opFFTReal  = "FFTReal"
	opConvolve = "Convolve"
)

func fourierErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FFT computes X[k] = Σ_j x[j]·exp(-2πi·jk/n) for a vector x.
// Errors: ErrNilArray, ErrEmptyInput (zero elements), ErrDimensionMismatch (not a vector).
// Complexity: O(n log n) for power-of-two n, O(n²) otherwise.
func FFT(x array.Array[complex128], opts ...Option) (*array.Dense[complex128], error) {
	buf, err := vectorData(opFFT, x)
	if err != nil {
		return nil, err
	}
	if err = forward(buf, gatherOptions(opts...)); err != nil {
		return nil, fourierErrorf(opFFT, err)
	}

	return shaped(x, buf), nil
}

// IFFT computes the inverse transform conj(FFT(conj(x)))/n.
// Errors: ErrNilArray, ErrDimensionMismatch, ErrEmptyInput.
func IFFT(x array.Array[complex128], opts ...Option) (*array.Dense[complex128], error) {
	buf, err := vectorData(opIFFT, x)
	if err != nil {
		return nil, err
	}
	if err = inverse(buf, gatherOptions(opts...)); err != nil {
		return nil, fourierErrorf(opIFFT, err)
	}

	return shaped(x, buf), nil
}

// FFTReal widens a real vector to complex and transforms it.
func FFTReal(x array.Array[float64], opts ...Option) (*array.Dense[complex128], error) {
	if err := array.ValidateNotNil(x); err != nil {
		return nil, fourierErrorf(opFFTReal, err)
	}
	z, err := array.Convert[complex128](x)
	if err != nil {
		return nil, fourierErrorf(opFFTReal, err)
	}

	return FFT(z, opts...)
}

// forward transforms buf in place.
func forward(buf []complex128, o Options) error {
	n := len(buf)
	if !isPowerOfTwo(n) {
		copy(buf, dft(buf, o))
		return nil
	}
	if o.backend == BackendPlanned {
		return plannedForward(buf)
	}
	radix2(buf)

	return nil
}

// inverse transforms buf in place via the conjugation identity.
func inverse(buf []complex128, o Options) error {
	for i, v := range buf {
		buf[i] = cmplx.Conj(v)
	}
	if err := forward(buf, o); err != nil {
		return err
	}
	scale := complex(1/float64(len(buf)), 0)
	for i, v := range buf {
		buf[i] = cmplx.Conj(v) * scale
	}

	return nil
}

// vectorData validates x and returns a private copy of its elements.
// Any zero-area input is empty, whatever its orientation.
func vectorData(tag string, x array.Array[complex128]) ([]complex128, error) {
	if err := array.ValidateNotNil(x); err != nil {
		return nil, fourierErrorf(tag, err)
	}
	if x.Rows()*x.Cols() == 0 {
		return nil, fourierErrorf(tag, fmt.Errorf("%dx%d: %w", x.Rows(), x.Cols(), ErrEmptyInput))
	}
	if _, err := array.ValidateVector(x); err != nil {
		return nil, fourierErrorf(tag, err)
	}

	return array.Flatten(x), nil
}

// shaped wraps buf in an array with x's shape.
func shaped(x array.Array[complex128], buf []complex128) *array.Dense[complex128] {
	out, _ := array.FromSlice(x.Rows(), x.Cols(), buf) // len(buf) == rows*cols

	return out
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }
