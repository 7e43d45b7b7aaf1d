// SPDX-License-Identifier: MIT

package fourier

import (
	"errors"

	"github.com/isaksamsten/briljant-sub012/array"
)

var (
	// ErrEmptyInput is returned when a transform receives a zero-length vector.
	ErrEmptyInput = errors.New("fourier: empty input")

	// ErrDimensionMismatch reports an input that is not a 1×n or n×1 vector.
	ErrDimensionMismatch = array.ErrDimensionMismatch

	// ErrShapeMismatch reports convolution operands of different lengths.
	ErrShapeMismatch = array.ErrShapeMismatch

	// ErrNilArray reports a nil input array.
	ErrNilArray = array.ErrNilArray
)
