// SPDX-License-Identifier: MIT

package sampling

import "errors"

var (
	// ErrInvalidSampleSize is returned when n<0, k<0, k>n, or n exceeds the
	// int32 index range of the output array.
	ErrInvalidSampleSize = errors.New("sampling: invalid sample size")

	// ErrNilSource indicates that a nil random source was supplied.
	ErrNilSource = errors.New("sampling: nil random source")

	// ErrInvalidFraction indicates a split fraction outside [0, 1] or NaN.
	ErrInvalidFraction = errors.New("sampling: invalid fraction")
)
