// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Container-level failures are re-exported from package array so a single
// errors.Is check works regardless of which layer detected the problem.

package linalg

import (
	"errors"

	"github.com/isaksamsten/briljant-sub012/array"
)

var (
	// ErrSingular is returned by Inverse and Solve when the decomposition
	// found a pivot whose magnitude does not exceed the tolerance.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrInvalidTolerance indicates a negative or NaN tolerance passed via WithTolerance.
	ErrInvalidTolerance = errors.New("linalg: invalid tolerance")

	// ErrDimensionMismatch reports a non-square input or an incompatible right-hand side.
	ErrDimensionMismatch = array.ErrDimensionMismatch

	// ErrNaNInf reports a NaN or ±Inf entry rejected by Decompose.
	ErrNaNInf = array.ErrNaNInf

	// ErrNilArray reports a nil input array.
	ErrNilArray = array.ErrNilArray
)
