// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here; linalg and
//    fourier call the exported validators so guard semantics never drift.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package array

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsNil reports whether a is a nil interface or a typed nil *Dense / *View.
func IsNil[T Element](a Array[T]) bool {
	switch x := a.(type) {
	case nil:
		return true
	case *Dense[T]:
		return x == nil
	case *View[T]:
		return x == nil || x.base == nil
	}

	return false
}

// ValidateNotNil ensures the array reference is non-nil.
// Returns ErrNilArray for a nil interface and for typed nil pointers.
func ValidateNotNil[T Element](a Array[T]) error {
	if IsNil(a) {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Returns ErrNilArray or ErrShapeMismatch.
func ValidateSameShape[T Element](a, b Array[T]) error {
	if IsNil(a) || IsNil(b) {
		return validatorErrorf("ValidateSameShape", ErrNilArray)
	}
	ar, ac := shapeOf(a)
	br, bc := shapeOf(b)
	if ar != br || ac != bc {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", ar, ac, br, bc), ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare checks that a is non-nil and square (Rows == Cols).
// Errors: ErrNilArray if nil, ErrDimensionMismatch if not square.
func ValidateSquare[T Element](a Array[T]) error {
	if IsNil(a) {
		return validatorErrorf("ValidateSquare", ErrNilArray)
	}
	if r, c := shapeOf(a); r != c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", r, c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVector checks that a is non-nil and has a single row or column.
// Returns the vector length on success; ErrDimensionMismatch otherwise.
func ValidateVector[T Element](a Array[T]) (int, error) {
	if IsNil(a) {
		return 0, validatorErrorf("ValidateVector", ErrNilArray)
	}
	r, c := shapeOf(a)
	switch {
	case r == 1:
		return c, nil
	case c == 1:
		return r, nil
	}

	return 0, validatorErrorf(fmt.Sprintf("ValidateVector: %dx%d", r, c), ErrDimensionMismatch)
}

// ValidateFinite checks that a is non-nil and holds no NaN or ±Inf.
// The first offending element, in row-major order, is named in the error.
// Errors: ErrNilArray, ErrNaNInf.
func ValidateFinite(a Array[float64]) error {
	if IsNil(a) {
		return validatorErrorf("ValidateFinite", ErrNilArray)
	}
	var bad error
	visit(a, func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = validatorErrorf(fmt.Sprintf("ValidateFinite: (%d,%d)=%v", i, j, v), ErrNaNInf)
			return false
		}
		return true
	})

	return bad
}
