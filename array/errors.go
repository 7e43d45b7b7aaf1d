// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the array
// package and re-exported by the kernels built on top of it (linalg, fourier).
// All operations MUST return these sentinels (optionally wrapped with %w) and
// tests MUST check them via errors.Is. No operation panics on user input.

package array

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "array: ..." so logs can be grepped by
// package. Call sites wrap with method context, e.g.
// fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrIndexOutOfRange).
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/range -> dimension/shape mismatch -> type mismatch -> read-only.

var (
	// ErrInvalidShape is returned when a requested shape has a negative dimension.
	ErrInvalidShape = errors.New("array: invalid shape")

	// ErrIndexOutOfRange indicates that a row or column index is outside [0, rows) or [0, cols).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("array: index out of range")

	// ErrInvalidRange signals that a requested view window exceeds the source shape.
	ErrInvalidRange = errors.New("array: invalid range")

	// ErrDimensionMismatch indicates that a size precondition was violated, e.g.
	// a literal buffer whose length differs from rows*cols, a ragged row set, or
	// MatMul with a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("array: dimension mismatch")

	// ErrShapeMismatch indicates an element-wise operation between arrays of different shapes.
	ErrShapeMismatch = errors.New("array: shape mismatch")

	// ErrTypeMismatch signals an implicit narrowing conversion (complex -> real, real -> int).
	ErrTypeMismatch = errors.New("array: type mismatch")

	// ErrReadOnly is returned by Set/Apply on a frozen array or any view of one.
	ErrReadOnly = errors.New("array: read-only array")

	// ErrDivideByZero is returned by integer division when a divisor element is zero.
	// Floating-point division follows IEEE-754 and never reports it.
	ErrDivideByZero = errors.New("array: integer division by zero")

	// ErrNaNInf signals a NaN or ±Inf element where finite values are required.
	ErrNaNInf = errors.New("array: NaN or Inf element")

	// ErrNilArray indicates that a nil array (receiver or argument) was used.
	ErrNilArray = errors.New("array: nil array")
)
