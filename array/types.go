// SPDX-License-Identifier: MIT

// Package array: element constraint and the shared Array surface.
// This file intentionally contains ONLY the domain-facing types; storage lives
// in dense.go (owned buffers) and view.go (non-owning windows).
package array

// Element is the closed set of numeric kinds an Array can hold.
// Kernels that are type-specific (LU, FFT) are written against float64 and
// complex128 only; int32 exists for index vectors such as sampler output.
type Element interface {
	int32 | float64 | complex128
}

// Array is the read/write surface shared by owned (*Dense) and non-owning
// (*View) arrays. The interface is closed: the unexported methods keep
// implementations inside this package so every Array honors the same bounds
// and read-only policy.
//
// Complexity notes: all methods are O(1) except Copy (O(rows*cols)).
type Array[T Element] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Shape packs Rows() and Cols().
	Shape() (rows, cols int)

	// At retrieves the element at (i, j).
	// Returns ErrIndexOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns v at (i, j).
	// Returns ErrIndexOutOfRange on invalid indices and ErrReadOnly on frozen storage.
	Set(i, j int, v T) error

	// Copy returns a deep, independent and writable duplicate.
	Copy() *Dense[T]

	// View returns a non-owning window [r0:r0+rows, c0:c0+cols).
	// Returns ErrInvalidRange when the window exceeds the shape.
	View(r0, c0, rows, cols int) (*View[T], error)

	// ReadOnly reports whether writes are rejected.
	ReadOnly() bool

	// get reads (i, j) without bounds checks; callers guarantee validity.
	get(i, j int) T

	// contiguous exposes the row-major backing slice when the layout is dense.
	contiguous() ([]T, bool)
}

// shapeOf returns a non-nil array's dimensions; used by validators.
func shapeOf[T Element](a Array[T]) (int, int) { return a.Rows(), a.Cols() }
