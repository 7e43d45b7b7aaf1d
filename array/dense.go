// SPDX-License-Identifier: MIT

// Package array - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy views (View, T) and copy-based materialization (Copy).
//   - Enforce a single write policy: frozen arrays reject every write, including writes via views.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Copy: O(r*c); View/T: O(1).
package array

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
	ctxRow   = "Row"   // accessor tag
	ctxCol   = "Col"   // accessor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxApply/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrIndexOutOfRange, ErrReadOnly)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major array that owns its buffer.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - readOnly rejects writes through Set/Apply and through every view.
type Dense[T Element] struct {
	r, c     int  // row and column counts (>=0)
	data     []T  // contiguous row-major storage (len == r*c)
	readOnly bool // write guard; set once by Freeze
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Array[float64]    = (*Dense[float64])(nil)
	_ Array[complex128] = (*Dense[complex128])(nil)
	_ Array[int32]      = (*Dense[int32])(nil)
	_ fmt.Stringer      = (*Dense[float64])(nil)
)

// New creates an r×c zero-filled array using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidShape.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - Zero-sized dimensions are legal (empty arrays flow through every kernel).
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Element](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidShape)
	}

	return newDense[T](rows, cols), nil
}

// newDense allocates without validation; callers guarantee non-negative dims.
func newDense[T Element](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// FromSlice builds a rows×cols array from a row-major literal buffer.
// The buffer is copied; later writes to data do not affect the result.
// Returns ErrInvalidShape on negative dims and ErrDimensionMismatch when
// len(data) != rows*cols.
func FromSlice[T Element](rows, cols int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromSlice(%d,%d): %w", rows, cols, ErrInvalidShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice(%d,%d): len(data)=%d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	m := newDense[T](rows, cols)
	copy(m.data, data)

	return m, nil
}

// FromRows builds an array from a slice of equal-length rows.
// An empty outer slice yields a 0×0 array; ragged input yields ErrDimensionMismatch.
func FromRows[T Element](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return newDense[T](0, 0), nil
	}
	c := len(rows[0])
	m := newDense[T](len(rows), c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Identity returns the n×n identity array.
func Identity[T Element](n int) (*Dense[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrInvalidShape)
	}
	m := newDense[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = T(1)
	}

	return m, nil
}

// RowVector copies data into a 1×len(data) array.
func RowVector[T Element](data []T) *Dense[T] {
	m := newDense[T](1, len(data))
	copy(m.data, data)

	return m
}

// ColVector copies data into a len(data)×1 array.
func ColVector[T Element](data []T) *Dense[T] {
	m := newDense[T](len(data), 1)
	copy(m.data, data)

	return m
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
func (m *Dense[T]) Len() int { return len(m.data) }

// IsVector reports whether the array has a single row or a single column.
func (m *Dense[T]) IsVector() bool { return m.r == 1 || m.c == 1 }

// ReadOnly reports whether the array has been frozen.
func (m *Dense[T]) ReadOnly() bool { return m.readOnly }

// Freeze marks the array read-only. The flag is irreversible and applies to
// every view sharing this buffer. Freeze returns m for chaining.
func (m *Dense[T]) Freeze() *Dense[T] {
	m.readOnly = true

	return m
}

// indexOf computes the flat offset for (row, col) or returns ErrIndexOutOfRange.
// Returns a bare sentinel; public methods wrap with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrIndexOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Bounds are checked before the write policy, so an out-of-range write on a
// frozen array reports ErrIndexOutOfRange.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.readOnly {
		return denseErrorf(ctxSet, row, col, ErrReadOnly)
	}
	m.data[off] = v

	return nil
}

// Copy returns a deep, writable copy. The read-only flag is not inherited.
// Complexity: O(r*c) time and space.
func (m *Dense[T]) Copy() *Dense[T] {
	out := newDense[T](m.r, m.c)
	copy(out.data, m.data)

	return out
}

// Data returns a row-major copy of the elements. Writes to the returned
// slice never reach the array; mutate through Set or Apply.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight subarray referencing the owner's buffer (shared storage).
//
// Implementation:
//   - Stage 1: validate window bounds; allow zero-area.
//   - Stage 2: return View with offset = r0*cols + c0 and unit column stride.
//
// Behavior highlights:
//   - Writes via view reflect in the owner and vice versa.
//   - A view of a frozen owner is read-only.
//
// Errors:
//   - ErrInvalidRange when the window is negative or exceeds the shape.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) View(r0, c0, rows, cols int) (*View[T], error) {
	if !windowFits(m.r, m.c, r0, c0, rows, cols) {
		return nil, fmt.Errorf("Dense.View(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrInvalidRange)
	}

	return &View[T]{
		base: m,           // share storage
		off:  r0*m.c + c0, // top-left element in base
		r:    rows,        // view height
		c:    cols,        // view width
		rs:   m.c,         // row stride
		cs:   1,           // column stride
	}, nil
}

// T returns a transposed view: element (i, j) of the view is element (j, i)
// of m. No data is copied.
func (m *Dense[T]) T() *View[T] {
	return &View[T]{base: m, off: 0, r: m.c, c: m.r, rs: 1, cs: m.c}
}

// Row returns row i as a 1×cols view.
func (m *Dense[T]) Row(i int) (*View[T], error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrIndexOutOfRange)
	}

	return m.View(i, 0, 1, m.c)
}

// Col returns column j as a rows×1 view.
func (m *Dense[T]) Col(j int) (*View[T], error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrIndexOutOfRange)
	}

	return m.View(0, j, m.r, 1)
}

// Vector copies a row or column vector into a flat slice.
// Returns ErrDimensionMismatch when the array is neither 1×n nor n×1.
func (m *Dense[T]) Vector() ([]T, error) { return vectorOf[T](m) }

// String renders the array one bracketed row per line.
func (m *Dense[T]) String() string { return format[T](m) }

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) { visit[T](m, f) }

// Apply replaces every element with f(i,j,v) in row-major order.
// Returns ErrReadOnly (without touching any element) on a frozen array.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	if m.readOnly {
		return denseErrorf(ctxApply, 0, 0, ErrReadOnly)
	}
	var i, j, base int        // predeclare loop counters and base offset
	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c            // base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			m.data[base+j] = f(i, j, m.data[base+j]) // write back new value
		}
	}

	return nil
}

func (m *Dense[T]) get(i, j int) T { return m.data[i*m.c+j] }

func (m *Dense[T]) contiguous() ([]T, bool) { return m.data, true }

// ---------- shared helpers over Array ----------

// windowFits validates a [r0:r0+rows, c0:c0+cols) window against an r×c shape.
func windowFits(r, c, r0, c0, rows, cols int) bool {
	return r0 >= 0 && c0 >= 0 && rows >= 0 && cols >= 0 && r0+rows <= r && c0+cols <= c
}

// materialize copies any Array into a fresh row-major Dense.
func materialize[T Element](a Array[T]) *Dense[T] {
	if src, ok := a.contiguous(); ok {
		out := newDense[T](a.Rows(), a.Cols())
		copy(out.data, src)
		return out
	}
	r, c := a.Shape()
	out := newDense[T](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = a.get(i, j)
		}
	}

	return out
}

// Flatten returns a fresh row-major copy of a's elements, reading views
// through their strides. A nil array yields nil.
//
// Complexity: O(rows*cols).
func Flatten[T Element](a Array[T]) []T {
	if IsNil(a) {
		return nil
	}

	return materialize(a).data
}

func vectorOf[T Element](a Array[T]) ([]T, error) {
	r, c := a.Shape()
	if r != 1 && c != 1 {
		return nil, fmt.Errorf("Vector: shape %dx%d: %w", r, c, ErrDimensionMismatch)
	}

	return materialize(a).data, nil
}

func format[T Element](a Array[T]) string {
	var b strings.Builder
	r, c := a.Shape()
	for i := 0; i < r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j := 0; j < c; j++ {
			fmt.Fprintf(&b, "%v", a.get(i, j))
			if j+1 < c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

func visit[T Element](a Array[T], f func(i, j int, v T) bool) {
	r, c := a.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !f(i, j, a.get(i, j)) {
				return // early exit requested by caller
			}
		}
	}
}
