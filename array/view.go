// SPDX-License-Identifier: MIT

package array

import "fmt"

// View is a non-owning window into a Dense (shared storage).
// Element (i, j) lives at base.data[off + i*rs + j*cs]; transposition swaps
// the strides, and a view of a view composes offsets against the same owner.
// The owner's read-only flag governs every write made through the view.
type View[T Element] struct {
	base *Dense[T] // underlying storage owner
	off  int       // flat offset of element (0,0) in base
	r    int       // view height
	c    int       // view width
	rs   int       // row stride in base.data
	cs   int       // column stride in base.data
}

var (
	_ Array[float64]    = (*View[float64])(nil)
	_ Array[complex128] = (*View[complex128])(nil)
	_ Array[int32]      = (*View[int32])(nil)
)

func viewErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("View.%s(%d,%d): %w", method, row, col, err)
}

// Rows returns the number of rows in the view.
func (v *View[T]) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *View[T]) Cols() int { return v.c }

// Shape returns (rows, cols) of the view.
func (v *View[T]) Shape() (rows, cols int) { return v.r, v.c }

// Len returns rows*cols.
func (v *View[T]) Len() int { return v.r * v.c }

// IsVector reports whether the view has a single row or a single column.
func (v *View[T]) IsVector() bool { return v.r == 1 || v.c == 1 }

// ReadOnly reports whether the owner is frozen.
func (v *View[T]) ReadOnly() bool { return v.base.readOnly }

// Base returns the owning array.
func (v *View[T]) Base() *Dense[T] { return v.base }

// At reads element (i,j) in the view or returns ErrIndexOutOfRange.
// MAIN DESCRIPTION:
//   - Safe read within the view bounds; translates to base storage.
//
// Implementation:
//   - Stage 1: check 0≤i<r and 0≤j<c.
//   - Stage 2: return base.data[off + i*rs + j*cs].
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *View[T]) At(i, j int) (T, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		var zero T
		return zero, viewErrorf(ctxAt, i, j, ErrIndexOutOfRange)
	}

	return v.get(i, j), nil
}

// Set writes element (i,j) through to the owner.
// Returns ErrIndexOutOfRange on invalid indices and ErrReadOnly when the owner is frozen.
func (v *View[T]) Set(i, j int, val T) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return viewErrorf(ctxSet, i, j, ErrIndexOutOfRange)
	}
	if v.base.readOnly {
		return viewErrorf(ctxSet, i, j, ErrReadOnly)
	}
	v.base.data[v.off+i*v.rs+j*v.cs] = val // write through

	return nil
}

// Copy materializes the view into an independent, writable Dense.
func (v *View[T]) Copy() *Dense[T] { return materialize[T](v) }

// View returns a sub-window of this view. Offsets compose against the same owner.
func (v *View[T]) View(r0, c0, rows, cols int) (*View[T], error) {
	if !windowFits(v.r, v.c, r0, c0, rows, cols) {
		return nil, fmt.Errorf("View.View(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrInvalidRange)
	}

	return &View[T]{
		base: v.base,
		off:  v.off + r0*v.rs + c0*v.cs,
		r:    rows,
		c:    cols,
		rs:   v.rs,
		cs:   v.cs,
	}, nil
}

// T returns the transposed view (strides swapped, no copy).
func (v *View[T]) T() *View[T] {
	return &View[T]{base: v.base, off: v.off, r: v.c, c: v.r, rs: v.cs, cs: v.rs}
}

// Row returns row i of the view as a 1×cols view.
func (v *View[T]) Row(i int) (*View[T], error) {
	if i < 0 || i >= v.r {
		return nil, viewErrorf(ctxRow, i, 0, ErrIndexOutOfRange)
	}

	return v.View(i, 0, 1, v.c)
}

// Col returns column j of the view as a rows×1 view.
func (v *View[T]) Col(j int) (*View[T], error) {
	if j < 0 || j >= v.c {
		return nil, viewErrorf(ctxCol, 0, j, ErrIndexOutOfRange)
	}

	return v.View(0, j, v.r, 1)
}

// Vector copies a row or column view into a flat slice.
func (v *View[T]) Vector() ([]T, error) { return vectorOf[T](v) }

// String renders the view like Dense.String.
func (v *View[T]) String() string { return format[T](v) }

// Do visits each element of the view in row-major order; stops when f returns false.
func (v *View[T]) Do(f func(i, j int, val T) bool) { visit[T](v, f) }

// Apply replaces every element of the view with f(i,j,val), writing through to the owner.
func (v *View[T]) Apply(f func(i, j int, val T) T) error {
	if v.base.readOnly {
		return viewErrorf(ctxApply, 0, 0, ErrReadOnly)
	}
	for i := 0; i < v.r; i++ {
		for j := 0; j < v.c; j++ {
			p := v.off + i*v.rs + j*v.cs
			v.base.data[p] = f(i, j, v.base.data[p])
		}
	}

	return nil
}

func (v *View[T]) get(i, j int) T { return v.base.data[v.off+i*v.rs+j*v.cs] }

// contiguous reports the window as a row-major slice of the owner when
// element (i,j) sits at off + i*c + j for every valid index.
func (v *View[T]) contiguous() ([]T, bool) {
	if v.r == 0 || v.c == 0 {
		return nil, true
	}
	if (v.c == 1 || v.cs == 1) && (v.r == 1 || v.rs == v.c) {
		return v.base.data[v.off : v.off+v.r*v.c], true
	}

	return nil, false
}
