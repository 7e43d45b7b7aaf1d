// Package array offers a generic dense container for numeric data.
//
// The array package provides:
//
//   - Dense, an owned row-major buffer of int32, float64 or complex128.
//   - View, a non-owning window (sub-range or transpose) that shares the
//     owner's storage; writes through a view are visible in the owner.
//   - Element-wise arithmetic (Add, Sub, Mul, Div, Scale, ...), MatMul and
//     widening type conversion, all returning fresh arrays.
//   - Adapters to and from gonum's mat.Matrix.
//
// Accessors never panic on bad indices; they return sentinel errors that
// callers match with errors.Is. Freeze makes an array read-only for good.
//
//	a, _ := array.FromRows([][]float64{{1, 2}, {3, 4}})
//	v, _ := a.View(0, 1, 2, 1) // second column, no copy
//	_ = v.Set(1, 0, 9)         // a is now [[1 2] [3 9]]
package array
