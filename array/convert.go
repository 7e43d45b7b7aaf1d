// SPDX-License-Identifier: MIT

package array

import "fmt"

// rank orders element kinds by width: int32 < float64 < complex128.
func rank[T Element]() int {
	var zero T
	switch any(zero).(type) {
	case int32:
		return 0
	case float64:
		return 1
	}

	return 2
}

func kindName[T Element]() string {
	return [...]string{"int32", "float64", "complex128"}[rank[T]()]
}

// Convert copies a into a new array of element type To.
// Widening conversions (int32 → float64 → complex128) always succeed.
// Narrowing conversions fail with ErrTypeMismatch; use Real to drop a
// zero imaginary part explicitly.
//
// Complexity: O(r*c).
func Convert[To, From Element](a Array[From]) (*Dense[To], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, arrayErrorf(opConvert, err)
	}
	if rank[To]() < rank[From]() {
		return nil, arrayErrorf(opConvert, fmt.Errorf("%s -> %s: %w", kindName[From](), kindName[To](), ErrTypeMismatch))
	}
	r, c := a.Shape()
	out := newDense[To](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = widen[To](a.get(i, j))
		}
	}

	return out, nil
}

// widen converts one element to a wider (or equal) kind.
// Callers guarantee rank[To]() >= rank of v's kind.
func widen[To Element, From Element](v From) To {
	var zero To
	switch any(zero).(type) {
	case int32:
		return any(v).(To)
	case float64:
		switch x := any(v).(type) {
		case int32:
			return any(float64(x)).(To)
		case float64:
			return any(x).(To)
		}
	case complex128:
		switch x := any(v).(type) {
		case int32:
			return any(complex(float64(x), 0)).(To)
		case float64:
			return any(complex(x, 0)).(To)
		case complex128:
			return any(x).(To)
		}
	}

	return zero
}

// Real extracts the real parts of a complex array.
// Fails with ErrTypeMismatch when any element has a non-zero imaginary part,
// so no information is ever silently discarded.
func Real(a Array[complex128]) (*Dense[float64], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, arrayErrorf(opReal, err)
	}
	r, c := a.Shape()
	out := newDense[float64](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := a.get(i, j)
			if imag(v) != 0 {
				return nil, arrayErrorf(opReal, fmt.Errorf("(%d,%d) = %v: %w", i, j, v, ErrTypeMismatch))
			}
			out.data[i*c+j] = real(v)
		}
	}

	return out, nil
}
