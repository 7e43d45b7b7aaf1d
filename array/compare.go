// SPDX-License-Identifier: MIT

package array

import (
	"math"
	"math/cmplx"
)

// Equal reports whether a and b have the same shape and identical elements.
// Nil arrays are equal only to each other.
func Equal[T Element](a, b Array[T]) bool {
	return AllClose(a, b, 0)
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol in absolute value (modulus for complex).
// NaN never compares close.
func AllClose[T Element](a, b Array[T], tol float64) bool {
	an, bn := IsNil(a), IsNil(b)
	if an || bn {
		return an && bn
	}
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if !(absDiff(a.get(i, j), b.get(i, j)) <= tol) {
				return false
			}
		}
	}

	return true
}

// absDiff returns |x - y| as float64 for every Element kind.
func absDiff[T Element](x, y T) float64 {
	if x == y {
		return 0 // also covers matching infinities
	}
	switch xv := any(x).(type) {
	case float64:
		return math.Abs(xv - any(y).(float64))
	case complex128:
		return cmplx.Abs(xv - any(y).(complex128))
	case int32:
		return math.Abs(float64(xv) - float64(any(y).(int32)))
	}

	return math.NaN()
}
