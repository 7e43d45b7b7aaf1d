// SPDX-License-Identifier: MIT
// Package linalg provides LU decomposition with partial pivoting over
// float64 arrays, and the inverse, determinant and linear-solve routines
// built on it.
//
// Purpose:
//   - Factor a square matrix once, then answer every derived query
//     (determinant, pivot, permutation, triangular factors, inverse, solve)
//     from the stored factors without refactoring.
//   - Detect singularity deterministically against an explicit tolerance.
//
// Notes:
//   - The input array is copied; the decomposition never aliases it.
//   - An LU value is immutable after Decompose returns and is safe for
//     concurrent readers.

package linalg

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/isaksamsten/briljant-sub012/array"
)

// ZeroPivot is the exact pivot value below which no multiplier is formed.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opDecompose = "Decompose"
	opInverse   = "Inverse"
	opSolve     = "Solve"
	opDet       = "Determinant"
)

// linalgErrorf wraps err with an operation tag, preserving the original error via %w.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU is the result of a partially pivoted decomposition P·A = L·U.
//   - lu holds L strictly below the diagonal (unit diagonal implicit) and U
//     on and above it, row-major n×n.
//   - piv[i] is the row of A that ended up in row i.
type LU struct {
	n        int
	lu       []float64
	piv      []int
	sign     int
	singular bool
	tol      float64
}

// Decompose factors a square float64 array with partial pivoting.
// MAIN DESCRIPTION:
//   - Crout/JAMA left-looking elimination: column j is first updated with
//     every previously finished column, then the pivot is chosen, then the
//     multipliers below the diagonal are formed.
//
// Implementation:
//   - Stage 1: Validate non-nil and square, reject NaN/±Inf entries unless
//     WithNoValidateNaNInf; resolve options and tolerance.
//   - Stage 2: For j = 0..n-1:
//     a) copy column j, apply the dot-product updates from columns < j;
//     b) pick p >= j with the largest |value| (first maximum wins) and
//     swap rows p and j, recording the swap in piv and flipping sign;
//     c) unless |pivot| > tol mark the decomposition singular (NaN included);
//     d) when pivot != 0 divide the entries below the diagonal by it.
//
// Behavior highlights:
//   - Elimination always completes, even for singular input, so Lower,
//     Upper and Determinant remain available.
//   - The default tolerance is n·ε·max|a_ij|; WithTolerance overrides it.
//   - 0×0 input is legal: determinant 1, non-singular.
//
// Errors:
//   - ErrNilArray, ErrDimensionMismatch (non-square), ErrInvalidTolerance,
//     ErrNaNInf (non-finite entry, default policy).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Decompose(a array.Array[float64], opts ...Option) (*LU, error) {
	if err := array.ValidateSquare(a); err != nil {
		return nil, linalgErrorf(opDecompose, err)
	}
	o := gatherOptions(opts...)
	if o.tolErr != nil {
		return nil, linalgErrorf(opDecompose, o.tolErr)
	}
	if o.validateNaNInf {
		if err := array.ValidateFinite(a); err != nil {
			return nil, linalgErrorf(opDecompose, err)
		}
	}

	n := a.Rows()
	lu := array.Flatten(a) // private working copy, row-major
	tol := o.tol
	if tol < 0 {
		tol = defaultTolerance(n, vecmath.MaxAbs(lu))
	}

	d := &LU{n: n, lu: lu, piv: make([]int, n), sign: 1, tol: tol}
	for i := range d.piv {
		d.piv[i] = i
	}

	col := make([]float64, n) // column j snapshot
	var i, j, k, p int
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			col[i] = lu[i*n+j]
		}

		// Apply previous transformations to column j.
		for i = 0; i < n; i++ {
			kmax := min(i, j)
			col[i] -= vecmath.DotProduct(lu[i*n:i*n+kmax], col[:kmax])
			lu[i*n+j] = col[i]
		}

		// Find pivot; strict comparison keeps the first maximum.
		p = j
		for i = j + 1; i < n; i++ {
			if math.Abs(col[i]) > math.Abs(col[p]) {
				p = i
			}
		}
		if p != j {
			for k = 0; k < n; k++ {
				lu[p*n+k], lu[j*n+k] = lu[j*n+k], lu[p*n+k]
			}
			d.piv[p], d.piv[j] = d.piv[j], d.piv[p]
			d.sign = -d.sign
		}

		pivot := lu[j*n+j]
		if !(math.Abs(pivot) > tol) { // NaN pivots count as singular
			d.singular = true
		}
		if pivot != ZeroPivot {
			for i = j + 1; i < n; i++ {
				lu[i*n+j] /= pivot
			}
		}
	}

	return d, nil
}

// Size returns n for an n×n decomposition.
func (d *LU) Size() int { return d.n }

// Tolerance returns the absolute singularity threshold that was applied.
func (d *LU) Tolerance() float64 { return d.tol }

// IsNonSingular reports whether every pivot magnitude exceeded the tolerance.
func (d *LU) IsNonSingular() bool { return !d.singular }

// Determinant returns pivotSign · Π U[i][i]. A zero pivot yields exactly 0.
func (d *LU) Determinant() float64 {
	det := float64(d.sign)
	for i := 0; i < d.n; i++ {
		det *= d.lu[i*d.n+i]
	}

	return det
}

// Pivot returns a copy of the row pivot vector.
func (d *LU) Pivot() []int {
	out := make([]int, d.n)
	copy(out, d.piv)

	return out
}

// PivotSign returns +1 for an even number of row swaps and -1 otherwise.
func (d *LU) PivotSign() int { return d.sign }

// Permutation returns P such that P·A = L·U (P[i][piv[i]] = 1).
func (d *LU) Permutation() *array.Dense[float64] {
	p := d.zeros()
	for i, r := range d.piv {
		_ = p.Set(i, r, 1)
	}

	return p
}

// Lower returns L: unit diagonal, multipliers below it, zeros above.
func (d *LU) Lower() *array.Dense[float64] {
	l := d.zeros()
	for i := 0; i < d.n; i++ {
		for j := 0; j < i; j++ {
			_ = l.Set(i, j, d.lu[i*d.n+j])
		}
		_ = l.Set(i, i, 1)
	}

	return l
}

// Upper returns U: the diagonal and everything above it, zeros below.
func (d *LU) Upper() *array.Dense[float64] {
	u := d.zeros()
	for i := 0; i < d.n; i++ {
		for j := i; j < d.n; j++ {
			_ = u.Set(i, j, d.lu[i*d.n+j])
		}
	}

	return u
}

// Factors returns the combined L\U buffer as a frozen array.
func (d *LU) Factors() *array.Dense[float64] {
	f, _ := array.FromSlice(d.n, d.n, d.lu) // shape matches by construction

	return f.Freeze()
}

// Inverse returns A⁻¹ by solving A·X = I column by column.
// Returns ErrSingular (before any substitution) when the factorization is singular.
func (d *LU) Inverse() (*array.Dense[float64], error) {
	if d.singular {
		return nil, linalgErrorf(opInverse, ErrSingular)
	}
	id, _ := array.Identity[float64](d.n)

	return d.solve(id.Data(), d.n), nil
}

// Solve returns X with A·X = B for an n×m right-hand side B.
// Errors: ErrNilArray, ErrDimensionMismatch (B.Rows != n), ErrSingular.
func (d *LU) Solve(b array.Array[float64]) (*array.Dense[float64], error) {
	if err := array.ValidateNotNil(b); err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	if b.Rows() != d.n {
		return nil, linalgErrorf(opSolve, fmt.Errorf("rhs has %d rows, want %d: %w", b.Rows(), d.n, ErrDimensionMismatch))
	}
	if d.singular {
		return nil, linalgErrorf(opSolve, ErrSingular)
	}

	return d.solve(array.Flatten(b), b.Cols()), nil
}

// solve runs permutation, forward substitution with unit L and back
// substitution with U over an n×m row-major right-hand side.
func (d *LU) solve(rhs []float64, m int) *array.Dense[float64] {
	n, lu := d.n, d.lu
	x := make([]float64, n*m)
	for i, r := range d.piv {
		copy(x[i*m:(i+1)*m], rhs[r*m:(r+1)*m])
	}

	var i, j, k int
	// Solve L·Y = P·B.
	for k = 0; k < n; k++ {
		for i = k + 1; i < n; i++ {
			l := lu[i*n+k]
			for j = 0; j < m; j++ {
				x[i*m+j] -= x[k*m+j] * l
			}
		}
	}
	// Solve U·X = Y.
	for k = n - 1; k >= 0; k-- {
		ukk := lu[k*n+k]
		for j = 0; j < m; j++ {
			x[k*m+j] /= ukk
		}
		for i = 0; i < k; i++ {
			u := lu[i*n+k]
			for j = 0; j < m; j++ {
				x[i*m+j] -= x[k*m+j] * u
			}
		}
	}

	out, _ := array.FromSlice(n, m, x)

	return out
}

func (d *LU) zeros() *array.Dense[float64] {
	z, _ := array.New[float64](d.n, d.n)

	return z
}

// ---------- package-level facades ----------

// Inverse decomposes a and returns its inverse.
func Inverse(a array.Array[float64], opts ...Option) (*array.Dense[float64], error) {
	d, err := Decompose(a, opts...)
	if err != nil {
		return nil, err
	}

	return d.Inverse()
}

// Determinant decomposes a and returns its determinant.
func Determinant(a array.Array[float64], opts ...Option) (float64, error) {
	d, err := Decompose(a, opts...)
	if err != nil {
		return 0, linalgErrorf(opDet, err)
	}

	return d.Determinant(), nil
}

// Solve decomposes a and returns X with A·X = B.
func Solve(a, b array.Array[float64], opts ...Option) (*array.Dense[float64], error) {
	d, err := Decompose(a, opts...)
	if err != nil {
		return nil, err
	}

	return d.Solve(b)
}
