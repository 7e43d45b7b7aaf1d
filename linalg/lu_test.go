// SPDX-License-Identifier: MIT
// Package linalg_test contains unit tests for the pivoted LU decomposition.
package linalg_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/isaksamsten/briljant-sub012/array"
	"github.com/isaksamsten/briljant-sub012/linalg"
)

// mustRows builds a float64 Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *array.Dense[float64] {
	tb.Helper()
	m, err := array.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// randSquare returns a seeded n×n matrix with entries in [-1, 1).
func randSquare(tb testing.TB, n int, seed int64) *array.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := array.FromSlice(n, n, data)
	require.NoError(tb, err)

	return m
}

// TestDecomposeKnown checks determinant, pivot and factors on a hand-worked 3×3.
func TestDecomposeKnown(t *testing.T) {
	a := mustRows(t, [][]float64{
		{2, 1, 1},
		{4, -6, 0},
		{-2, 7, 2},
	})
	lu, err := linalg.Decompose(a)
	require.NoError(t, err)
	require.True(t, lu.IsNonSingular())
	require.InDelta(t, -16.0, lu.Determinant(), 1e-12) // cofactor expansion
	require.Equal(t, 3, lu.Size())

	piv := lu.Pivot()
	require.Equal(t, 4.0, mustAt(t, a, piv[0], 0)) // largest |a_i0| moved to the top
	piv[0] = 99                                    // Pivot returns a copy
	require.NotEqual(t, 99, lu.Pivot()[0])
}

// TestFactorsReconstructInput ensures L·U == P·A and the triangular shapes hold.
func TestFactorsReconstructInput(t *testing.T) {
	for n := 1; n <= 8; n++ {
		a := randSquare(t, n, int64(n))
		lu, err := linalg.Decompose(a)
		require.NoError(t, err)

		l, u, p := lu.Lower(), lu.Upper(), lu.Permutation()
		for i := 0; i < n; i++ {
			require.Equal(t, 1.0, mustAt(t, l, i, i)) // unit diagonal
			for j := i + 1; j < n; j++ {
				require.Zero(t, mustAt(t, l, i, j)) // L strictly upper is zero
				require.Zero(t, mustAt(t, u, j, i)) // U strictly lower is zero
			}
		}

		lhs, err := array.MatMul[float64](l, u)
		require.NoError(t, err)
		rhs, err := array.MatMul[float64](p, a)
		require.NoError(t, err)
		require.True(t, array.AllClose[float64](lhs, rhs, 1e-12), "n=%d", n)

		require.True(t, lu.Factors().ReadOnly())
	}
}

// TestInverseIdentity ensures A·A⁻¹ ≈ I and agrees with gonum's inverse.
func TestInverseIdentity(t *testing.T) {
	for n := 1; n <= 10; n++ {
		a := randSquare(t, n, 100+int64(n))
		inv, err := linalg.Inverse(a)
		require.NoError(t, err)

		prod, err := array.MatMul[float64](a, inv)
		require.NoError(t, err)
		id, err := array.Identity[float64](n)
		require.NoError(t, err)
		require.True(t, array.AllClose[float64](prod, id, 1e-9), "n=%d", n)

		ga, err := array.ToMat(a)
		require.NoError(t, err)
		var want mat.Dense
		require.NoError(t, want.Inverse(ga))
		wantArr, err := array.FromMat(&want)
		require.NoError(t, err)
		require.True(t, array.AllClose[float64](inv, wantArr, 1e-8), "n=%d", n)
	}
}

// TestDeterminantMatchesGonum cross-checks determinants and sign parity.
func TestDeterminantMatchesGonum(t *testing.T) {
	for n := 1; n <= 9; n++ {
		a := randSquare(t, n, 200+int64(n))
		lu, err := linalg.Decompose(a)
		require.NoError(t, err)

		ga, err := array.ToMat(a)
		require.NoError(t, err)
		want := mat.Det(ga)
		require.InDelta(t, want, lu.Determinant(), 1e-10*math.Max(1, math.Abs(want)), "n=%d", n)

		require.Equal(t, permutationParity(lu.Pivot()), lu.PivotSign(), "n=%d", n)
	}
}

// permutationParity returns +1 for even and -1 for odd permutations.
func permutationParity(p []int) int {
	seen := make([]bool, len(p))
	sign := 1
	for i := range p {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = p[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// TestPivotFirstMaximumWins checks strict pivot selection and the sign flip.
func TestPivotFirstMaximumWins(t *testing.T) {
	swap, err := linalg.Decompose(mustRows(t, [][]float64{{1, 2}, {-3, 3}}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, swap.Pivot())
	require.Equal(t, -1, swap.PivotSign())
	require.InDelta(t, 9.0, swap.Determinant(), 1e-12) // 1*3 - 2*(-3)

	tie, err := linalg.Decompose(mustRows(t, [][]float64{{2, 1}, {-2, 3}}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, tie.Pivot()) // |2| == |-2|: first row kept
	require.Equal(t, 1, tie.PivotSign())
}

// TestZeroRowIsSingular ensures a zero row yields determinant exactly 0 and ErrSingular.
func TestZeroRowIsSingular(t *testing.T) {
	a := mustRows(t, [][]float64{
		{1, 2, 3},
		{0, 0, 0},
		{4, 5, 6},
	})
	lu, err := linalg.Decompose(a)
	require.NoError(t, err)
	require.False(t, lu.IsNonSingular())
	require.Equal(t, 0.0, lu.Determinant())

	_, err = lu.Inverse()
	require.ErrorIs(t, err, linalg.ErrSingular)
	_, err = linalg.Inverse(a)
	require.ErrorIs(t, err, linalg.ErrSingular)
	_, err = lu.Solve(array.ColVector([]float64{1, 2, 3}))
	require.ErrorIs(t, err, linalg.ErrSingular)

	require.Equal(t, 3, lu.Lower().Rows()) // factors stay available
}

// TestDecomposeRejectsBadInput covers non-square, nil and invalid tolerance.
func TestDecomposeRejectsBadInput(t *testing.T) {
	rect, err := array.New[float64](2, 3)
	require.NoError(t, err)
	_, err = linalg.Decompose(rect)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	require.ErrorIs(t, err, array.ErrDimensionMismatch) // same sentinel

	_, err = linalg.Decompose(nil)
	require.ErrorIs(t, err, linalg.ErrNilArray)

	sq := mustRows(t, [][]float64{{1}})
	_, err = linalg.Decompose(sq, linalg.WithTolerance(-1))
	require.ErrorIs(t, err, linalg.ErrInvalidTolerance)
	_, err = linalg.Decompose(sq, linalg.WithTolerance(math.NaN()))
	require.ErrorIs(t, err, linalg.ErrInvalidTolerance)

	_, err = linalg.Determinant(rect)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestEmptyMatrix ensures the 0×0 case is a valid, non-singular decomposition.
func TestEmptyMatrix(t *testing.T) {
	empty, err := array.New[float64](0, 0)
	require.NoError(t, err)
	lu, err := linalg.Decompose(empty)
	require.NoError(t, err)
	require.True(t, lu.IsNonSingular())
	require.Equal(t, 1.0, lu.Determinant())

	inv, err := lu.Inverse()
	require.NoError(t, err)
	require.Equal(t, 0, inv.Len())
}

// TestTolerance checks default scaling and explicit overrides on a near-singular input.
func TestTolerance(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 1}, {1, 1 + 1e-10}})

	def, err := linalg.Decompose(a)
	require.NoError(t, err)
	require.True(t, def.IsNonSingular()) // 1e-10 pivot is far above 2·ε·max
	require.InDelta(t, 2*0x1p-52*(1+1e-10), def.Tolerance(), 1e-30)

	loose, err := linalg.Decompose(a, linalg.WithTolerance(1e-6))
	require.NoError(t, err)
	require.False(t, loose.IsNonSingular())
	require.Equal(t, 1e-6, loose.Tolerance())

	exact, err := linalg.Decompose(mustRows(t, [][]float64{{0, 0}, {0, 0}}), linalg.WithTolerance(0))
	require.NoError(t, err)
	require.False(t, exact.IsNonSingular()) // zero pivots are singular even at tol 0
}

// TestDecomposeNonFinite covers the NaN/Inf policy: rejected by default,
// and never reported as a usable factorization when let through.
func TestDecomposeNonFinite(t *testing.T) {
	withNaN := mustRows(t, [][]float64{{1, 2}, {math.NaN(), 4}})
	withInf := mustRows(t, [][]float64{{math.Inf(1), 2}, {3, 4}})

	for _, a := range []*array.Dense[float64]{withNaN, withInf} {
		_, err := linalg.Decompose(a)
		require.ErrorIs(t, err, linalg.ErrNaNInf)
		require.ErrorIs(t, err, array.ErrNaNInf)

		_, err = linalg.Inverse(a)
		require.ErrorIs(t, err, linalg.ErrNaNInf)
		_, err = linalg.Determinant(a, linalg.WithValidateNaNInf())
		require.ErrorIs(t, err, linalg.ErrNaNInf)
	}

	// let through: the NaN pivot marks the factorization singular
	lu, err := linalg.Decompose(withNaN, linalg.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.False(t, lu.IsNonSingular())
	_, err = lu.Inverse()
	require.ErrorIs(t, err, linalg.ErrSingular)

	// an infinite entry pushes the default tolerance to +Inf
	lu, err = linalg.Decompose(withInf, linalg.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(lu.Tolerance(), 1))
	require.False(t, lu.IsNonSingular())

	// last option wins
	_, err = linalg.Decompose(withNaN, linalg.WithNoValidateNaNInf(), linalg.WithValidateNaNInf())
	require.ErrorIs(t, err, linalg.ErrNaNInf)
}

// TestSolve ensures A·X = B for vector and matrix right-hand sides, including strided views.
func TestSolve(t *testing.T) {
	a := mustRows(t, [][]float64{
		{4, -2, 1},
		{-2, 4, -2},
		{1, -2, 4},
	})
	b := array.ColVector([]float64{11, -16, 17})
	x, err := linalg.Solve(a, b)
	require.NoError(t, err)
	got, err := x.Vector()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, -2, 3}, got, 1e-12)

	rhs := randSquare(t, 3, 7)
	xs, err := linalg.Solve(a.T(), rhs.T()) // views are accepted
	require.NoError(t, err)
	back, err := array.MatMul[float64](a.T(), xs)
	require.NoError(t, err)
	require.True(t, array.AllClose[float64](back, rhs.T(), 1e-12))

	lu, err := linalg.Decompose(a)
	require.NoError(t, err)
	_, err = lu.Solve(array.ColVector([]float64{1, 2}))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = lu.Solve(nil)
	require.ErrorIs(t, err, linalg.ErrNilArray)
}

// TestInputNotAliased ensures later writes to the input never affect the factors.
func TestInputNotAliased(t *testing.T) {
	a := mustRows(t, [][]float64{{3, 1}, {1, 2}})
	lu, err := linalg.Decompose(a)
	require.NoError(t, err)
	det := lu.Determinant()
	require.NoError(t, a.Set(0, 0, 100))
	require.Equal(t, det, lu.Determinant())
}

func mustAt(tb testing.TB, a array.Array[float64], i, j int) float64 {
	tb.Helper()
	v, err := a.At(i, j)
	require.NoError(tb, err)

	return v
}
