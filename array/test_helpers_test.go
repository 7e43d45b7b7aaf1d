// SPDX-License-Identifier: MIT
// Package array_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for container and kernel tests.
//   • Keep all data finite so exact comparisons stay meaningful.

package array_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isaksamsten/briljant-sub012/array"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows[T array.Element](tb testing.TB, rows [][]T) *array.Dense[T] {
	tb.Helper()
	m, err := array.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustNew allocates an r×c zero array or fails the test.
func mustNew[T array.Element](tb testing.TB, r, c int) *array.Dense[T] {
	tb.Helper()
	m, err := array.New[T](r, c)
	require.NoError(tb, err)

	return m
}

// randDense returns an r×c float64 array filled with values in [-1, 1)
// from a seeded generator, so every run sees the same data.
func randDense(tb testing.TB, r, c int, seed int64) *array.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := array.FromSlice(r, c, data)
	require.NoError(tb, err)

	return m
}

// at reads (i, j) or fails the test.
func at[T array.Element](tb testing.TB, a array.Array[T], i, j int) T {
	tb.Helper()
	v, err := a.At(i, j)
	require.NoError(tb, err)

	return v
}
