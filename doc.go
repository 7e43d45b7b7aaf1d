// Package briljant is a small numeric kernel for in-memory data analysis:
// dense arrays, LU factorization, Fourier transforms, seeded index sampling
// and streaming statistics.
//
// What lives where:
//
//	array/     generic Dense container (int32, float64, complex128), no-copy
//	           Views and transposes, element-wise math, MatMul, gonum adapters
//	linalg/    pivoted LU: Determinant, Inverse, Solve, L/U/P factors
//	fourier/   FFT/IFFT (radix-2, direct DFT fallback, planned backend), Convolve
//	sampling/  java.util.Random compatible LCG, sampling without replacement,
//	           Permutation and train/test Split
//	stats/     Welford running mean/variance/extrema, per-column summaries
//
// Every fallible operation returns a sentinel error wrapped with the failing
// operation; match it with errors.Is. Nothing panics on user input.
//
// Quick example:
//
//	a, _ := array.FromRows([][]float64{{4, 3}, {6, 3}})
//	det, _ := linalg.Determinant(a)   // -6
//	idx, _ := sampling.WithoutReplacementSeed(10, 5, 123)
//	fmt.Println(det, idx.Data())      // -6 [2 6 9 3 7]
//
//	go get github.com/isaksamsten/briljant-sub012
package briljant
