// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"math"

	"github.com/isaksamsten/briljant-sub012/array"
)

// maxIndex is the largest population the int32 output can address.
const maxIndex = math.MaxInt32

// sparseRatio: populations larger than sparseRatio·k keep only the swapped
// pool entries in a map instead of materializing all n indices.
const sparseRatio = 16

// WithoutReplacement draws k distinct indices from [0, n) in draw order.
// MAIN DESCRIPTION:
//   - Partial Fisher–Yates over the identity pool 0..n-1: for i in 0..k-1
//     pick j = i + src.IntN(n-i), swap pool[i] and pool[j], emit pool[i].
//
// Behavior highlights:
//   - Exactly k calls to src.IntN, with bounds n, n-1, ..., n-k+1.
//   - For k much smaller than n the pool is tracked sparsely; the output is
//     identical to the dense pool for the same draws.
//   - The result is a frozen 1×k row vector.
//
// Errors:
//   - ErrInvalidSampleSize (n<0, k<0, k>n or n > math.MaxInt32).
//   - ErrNilSource.
//
// Complexity:
//   - Time O(k) (plus O(n) for the dense pool), Space O(min(n, k)).
func WithoutReplacement(n, k int, src Source) (*array.Dense[int32], error) {
	if n < 0 || k < 0 || k > n || n > maxIndex {
		return nil, fmt.Errorf("WithoutReplacement(n=%d, k=%d): %w", n, k, ErrInvalidSampleSize)
	}
	if src == nil {
		return nil, fmt.Errorf("WithoutReplacement: %w", ErrNilSource)
	}

	out := make([]int32, k)
	if n > sparseRatio*k {
		swapped := make(map[int]int, k)
		at := func(i int) int {
			if v, ok := swapped[i]; ok {
				return v
			}
			return i
		}
		for i := 0; i < k; i++ {
			j := i + src.IntN(n-i)
			vi, vj := at(i), at(j)
			swapped[i], swapped[j] = vj, vi
			out[i] = int32(vj)
		}
	} else {
		pool := make([]int32, n)
		for i := range pool {
			pool[i] = int32(i)
		}
		for i := 0; i < k; i++ {
			j := i + src.IntN(n-i)
			pool[i], pool[j] = pool[j], pool[i]
			out[i] = pool[i]
		}
	}

	return array.RowVector(out).Freeze(), nil
}

// WithoutReplacementSeed is WithoutReplacement over NewLCG(seed).
func WithoutReplacementSeed(n, k int, seed int64) (*array.Dense[int32], error) {
	return WithoutReplacement(n, k, NewLCG(seed))
}

// Shuffle permutes a in place with a Fisher–Yates shuffle
// (for i = n-1..1: swap a[i] and a[src.IntN(i+1)]).
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, src Source) error {
	if src == nil {
		return fmt.Errorf("Shuffle: %w", ErrNilSource)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		a[i], a[j] = a[j], a[i]
	}

	return nil
}

// Permutation returns a shuffled 1×n row vector holding 0..n-1.
func Permutation(n int, src Source) (*array.Dense[int32], error) {
	perm, err := permRange(n, src)
	if err != nil {
		return nil, fmt.Errorf("Permutation: %w", err)
	}

	return toRow(perm), nil
}

// Split partitions 0..n-1 into disjoint train and test index vectors.
// The test set holds round(n·testFraction) indices taken from the front of
// a permutation; train holds the rest. Both outputs are frozen row vectors.
//
// Errors: ErrInvalidSampleSize (n<0), ErrInvalidFraction, ErrNilSource.
func Split(n int, testFraction float64, src Source) (train, test *array.Dense[int32], err error) {
	if math.IsNaN(testFraction) || testFraction < 0 || testFraction > 1 {
		return nil, nil, fmt.Errorf("Split(%g): %w", testFraction, ErrInvalidFraction)
	}
	perm, err := permRange(n, src)
	if err != nil {
		return nil, nil, fmt.Errorf("Split: %w", err)
	}
	cut := int(math.Round(float64(n) * testFraction))

	return toRow(perm[cut:]), toRow(perm[:cut]), nil
}

// permRange returns 0..n-1 shuffled by src.
func permRange(n int, src Source) ([]int, error) {
	if n < 0 || n > maxIndex {
		return nil, ErrInvalidSampleSize
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	if err := Shuffle(p, src); err != nil {
		return nil, err
	}

	return p, nil
}

func toRow(idx []int) *array.Dense[int32] {
	out := make([]int32, len(idx))
	for i, v := range idx {
		out[i] = int32(v)
	}

	return array.RowVector(out).Freeze()
}
