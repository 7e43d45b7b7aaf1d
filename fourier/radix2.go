// SPDX-License-Identifier: MIT

package fourier

import (
	"math"
	"sync"
)

// twiddleCache maps n to the forward roots exp(-2πi·k/n) for k in [0, n).
// Tables are immutable once stored and shared by radix-2 and the direct DFT.
var twiddleCache sync.Map

// twiddles returns the n forward roots of unity. Each root is computed from
// its own angle, so table entries do not accumulate rounding error.
func twiddles(n int) []complex128 {
	if w, ok := twiddleCache.Load(n); ok {
		return w.([]complex128)
	}
	w := make([]complex128, n)
	for k := range w {
		theta := -2 * math.Pi * float64(k) / float64(n)
		w[k] = complex(math.Cos(theta), math.Sin(theta))
	}
	actual, _ := twiddleCache.LoadOrStore(n, w)

	return actual.([]complex128)
}

// radix2 computes the forward DFT of x in place; len(x) must be a power of two.
// Implementation:
//   - Stage 1: bit-reversal permutation.
//   - Stage 2: log2(n) butterfly passes; pass with span s reads every
//     (n/s)-th entry of the twiddle table.
func radix2(x []complex128) {
	n := len(x)
	if n < 2 {
		return
	}

	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}

	w := twiddles(n)
	for size := 2; size <= n; size <<= 1 {
		half, step := size>>1, n/size
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				t := w[k*step] * x[start+k+half]
				u := x[start+k]
				x[start+k] = u + t
				x[start+k+half] = u - t
			}
		}
	}
}
