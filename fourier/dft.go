// SPDX-License-Identifier: MIT

package fourier

import "github.com/isaksamsten/briljant-sub012/internal/parallel"

// dft evaluates X[k] = Σ_j x[j]·w[(j·k) mod n] directly.
// Output bins are split across workers; each bin is summed by one worker in
// increasing j, so the result is independent of the worker count.
func dft(x []complex128, o Options) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	w := twiddles(n)

	workers := 1
	if n*n >= o.threshold {
		workers = parallel.Workers(o.workers)
	}
	parallel.Range(n, workers, dftMinChunk, func(start, end int) {
		for k := start; k < end; k++ {
			var sum complex128
			idx := 0 // (j·k) mod n, advanced incrementally
			for j := 0; j < n; j++ {
				sum += x[j] * w[idx]
				idx += k
				if idx >= n {
					idx -= n
				}
			}
			out[k] = sum
		}
	})

	return out
}
