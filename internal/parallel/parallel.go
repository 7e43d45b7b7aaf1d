// SPDX-License-Identifier: MIT

// Package parallel splits index ranges across a bounded set of goroutines.
//
// For serves the element-wise array kernels; Range serves bodies that cannot
// fail, such as the direct DFT and per-column statistics.
// Each chunk owns a disjoint [start, end) window, so callers that write one
// output slot per index produce identical results for every worker count.
package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultMinChunk is the smallest range handed to a single goroutine.
const DefaultMinChunk = 1024

// Workers resolves a requested worker count: n<=0 means GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}

// For runs fn over [0, n) split into at most workers contiguous chunks of at
// least minChunk indices. Small ranges and workers<=1 run inline on the
// calling goroutine. The first non-nil error returned by fn is reported.
//
// Complexity: O(n) total work plus O(workers) goroutine overhead.
func For(n, workers, minChunk int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	chunk, inline := split(n, workers, minChunk)
	if inline {
		return fn(0, n)
	}

	var g errgroup.Group
	g.SetLimit((n + chunk - 1) / chunk)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error { return fn(start, end) })
	}

	return g.Wait()
}

// Range is For for bodies that cannot fail. It returns once every chunk
// has finished.
func Range(n, workers, minChunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	chunk, inline := split(n, workers, minChunk)
	if inline {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(start, end)
		}()
	}
	wg.Wait()
}

// split sizes the chunks for n indices: at most workers chunks, each of at
// least minChunk indices. inline reports that one chunk covers everything.
func split(n, workers, minChunk int) (chunk int, inline bool) {
	if minChunk < 1 {
		minChunk = 1
	}
	if workers <= 1 || n <= minChunk {
		return n, true
	}
	if limit := n / minChunk; limit < workers {
		workers = limit
	}
	if workers < 1 {
		workers = 1
	}

	return (n + workers - 1) / workers, false
}
