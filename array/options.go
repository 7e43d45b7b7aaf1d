// SPDX-License-Identifier: MIT

// Package array: functional configuration for element-wise kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - Options never change numeric results; they only decide how a kernel
//     splits its output range. Every output slot is written exactly once.
//   - Non-positive values are normalized in finalizeOptions rather than
//     rejected, so option construction never fails.
package array

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
	DefaultWorkers = 0

	// DefaultParallelThreshold is the element count below which kernels run serially.
	DefaultParallelThreshold = 1 << 14

	// minChunk is the smallest number of elements handed to one worker.
	minChunk = 1 << 12
)

// Option mutates Options.
type Option func(*Options)

// Options holds resolved kernel parameters. Fields are unexported;
// callers configure through WithX constructors.
type Options struct {
	workers   int
	threshold int
}

// WithWorkers bounds the number of goroutines used by element-wise kernels.
// n<=0 selects GOMAXPROCS; n==1 forces serial execution.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the minimum element count that triggers
// parallel execution. n<=0 restores DefaultParallelThreshold.
func WithParallelThreshold(n int) Option {
	return func(o *Options) { o.threshold = n }
}

// gatherOptions applies user options over defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:   DefaultWorkers,
		threshold: DefaultParallelThreshold,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	finalizeOptions(&o)

	return o
}

func finalizeOptions(o *Options) {
	if o.threshold <= 0 {
		o.threshold = DefaultParallelThreshold
	}
}
