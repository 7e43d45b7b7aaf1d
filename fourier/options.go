// SPDX-License-Identifier: MIT

package fourier

// Backend selects the power-of-two transform implementation.
type Backend int

const (
	// BackendRadix2 is the built-in iterative Cooley–Tukey transform.
	BackendRadix2 Backend = iota

	// BackendPlanned routes power-of-two sizes through algo-fft plans.
	BackendPlanned
)

const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers for the direct DFT.
	DefaultWorkers = 0

	// DefaultParallelThreshold is the n² work size below which the direct DFT runs serially.
	DefaultParallelThreshold = 1 << 16

	// dftMinChunk is the smallest number of output bins handed to one worker.
	dftMinChunk = 16
)

// Option configures a transform call.
type Option func(*Options)

// Options holds resolved transform parameters.
type Options struct {
	backend   Backend
	workers   int
	threshold int
}

// WithBackend chooses the power-of-two backend. Unknown values fall back to BackendRadix2.
func WithBackend(b Backend) Option {
	return func(o *Options) { o.backend = b }
}

// WithWorkers bounds the goroutines used by the direct DFT (n not a power of two).
// n<=0 selects GOMAXPROCS; n==1 forces serial execution.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the n² work size that triggers a parallel
// direct DFT. n<=0 restores DefaultParallelThreshold.
func WithParallelThreshold(n int) Option {
	return func(o *Options) { o.threshold = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		backend:   BackendRadix2,
		workers:   DefaultWorkers,
		threshold: DefaultParallelThreshold,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.backend != BackendPlanned {
		o.backend = BackendRadix2
	}
	if o.threshold <= 0 {
		o.threshold = DefaultParallelThreshold
	}

	return o
}
