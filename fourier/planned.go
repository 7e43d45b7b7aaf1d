// SPDX-License-Identifier: MIT

package fourier

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// planPools maps n to a *sync.Pool of *algofft.Plan[complex128]. A plan owns
// scratch space, so each goroutine borrows its own.
var planPools sync.Map

func borrowPlan(n int) (*algofft.Plan[complex128], *sync.Pool, error) {
	p, _ := planPools.LoadOrStore(n, &sync.Pool{})
	pool := p.(*sync.Pool)
	if plan, ok := pool.Get().(*algofft.Plan[complex128]); ok {
		return plan, pool, nil
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("fourier: failed to create FFT plan (n=%d): %w", n, err)
	}

	return plan, pool, nil
}

// plannedForward computes the forward transform of buf in place with an
// algo-fft plan. Callers guarantee len(buf) is a power of two.
func plannedForward(buf []complex128) error {
	plan, pool, err := borrowPlan(len(buf))
	if err != nil {
		return err
	}
	defer pool.Put(plan)

	if err = plan.Forward(buf, buf); err != nil {
		return fmt.Errorf("fourier: forward FFT failed: %w", err)
	}

	return nil
}
