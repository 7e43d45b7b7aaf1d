// SPDX-License-Identifier: MIT
package stats_test

import (
	"fmt"

	"github.com/isaksamsten/briljant-sub012/stats"
)

func ExampleRunning() {
	var r stats.Running
	r.AddAll(10, 20, 30)
	fmt.Printf("n=%d mean=%.1f var=%.2f min=%g max=%g\n",
		r.Count(), r.Mean(), r.Variance(), r.Min(), r.Max())
	// Output:
	// n=3 mean=20.0 var=66.67 min=10 max=30
}
