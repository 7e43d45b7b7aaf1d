// SPDX-License-Identifier: MIT

// Package stats keeps streaming summaries of float64 observations.
//
// Running uses Welford's update, so mean and variance stay accurate for long
// streams without storing the data. The zero value is an empty accumulator.
//
// Concurrency:
//   - Running is NOT goroutine-safe. Give each goroutine its own accumulator
//     and combine them with Merge.
package stats

import "math"

// Running accumulates count, mean, the sum of squared deviations (m2), and
// the extrema of the values passed to Add.
type Running struct {
	count int
	mean  float64
	m2    float64
	min   float64
	max   float64
}

// Summary is a point-in-time snapshot of a Running accumulator.
type Summary struct {
	Count    int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Add records one observation.
//
// Complexity: O(1).
func (r *Running) Add(x float64) {
	r.count++
	if r.count == 1 {
		r.mean, r.m2 = x, 0
		r.min, r.max = x, x
		return
	}
	delta := x - r.mean
	r.mean += delta / float64(r.count)
	r.m2 += delta * (x - r.mean)
	if x < r.min {
		r.min = x
	}
	if x > r.max {
		r.max = x
	}
}

// AddAll records xs in order.
func (r *Running) AddAll(xs ...float64) {
	for _, x := range xs {
		r.Add(x)
	}
}

// Count returns the number of observations.
func (r *Running) Count() int { return r.count }

// Empty reports whether nothing has been added.
func (r *Running) Empty() bool { return r.count == 0 }

// Mean returns the arithmetic mean, 0 when empty.
func (r *Running) Mean() float64 { return r.mean }

// Variance returns the population variance m2/count, 0 for fewer than two
// observations.
func (r *Running) Variance() float64 {
	if r.count <= 1 {
		return 0
	}

	return r.m2 / float64(r.count)
}

// SampleVariance returns the unbiased variance m2/(count-1), 0 for fewer
// than two observations.
func (r *Running) SampleVariance() float64 {
	if r.count <= 1 {
		return 0
	}

	return r.m2 / float64(r.count-1)
}

// StdDev returns the square root of Variance.
func (r *Running) StdDev() float64 { return math.Sqrt(r.Variance()) }

// Min returns the smallest observation, +Inf when empty.
func (r *Running) Min() float64 {
	if r.count == 0 {
		return math.Inf(1)
	}

	return r.min
}

// Max returns the largest observation, -Inf when empty.
func (r *Running) Max() float64 {
	if r.count == 0 {
		return math.Inf(-1)
	}

	return r.max
}

// Merge folds other into r as if every observation of other had been added
// to r (Chan, Golub and LeVeque pairwise update). Rounding may differ from a
// single sequential pass in the last bits.
func (r *Running) Merge(other Running) {
	switch {
	case other.count == 0:
		return
	case r.count == 0:
		*r = other
		return
	}
	na, nb := float64(r.count), float64(other.count)
	n := na + nb
	delta := other.mean - r.mean
	r.mean += delta * nb / n
	r.m2 += other.m2 + delta*delta*na*nb/n
	r.count += other.count
	r.min = math.Min(r.min, other.min)
	r.max = math.Max(r.max, other.max)
}

// Reset empties the accumulator.
func (r *Running) Reset() { *r = Running{} }

// Summary returns a snapshot of every statistic.
func (r *Running) Summary() Summary {
	return Summary{
		Count:    r.count,
		Mean:     r.mean,
		Variance: r.Variance(),
		StdDev:   r.StdDev(),
		Min:      r.Min(),
		Max:      r.Max(),
	}
}
