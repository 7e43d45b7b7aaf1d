// SPDX-License-Identifier: MIT

package linalg

import "math"

// Option configures Decompose.
type Option func(*Options)

// Options holds resolved decomposition parameters.
type Options struct {
	tol            float64 // absolute pivot threshold; <0 means "derive from input"
	tolErr         error   // deferred validation error from WithTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// DefaultValidateNaNInf makes Decompose reject NaN and ±Inf entries.
const DefaultValidateNaNInf = true

// WithTolerance sets an absolute singularity threshold: a pivot p with
// |p| <= tol marks the matrix singular. tol == 0 restricts detection to
// exact zero pivots. Negative or NaN values make Decompose fail with
// ErrInvalidTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) {
			o.tolErr = ErrInvalidTolerance
			return
		}
		o.tol, o.tolErr = tol, nil
	}
}

// WithValidateNaNInf makes Decompose fail with ErrNaNInf on any NaN or ±Inf
// entry. This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets non-finite entries into the elimination.
// A NaN pivot then marks the decomposition singular, and an infinite entry
// makes the default tolerance +Inf, so every pivot counts as singular.
// Pass WithTolerance to keep a finite threshold.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{tol: -1, validateNaNInf: DefaultValidateNaNInf}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// defaultTolerance is n·ε·max|a_ij|, the rounding error scale of
// Gaussian elimination on an n×n input.
func defaultTolerance(n int, maxAbs float64) float64 {
	const eps = 0x1p-52 // float64 machine epsilon

	return float64(n) * eps * maxAbs
}
