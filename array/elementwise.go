// SPDX-License-Identifier: MIT
// Package array provides element-wise arithmetic on any Array implementation.
// All functions perform strict fail-fast validation, never mutate their
// operands and return a fresh owned *Dense.
//
// Purpose:
//   - Declare the element-wise kernels and their operation tags.
//   - Route contiguous float64 operands through the algo-vecmath block kernels.
//   - Split large outputs across workers; each output slot is written exactly
//     once, so results are identical for every worker count.

package array

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/isaksamsten/briljant-sub012/internal/parallel"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opScale     = "Scale"
	opMatMul    = "MatMul"
	opTranspose = "Transpose"
	opConvert   = "Convert"
	opReal      = "Real"
)

// arrayErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: contiguous float64 operands use vecmath.AddBlock per chunk;
//     everything else runs the generic loop.
//
// Errors: ErrNilArray, ErrShapeMismatch.
// Complexity: O(r*c) time, one allocation for the result.
func Add[T Element](a, b Array[T], opts ...Option) (*Dense[T], error) {
	return binary(opAdd, a, b, opts, func(x, y T) T { return x + y })
}

// Sub computes the element-wise difference C = A - B.
// The float64 fast path evaluates A + (-B), which is exact in IEEE-754.
func Sub[T Element](a, b Array[T], opts ...Option) (*Dense[T], error) {
	return binary(opSub, a, b, opts, func(x, y T) T { return x - y })
}

// Mul computes the element-wise (Hadamard) product C = A ∘ B.
func Mul[T Element](a, b Array[T], opts ...Option) (*Dense[T], error) {
	return binary(opMul, a, b, opts, func(x, y T) T { return x * y })
}

// Div computes the element-wise quotient C = A / B.
// int32 operands report ErrDivideByZero instead of panicking; float64 and
// complex128 follow IEEE-754 (±Inf / NaN).
func Div[T Element](a, b Array[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, arrayErrorf(opDiv, err)
	}
	var zero T
	if _, isInt := any(zero).(int32); isInt {
		var bad error
		visit(b, func(i, j int, v T) bool {
			if v == zero {
				bad = fmt.Errorf("at (%d,%d): %w", i, j, ErrDivideByZero)
				return false
			}
			return true
		})
		if bad != nil {
			return nil, arrayErrorf(opDiv, bad)
		}
	}

	return binary(opDiv, a, b, opts, func(x, y T) T { return x / y })
}

// AddScalar returns A + s (broadcast).
func AddScalar[T Element](a Array[T], s T, opts ...Option) (*Dense[T], error) {
	return unary(opAddScalar, a, opts, func(x T) T { return x + s }, nil)
}

// SubScalar returns A - s (broadcast).
func SubScalar[T Element](a Array[T], s T, opts ...Option) (*Dense[T], error) {
	return unary(opSubScalar, a, opts, func(x T) T { return x - s }, nil)
}

// Scale returns s·A.
func Scale[T Element](a Array[T], s T, opts ...Option) (*Dense[T], error) {
	var block func(dst, src []float64)
	if k, ok := any(s).(float64); ok {
		block = func(dst, src []float64) { vecmath.ScaleBlock(dst, src, k) }
	}

	return unary(opScale, a, opts, func(x T) T { return x * s }, block)
}

// binary is the shared driver for array–array kernels.
func binary[T Element](tag string, a, b Array[T], opts []Option, f func(x, y T) T) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	o := gatherOptions(opts...)
	r, c := a.Shape()
	out := newDense[T](r, c)

	as, aok := a.contiguous()
	bs, bok := b.contiguous()
	if aok && bok {
		if block := float64Block(tag, out.data, as, bs); block != nil {
			return out, chunked(len(out.data), o, block)
		}

		return out, chunked(len(out.data), o, func(start, end int) error {
			for p := start; p < end; p++ {
				out.data[p] = f(as[p], bs[p])
			}
			return nil
		})
	}

	return out, chunked(len(out.data), o, func(start, end int) error {
		for p := start; p < end; p++ {
			i, j := p/c, p%c
			out.data[p] = f(a.get(i, j), b.get(i, j))
		}
		return nil
	})
}

// float64Block returns a chunk kernel backed by algo-vecmath when the
// operands are float64 and the operation has a block equivalent.
func float64Block[T Element](tag string, dst, a, b []T) func(start, end int) error {
	d, ok := any(dst).([]float64)
	if !ok {
		return nil
	}
	x, y := any(a).([]float64), any(b).([]float64)

	switch tag {
	case opAdd:
		return func(start, end int) error {
			vecmath.AddBlock(d[start:end], x[start:end], y[start:end])
			return nil
		}
	case opSub:
		return func(start, end int) error {
			vecmath.ScaleBlock(d[start:end], y[start:end], -1)
			vecmath.AddBlockInPlace(d[start:end], x[start:end])
			return nil
		}
	case opMul:
		return func(start, end int) error {
			vecmath.MulBlock(d[start:end], x[start:end], y[start:end])
			return nil
		}
	}

	return nil
}

// unary is the shared driver for scalar-broadcast kernels. block, when
// non-nil, replaces f for contiguous float64 input.
func unary[T Element](tag string, a Array[T], opts []Option, f func(x T) T, block func(dst, src []float64)) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	o := gatherOptions(opts...)
	r, c := a.Shape()
	out := newDense[T](r, c)

	if as, ok := a.contiguous(); ok {
		if d, isF := any(out.data).([]float64); isF && block != nil {
			src := any(as).([]float64)
			return out, chunked(len(d), o, func(start, end int) error {
				block(d[start:end], src[start:end])
				return nil
			})
		}

		return out, chunked(len(out.data), o, func(start, end int) error {
			for p := start; p < end; p++ {
				out.data[p] = f(as[p])
			}
			return nil
		})
	}

	return out, chunked(len(out.data), o, func(start, end int) error {
		for p := start; p < end; p++ {
			out.data[p] = f(a.get(p/c, p%c))
		}
		return nil
	})
}

// chunked runs fn over [0, n) serially below the parallel threshold and
// across resolved workers above it.
func chunked(n int, o Options, fn func(start, end int) error) error {
	workers := 1
	if n >= o.threshold {
		workers = parallel.Workers(o.workers)
	}

	return parallel.For(n, workers, minChunk, fn)
}
