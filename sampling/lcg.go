// SPDX-License-Identifier: MIT
// Package sampling - seeded random sources and index samplers.
//
// This file defines LCG, the 48-bit linear congruential generator documented
// for java.util.Random. Draw sequences are part of the package contract: the
// same seed yields the same indices on every platform and release that keeps
// LCGVersion unchanged.
//
// Concurrency:
//   - LCG is NOT goroutine-safe. Derive one generator per worker with
//     NewStream instead of sharing.
package sampling

import "fmt"

// LCGVersion identifies the draw sequence produced by LCG. It changes only
// if the generator's output for a given seed changes.
const LCGVersion = 1

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = 1<<48 - 1
)

// LCG is a java.util.Random compatible generator:
// seed' = (seed·0x5DEECE66D + 0xB) mod 2^48.
type LCG struct {
	seed uint64
}

// Compile-time assertion: LCG is usable wherever a Source is expected.
var _ Source = (*LCG)(nil)

// NewLCG returns a generator initialized like java.util.Random(seed).
// Every seed, including 0, is used verbatim.
func NewLCG(seed int64) *LCG {
	r := &LCG{}
	r.Seed(seed)

	return r
}

// Seed resets the generator state as if freshly constructed with seed.
func (r *LCG) Seed(seed int64) {
	r.seed = (uint64(seed) ^ lcgMultiplier) & lcgMask
}

// next advances the state and returns its top bits (1 <= bits <= 32).
func (r *LCG) next(bits uint) int32 {
	r.seed = (r.seed*lcgMultiplier + lcgAddend) & lcgMask

	return int32(uint32(r.seed >> (48 - bits)))
}

// Int32 returns a uniformly distributed int32 (java nextInt()).
func (r *LCG) Int32() int32 { return r.next(32) }

// IntN returns a uniform int in [0, n) (java nextInt(bound)).
// Power-of-two bounds take the high bits directly; other bounds use the
// rejection loop that removes modulo bias.
// It panics if n <= 0 or n > math.MaxInt32.
func (r *LCG) IntN(n int) int {
	if n <= 0 || n > 1<<31-1 {
		panic(fmt.Sprintf("sampling: LCG.IntN: invalid bound %d", n))
	}
	bound := int32(n)
	v := r.next(31)
	m := bound - 1
	if bound&m == 0 {
		return int((int64(bound) * int64(v)) >> 31)
	}
	for u := v; ; u = r.next(31) {
		v = u % bound
		if u-v+m >= 0 { // int32 overflow signals a draw from the biased tail
			return int(v)
		}
	}
}

// Uint64 returns 64 uniformly distributed bits (java nextLong()), which
// makes LCG a math/rand/v2.Source.
func (r *LCG) Uint64() uint64 {
	hi := int64(r.next(32))
	lo := int64(r.next(32))

	return uint64(hi<<32 + lo)
}

// Float64 returns a uniform float64 in [0, 1) with 53 random bits (java nextDouble()).
func (r *LCG) Float64() float64 {
	hi := int64(r.next(26))
	lo := int64(r.next(27))

	return float64(hi<<27+lo) * 0x1p-53
}
