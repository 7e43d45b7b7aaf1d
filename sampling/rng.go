// SPDX-License-Identifier: MIT

package sampling

// Source supplies uniform integers in [0, n).
// Both *LCG and *math/rand/v2.Rand satisfy it.
type Source interface {
	IntN(n int) int
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer. Distinct streams of one parent give
// decorrelated children, e.g. one generator per cross-validation fold.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// NewStream returns an LCG seeded with DeriveSeed(parent, stream).
// Use during setup to give each worker its own generator.
func NewStream(parent int64, stream uint64) *LCG {
	return NewLCG(DeriveSeed(parent, stream))
}
