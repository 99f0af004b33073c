// Package randutil centralises how the engine derives seeded RNGs so that
// every call site gets a reproducible sequence from a single int64 seed.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Two mixed
// derivatives of seed feed the two 64-bit PCG seeds required by rand/v2.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive produces a child seed from a parent seed and a small integer
// discriminator, so that e.g. "sample 5 of round seed 42" is reproducible
// without threading a second seed value through every call site.
func Derive(seed int64, discriminator int) int64 {
	return int64(mix(uint64(seed) ^ (uint64(discriminator) * goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
