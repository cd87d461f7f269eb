package core

import "math/rand/v2"

// seedStream selects the PCG increment stream. The seed is used whole as the
// other half of the generator state.
const seedStream = 0x9E3779B97F4A7C15

// NewRNG returns the generator a walk draws from. Every bit of seed reaches the state,
// so distinct seeds give distinct streams.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seedStream))
}
