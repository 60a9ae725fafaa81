package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBits sets each of the first n bits of buf with probability one half.
// Bits past n are cleared.
func (r *RNG) FillBits(buf []byte, n int) {
	for i := range buf {
		buf[i] = 0
	}
	for i := 0; i < n && i/8 < len(buf); i++ {
		if r.Bool() {
			buf[i/8] |= 1 << (i % 8)
		}
	}
}
