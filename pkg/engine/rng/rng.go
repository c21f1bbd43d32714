// Package rng implements the xorshift128+ generator used by the game
// (libgdx RandomXS128), bit for bit, with call-position tracking.
package rng

import (
	"fmt"
	"math"
)

// Source is the draw surface consumed by map, card and event generation.
type Source interface {
	NextUint64() uint64
	NextBounded(n uint64) uint64
	Advance(k int)
}

const (
	normDouble = 1.0 / (1 << 53)
	normFloat  = 1.0 / (1 << 24)
)

// Random is a RandomXS128 generator. Position increments with every raw
// 64-bit draw, so a generator can be rebuilt at any point of its sequence.
type Random struct {
	seed   uint64
	state0 uint64
	state1 uint64
	pos    int64
}

// New creates a generator seeded the way libgdx seeds it.
func New(seed uint64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// Restore creates a generator from seed and advances it to position.
func Restore(seed uint64, position int64) *Random {
	r := New(seed)
	for i := int64(0); i < position; i++ {
		r.NextUint64()
	}
	return r
}

// SetSeed resets the state from a 64-bit seed. Zero is replaced by the
// minimum int64 because an all-zero state never leaves zero.
func (r *Random) SetSeed(seed uint64) {
	s := seed
	if s == 0 {
		s = uint64(1) << 63
	}
	s0 := murmurHash3(s)
	r.seed = seed
	r.SetState(s0, murmurHash3(s0))
}

// SetState overwrites both halves of the internal state and clears the position.
func (r *Random) SetState(s0, s1 uint64) {
	r.state0 = s0
	r.state1 = s1
	r.pos = 0
}

// State returns both halves of the internal state.
func (r *Random) State() (uint64, uint64) {
	return r.state0, r.state1
}

// Seed returns the seed the generator was created with.
func (r *Random) Seed() uint64 {
	return r.seed
}

// Position returns the number of raw draws since seeding.
func (r *Random) Position() int64 {
	return r.pos
}

// NextUint64 returns the next raw 64 bits.
func (r *Random) NextUint64() uint64 {
	s1 := r.state0
	s0 := r.state1
	r.state0 = s0
	s1 ^= s1 << 23
	r.state1 = s1 ^ s0 ^ (s1 >> 17) ^ (s0 >> 26)
	r.pos++
	return r.state1 + s0
}

// NextBounded returns a uniform value in [0, n). It mirrors Java's
// nextLong(n) rejection loop, which works on the signed interpretation.
func (r *Random) NextBounded(n uint64) uint64 {
	if n == 0 || n > math.MaxInt64 {
		panic(fmt.Sprintf("rng: bound %d out of range", n))
	}
	for {
		bits := int64(r.NextUint64() >> 1)
		value := bits % int64(n)
		if bits-value+int64(n-1) >= 0 {
			return uint64(value)
		}
	}
}

// NextInt returns a uniform int in [0, n).
func (r *Random) NextInt(n int) int {
	return int(r.NextBounded(uint64(n)))
}

// NextFloat returns a uniform float32 in [0, 1).
func (r *Random) NextFloat() float32 {
	return float32(float64(r.NextUint64()>>40) * normFloat)
}

// NextDouble returns a uniform float64 in [0, 1).
func (r *Random) NextDouble() float64 {
	return float64(r.NextUint64()>>11) * normDouble
}

// NextBoolean returns the low bit of the next draw.
func (r *Random) NextBoolean() bool {
	return r.NextUint64()&1 != 0
}

// Advance discards k raw draws.
func (r *Random) Advance(k int) {
	for i := 0; i < k; i++ {
		r.NextUint64()
	}
}

// Clone returns an independent copy at the same position.
func (r *Random) Clone() *Random {
	c := *r
	return &c
}

func murmurHash3(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
