package vmath

import (
	"math"

	"github.com/lixenwraith/bounce/core"
)

// FastRand is a seeded xorshift64 generator. Every draw advances the state exactly once
// per call to Next, so a fixed seed and a fixed call order reproduce a run bit-for-bit.
type FastRand struct {
	state uint64
}

// NewFastRand seeds the generator. The seed passes through one splitmix64 round so that
// small neighbouring seeds start from well separated states; zero maps to a fixed non-zero state.
func NewFastRand(seed uint64) *FastRand {
	z := seed + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	if z == 0 {
		z = 1
	}
	return &FastRand{state: z}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform returns a value in [lo, hi)
func (r *FastRand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a value in [lo, hi], both inclusive
func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Angle returns a heading in [0, 2π)
func (r *FastRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}

// Color draws R, G, B in that order, each in [0, 255]
func (r *FastRand) Color() core.RGB {
	red := r.IntRange(0, 255)
	green := r.IntRange(0, 255)
	blue := r.IntRange(0, 255)
	return core.RGB{R: uint8(red), G: uint8(green), B: uint8(blue)}
}

// State exposes the raw generator state for snapshots
func (r *FastRand) State() uint64 {
	return r.state
}
