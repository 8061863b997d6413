// Package schedule assigns one answer word to every calendar date.
package schedule

import "unicode/utf16"

// BuildPermutation returns a reproducible ordering of [0, count) derived from
// seedText. The output for a given (count, seedText) must never change: every
// player sees the same word on the same date only because of it.
func BuildPermutation(count int, seedText string) []int {
	if count <= 0 {
		return []int{}
	}
	sequence := make([]int, count)
	for i := range sequence {
		sequence[i] = i
	}
	rng := newMulberry32(hashSeed(seedText))
	for i := count - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		sequence[i], sequence[j] = sequence[j], sequence[i]
	}
	return sequence
}

// hashSeed mixes seedText into a 32-bit seed (xmur3). Input is consumed as
// UTF-16 code units so non-ASCII seeds hash identically to the web build.
func hashSeed(seedText string) uint32 {
	units := utf16.Encode([]rune(seedText))
	h := uint32(1779033703) ^ uint32(len(units))
	for _, u := range units {
		h = (h ^ uint32(u)) * 3432918353
		h = h<<13 | h>>19
	}
	h = (h ^ h>>16) * 2246822507
	h = (h ^ h>>13) * 3266489909
	h ^= h >> 16
	return h
}

// mulberry32 is a small 32-bit generator. All arithmetic wraps at 32 bits.
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed uint32) *mulberry32 {
	return &mulberry32{state: seed}
}

// Uint32 advances the generator.
func (m *mulberry32) Uint32() uint32 {
	m.state += 0x6d2b79f5
	v := m.state
	v = (v ^ v>>15) * (v | 1)
	v ^= v + (v^v>>7)*(v|61)
	return v ^ v>>14
}

// Float64 returns a value in [0, 1) with 32 bits of resolution.
func (m *mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296
}
