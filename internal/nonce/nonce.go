// Package nonce provides the random suffix source for encoded commands.
//
// The nonce is the only non-deterministic input to a planning request. It is
// injected as a Source so tests can pin it and verify commands byte for byte.
package nonce

import "math/rand/v2"

// Source produces 32-bit nonce values.
type Source interface {
	// Uint32 returns the next nonce.
	Uint32() uint32
}

// RandomSource draws from the process-wide generator, which is randomly
// seeded at startup.
type RandomSource struct{}

// Uint32 returns a random value.
func (s *RandomSource) Uint32() uint32 {
	return rand.Uint32()
}

// SeededSource is a reproducible generator for a given seed.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a SeededSource. Equal seeds yield equal sequences.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Uint32 returns the next value of the seeded sequence.
func (s *SeededSource) Uint32() uint32 {
	return s.rng.Uint32()
}

// FixedSource returns the same value on every call, for testing.
type FixedSource struct {
	value uint32
}

// NewFixedSource creates a FixedSource returning v.
func NewFixedSource(v uint32) *FixedSource {
	return &FixedSource{value: v}
}

// Uint32 returns the fixed value.
func (s *FixedSource) Uint32() uint32 {
	return s.value
}

// Set changes the fixed value.
func (s *FixedSource) Set(v uint32) {
	s.value = v
}

// SequenceSource returns the given values in order, wrapping around.
type SequenceSource struct {
	values []uint32
	next   int
}

// NewSequenceSource creates a SequenceSource. With no values it always returns 0.
func NewSequenceSource(values ...uint32) *SequenceSource {
	return &SequenceSource{values: values}
}

// Uint32 returns the next value in the sequence.
func (s *SequenceSource) Uint32() uint32 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
