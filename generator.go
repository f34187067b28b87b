package noisehash

import (
	"encoding/binary"
	"math"
	"math/rand"
)

var _ rand.Source64 = (*Generator)(nil)

// DefaultSeed is the state of a Generator that was never seeded explicitly.
const DefaultSeed uint32 = 0x3ac4821c

const (
	generatorMagic         = "nhg\x01"
	marshaledGeneratorSize = len(generatorMagic) + 4
)

// Generator is a deterministic pseudo-random generator. Each draw hashes the
// little-endian bytes of the current state and adds the checksum to it, so a
// given seed always yields the same sequence.
//
// The zero value is a valid generator seeded with 0. A Generator is not safe
// for concurrent use; give each goroutine its own instance.
type Generator struct {
	state uint32
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed uint32) *Generator {
	return &Generator{state: seed}
}

// SetSeed overwrites the generator state. Reseeding with a previously used
// seed replays the sequence observed after that seed.
func (g *Generator) SetSeed(seed uint32) {
	traceWord("generator seed", seed)
	g.state = seed
}

// State returns the current state, which is also the last value drawn.
// Passing it to SetSeed resumes the sequence from this point.
func (g *Generator) State() uint32 {
	return g.state
}

// Next advances the state and returns it.
func (g *Generator) Next() uint32 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], g.state)
	g.state += Hash(buf[:])
	return g.state
}

// NextFloat draws a value and scales it linearly into [min, max].
func (g *Generator) NextFloat(min, max float32) float32 {
	return min + (max-min)*(float32(g.Next())/float32(math.MaxUint32))
}

// Uint64 returns two draws combined, the first one in the high word.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.Next())
	return hi<<32 | uint64(g.Next())
}

// Int63 returns a non-negative 63-bit value, for math/rand.Source.
func (g *Generator) Int63() int64 {
	return int64(g.Uint64() & (1<<63 - 1))
}

// Seed reseeds the generator with the low 32 bits of seed, for math/rand.Source.
func (g *Generator) Seed(seed int64) {
	g.SetSeed(uint32(seed))
}

// MarshalBinary encodes the generator state.
func (g *Generator) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledGeneratorSize)
	b = append(b, generatorMagic...)
	return binary.BigEndian.AppendUint32(b, g.state), nil
}

// UnmarshalBinary restores a state produced by MarshalBinary.
func (g *Generator) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledGeneratorSize || string(b[:len(generatorMagic)]) != generatorMagic {
		return ErrInvalidState
	}
	g.state = binary.BigEndian.Uint32(b[len(generatorMagic):])
	return nil
}
