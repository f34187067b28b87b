package noisehash

import (
	"encoding/binary"
	"errors"
	"hash"
)

// Make sure interfaces are correctly implemented.
var (
	_ hash.Hash   = (*Hasher)(nil)
	_ hash.Hash32 = (*Hasher)(nil)
)

const (
	hasherMagic         = "nhh\x01"
	marshaledHasherSize = len(hasherMagic) + 4
)

// ErrInvalidState is returned when unmarshalling a Hasher or Generator
// state from bytes that were not produced by the matching MarshalBinary.
var ErrInvalidState = errors.New("noisehash: invalid state")

// Hasher computes the checksum of a byte stream incrementally. Feeding it
// chunk A and then chunk B yields the same value as Hash over A followed
// by B.
//
// Create one with NewHasher; the zero value starts from a checksum of 0
// rather than InitialChecksum. A Hasher is not safe for concurrent use.
type Hasher struct {
	cs uint32
}

// NewHasher returns a Hasher holding InitialChecksum.
func NewHasher() *Hasher {
	return &Hasher{cs: InitialChecksum}
}

// Add folds p into the running checksum.
func (h *Hasher) Add(p []byte) {
	h.cs = update(h.cs, p)
}

// Value returns the current checksum without modifying it.
func (h *Hasher) Value() uint32 {
	return h.cs
}

// Write implements io.Writer. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.Add(p)
	return len(p), nil
}

// Sum32 is Value, for hash.Hash32.
func (h *Hasher) Sum32() uint32 {
	return h.cs
}

// Sum appends the big-endian checksum to b.
func (h *Hasher) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, h.cs)
}

// Reset restores InitialChecksum.
func (h *Hasher) Reset() {
	h.cs = InitialChecksum
}

// Size returns the number of bytes Sum appends.
func (h *Hasher) Size() int { return 4 }

// BlockSize returns 1; the hash consumes input a byte at a time.
func (h *Hasher) BlockSize() int { return 1 }

// MarshalBinary encodes the running checksum so the stream can be resumed later.
func (h *Hasher) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledHasherSize)
	b = append(b, hasherMagic...)
	return binary.BigEndian.AppendUint32(b, h.cs), nil
}

// UnmarshalBinary restores a checksum produced by MarshalBinary.
func (h *Hasher) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledHasherSize || string(b[:len(hasherMagic)]) != hasherMagic {
		return ErrInvalidState
	}
	h.cs = binary.BigEndian.Uint32(b[len(hasherMagic):])
	return nil
}
