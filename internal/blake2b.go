// Package internal wraps the golang.org/x/crypto primitives used to turn
// arbitrary keys into generator seeds.
package internal

import (
	"golang.org/x/crypto/blake2b"
)

// Blake2b256 computes a 256-bit Blake2b hash (32 bytes).
func Blake2b256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// Blake2bKeyed256 computes a keyed 256-bit Blake2b hash. Keys longer than
// 64 bytes are rejected by blake2b.
func Blake2bKeyed256(data, key []byte) ([]byte, error) {
	hasher, err := blake2b.New256(key)
	if err != nil {
		return nil, err
	}
	hasher.Write(data)
	return hasher.Sum(nil), nil
}
