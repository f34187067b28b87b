package noisehash

import (
	"encoding/binary"
	"fmt"

	"github.com/opd-ai/go-noisehash/internal"
)

// DeriveSeed maps an arbitrary key to a generator seed: the first four
// bytes of its BLAKE2b-256 digest, read little-endian. The same key always
// gives the same seed.
func DeriveSeed(key []byte) uint32 {
	digest := internal.Blake2b256(key)
	seed := binary.LittleEndian.Uint32(digest[:4])
	traceBytes("derive seed key", key)
	traceWord("derived seed", seed)
	return seed
}

// DeriveKeyedSeed is DeriveSeed with a BLAKE2b key mixed in, so one
// application key can namespace many seeds. The key must not exceed 64
// bytes.
func DeriveKeyedSeed(data, key []byte) (uint32, error) {
	digest, err := internal.Blake2bKeyed256(data, key)
	if err != nil {
		return 0, fmt.Errorf("noisehash: derive keyed seed: %w", err)
	}
	return binary.LittleEndian.Uint32(digest[:4]), nil
}

// DeriveSeedFromPassphrase stretches a human-chosen passphrase with Argon2id
// before taking the first four digest bytes as the seed.
func DeriveSeedFromPassphrase(passphrase, salt []byte) uint32 {
	digest := internal.Argon2Seed(passphrase, salt, internal.DefaultSeedArgon2Config())
	seed := binary.LittleEndian.Uint32(digest[:4])
	traceWord("passphrase seed", seed)
	return seed
}
