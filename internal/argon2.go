package internal

import (
	"golang.org/x/crypto/argon2"
)

// Argon2Config specifies the Argon2id cost used to stretch passphrases.
type Argon2Config struct {
	Time      uint32 // Number of iterations
	Memory    uint32 // Memory in KB
	Threads   uint8  // Parallelism factor
	OutputLen uint32 // Output length in bytes
}

// DefaultSeedArgon2Config returns a deliberately light cost: seeds are not
// secrets, the stretching only spreads similar passphrases apart.
func DefaultSeedArgon2Config() Argon2Config {
	return Argon2Config{
		Time:      1,
		Memory:    64, // 64 KB
		Threads:   1,
		OutputLen: 32,
	}
}

// Argon2Seed derives OutputLen bytes from a passphrase and salt using Argon2id.
func Argon2Seed(passphrase, salt []byte, config Argon2Config) []byte {
	return argon2.IDKey(
		passphrase,
		salt,
		config.Time,
		config.Memory,
		config.Threads,
		config.OutputLen,
	)
}
