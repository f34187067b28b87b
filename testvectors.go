package noisehash

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// TestVector represents a single hash test case.
type TestVector struct {
	Name     string `json:"name"`
	Input    string `json:"input"`
	InputHex string `json:"input_hex,omitempty"` // Alternative hex-encoded input
	Expected string `json:"expected"`            // Hex-encoded expected checksum
}

// SequenceVector is the expected start of a generator sequence for a seed.
type SequenceVector struct {
	Name     string   `json:"name"`
	Seed     uint32   `json:"seed"`
	Expected []string `json:"expected"` // Hex-encoded draws, in order
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string           `json:"version"`
	Description string           `json:"description"`
	Vectors     []TestVector     `json:"vectors"`
	Sequences   []SequenceVector `json:"sequences,omitempty"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	traceLog("loaded %d hash vectors and %d sequences from %s", len(suite.Vectors), len(suite.Sequences), path)
	return &suite, nil
}

// GetInput returns the decoded input bytes for a test vector.
// If InputHex is set, it decodes from hex, otherwise uses Input as UTF-8.
func (tv *TestVector) GetInput() ([]byte, error) {
	if tv.InputHex != "" {
		input, err := hex.DecodeString(tv.InputHex)
		if err != nil {
			return nil, fmt.Errorf("invalid input hex: %w", err)
		}
		return input, nil
	}
	return []byte(tv.Input), nil
}

// GetExpected returns the decoded expected checksum.
func (tv *TestVector) GetExpected() (uint32, error) {
	return parseWord(tv.Expected)
}

// GetExpected returns the decoded expected draws.
func (sv *SequenceVector) GetExpected() ([]uint32, error) {
	out := make([]uint32, len(sv.Expected))
	for i, s := range sv.Expected {
		v, err := parseWord(s)
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseWord(s string) (uint32, error) {
	if len(s) != 8 {
		return 0, fmt.Errorf("expected checksum must be 8 hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid expected checksum: %w", err)
	}
	return uint32(v), nil
}
