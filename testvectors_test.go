package noisehash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vectorsPath = "testdata/noisehash_vectors.json"

// TestLoadTestVectors verifies test vector loading functionality.
func TestLoadTestVectors(t *testing.T) {
	suite, err := LoadTestVectors(vectorsPath)
	require.NoError(t, err)

	assert.NotEmpty(t, suite.Version)
	require.NotEmpty(t, suite.Vectors)
	require.NotEmpty(t, suite.Sequences)

	t.Logf("Loaded %d hash vectors and %d sequences from version %s",
		len(suite.Vectors), len(suite.Sequences), suite.Version)
}

// TestLoadTestVectors_FileNotFound verifies error handling for missing files.
func TestLoadTestVectors_FileNotFound(t *testing.T) {
	_, err := LoadTestVectors("nonexistent.json")
	assert.Error(t, err)
}

// TestLoadTestVectors_InvalidJSON verifies error handling for invalid JSON.
func TestLoadTestVectors_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "invalid.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte("{invalid json}"), 0644))

	_, err := LoadTestVectors(tmpFile)
	assert.Error(t, err)
}

// TestTestVector_GetInput verifies input extraction from test vectors.
func TestTestVector_GetInput(t *testing.T) {
	tests := []struct {
		name    string
		tv      TestVector
		want    []byte
		wantErr bool
	}{
		{"string_input", TestVector{Input: "test"}, []byte("test"), false},
		{"hex_input", TestVector{InputHex: "deadbeef"}, []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"empty_input", TestVector{}, []byte{}, false},
		{"invalid_hex", TestVector{InputHex: "invalid"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tv.GetInput()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestTestVector_GetExpected verifies expected checksum extraction.
func TestTestVector_GetExpected(t *testing.T) {
	tests := []struct {
		name    string
		tv      TestVector
		want    uint32
		wantErr bool
	}{
		{"valid_checksum", TestVector{Expected: "ac3b843b"}, InitialChecksum, false},
		{"upper_case", TestVector{Expected: "DEADBEEF"}, 0xdeadbeef, false},
		{"invalid_hex", TestVector{Expected: "invalid!"}, 0, true},
		{"wrong_length", TestVector{Expected: "639183aae1bf"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tv.GetExpected()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSequenceVector_GetExpected(t *testing.T) {
	sv := SequenceVector{Expected: []string{"7474bed4", "f923c661"}}
	got, err := sv.GetExpected()
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x7474bed4, 0xf923c661}, got)

	sv.Expected = append(sv.Expected, "xyz")
	_, err = sv.GetExpected()
	assert.ErrorContains(t, err, "draw 2")
}

// TestVectors validates Hash and Hasher against the recorded checksums.
func TestVectors(t *testing.T) {
	suite, err := LoadTestVectors(vectorsPath)
	require.NoError(t, err)

	t.Logf("Description: %s", suite.Description)

	for _, tv := range suite.Vectors {
		t.Run(tv.Name, func(t *testing.T) {
			input, err := tv.GetInput()
			require.NoError(t, err)
			expected, err := tv.GetExpected()
			require.NoError(t, err)

			assert.Equal(t, expected, Hash(input), "Hash(%q)", input)

			h := NewHasher()
			half := len(input) / 2
			h.Add(input[:half])
			h.Add(input[half:])
			assert.Equal(t, expected, h.Value(), "Hasher over %q", input)
		})
	}
}

// TestSequenceVectors validates generator output for recorded seeds.
func TestSequenceVectors(t *testing.T) {
	suite, err := LoadTestVectors(vectorsPath)
	require.NoError(t, err)

	for _, sv := range suite.Sequences {
		t.Run(sv.Name, func(t *testing.T) {
			expected, err := sv.GetExpected()
			require.NoError(t, err)

			g := NewGenerator(sv.Seed)
			for i, want := range expected {
				require.Equal(t, want, g.Next(), "draw %d", i)
			}
		})
	}
}
