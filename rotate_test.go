package noisehash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const rotateSample uint32 = 0b11010100101010001010100100101010

func TestRotateLeft32(t *testing.T) {
	tests := []struct {
		name string
		k    int
		want uint32
	}{
		{"zero", 0, rotateSample},
		{"full turn", 32, rotateSample},
		{"five", 5, 0b10010101000101010010010101011010},
		{"full turn plus five", 32 + 5, 0b10010101000101010010010101011010},
		{"negative full turn", -32, rotateSample},
		{"minus 27 equals five", -27, 0b10010101000101010010010101011010},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RotateLeft32(rotateSample, tt.k))
		})
	}
}

func TestRotateRight32(t *testing.T) {
	tests := []struct {
		name string
		k    int
		want uint32
	}{
		{"zero", 0, rotateSample},
		{"full turn", 32, rotateSample},
		{"five", 5, 0b01010110101001010100010101001001},
		{"full turn plus five", 32 + 5, 0b01010110101001010100010101001001},
		{"fifteen", 15, 0b01010010010101011010100101010001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RotateRight32(rotateSample, tt.k))
		})
	}
}

func TestRotateModuloFolding(t *testing.T) {
	words := []uint32{0, 1, 0x80000000, 0xdeadbeef, rotateSample, 0xffffffff}
	for _, w := range words {
		for k := -96; k <= 96; k++ {
			m := ((k % 32) + 32) % 32
			if RotateLeft32(w, k) != RotateLeft32(w, m) {
				t.Fatalf("RotateLeft32(%#x, %d) != RotateLeft32(%#x, %d)", w, k, w, m)
			}
			if RotateRight32(RotateLeft32(w, k), k) != w {
				t.Fatalf("RotateRight32 does not invert RotateLeft32 for w=%#x k=%d", w, k)
			}
			if RotateRight32(w, k) != RotateLeft32(w, 32-m) {
				t.Fatalf("RotateRight32(%#x, %d) is not a left rotation by %d", w, k, 32-m)
			}
		}
	}
}
