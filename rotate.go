package noisehash

import "math/bits"

// RotateLeft32 returns w rotated left by k bits. The amount is taken
// modulo 32, so 0, 32 and -32 all leave w unchanged and negative amounts
// rotate left by the equivalent positive amount.
func RotateLeft32(w uint32, k int) uint32 {
	return bits.RotateLeft32(w, k&31)
}

// RotateRight32 returns w rotated right by k bits, modulo 32.
func RotateRight32(w uint32, k int) uint32 {
	return bits.RotateLeft32(w, (32-k&31)&31)
}
