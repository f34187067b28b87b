package noisehash

// scrambleNetworks holds the swap pairs of the four bit-permutation
// networks. Within a network every bit position 0..31 appears exactly once,
// so each network is a fixed permutation and its own inverse.
var scrambleNetworks = [4][16][2]uint8{
	{
		{23, 16}, {25, 13}, {15, 10}, {6, 19}, {3, 2}, {11, 14}, {4, 24}, {20, 18},
		{7, 30}, {0, 29}, {9, 28}, {1, 17}, {12, 27}, {26, 21}, {31, 8}, {22, 5},
	},
	{
		{7, 19}, {30, 6}, {20, 15}, {21, 8}, {24, 12}, {9, 14}, {0, 25}, {1, 17},
		{26, 4}, {31, 23}, {27, 29}, {18, 10}, {2, 16}, {28, 13}, {11, 22}, {5, 3},
	},
	{
		{28, 30}, {10, 31}, {4, 26}, {19, 8}, {5, 0}, {18, 11}, {15, 22}, {14, 1},
		{17, 23}, {16, 29}, {27, 7}, {9, 12}, {2, 25}, {20, 24}, {21, 13}, {3, 6},
	},
	{
		{17, 22}, {20, 16}, {10, 12}, {24, 23}, {21, 5}, {19, 27}, {18, 15}, {14, 8},
		{0, 28}, {2, 4}, {1, 25}, {29, 6}, {26, 31}, {13, 30}, {9, 11}, {3, 7},
	},
}

// swapBits returns the bits at positions p and q of v exchanged, with all
// other bits cleared.
func swapBits(v uint32, p, q uint8) uint32 {
	if p > q {
		p, q = q, p
	}
	d := q - p
	return (v&(1<<p))<<d | (v&(1<<q))>>d
}

// scramble permutes the bits of v through network n (0..3).
func scramble(n int, v uint32) uint32 {
	var out uint32
	for _, pair := range &scrambleNetworks[n] {
		out |= swapBits(v, pair[0], pair[1])
	}
	return out
}
