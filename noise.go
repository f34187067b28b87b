package noisehash

// noiseTable is the fixed constant set subtracted from a noise index
// before it is scrambled. Indexed by the low five bits of the index.
var noiseTable = [32]uint32{
	0x347cf746, 0x7b840e02, 0x4b6e3c4e, 0x489b06c6,
	0x2ba14c6e, 0x4572434a, 0x04600530, 0x7f9acc78,
	0x50a98955, 0x071b0827, 0x15690047, 0x6c68f552,
	0x5fc52edf, 0x61ca273b, 0x44e4c5f4, 0x6a8f5fc5,
	0x01fc910a, 0x29e9de3f, 0x2788c41e, 0x6b5c5ce4,
	0x39d672de, 0x6d7680bf, 0x511f385d, 0x577fa18f,
	0x7aa4ca0d, 0x671710ed, 0x127e0c78, 0x567cb335,
	0x65f0a296, 0x3f0eaf85, 0x4e838e1f, 0x1a6d99dd,
}

// noise maps an arbitrary index to a noise word: the table constant picked
// by the low five bits is subtracted, and the difference is routed through
// the scramble network picked by the low two bits.
func noise(index uint32) uint32 {
	c := noiseTable[index&(uint32(len(noiseTable))-1)]
	return scramble(int(index&(uint32(len(scrambleNetworks))-1)), index-c)
}
