// Package noisehash provides a small, deterministic, non-cryptographic
// 32-bit hash and a seeded pseudo-random generator built on top of it.
//
// The hash folds every input byte into a running checksum through a fixed
// noise function: a table-driven subtraction followed by one of four
// hand-picked bit-permutation networks. It is reproducible across
// platforms and intended for test data, seeding and bucketing. It makes no
// claim of collision or preimage resistance.
//
// Example usage:
//
//	sum := noisehash.Hash([]byte("block data"))
//
//	h := noisehash.NewHasher()
//	h.Add([]byte("block "))
//	h.Add([]byte("data"))
//	// h.Value() == sum
//
//	g := noisehash.NewGenerator(2312)
//	x := g.Next()
//	f := g.NextFloat(-1, 1)
package noisehash

const (
	// InitialChecksum is the checksum of the empty input and the starting
	// state of every Hasher.
	InitialChecksum uint32 = 0xac3b843b

	// byteSalt is added to every input byte before the rotation step.
	byteSalt uint32 = 1057592071
)

// Hash returns the 32-bit checksum of data. An empty or nil slice hashes
// to InitialChecksum.
func Hash(data []byte) uint32 {
	return update(InitialChecksum, data)
}

// update folds data into cs and returns the new checksum.
func update(cs uint32, data []byte) uint32 {
	for _, b := range data {
		cs = mix(cs, b)
	}
	return cs
}

// mix folds a single byte into the checksum.
func mix(cs uint32, b byte) uint32 {
	w := uint32(b)
	cs += noise(w>>4 + cs)
	cs += noise(cs + w*238)
	cs ^= noise(RotateRight32(byteSalt+w, 15))
	return cs
}
