package hash

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// GenerateSeed returns a random 32-bit seed suitable for NewStore. Falls
// back to the current time if the system entropy source is unavailable.
func GenerateSeed() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint32(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint32(b[:])
}

// murmur2 computes MurmurHash2 (32-bit) over data, seeded with seed.
//
// This is a direct port of Austin Appleby's original algorithm: the
// constant 'm' and the per-word mix are load-bearing and must not be
// "simplified" - changing either changes every hash value the table has
// ever produced.
func murmur2(data []byte, seed uint32) uint32 {
	const (
		m = 0x5bd1e995
		r = 24
	)

	h := seed ^ uint32(len(data))

	for len(data) >= 4 {
		k := binary.LittleEndian.Uint32(data)
		k *= m
		k ^= k >> r
		k *= m

		h *= m
		h ^= k

		data = data[4:]
	}

	switch len(data) {
	case 3:
		h ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(data[0])
		h *= m
	}

	h ^= h >> 13
	h *= m
	h ^= h >> 15

	return h
}

// hashKey hashes a key string against the table's seed.
func hashKey(key string, seed uint32) uint32 {
	return murmur2([]byte(key), seed)
}
