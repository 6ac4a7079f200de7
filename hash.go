package swiss

import (
	"hash/maphash"
	"math/bits"
)

// DefaultPolicy returns the Policy used when no Option supplies a custom
// hasher: Go's built-in equality and maphash.Comparable with a fresh random
// seed made for each call.
// Grounded on homier-stablemap/hash.go's MakeDefaultHashFunc.
func DefaultPolicy[K comparable]() Policy[K] {
	seed := maphash.MakeSeed()
	return comparablePolicy[K]{
		hash: func(k K) uint64 { return maphash.Comparable(seed, k) },
	}
}

// RotateMulHash is the incremental hash helper spec.md §6.2 describes for
// policy authors hashing raw byte spans: state starts at 0, and each
// (up to) 8-byte little-endian chunk is folded in as
// state = rotl(state, 5) ^ chunk; state *= mul. Not cryptographic --
// intended as a reasonable default the way the spec describes it.
//
// Grounded on OrlovEvgeny-go-mcache/internal/hash's per-type hash helpers,
// which fill the same "hash primitives for a data-structure package" role
// using FNV-1a/splitmix64 instead; this implements the exact rotate-multiply
// mix spec.md specifies rather than that repo's algorithms.
func RotateMulHash(data []byte) uint64 {
	const mul = 0x517cc1b727220a95
	var state uint64
	for len(data) > 0 {
		n := len(data)
		if n > 8 {
			n = 8
		}
		var chunk uint64
		for i := 0; i < n; i++ {
			chunk |= uint64(data[i]) << (8 * i)
		}
		state = bits.RotateLeft64(state, 5) ^ chunk
		state *= mul
		data = data[n:]
	}
	return state
}
