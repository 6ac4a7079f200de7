package swiss

// Control byte states. The encoding is chosen so that a single sign check
// distinguishes Full from the three special states, and so the ordering
// ctrlEmpty < ctrlDeleted < ctrlSentinel (as signed bytes) lets a SIMD/SWAR
// compare do double duty as a "less than sentinel" test.
const (
	ctrlEmpty    int8 = -128 // 0x80
	ctrlDeleted  int8 = -2   // 0xFE
	ctrlSentinel int8 = -1   // 0xFF
)

func ctrlEmptyByte() byte    { return byte(ctrlEmpty) }
func ctrlDeletedByte() byte  { return byte(ctrlDeleted) }
func ctrlSentinelByte() byte { return byte(ctrlSentinel) }

// h1 is the upper bits of a hash, used to pick a starting group. ctrlSeed is
// a pointer-derived value XORed in so iteration order differs across table
// instances; we use the address of the first byte of the table's control
// array as the seed source (see ctrlSeed in rawtable.go).
func h1(hash uint64, seed uint64) uint64 {
	return (hash >> 7) ^ (seed >> 12)
}

// h2 is the low 7 bits of a hash, stored in a Full control byte.
func h2(hash uint64) byte {
	return byte(hash & 0x7f)
}

// numClonedBytes is the number of control bytes mirrored past the sentinel
// so that any group load starting at an index in [0, capacity] reads valid
// data without special-casing wraparound.
func numClonedBytes(groupWidth int) int {
	return groupWidth - 1
}

// resetCtrl writes Empty over the whole control array (including the
// cloned tail) and then restores the Sentinel byte at ctrl[capacity].
func resetCtrl(ctrl []byte, capacity uintptr, groupWidth int) {
	n := int(capacity) + 1 + numClonedBytes(groupWidth)
	e := ctrlEmptyByte()
	for i := 0; i < n; i++ {
		ctrl[i] = e
	}
	ctrl[capacity] = ctrlSentinelByte()
}

// setCtrl writes ctrl[i] = val and, if i falls in the cloned prefix region
// or is the mirror source for a cloned-tail byte, writes the mirrored copy
// too. The branchless formula below is the cwisstable mirror expression:
// the mirror target coincides with i itself whenever i is not in the
// cloned region, making the second write a harmless no-op duplicate.
func setCtrl(ctrl []byte, i, capacity uintptr, groupWidth int, val byte) {
	ctrl[i] = val

	clonedBytes := uintptr(numClonedBytes(groupWidth))
	mirror := ((i - clonedBytes) & capacity) + (clonedBytes & capacity)
	ctrl[mirror] = val
}
