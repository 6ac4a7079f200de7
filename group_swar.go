package swiss

import "encoding/binary"

// 8-wide SWAR group matching, ported from the classic "haszero" bit trick:
// XOR the target byte across every lane, then a byte is zero in the XORed
// word exactly where the original byte equalled the target. Grounded on
// homier-stablemap/bits.go's matchH2/matchEmpty/matchEmptyOrDeleted, which
// implement the identical trick for an 8-byte group.
const (
	swarLSB uint64 = 0x0101010101010101
	swarMSB uint64 = 0x8080808080808080
)

func loadWord8(window []byte) uint64 {
	return binary.LittleEndian.Uint64(window[:8])
}

// matchByteSWAR returns a bitMask (shift=3: match flag is the MSB of each
// byte lane) of the lanes in word equal to b. Empty/Deleted/Sentinel never
// match, because they all have bit 7 set while Full(h2) never does. The
// borrow in the haszero trick can also flag a Full byte equal to b^0x01
// that sits directly above a real match; callers filter every reported
// lane through the key equality check.
func matchByteSWAR(word uint64, b byte) bitMask {
	v := word ^ (swarLSB * uint64(b))
	haszero := (v - swarLSB) &^ v & swarMSB
	return newBitMask(haszero, 8, 3)
}

// matchEmptySWAR exploits Empty == 0x80: a lane is Empty iff its MSB is set
// and bit 6 is clear (Deleted == 0xFE has both set).
func matchEmptySWAR(word uint64) bitMask {
	return newBitMask((word &^ (word << 1)) & swarMSB, 8, 3)
}

// matchEmptyOrDeletedSWAR: Empty (0x80) and Deleted (0xFE) both have bit 7
// set and bit 0 clear; Sentinel (0xFF) has bit 7 set too but must be
// excluded, so the MSB-only test isn't enough -- also require bit 0 clear,
// per cwisstable's CWISS_Group_MatchEmptyOrDeleted SWAR arm:
// self & (~self << 7) & msbs.
func matchEmptyOrDeletedSWAR(word uint64) bitMask {
	return newBitMask(word&(^word<<7)&swarMSB, 8, 3)
}

// countLeadingEmptyOrDeletedSWAR counts lanes from the start that are
// Empty/Deleted until the first Full or Sentinel lane.
func countLeadingEmptyOrDeletedSWAR(word uint64) int {
	// Sentinel (0xFF) and Full(h2) (0x0-0x7F) are the only bytes for which
	// byte-1 does not borrow into the MSB of the *next* lower byte the way
	// Empty/Deleted's low 7 bits do; the cwisstable trick is to add 1 to
	//(word | MSB) so any Full byte's leading 0 bit in position 7 blocks
	// the carry chain. We use the simpler, equivalent direct scan here
	// since width is only 8 and this is not the hot path (its only caller is
	// the iterator's skipEmptyOrDeleted).
	for i := 0; i < 8; i++ {
		b := byte(word >> (8 * i))
		if int8(b) >= 0 || b == ctrlSentinelByte() {
			return i
		}
	}
	return 8
}

// convertSpecialToEmptyAndFullToDeletedSWAR rewrites each lane of window
// into dst: every Full byte becomes Deleted, every Empty/Deleted/Sentinel
// byte becomes Empty. This is not hot-path (dropDeletesWithoutResize does
// the same rewrite in its own loop), so it stays a direct per-byte loop (matching
// homier-stablemap/table.go's Compact, which does the same rewrite as a
// plain loop rather than a bit trick) instead of a packed SWAR formula.
func convertSpecialToEmptyAndFullToDeletedSWAR(window []byte, dst []byte) {
	for i := 0; i < 8; i++ {
		if int8(window[i]) >= 0 {
			dst[i] = ctrlDeletedByte()
		} else {
			dst[i] = ctrlEmptyByte()
		}
	}
}
