package swiss

import "encoding/binary"

// 16-wide group matching, modeled on the SSE2 kernel an amd64 build would
// use (PCMPEQB + PMOVMSKB for Match, PCMPGTB-against-Sentinel for
// MatchEmptyOrDeleted, a signed-compare-against-self trick for MatchEmpty
// -- see cwisstable's raw_hash_set and thepudds-swisstable/avo/asm.go's
// commented PCMPEQB/PMOVMSKB kernel). The real instructions are generated
// by avo/asm.go (kept as a `//go:build ignore` tool, see DESIGN.md); this
// file ships the portable-Go emulation of the same observable contract --
// a bitMask with one bit per lane (shift 0) -- built from two 8-lane SWAR
// halves plus a software PMOVMSKB (movemaskMSB8).
//
// Running real hand-written amd64 assembly without the ability to compile
// and test it is how correctness bugs end up permanent; the emulation
// below is exercised by the same tests a real kernel would need to pass.

func loadHalves16(window []byte) (lo, hi uint64) {
	return binary.LittleEndian.Uint64(window[:8]), binary.LittleEndian.Uint64(window[8:16])
}

// movemaskMSB8 gathers the MSB of each byte of word into bits 0..7 of the
// result, lane 0 -> bit 0. Written as a direct loop rather than a
// multiply-based bit-gather trick: the latter is easy to get subtly wrong
// and this is not a hot path in a portable emulation.
func movemaskMSB8(word uint64) uint16 {
	var m uint16
	for i := 0; i < 8; i++ {
		if word&(uint64(1)<<(8*i+7)) != 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

func matchByteSSE2(window []byte, b byte) bitMask {
	lo, hi := loadHalves16(window)
	mlo := matchByteSWAR(lo, b)
	mhi := matchByteSWAR(hi, b)
	word := uint64(movemaskMSB8(mlo.word)) | uint64(movemaskMSB8(mhi.word))<<8
	return newBitMask(word, 16, 0)
}

func matchEmptySSE2(window []byte) bitMask {
	lo, hi := loadHalves16(window)
	mlo := matchEmptySWAR(lo)
	mhi := matchEmptySWAR(hi)
	word := uint64(movemaskMSB8(mlo.word)) | uint64(movemaskMSB8(mhi.word))<<8
	return newBitMask(word, 16, 0)
}

func matchEmptyOrDeletedSSE2(window []byte) bitMask {
	lo, hi := loadHalves16(window)
	mlo := matchEmptyOrDeletedSWAR(lo)
	mhi := matchEmptyOrDeletedSWAR(hi)
	word := uint64(movemaskMSB8(mlo.word)) | uint64(movemaskMSB8(mhi.word))<<8
	return newBitMask(word, 16, 0)
}

func countLeadingEmptyOrDeletedSSE2(window []byte) int {
	for i := 0; i < 16; i++ {
		b := window[i]
		if int8(b) >= 0 || b == ctrlSentinelByte() {
			return i
		}
	}
	return 16
}

func convertSpecialToEmptyAndFullToDeletedSSE2(window []byte, dst []byte) {
	convertSpecialToEmptyAndFullToDeletedSWAR(window[:8], dst[:8])
	convertSpecialToEmptyAndFullToDeletedSWAR(window[8:16], dst[8:16])
}
