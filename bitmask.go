package swiss

import "math/bits"

// bitMask wraps a 64-bit word produced by a Group match operation. Each
// "lane" occupies 1<<shift bits; width is the number of lanes the word
// carries. SSE2-shaped groups produce a word with one bit per lane
// (shift == 0), SWAR-shaped groups produce a word with the match flag
// stored in the MSB of each byte lane (shift == 3).
//
// bitMask is a lazy, non-restartable sequence of matching lane indices:
// next pops the lowest set lane and returns it.
type bitMask struct {
	word  uint64
	width uint
	shift uint
}

func newBitMask(word uint64, width, shift uint) bitMask {
	return bitMask{word: word, width: width, shift: shift}
}

// empty reports whether no lane matched.
func (b bitMask) empty() bool {
	return b.word == 0
}

// lowestSetBit returns the lane index of the first match.
func (b bitMask) lowestSetBit() uint {
	return b.trailingZeros()
}

// trailingZeros returns the lane index of the first match, or width if
// there is none.
func (b bitMask) trailingZeros() uint {
	if b.word == 0 {
		return b.width
	}
	return uint(bits.TrailingZeros64(b.word)) >> b.shift
}

// highestSetBit returns the lane index of the last match.
func (b bitMask) highestSetBit() uint {
	if b.word == 0 {
		return 0
	}
	return uint(63-bits.LeadingZeros64(b.word)) >> b.shift
}

// leadingZeros returns the number of lanes, counted from the high end,
// before the first match. The word only occupies its low width<<shift
// bits (16 of 64 for an SSE2-shaped mask), so it must be shifted up to
// bit 63 first -- otherwise the unused high bits inflate the count. SWAR
// masks fill all 64 bits (width<<shift == 64), so extra is 0 for them and
// this is a no-op, matching cwisstable's CWISS_BitMask_LeadingZeros.
func (b bitMask) leadingZeros() uint {
	extra := 64 - (b.width << b.shift)
	return uint(bits.LeadingZeros64(b.word<<extra)) >> b.shift
}

// next pops the lowest set lane, returning its index and whether one was
// present. Once it returns ok == false the mask is exhausted.
func (b *bitMask) next() (lane uint, ok bool) {
	if b.word == 0 {
		return 0, false
	}
	lane = b.trailingZeros()
	// Every matching lane carries exactly one set bit (the lane's top bit
	// for SWAR groups, the whole lane for SSE2 groups), so clearing the
	// lowest set bit clears the whole lane in both encodings.
	b.word &= b.word - 1
	return lane, true
}

// count returns the number of matching lanes.
func (b bitMask) count() uint {
	return uint(bits.OnesCount64(b.word))
}
