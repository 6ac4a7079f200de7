package swiss

// group is a fixed-width window of control bytes, loaded fresh for each
// probe step. Its width is always the package-level groupWidth (8 or 16,
// chosen once at init by cpu.go based on SSE2 availability), so every
// group a RawTable loads dispatches the same way.
type group struct {
	ctrl []byte // len == groupWidth
}

// loadGroup reads a group-width window of control bytes starting at
// offset. Callers guarantee ctrl has the cloned tail so this never reads
// out of bounds even when offset is within groupWidth-1 of capacity.
func loadGroup(ctrl []byte, offset uintptr) group {
	return group{ctrl: ctrl[offset : offset+uintptr(groupWidth)]}
}

// match returns the lanes whose control byte equals b exactly. False
// positives cannot occur against Empty/Deleted/Sentinel because those
// always have the sign bit set while a valid h2 byte (the only values this
// is ever called with) never does.
func (g group) match(b byte) bitMask {
	if groupWidth == 16 {
		return matchByteSSE2(g.ctrl, b)
	}
	return matchByteSWAR(loadWord8(g.ctrl), b)
}

// matchEmpty returns the lanes that are Empty.
func (g group) matchEmpty() bitMask {
	if groupWidth == 16 {
		return matchEmptySSE2(g.ctrl)
	}
	return matchEmptySWAR(loadWord8(g.ctrl))
}

// matchEmptyOrDeleted returns the lanes that are Empty or Deleted, i.e.
// ctrl < Sentinel.
func (g group) matchEmptyOrDeleted() bitMask {
	if groupWidth == 16 {
		return matchEmptyOrDeletedSSE2(g.ctrl)
	}
	return matchEmptyOrDeletedSWAR(loadWord8(g.ctrl))
}

// countLeadingEmptyOrDeleted counts lanes from the start of the group that
// are Empty/Deleted, stopping at the first Full or Sentinel lane.
func (g group) countLeadingEmptyOrDeleted() int {
	if groupWidth == 16 {
		return countLeadingEmptyOrDeletedSSE2(g.ctrl)
	}
	return countLeadingEmptyOrDeletedSWAR(loadWord8(g.ctrl))
}

// convertSpecialToEmptyAndFullToDeleted rewrites the group into dst: every
// Empty/Deleted/Sentinel byte becomes Empty, every Full byte becomes
// Deleted. dropDeletesWithoutResize does not call this; it applies the same
// byte mapping in its own loop over the control array.
func (g group) convertSpecialToEmptyAndFullToDeleted(dst []byte) {
	if groupWidth == 16 {
		convertSpecialToEmptyAndFullToDeletedSSE2(g.ctrl, dst)
		return
	}
	convertSpecialToEmptyAndFullToDeletedSWAR(g.ctrl, dst)
}
