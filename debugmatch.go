package swiss

// DebugGroupMatches returns the lane indices within the first group-width
// bytes of ctrl that group.match reports for b (every lane equal to b, plus
// the rare Full false positives described at matchByteSWAR). It exists for the
// cmd/swissdump driver and tests that want to exercise Group.match without
// reaching into the package's unexported RawTable plumbing; it is not part
// of the core engine's hot path.
func DebugGroupMatches(ctrl []byte, b byte) []int {
	g := loadGroup(ctrl, 0)
	mask := g.match(b)
	var out []int
	for {
		lane, ok := mask.next()
		if !ok {
			break
		}
		out = append(out, int(lane))
	}
	return out
}

// GroupWidth returns the control-group width this build uses (16 on an
// SSE2-capable amd64, 8 otherwise).
func GroupWidth() int { return groupWidth }
