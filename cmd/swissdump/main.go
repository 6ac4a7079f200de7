// Command swissdump is a minimal demo/debug driver for the swiss package's
// group-matching primitive, adapted from thepudds-swisstable/cmd/main.go's
// MatchByte demo to call the RawTable-based Group API instead.
package main

import (
	"fmt"

	"github.com/gowiss/swiss"
)

func main() {
	width := swiss.GroupWidth()
	fmt.Println("group width:", width)

	target := byte(42)
	ctrl := make([]byte, width)
	for i := range ctrl {
		ctrl[i] = 0
	}
	ctrl[0] = target
	if width > 2 {
		ctrl[2] = target
	}
	if width > 15 {
		ctrl[15] = target
	}

	matches := swiss.DebugGroupMatches(ctrl, target)
	if len(matches) == 0 {
		fmt.Println("no match")
		return
	}
	for _, idx := range matches {
		fmt.Println("match:", idx)
	}
}
