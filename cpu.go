package swiss

import "golang.org/x/sys/cpu"

// groupWidth is the number of control bytes scanned per group load: 16 on
// amd64 with SSE2 (effectively always true in practice, but we still probe
// cpu.X86 rather than hardcoding it so a build targeting a hypothetical
// SSE2-less amd64, or a non-amd64 GOARCH, correctly falls back to the
// 8-wide SWAR path), 8 everywhere else.
var groupWidth = func() int {
	if cpu.X86.HasSSE2 {
		return 16
	}
	return 8
}()
