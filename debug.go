package swiss

import (
	"sync/atomic"
	"unsafe"
)

// debugProbeCounter is the process-wide counter spec.md §4.7 describes as
// the randomness source for backward-insertion selection in debug builds.
// It need not be cryptographic or even race-free in the strict sense --
// torn reads only perturb which lane within a group an insert picks, never
// correctness.
var debugProbeCounter atomic.Uint64

// debugUseHighestLane implements spec.md §4.7's debug-only policy: with
// probability controlled by (H1(hash) XOR counter) % 13 > 6, prefer the
// highest set lane over the lowest when choosing an insertion slot. This
// exists only to shuffle insertion order and surface algorithmic bugs that
// happen to depend on "always pick the first empty slot"; it must never be
// enabled outside debug/testing (see capacity.go's isSmall guard at the
// call site, required because a small table's single group can straddle
// the cloned tail in a way that makes the highest lane invalid).
func debugUseHighestLane(hash, seed uint64) bool {
	c := debugProbeCounter.Add(1)
	r := c ^ uint64(uintptr(unsafe.Pointer(&debugProbeCounter)))
	return (h1(hash, seed)^r)%13 > 6
}
