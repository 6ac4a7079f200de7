package swiss

import "unsafe"

// emptySentinelGroup is the shared read-only control-byte window every
// zero-capacity RawTable points at: a Sentinel byte followed by Empty
// bytes filling out the rest of the group. No RawTable ever writes through
// this slice -- every mutating path checks capacity == 0 and allocates a
// real backing array first (see (*RawTable[K,V]).prepareInsert).
var emptySentinelGroup = buildEmptySentinelGroup()

func buildEmptySentinelGroup() []byte {
	g := make([]byte, groupWidth)
	g[0] = ctrlSentinelByte()
	for i := 1; i < groupWidth; i++ {
		g[i] = ctrlEmptyByte()
	}
	return g
}

func isFull(b byte) bool { return int8(b) >= 0 }

// ctrlSeed derives the pointer-based seed spec.md §4.3 XORs into H1 so
// iteration order varies across table instances.
func ctrlSeed(ctrl []byte) uint64 {
	if len(ctrl) == 0 {
		return 0
	}
	return uint64(uintptr(unsafe.Pointer(&ctrl[0])))
}

// RawTable is the SwissTable engine: a single contiguous control-byte
// array plus parallel key/value arrays, probed with Group matches over a
// triangular probe sequence. See SPEC_FULL.md §6 for the public surface
// built on top of it (Map, Set).
type RawTable[K, V any] struct {
	ctrl []byte
	keys []K
	vals []V

	capacity   uintptr // 2^k - 1, or 0 (empty, no allocation)
	size       uintptr
	growthLeft uintptr
	seed       uint64

	policy Policy[K]

	debugProbing bool // see debug.go; off unless an Option enables it
}

// NewRawTable constructs an empty table, allocating immediately if
// bucketCount > 0 (spec.md §4.14's new(bucket_count)).
func NewRawTable[K, V any](bucketCount int, p Policy[K]) *RawTable[K, V] {
	t := &RawTable[K, V]{
		ctrl:   emptySentinelGroup,
		policy: p,
	}
	if bucketCount > 0 {
		t.Reserve(bucketCount)
	}
	return t
}

// Len returns the number of stored elements.
func (t *RawTable[K, V]) Len() int { return int(t.size) }

// Stats reports the table's current load-factor bookkeeping.
func (t *RawTable[K, V]) Stats() Stats {
	growth := capacityToGrowth(t.capacity, groupWidth)
	tombstones := growth - t.size - t.growthLeft
	return Stats{
		Size:       int(t.size),
		Capacity:   int(t.capacity),
		GrowthLeft: int(t.growthLeft),
		Tombstones: int(tombstones),
	}
}

// findFirstNonFull walks the probe sequence until it finds a group with at
// least one Empty-or-Deleted lane and returns that lane's absolute slot
// index (spec.md §4.7). It never inspects growth_left or triggers a
// rehash -- that is prepareInsert's job.
func (t *RawTable[K, V]) findFirstNonFull(hash uint64) uintptr {
	seq := newProbeSeq(hash, t.seed, t.capacity, groupWidth)
	for {
		g := loadGroup(t.ctrl, seq.offset)
		mask := g.matchEmptyOrDeleted()
		if !mask.empty() {
			lane := mask.lowestSetBit()
			if t.debugProbing && !isSmall(t.capacity, groupWidth) && debugUseHighestLane(hash, t.seed) {
				lane = mask.highestSetBit()
			}
			return (seq.offset + uintptr(lane)) & t.capacity
		}
		seq.next(groupWidth)
	}
}

// prepareInsert finds (growing or rehashing in place first if necessary)
// a slot for hash, marks its control byte Full(h2), and returns its
// absolute index. Mirrors spec.md §4.8 step 3.
func (t *RawTable[K, V]) prepareInsert(hash uint64) uintptr {
	target := t.findFirstNonFull(hash)
	if t.growthLeft == 0 && t.ctrl[target] != ctrlDeletedByte() {
		t.rehashAndGrowIfNecessary()
		target = t.findFirstNonFull(hash)
	}
	t.size++
	if t.ctrl[target] == ctrlEmptyByte() {
		t.growthLeft--
	}
	setCtrl(t.ctrl, target, t.capacity, groupWidth, h2(hash))
	return target
}

// rehashAndGrowIfNecessary implements spec.md §4.9's three-way decision:
// allocate the first block, rehash in place to reclaim tombstones, or
// grow, in that priority order.
func (t *RawTable[K, V]) rehashAndGrowIfNecessary() {
	switch {
	case t.capacity == 0:
		t.resize(1)
	case t.capacity > uintptr(groupWidth) && t.size*32 <= t.capacity*25:
		t.dropDeletesWithoutResize()
	default:
		t.resize(t.capacity*2 + 1)
	}
}

// findOrPrepareInsert is spec.md §4.8 in full: look for an existing key,
// and if absent, prepare (and return) a slot for it.
func (t *RawTable[K, V]) findOrPrepareInsert(key K) (idx uintptr, inserted bool) {
	hash := t.policy.Hash(key)
	seq := newProbeSeq(hash, t.seed, t.capacity, groupWidth)
	for {
		g := loadGroup(t.ctrl, seq.offset)
		mask := g.match(h2(hash))
		for {
			lane, ok := mask.next()
			if !ok {
				break
			}
			cand := (seq.offset + uintptr(lane)) & t.capacity
			if t.policy.Eq(t.keys[cand], key) {
				return cand, false
			}
		}
		if !g.matchEmpty().empty() {
			break
		}
		seq.next(groupWidth)
	}
	return t.prepareInsert(hash), true
}

// Insert inserts key/val if key is absent, or leaves an existing entry
// untouched. Returns an iterator at the entry's slot and whether it was
// newly inserted.
func (t *RawTable[K, V]) Insert(key K, val V) (Iterator[K, V], bool) {
	idx, inserted := t.findOrPrepareInsert(key)
	if inserted {
		t.keys[idx] = key
		t.vals[idx] = val
	}
	return Iterator[K, V]{t: t, idx: idx}, inserted
}

// Set inserts key/val, overwriting any existing value for key.
func (t *RawTable[K, V]) Set(key K, val V) {
	idx, _ := t.findOrPrepareInsert(key)
	t.keys[idx] = key
	t.vals[idx] = val
}

// Find looks up key, returning an iterator positioned at its slot, or the
// end iterator if absent.
func (t *RawTable[K, V]) Find(key K) (Iterator[K, V], bool) {
	if t.capacity == 0 {
		return Iterator[K, V]{t: t, idx: 0}, false
	}
	hash := t.policy.Hash(key)
	seq := newProbeSeq(hash, t.seed, t.capacity, groupWidth)
	for {
		g := loadGroup(t.ctrl, seq.offset)
		mask := g.match(h2(hash))
		for {
			lane, ok := mask.next()
			if !ok {
				break
			}
			cand := (seq.offset + uintptr(lane)) & t.capacity
			if t.policy.Eq(t.keys[cand], key) {
				return Iterator[K, V]{t: t, idx: cand}, true
			}
		}
		if !g.matchEmpty().empty() {
			return Iterator[K, V]{t: t, idx: t.capacity}, false
		}
		seq.next(groupWidth)
	}
}

// Contains reports whether key is present.
func (t *RawTable[K, V]) Contains(key K) bool {
	_, ok := t.Find(key)
	return ok
}

// Erase removes key if present, returning whether it was found.
func (t *RawTable[K, V]) Erase(key K) bool {
	it, ok := t.Find(key)
	if !ok {
		return false
	}
	t.EraseAt(it)
	return true
}

// EraseAt removes the element an iterator refers to (spec.md §4.12).
func (t *RawTable[K, V]) EraseAt(it Iterator[K, V]) {
	var zeroK K
	var zeroV V
	t.keys[it.idx] = zeroK
	t.vals[it.idx] = zeroV
	t.eraseMetaOnly(it.idx)
}

// eraseMetaOnly decides whether i's control byte becomes Empty (crediting
// growth_left) or Deleted (a tombstone), per spec.md §4.12: inspect the
// group at i and the group starting group_width before it; if no group
// load spanning i has seen an Empty byte since i's probe started, it's
// safe to mark Empty outright.
func (t *RawTable[K, V]) eraseMetaOnly(i uintptr) {
	emptyAfter := loadGroup(t.ctrl, i).matchEmpty()
	before := (i - uintptr(groupWidth)) & t.capacity
	emptyBefore := loadGroup(t.ctrl, before).matchEmpty()

	if emptyBefore.leadingZeros()+emptyAfter.trailingZeros() < uintptr(groupWidth) {
		setCtrl(t.ctrl, i, t.capacity, groupWidth, ctrlEmptyByte())
		t.growthLeft++
	} else {
		setCtrl(t.ctrl, i, t.capacity, groupWidth, ctrlDeletedByte())
	}
	t.size--
}

// resize reallocates at newCapacity and transfers every Full slot,
// recomputing its probe position from scratch (spec.md §4.11).
func (t *RawTable[K, V]) resize(newCapacity uintptr) {
	oldCtrl, oldKeys, oldVals, oldCapacity := t.ctrl, t.keys, t.vals, t.capacity

	t.capacity = newCapacity
	t.ctrl = make([]byte, ctrlAllocSize(newCapacity, groupWidth))
	resetCtrl(t.ctrl, newCapacity, groupWidth)
	t.keys = make([]K, newCapacity)
	t.vals = make([]V, newCapacity)
	t.seed = ctrlSeed(t.ctrl)

	for i := uintptr(0); i < oldCapacity; i++ {
		if !isFull(oldCtrl[i]) {
			continue
		}
		hash := t.policy.Hash(oldKeys[i])
		target := t.findFirstNonFull(hash)
		setCtrl(t.ctrl, target, newCapacity, groupWidth, h2(hash))
		t.keys[target] = oldKeys[i]
		t.vals[target] = oldVals[i]
	}

	t.growthLeft = capacityToGrowth(newCapacity, groupWidth) - t.size
}

// probeIndexOf returns which probe-sequence step (0-based) pos falls on
// relative to a probe that started at probeStart, used by
// dropDeletesWithoutResize to tell "already in its correct window" apart
// from "needs to move".
func probeIndexOf(pos, probeStart, capacity uintptr) uintptr {
	return ((pos - probeStart) & capacity) / uintptr(groupWidth)
}

// dropDeletesWithoutResize reclaims tombstones without reallocating
// (spec.md §4.10): first invert Full<->Deleted/Empty across the whole
// control array, then walk the resulting Deleted bytes (which mark the
// previously-Full slots) and either leave them in place, move them into a
// newly-Empty slot, or rotate them with whatever currently occupies their
// correct slot.
func (t *RawTable[K, V]) dropDeletesWithoutResize() {
	// Step 1: Full -> Deleted, {Empty, Deleted, Sentinel} -> Empty, done
	// byte-by-byte (see group_swar.go's convertSpecialToEmptyAndFullToDeletedSWAR
	// doc comment for why this stays a plain loop rather than a Group op).
	for i := uintptr(0); i < t.capacity; i++ {
		if isFull(t.ctrl[i]) {
			t.ctrl[i] = ctrlDeletedByte()
		} else {
			t.ctrl[i] = ctrlEmptyByte()
		}
	}
	clonedBytes := uintptr(numClonedBytes(groupWidth))
	for k := uintptr(0); k < clonedBytes; k++ {
		t.ctrl[t.capacity+1+k] = t.ctrl[k]
	}
	t.ctrl[t.capacity] = ctrlSentinelByte()

	// Step 2.
	for i := uintptr(0); i < t.capacity; i++ {
		if t.ctrl[i] != ctrlDeletedByte() {
			continue
		}

		hash := t.policy.Hash(t.keys[i])
		target := t.findFirstNonFull(hash)
		probeStart := uintptr(h1(hash, t.seed)) & t.capacity

		switch {
		case probeIndexOf(target, probeStart, t.capacity) == probeIndexOf(i, probeStart, t.capacity):
			setCtrl(t.ctrl, i, t.capacity, groupWidth, h2(hash))

		case t.ctrl[target] == ctrlEmptyByte():
			t.keys[target] = t.keys[i]
			t.vals[target] = t.vals[i]
			setCtrl(t.ctrl, target, t.capacity, groupWidth, h2(hash))
			setCtrl(t.ctrl, i, t.capacity, groupWidth, ctrlEmptyByte())
			var zeroK K
			var zeroV V
			t.keys[i] = zeroK
			t.vals[i] = zeroV

		default: // t.ctrl[target] == Deleted: three-way rotate.
			t.keys[i], t.keys[target] = t.keys[target], t.keys[i]
			t.vals[i], t.vals[target] = t.vals[target], t.vals[i]
			setCtrl(t.ctrl, target, t.capacity, groupWidth, h2(hash))
			i-- // reprocess i: it now holds target's original (Deleted) element.
		}
	}

	t.growthLeft = capacityToGrowth(t.capacity, groupWidth) - t.size
}

// Reserve ensures the table can hold n elements without growing,
// resizing at most once (spec.md §4.14).
func (t *RawTable[K, V]) Reserve(n int) {
	if uintptr(n) > t.size+t.growthLeft {
		t.resize(normalizeCapacity(growthToLowerBoundCapacity(uintptr(n), groupWidth)))
	}
}

// Rehash rebuilds the table at normalizeCapacity(n |
// growthToLowerBoundCapacity(size)): n is a minimum capacity, not an
// element count. With n > 0 it resizes only when that capacity exceeds the
// current one; with n == 0 it always rebuilds at the smallest capacity that
// fits the current elements, or frees an empty table (spec.md §4.14).
func (t *RawTable[K, V]) Rehash(n int) {
	if n == 0 && t.size == 0 {
		*t = RawTable[K, V]{ctrl: emptySentinelGroup, policy: t.policy, debugProbing: t.debugProbing}
		return
	}
	m := normalizeCapacity(uintptr(n) | growthToLowerBoundCapacity(t.size, groupWidth))
	if n == 0 || m > t.capacity {
		t.resize(m)
	}
}

// Clear empties the table. Per spec.md §4.14, tables past a size
// threshold are fully deallocated rather than reset in place, since
// rebuilding from scratch on the next insert is cheaper than zeroing a
// huge control array.
func (t *RawTable[K, V]) Clear() {
	if t.capacity > 127 {
		*t = RawTable[K, V]{ctrl: emptySentinelGroup, policy: t.policy, debugProbing: t.debugProbing}
		return
	}
	if t.capacity == 0 {
		return
	}
	var zeroK K
	var zeroV V
	for i := uintptr(0); i < t.capacity; i++ {
		if isFull(t.ctrl[i]) {
			t.keys[i] = zeroK
			t.vals[i] = zeroV
		}
	}
	resetCtrl(t.ctrl, t.capacity, groupWidth)
	t.size = 0
	t.growthLeft = capacityToGrowth(t.capacity, groupWidth)
}

// Clone returns an independent copy of t (spec.md §4.14's dup): it
// reserves capacity for t's current size up front and inserts every
// element directly via findFirstNonFull (bypassing the usual
// growth-left bookkeeping per slot -- see DESIGN.md's Open Question note
// on why size/growth_left are only adjusted once, at the end, instead).
func (t *RawTable[K, V]) Clone() *RawTable[K, V] {
	u := NewRawTable[K, V](0, t.policy)
	u.debugProbing = t.debugProbing
	u.Reserve(int(t.size))

	for i := uintptr(0); i < t.capacity; i++ {
		if !isFull(t.ctrl[i]) {
			continue
		}
		hash := t.policy.Hash(t.keys[i])
		target := u.findFirstNonFull(hash)
		setCtrl(u.ctrl, target, u.capacity, groupWidth, h2(hash))
		u.keys[target] = t.keys[i]
		u.vals[target] = t.vals[i]
	}
	u.size = t.size
	u.growthLeft -= t.size
	return u
}

// Iter returns an iterator positioned at the first occupied slot.
func (t *RawTable[K, V]) Iter() Iterator[K, V] {
	return Iterator[K, V]{t: t, idx: t.skipEmptyOrDeleted(0)}
}

// skipEmptyOrDeleted advances idx forward to the next Full slot, or to
// capacity (the end sentinel) if none remains (spec.md §4.13).
func (t *RawTable[K, V]) skipEmptyOrDeleted(idx uintptr) uintptr {
	for idx < t.capacity {
		g := loadGroup(t.ctrl, idx)
		skip := uintptr(g.countLeadingEmptyOrDeleted())
		if skip == 0 {
			return idx
		}
		idx += skip
	}
	return t.capacity
}
