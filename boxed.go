package swiss

// BoxedMap is the "node layout" façade spec.md §6.1 and §9 call for
// alongside the "flat layout" Map: each slot holds a pointer to a
// separately heap-allocated value rather than the value inline. Useful
// when V is large or expensive to move, since RawTable's resize/rehash
// only ever copies the pointer, never the pointee (spec.md §9: "model as
// two implementations ... of the slot interface -- identity vs.
// owning-box"). Built directly on RawTable[K, *V]; Go's generics make a
// flat RawTable[K, *V] already behave exactly like the node-layout slot
// policy spec.md describes, so no separate slot-policy plumbing is
// needed.
type BoxedMap[K comparable, V any] struct {
	t *RawTable[K, *V]
}

// NewBoxedMap returns an empty BoxedMap, allocating immediately if
// capacity > 0.
func NewBoxedMap[K comparable, V any](capacity int, opts ...MapOption[K, *V]) *BoxedMap[K, V] {
	cfg := newMapConfig(opts)
	t := NewRawTable[K, *V](capacity, cfg.policy)
	t.debugProbing = cfg.debugProbing
	return &BoxedMap[K, V]{t: t}
}

// Get returns a copy of the value stored for k, if any.
func (m *BoxedMap[K, V]) Get(k K) (V, bool) {
	it, ok := m.t.Find(k)
	if !ok {
		var zero V
		return zero, false
	}
	_, p := it.Get()
	return *p, true
}

// GetPtr returns the live pointer stored for k, if any, allowing in-place
// mutation without a second Set call.
func (m *BoxedMap[K, V]) GetPtr(k K) (*V, bool) {
	it, ok := m.t.Find(k)
	if !ok {
		return nil, false
	}
	_, p := it.Get()
	return p, true
}

// Set boxes v and stores it for k, overwriting any existing value.
func (m *BoxedMap[K, V]) Set(k K, v V) {
	m.t.Set(k, &v)
}

// Delete removes k, reporting whether it was present.
func (m *BoxedMap[K, V]) Delete(k K) bool {
	return m.t.Erase(k)
}

// Len returns the number of stored entries.
func (m *BoxedMap[K, V]) Len() int {
	return m.t.Len()
}
