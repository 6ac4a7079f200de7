package swiss

// Set is a generic hash set built on RawTable with an empty-struct value,
// matching homier-stablemap/set.go's StableSet shape.
type Set[K comparable] struct {
	t *RawTable[K, struct{}]
}

// NewSet returns an empty Set, allocating immediately if capacity > 0.
func NewSet[K comparable](capacity int, opts ...MapOption[K, struct{}]) *Set[K] {
	cfg := newMapConfig(opts)
	t := NewRawTable[K, struct{}](capacity, cfg.policy)
	t.debugProbing = cfg.debugProbing
	return &Set[K]{t: t}
}

// Has reports whether k is in the set.
func (s *Set[K]) Has(k K) bool {
	return s.t.Contains(k)
}

// Put adds k to the set, reporting whether it was newly added.
func (s *Set[K]) Put(k K) bool {
	_, inserted := s.t.Insert(k, struct{}{})
	return inserted
}

// Delete removes k, reporting whether it was present.
func (s *Set[K]) Delete(k K) bool {
	return s.t.Erase(k)
}

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int {
	return s.t.Len()
}

// Range calls f for every element in unspecified order, stopping early if
// f returns false.
func (s *Set[K]) Range(f func(k K) bool) {
	for it := s.t.Iter(); it.Valid(); {
		k, _ := it.Get()
		if !f(k) {
			return
		}
		var ok bool
		it, ok = it.Next()
		if !ok {
			return
		}
	}
}

// Clear empties the set.
func (s *Set[K]) Clear() {
	s.t.Clear()
}

// Clone returns an independent copy of s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{t: s.t.Clone()}
}

// Stats reports the set's current load-factor bookkeeping.
func (s *Set[K]) Stats() Stats {
	return s.t.Stats()
}
