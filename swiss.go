// Package swiss implements the engine of a SwissTable-style open-addressed
// hash table: control-byte layout, vectorized group scanning, triangular
// probing, insertion/deletion semantics, load-factor policy, rehash-in-place
// vs. grow, and forward iteration, generalized over any comparable key type
// via RawTable. Map and Set are thin typed façades over RawTable, in the
// spirit of homier-stablemap's StableMap/StableSet, except these grow
// (homier-stablemap's never do -- see its map.go doc comment).
package swiss

// Map is a generic hash map built on RawTable.
type Map[K comparable, V any] struct {
	t *RawTable[K, V]
}

// NewMap returns an empty Map, allocating immediately if capacity > 0.
func NewMap[K comparable, V any](capacity int, opts ...MapOption[K, V]) *Map[K, V] {
	cfg := newMapConfig(opts)
	t := NewRawTable[K, V](capacity, cfg.policy)
	t.debugProbing = cfg.debugProbing
	return &Map[K, V]{t: t}
}

// Get returns the value stored for k, if any.
func (m *Map[K, V]) Get(k K) (V, bool) {
	it, ok := m.t.Find(k)
	if !ok {
		var zero V
		return zero, false
	}
	_, v := it.Get()
	return v, true
}

// Set stores v for k, overwriting any existing value.
func (m *Map[K, V]) Set(k K, v V) {
	m.t.Set(k, v)
}

// Delete removes k, reporting whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	return m.t.Erase(k)
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int {
	return m.t.Len()
}

// Range calls f for every entry in unspecified order, stopping early if f
// returns false. Mirrors sync.Map.Range's early-stop contract, promoted
// from thepudds-swisstable/vmap_test.go's Vmap.Range test scaffolding into
// real API (see SPEC_FULL.md §5). Range does not itself resize the table.
// Calling Delete from within f is safe: an entry deleted before it is
// reached is not visited. A Set from within f that grows or rehashes the
// table relocates entries under the running iteration, after which entries
// may be visited twice or not at all.
func (m *Map[K, V]) Range(f func(k K, v V) bool) {
	for it := m.t.Iter(); it.Valid(); {
		k, v := it.Get()
		if !f(k, v) {
			return
		}
		var ok bool
		it, ok = it.Next()
		if !ok {
			return
		}
	}
}

// Reserve ensures the map can hold n entries without growing.
func (m *Map[K, V]) Reserve(n int) {
	m.t.Reserve(n)
}

// Clear empties the map.
func (m *Map[K, V]) Clear() {
	m.t.Clear()
}

// Clone returns an independent copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: m.t.Clone()}
}

// Stats reports the map's current load-factor bookkeeping.
func (m *Map[K, V]) Stats() Stats {
	return m.t.Stats()
}

// GetBulk looks up every key in ks, in order, promoted from
// thepudds-swisstable/vmap_test.go's Vmap.GetBulk scaffolding.
func (m *Map[K, V]) GetBulk(ks []K) (values []V, oks []bool) {
	values = make([]V, len(ks))
	oks = make([]bool, len(ks))
	for i, k := range ks {
		values[i], oks[i] = m.Get(k)
	}
	return values, oks
}

// SetBulk stores every key/value pair.
func (m *Map[K, V]) SetBulk(ks []K, vs []V) {
	n := len(ks)
	if len(vs) < n {
		n = len(vs)
	}
	for i := 0; i < n; i++ {
		m.Set(ks[i], vs[i])
	}
}

// DeleteBulk deletes every key in ks.
func (m *Map[K, V]) DeleteBulk(ks []K) {
	for _, k := range ks {
		m.Delete(k)
	}
}
