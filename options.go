package swiss

// mapConfig collects Option effects for Map/Set construction without
// committing to a concrete V, since RawTable is generic over both K and V
// and Go cannot express a functional option generic only in K.
type mapConfig[K any] struct {
	policy       Policy[K]
	debugProbing bool
}

// MapOption configures a Map[K, V].
type MapOption[K comparable, V any] func(*mapConfig[K])

// WithPolicy overrides the default comparable-key Policy, the way
// homier-stablemap's WithHashFunc overrides the default hash function.
func WithPolicy[K comparable, V any](p Policy[K]) MapOption[K, V] {
	return func(c *mapConfig[K]) { c.policy = p }
}

// WithDebugProbing enables spec.md §4.7's debug-only backward-insertion
// randomization. Never enable this outside tests: it exists purely to
// shuffle insertion order and surface probe-sequence bugs.
func WithDebugProbing[K comparable, V any](enabled bool) MapOption[K, V] {
	return func(c *mapConfig[K]) { c.debugProbing = enabled }
}

func newMapConfig[K comparable, V any](opts []MapOption[K, V]) mapConfig[K] {
	c := mapConfig[K]{policy: DefaultPolicy[K]()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
