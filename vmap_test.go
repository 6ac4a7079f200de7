package swiss

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// validatingMap wraps a Map[int, int] together with a plain Go map mirror,
// checking after every mutating operation that the two report the same
// contents. Adapted from thepudds-swisstable/vmap_test.go's Vmap model, kept
// as a tool for driving randomized operation sequences against RawTable
// rather than as a model of a specific scenario.
type validatingMap struct {
	t      *testing.T
	impl   *Map[int, int]
	mirror map[int]int
}

func newValidatingMap(t *testing.T) *validatingMap {
	return &validatingMap{
		t:      t,
		impl:   NewMap[int, int](0),
		mirror: make(map[int]int),
	}
}

func (vm *validatingMap) set(k, v int) {
	vm.impl.Set(k, v)
	vm.mirror[k] = v
	vm.check()
}

func (vm *validatingMap) delete(k int) {
	implOK := vm.impl.Delete(k)
	_, mirrorOK := vm.mirror[k]
	if implOK != mirrorOK {
		vm.t.Fatalf("delete(%d): impl reported %v, mirror reported %v", k, implOK, mirrorOK)
	}
	delete(vm.mirror, k)
	vm.check()
}

func (vm *validatingMap) get(k int) {
	implV, implOK := vm.impl.Get(k)
	mirrorV, mirrorOK := vm.mirror[k]
	if implOK != mirrorOK {
		vm.t.Fatalf("get(%d): impl ok=%v, mirror ok=%v", k, implOK, mirrorOK)
	}
	if implOK && implV != mirrorV {
		vm.t.Fatalf("get(%d): impl value %d != mirror value %d", k, implV, mirrorV)
	}
}

// check asserts the two collections agree on their full contents, i.e. the
// iteration set collected via Range equals the mirror map exactly.
func (vm *validatingMap) check() {
	got := make(map[int]int, vm.impl.Len())
	vm.impl.Range(func(k, v int) bool {
		got[k] = v
		return true
	})
	if diff := cmp.Diff(vm.mirror, got); diff != "" {
		vm.t.Fatalf("map diverged from mirror (-want +got):\n%s", diff)
	}
	if vm.impl.Len() != len(vm.mirror) {
		vm.t.Fatalf("Len() = %d, mirror has %d entries", vm.impl.Len(), len(vm.mirror))
	}
}

func TestValidatingMapRandomOps(t *testing.T) {
	vm := newValidatingMap(t)

	// Deterministic xorshift so the op sequence is reproducible without
	// reaching for math/rand's global state.
	state := uint64(0x2545F4914F6CDD1D)
	next := func() uint64 {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		return state
	}

	const keySpace = 200
	for i := 0; i < 5000; i++ {
		k := int(next() % keySpace)
		switch next() % 3 {
		case 0:
			vm.set(k, int(next()))
		case 1:
			vm.delete(k)
		case 2:
			vm.get(k)
		}
	}

	// Look up every key once more and confirm agreement one final time.
	for k := 0; k < keySpace; k++ {
		vm.get(k)
	}
}

func TestValidatingMapGrowAndShrinkChurn(t *testing.T) {
	vm := newValidatingMap(t)

	for round := 0; round < 5; round++ {
		for i := 0; i < 300; i++ {
			vm.set(i, i*i)
		}
		for i := 0; i < 300; i += 2 {
			vm.delete(i)
		}
		vm.impl.Clear()
		vm.mirror = make(map[int]int)
		vm.check()
	}
}
