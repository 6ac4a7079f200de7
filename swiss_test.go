package swiss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1 (basic).
func TestScenarioBasic(t *testing.T) {
	m := NewMap[int, int](0)
	m.Set(1, 1)
	m.Set(2, 2)
	m.Set(3, 3)
	assert.Equal(t, 3, m.Len())

	_, ok := m.Get(2)
	assert.True(t, ok)

	assert.True(t, m.Delete(2))
	assert.Equal(t, 2, m.Len())

	_, ok = m.Get(2)
	assert.False(t, ok)
}

// S2 (grow).
func TestScenarioGrow(t *testing.T) {
	m := NewMap[int, int](0)
	for i := 0; i < 100; i++ {
		m.Set(i, i)
	}
	assert.Equal(t, 100, m.Len())
	assert.GreaterOrEqual(t, m.Stats().Capacity, 127)

	for i := 0; i < 100; i++ {
		_, ok := m.Get(i)
		assert.True(t, ok, "expected key %d present", i)
	}
	_, ok := m.Get(100)
	assert.False(t, ok)
}

// S3 (tombstones).
func TestScenarioTombstones(t *testing.T) {
	p := DefaultPolicy[int]()
	table := NewRawTable[int, int](63, p)

	for i := 0; i <= 63; i++ {
		table.Set(i, i)
	}
	capacityAfterFill := table.Stats().Capacity

	for i := 0; i <= 31; i++ {
		require.True(t, table.Erase(i))
	}

	for i := 1000; i <= 1031; i++ {
		table.Set(i, i)
	}

	assert.Equal(t, capacityAfterFill, table.Stats().Capacity, "capacity must not grow on the rehash-in-place path")

	for i := 32; i <= 63; i++ {
		_, ok := table.Find(i)
		assert.True(t, ok, "expected surviving key %d", i)
	}
	for i := 1000; i <= 1031; i++ {
		_, ok := table.Find(i)
		assert.True(t, ok, "expected newly inserted key %d", i)
	}
	assert.Equal(t, 64, table.Len())
}

// S4 (iterate).
func TestScenarioIterate(t *testing.T) {
	m := NewMap[int, int](0)
	for i := 0; i < 100; i++ {
		m.Set(i, i)
	}

	seen := make(map[int]bool)
	m.Range(func(k, v int) bool {
		seen[k] = true
		assert.Equal(t, k, v)
		return true
	})
	assert.Len(t, seen, 100)
	for i := 0; i < 100; i++ {
		assert.True(t, seen[i])
	}
}

// S5 (dup).
func TestScenarioDup(t *testing.T) {
	m := NewMap[int, int](0)
	for i := 0; i < 100; i++ {
		m.Set(i, i)
	}

	u := m.Clone()
	for i := 0; i < 100; i++ {
		_, wantOK := m.Get(i)
		_, gotOK := u.Get(i)
		assert.Equal(t, wantOK, gotOK)
	}

	u.Set(12345, 12345)
	u.Delete(0)

	_, ok := m.Get(12345)
	assert.False(t, ok, "mutating the clone must not affect the original")
	_, ok = m.Get(0)
	assert.True(t, ok, "mutating the clone must not affect the original")
}

// S6 (clear).
func TestScenarioClear(t *testing.T) {
	m := NewMap[int, int](0)
	for i := 0; i < 100; i++ {
		m.Set(i, i)
	}

	m.Clear()
	assert.Equal(t, 0, m.Len())

	m.Set(0, 0)
	seen := make(map[int]bool)
	m.Range(func(k, v int) bool {
		seen[k] = true
		return true
	})
	assert.Equal(t, map[int]bool{0: true}, seen)
}

func TestMapInsertIdempotence(t *testing.T) {
	p := DefaultPolicy[int]()
	table := NewRawTable[int, int](0, p)

	it1, inserted1 := table.Insert(7, 1)
	assert.True(t, inserted1)
	it2, inserted2 := table.Insert(7, 2)
	assert.False(t, inserted2)
	assert.Equal(t, 1, table.Len())

	k1, v1 := it1.Get()
	k2, v2 := it2.Get()
	assert.Equal(t, k1, k2)
	assert.Equal(t, v1, v2) // second Insert must not overwrite
}

func TestMapRangeEarlyStop(t *testing.T) {
	m := NewMap[int, int](0)
	for i := 0; i < 10; i++ {
		m.Set(i, i)
	}
	count := 0
	m.Range(func(k, v int) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestSetBasic(t *testing.T) {
	s := NewSet[string](16)

	assert.True(t, s.Put("foo"))
	assert.True(t, s.Has("foo"))
	assert.False(t, s.Put("foo"))
	assert.False(t, s.Has("bar"))

	assert.True(t, s.Delete("foo"))
	assert.False(t, s.Has("foo"))
	assert.False(t, s.Delete("foo"))
}

func TestBoxedMapGetPtrMutatesInPlace(t *testing.T) {
	bm := NewBoxedMap[string, int](0)
	bm.Set("x", 1)

	p, ok := bm.GetPtr("x")
	require.True(t, ok)
	*p = 2

	v, ok := bm.Get("x")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMapBulkOps(t *testing.T) {
	m := NewMap[int, string](0)
	keys := []int{1, 2, 3}
	vals := []string{"a", "b", "c"}
	m.SetBulk(keys, vals)

	gotVals, oks := m.GetBulk([]int{1, 2, 3, 4})
	assert.Equal(t, []string{"a", "b", "c", ""}, gotVals)
	assert.Equal(t, []bool{true, true, true, false}, oks)

	m.DeleteBulk([]int{1, 2})
	assert.Equal(t, 1, m.Len())
}
