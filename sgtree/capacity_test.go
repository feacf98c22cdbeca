package sgtree

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// With a fixed capacity of 4,
// the 5th distinct key is rejected with ErrTreeFull and the existing
// keys remain retrievable and unchanged.
func TestFixedCapacityRejectsOverflow(t *testing.T) {
	tr := New[int, string](WithFixedCapacity(4))

	keys := []int{2, 1, 3, 4}
	for _, k := range keys {
		_, _, err := tr.TryInsert(k, "v")
		require.NoError(t, err)
	}

	_, _, err := tr.TryInsert(5, "overflow")
	require.ErrorIs(t, err, ErrTreeFull)
	require.Equal(t, 4, tr.Len())
	for _, k := range keys {
		v, ok := tr.Get(k)
		require.True(t, ok)
		require.Equal(t, "v", v)
	}
	require.NoError(t, tr.CheckInvariants())

	// Overwriting a present key needs no slot and must still succeed.
	prev, replaced, err := tr.TryInsert(3, "updated")
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, "v", prev)

	// The panicking spelling surfaces the same condition.
	require.PanicsWithValue(t, ErrTreeFull, func() { tr.Insert(6, "boom") })
	require.Equal(t, 4, tr.Len())

	// Freeing a slot makes room again.
	_, removed := tr.Remove(2)
	require.True(t, removed)
	_, _, err = tr.TryInsert(5, "fits")
	require.NoError(t, err)
	require.Equal(t, 4, tr.Len())
	require.NoError(t, tr.CheckInvariants())
}

// Churn must not grow the slot store: after removing k keys and
// inserting k new ones, the arena reuses the freed slots.
func TestChurnReusesSlots(t *testing.T) {
	tr := New[string, int]()

	live := make([]string, 0, 64)
	for i := range 64 {
		k := uuid.NewString()
		tr.Insert(k, i)
		live = append(live, k)
	}
	slots := tr.arena.store.len()
	require.Equal(t, 64, slots)

	for round := range 50 {
		for _, k := range live[:16] {
			_, ok := tr.Remove(k)
			require.True(t, ok)
		}
		live = live[16:]
		for i := range 16 {
			k := uuid.NewString()
			tr.Insert(k, round*16+i)
			live = append(live, k)
		}
		require.Equal(t, slots, tr.arena.store.len(), "round %d", round)
		require.Equal(t, 64, tr.Len())
	}
	require.NoError(t, tr.CheckInvariants())
}

func TestFixedCapacityChurnAtFull(t *testing.T) {
	const n = 32
	tr := New[int, int](WithFixedCapacity(n))
	for i := range n {
		_, _, err := tr.TryInsert(i, i)
		require.NoError(t, err)
	}
	// At capacity, every remove frees exactly the room for one insert.
	for i := range 1000 {
		k := i % n
		_, ok := tr.Remove(k)
		require.True(t, ok)
		_, _, err := tr.TryInsert(k, i)
		require.NoError(t, err)
	}
	require.Equal(t, n, tr.Len())
	require.NoError(t, tr.CheckInvariants())
}
