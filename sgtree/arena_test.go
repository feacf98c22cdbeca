package sgtree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaAllocateRelease(t *testing.T) {
	a := newArena[int, string](4, false)

	r0, err := a.allocate(1, "one")
	require.NoError(t, err)
	r1, err := a.allocate(2, "two")
	require.NoError(t, err)
	require.NotEqual(t, r0, r1)
	require.Equal(t, 2, a.occupied())

	n := a.node(r0)
	require.Equal(t, 1, n.key)
	require.Equal(t, "one", n.val)
	require.Equal(t, NoRef, n.left)
	require.Equal(t, NoRef, n.right)

	// Release must not move other slots.
	a.release(r0)
	require.Equal(t, 1, a.occupied())
	require.Equal(t, 2, a.node(r1).key)
	require.Equal(t, "", a.node(r0).val)

	// Freed slot is reused before the store grows.
	r2, err := a.allocate(3, "three")
	require.NoError(t, err)
	require.Equal(t, r0, r2)
	require.Equal(t, 2, a.store.len())
}

func TestArenaFixedCapacity(t *testing.T) {
	a := newArena[int, int](2, true)

	_, err := a.allocate(1, 1)
	require.NoError(t, err)
	r1, err := a.allocate(2, 2)
	require.NoError(t, err)

	_, err = a.allocate(3, 3)
	require.ErrorIs(t, err, ErrTreeFull)

	// Releasing makes the slot allocatable again without growth.
	a.release(r1)
	r2, err := a.allocate(4, 4)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
	require.Equal(t, 2, a.store.len())
}

func TestStoreAppendFixed(t *testing.T) {
	s := newStore[int, int](1, true)
	ref, err := s.append(node[int, int]{key: 7, left: NoRef, right: NoRef})
	if err != nil {
		t.Fatal(err)
	}
	if ref != 0 {
		t.Errorf("first append ref = %d, want 0", ref)
	}
	if _, err = s.append(node[int, int]{}); !errors.Is(err, ErrTreeFull) {
		t.Errorf("append past fixed capacity err = %v, want ErrTreeFull", err)
	}
	if s.len() != 1 {
		t.Errorf("store len = %d, want 1", s.len())
	}
}
