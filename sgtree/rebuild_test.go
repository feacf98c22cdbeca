package sgtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireWeightBalanced asserts the per-node weight bound: every
// child subtree holds at most alpha of its parent's nodes. This is
// guaranteed for a tree a whole-tree rebuild has just produced.
func requireWeightBalanced(t *testing.T, tr *Tree[int, int]) {
	t.Helper()
	for _, ref := range tr.flatten(tr.root, nil) {
		n := tr.arena.node(ref)
		sz, _ := subtreeSize(&tr.arena, ref, nil)
		if n.left != NoRef {
			ls, _ := subtreeSize(&tr.arena, n.left, nil)
			require.False(t, tr.bal.isUnbalanced(ls, sz), "ref %d left %d of %d", ref, ls, sz)
		}
		if n.right != NoRef {
			rs, _ := subtreeSize(&tr.arena, n.right, nil)
			require.False(t, tr.bal.isUnbalanced(rs, sz), "ref %d right %d of %d", ref, rs, sz)
		}
	}
}

// Round-trip: flattening a subtree and rebuilding over the same refs
// must preserve the in-order ref sequence exactly and restore the
// weight invariant, without allocating or releasing any slot.
func TestFlattenRebuildRoundTrip(t *testing.T) {
	tr := New[int, int]()
	for _, k := range []int{50, 20, 70, 10, 30, 60, 80, 25, 35, 65} {
		tr.Insert(k, k)
	}

	before := tr.flatten(tr.root, nil)
	require.Len(t, before, tr.Len())
	slotsBefore := tr.arena.store.len()

	tr.rebuildSubtree(tr.root, NoRef)

	after := tr.flatten(tr.root, nil)
	require.Equal(t, before, after)
	require.Equal(t, slotsBefore, tr.arena.store.len())
	require.Empty(t, tr.arena.free)
	require.NoError(t, tr.CheckInvariants())
	requireWeightBalanced(t, tr)
}

func TestRebuildRangeShapes(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"single", 1},
		{"pair", 2},
		{"odd", 7},
		{"even", 8},
		{"larger", 129},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New[int, int]()
			for i := range tt.n {
				tr.Insert(i, i)
			}
			tr.rebuildSubtree(tr.root, NoRef)
			require.NoError(t, tr.CheckInvariants())
			requireWeightBalanced(t, tr)
			if tt.n > 0 {
				// A fresh rebuild is perfectly balanced, so the depth
				// is the minimum for n nodes.
				want := 0
				for 1<<(want+1) <= tt.n {
					want++
				}
				require.Equal(t, want, tr.Height())
			}
		})
	}
}

// From a 100-element tree, removals
// trigger a whole-tree rebuild exactly when size first drops to
// alpha * maxSize, and the high-water mark resets to the new size.
func TestDeleteTriggersFullRebuild(t *testing.T) {
	tr := New[int, int]()
	for i := range 100 {
		tr.Insert(i, i)
	}
	require.Equal(t, 100, tr.maxSize)

	expectedMax := 100
	for i := 99; i >= 10; i-- {
		_, ok := tr.Remove(i)
		require.True(t, ok)

		// Mirror the trigger: rebuild iff size <= (2/3) * maxSize.
		rebuilt := uint64(tr.size)*3 <= uint64(expectedMax)*2
		if rebuilt {
			expectedMax = tr.size
		}
		require.Equal(t, expectedMax, tr.maxSize, "after removing down to %d", tr.size)
		require.NoError(t, tr.CheckInvariants())
		if rebuilt {
			requireWeightBalanced(t, tr)
		}
	}
	require.Equal(t, 10, tr.Len())

	// The first reset from 100 must have happened at exactly 66.
	// (Recomputed here so the scenario stays honest end to end.)
	max, size := 100, 100
	resets := []int{}
	for size > 10 {
		size--
		if size*3 <= max*2 {
			max = size
			resets = append(resets, size)
		}
	}
	require.Equal(t, 66, resets[0])
}
