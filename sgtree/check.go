package sgtree

import "fmt"

// Height is the number of edges on the longest root-to-leaf path, or
// -1 for an empty tree. Intended for diagnostics and tests; it visits
// every node.
func (t *Tree[K, V]) Height() int {
	if t.root == NoRef {
		return -1
	}
	type frame struct {
		ref   Ref
		depth int
	}
	height := 0
	stack := []frame{{ref: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > height {
			height = f.depth
		}
		n := t.arena.node(f.ref)
		if n.left != NoRef {
			stack = append(stack, frame{n.left, f.depth + 1})
		}
		if n.right != NoRef {
			stack = append(stack, frame{n.right, f.depth + 1})
		}
	}
	return height
}

// CheckInvariants verifies the structural invariants: strictly
// increasing in-order key sequence, the logarithmic height bound,
// slot occupancy accounting, and free-list consistency. It is a
// diagnostic for tests and debugging, not part of the operation
// contract, and it must never report an error in correct operation.
//
// Note the maintained balance invariant is the height bound relative
// to the high-water size; per-node weight balance is guaranteed only
// for subtrees a rebuild has just produced, and single insertions may
// leave a node alpha-heavy without crossing the rebuild trigger.
func (t *Tree[K, V]) CheckInvariants() error {
	total := t.arena.store.len()
	if t.size != t.arena.occupied() {
		return fmt.Errorf("%w: size=%d occupied=%d", ErrSizeMismatch, t.size, t.arena.occupied())
	}

	freed := make(map[Ref]bool, len(t.arena.free))
	for _, ref := range t.arena.free {
		if int(ref) >= total {
			return fmt.Errorf("%w: free ref %d beyond store length %d", ErrFreeListInvalid, ref, total)
		}
		if freed[ref] {
			return fmt.Errorf("%w: ref %d freed twice", ErrFreeListInvalid, ref)
		}
		freed[ref] = true
	}

	// Walk every reachable node once, checking that no slot is shared
	// between parents and none is on the free list.
	seen := make(map[Ref]bool, t.size)
	sizes := make(map[Ref]int, t.size)
	if t.root != NoRef {
		stack := []Ref{t.root}
		for len(stack) > 0 {
			ref := stack[len(stack)-1]
			n := t.arena.node(ref)

			if !seen[ref] {
				seen[ref] = true
				if freed[ref] {
					return fmt.Errorf("%w: reachable ref %d is on the free list", ErrFreeListInvalid, ref)
				}
				// Post-order: size children before the node itself.
				if n.left != NoRef {
					if seen[n.left] && sizes[n.left] == 0 {
						return fmt.Errorf("%w: ref %d referenced by two parents", ErrSizeMismatch, n.left)
					}
					stack = append(stack, n.left)
				}
				if n.right != NoRef {
					if seen[n.right] && sizes[n.right] == 0 {
						return fmt.Errorf("%w: ref %d referenced by two parents", ErrSizeMismatch, n.right)
					}
					stack = append(stack, n.right)
				}
				continue
			}

			stack = stack[:len(stack)-1]
			if sizes[ref] != 0 {
				continue
			}
			sz := 1
			if n.left != NoRef {
				sz += sizes[n.left]
			}
			if n.right != NoRef {
				sz += sizes[n.right]
			}
			sizes[ref] = sz
		}
	}
	if len(seen) != t.size {
		return fmt.Errorf("%w: size=%d reachable=%d", ErrSizeMismatch, t.size, len(seen))
	}
	if len(freed)+t.size != total {
		return fmt.Errorf("%w: free=%d size=%d slots=%d", ErrFreeListInvalid, len(freed), t.size, total)
	}

	if h, bound := t.Height(), t.bal.heightBound(t.maxSize)+1; h > bound {
		return fmt.Errorf("%w: height=%d bound=%d size=%d maxSize=%d", ErrHeightViolated, h, bound, t.size, t.maxSize)
	}

	// Strict in-order key ordering.
	first := true
	var prev K
	for key := range t.All() {
		if !first && !t.less(prev, key) {
			return fmt.Errorf("%w: %v then %v", ErrOrderViolated, prev, key)
		}
		prev = key
		first = false
	}
	return nil
}
