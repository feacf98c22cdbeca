package sgtree

// Remove deletes key and returns its value. An absent key returns
// (zero, false) and leaves the tree unchanged.
//
// Removal never restructures locally beyond splicing the removed
// slot out; instead, once the live size decays to an alpha-fraction
// of the high-water mark the whole tree is rebuilt and the mark
// reset, which amortizes to O(log n) per removal.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	var zero V

	parent := NoRef
	cur := t.root
	for cur != NoRef {
		n := t.arena.node(cur)
		if t.less(key, n.key) {
			parent = cur
			cur = n.left
			continue
		}
		if t.less(n.key, key) {
			parent = cur
			cur = n.right
			continue
		}
		break
	}
	if cur == NoRef {
		return zero, false
	}

	target := t.arena.node(cur)
	removed := target.val

	if target.left != NoRef && target.right != NoRef {
		// Two children: copy the in-order successor's payload into
		// this slot and retarget removal to the successor, which has
		// no left child.
		sParent := cur
		s := target.right
		for t.arena.node(s).left != NoRef {
			sParent = s
			s = t.arena.node(s).left
		}
		sn := t.arena.node(s)
		target.key = sn.key
		target.val = sn.val
		cur, parent, target = s, sParent, sn
	}

	// At most one child: splice it into the parent's slot reference.
	child := target.left
	if child == NoRef {
		child = target.right
	}
	if parent == NoRef {
		t.root = child
	} else {
		p := t.arena.node(parent)
		if p.left == cur {
			p.left = child
		} else {
			p.right = child
		}
	}
	t.arena.release(cur)
	t.size--

	if t.bal.shouldRebuildOnDelete(t.size, t.maxSize) {
		t.rebuildSubtree(t.root, NoRef)
		t.maxSize = t.size
	}
	return removed, true
}
