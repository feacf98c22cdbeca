package sgtree

// flatten appends the slot refs of the subtree at root to dst in key
// order, by iterative in-order traversal over an explicit stack. Node
// payloads are not read or moved; the ref sequence is the only
// transient state between flatten and rebuild.
func (t *Tree[K, V]) flatten(root Ref, dst []Ref) []Ref {
	stack := t.sizeScratch[:0]
	cur := root
	for cur != NoRef || len(stack) > 0 {
		for cur != NoRef {
			stack = append(stack, cur)
			cur = t.arena.node(cur).left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		dst = append(dst, cur)
		cur = t.arena.node(cur).right
	}
	t.sizeScratch = stack
	return dst
}

// rebuildTask is one pending range of the work-list rebuild: link the
// median of refs[lo:hi] as the leftChild/right child of parent.
type rebuildTask struct {
	lo, hi    int
	parent    Ref
	leftChild bool
}

// rebuildRange relinks the slots in refs (which must be in key order)
// into a perfectly weight-balanced subtree and returns its root. The
// work list replaces recursion; each visited node takes the median of
// its range so both halves stay within the weight bound for any alpha
// above 1/2. No slot is allocated or released and no payload moves:
// only child refs are rewritten.
func (t *Tree[K, V]) rebuildRange(refs []Ref) Ref {
	if len(refs) == 0 {
		return NoRef
	}
	newRoot := NoRef
	tasks := t.tasks[:0]
	tasks = append(tasks, rebuildTask{lo: 0, hi: len(refs), parent: NoRef})
	for len(tasks) > 0 {
		task := tasks[len(tasks)-1]
		tasks = tasks[:len(tasks)-1]

		mid := task.lo + (task.hi-task.lo)/2
		ref := refs[mid]
		n := t.arena.node(ref)
		n.left, n.right = NoRef, NoRef

		if task.parent == NoRef {
			newRoot = ref
		} else {
			p := t.arena.node(task.parent)
			if task.leftChild {
				p.left = ref
			} else {
				p.right = ref
			}
		}

		if task.lo < mid {
			tasks = append(tasks, rebuildTask{lo: task.lo, hi: mid, parent: ref, leftChild: true})
		}
		if mid+1 < task.hi {
			tasks = append(tasks, rebuildTask{lo: mid + 1, hi: task.hi, parent: ref})
		}
	}
	t.tasks = tasks
	return newRoot
}
