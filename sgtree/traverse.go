package sgtree

import "iter"

// First returns the smallest key and its value.
func (t *Tree[K, V]) First() (K, V, bool) {
	cur := t.root
	if cur == NoRef {
		var zk K
		var zv V
		return zk, zv, false
	}
	for t.arena.node(cur).left != NoRef {
		cur = t.arena.node(cur).left
	}
	n := t.arena.node(cur)
	return n.key, n.val, true
}

// Last returns the largest key and its value.
func (t *Tree[K, V]) Last() (K, V, bool) {
	cur := t.root
	if cur == NoRef {
		var zk K
		var zv V
		return zk, zv, false
	}
	for t.arena.node(cur).right != NoRef {
		cur = t.arena.node(cur).right
	}
	n := t.arena.node(cur)
	return n.key, n.val, true
}

// Successor returns the smallest stored key strictly greater than
// key, and its value. key itself need not be present.
func (t *Tree[K, V]) Successor(key K) (K, V, bool) {
	best := NoRef
	cur := t.root
	for cur != NoRef {
		n := t.arena.node(cur)
		if t.less(key, n.key) {
			best = cur
			cur = n.left
		} else {
			cur = n.right
		}
	}
	if best == NoRef {
		var zk K
		var zv V
		return zk, zv, false
	}
	n := t.arena.node(best)
	return n.key, n.val, true
}

// Predecessor returns the largest stored key strictly less than key,
// and its value. key itself need not be present.
func (t *Tree[K, V]) Predecessor(key K) (K, V, bool) {
	best := NoRef
	cur := t.root
	for cur != NoRef {
		n := t.arena.node(cur)
		if t.less(n.key, key) {
			best = cur
			cur = n.right
		} else {
			cur = n.left
		}
	}
	if best == NoRef {
		var zk K
		var zv V
		return zk, zv, false
	}
	n := t.arena.node(best)
	return n.key, n.val, true
}

// All yields every key/value pair in ascending key order. The tree
// must not be mutated during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []Ref
		cur := t.root
		for cur != NoRef || len(stack) > 0 {
			for cur != NoRef {
				stack = append(stack, cur)
				cur = t.arena.node(cur).left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := t.arena.node(cur)
			if !yield(n.key, n.val) {
				return
			}
			cur = n.right
		}
	}
}

// Backward yields every key/value pair in descending key order. The
// tree must not be mutated during iteration.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []Ref
		cur := t.root
		for cur != NoRef || len(stack) > 0 {
			for cur != NoRef {
				stack = append(stack, cur)
				cur = t.arena.node(cur).right
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := t.arena.node(cur)
			if !yield(n.key, n.val) {
				return
			}
			cur = n.left
		}
	}
}
