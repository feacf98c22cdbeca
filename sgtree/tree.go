package sgtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree is an ordered key/value collection over an arena-backed
// scapegoat tree. The zero value is not usable; construct with New,
// NewFunc or their Try variants.
//
// A Tree is not safe for concurrent use. Every operation runs to
// completion on the calling goroutine; rebalancing happens inside the
// mutation that triggered it.
type Tree[K, V any] struct {
	arena arena[K, V]
	less  LessFunc[K]
	bal   balance

	root    Ref
	size    int
	maxSize int

	// Reusable scratch. Mutations allocate nothing once these reach
	// their high-water mark.
	path        []Ref
	flat        []Ref
	sizeScratch []Ref
	tasks       []rebuildTask
}

type config struct {
	capacity int
	fixed    bool
	num, den uint64
}

// Option configures a Tree at construction.
type Option func(*config)

// WithCapacity reserves slot storage for n nodes up front. The tree
// may still grow past n; growth beyond the reservation falls back to
// the host allocator.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithFixedCapacity reserves slot storage for exactly n nodes and
// forbids growth: an insertion beyond n live nodes reports
// ErrTreeFull (TryInsert) or panics (Insert) and the tree is left
// unmodified. No operation after construction allocates node storage.
func WithFixedCapacity(n int) Option {
	return func(c *config) { c.capacity = n; c.fixed = true }
}

// WithRebalanceFactor sets alpha = num/den, which must satisfy
// 1/2 < num/den < 1. Larger alpha tolerates deeper trees and rebuilds
// less often; smaller alpha keeps the tree flatter at higher rebuild
// cost. The default is 2/3.
func WithRebalanceFactor(num, den uint64) Option {
	return func(c *config) { c.num = num; c.den = den }
}

// New returns a Tree ordered by <. It panics on invalid options; use
// TryNew where construction must not panic.
func New[K constraints.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b }, opts...)
}

// NewFunc returns a Tree ordered by less. It panics on invalid
// options; use TryNewFunc where construction must not panic.
func NewFunc[K, V any](less LessFunc[K], opts ...Option) *Tree[K, V] {
	t, err := TryNewFunc[K, V](less, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryNew is the fallible spelling of New.
func TryNew[K constraints.Ordered, V any](opts ...Option) (*Tree[K, V], error) {
	return TryNewFunc[K, V](func(a, b K) bool { return a < b }, opts...)
}

// TryNewFunc is the fallible spelling of NewFunc.
func TryNewFunc[K, V any](less LessFunc[K], opts ...Option) (*Tree[K, V], error) {
	cfg := config{num: DefaultAlphaNum, den: DefaultAlphaDen}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, cfg.capacity)
	}
	if cfg.capacity > maxSlots {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManySlots, cfg.capacity, maxSlots)
	}
	bal, err := newBalance(cfg.num, cfg.den)
	if err != nil {
		return nil, fmt.Errorf("%w: got %d/%d", err, cfg.num, cfg.den)
	}
	return &Tree[K, V]{
		arena: newArena[K, V](cfg.capacity, cfg.fixed),
		less:  less,
		bal:   bal,
		root:  NoRef,
	}, nil
}

// Len is the number of stored keys.
func (t *Tree[K, V]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool { return t.size == 0 }

// Cap returns the reserved slot capacity and whether it is fixed.
func (t *Tree[K, V]) Cap() (int, bool) {
	return cap(t.arena.store.slots), t.arena.store.fixed
}

// Clear removes every key. Reserved slot capacity is retained.
func (t *Tree[K, V]) Clear() {
	t.arena.reset()
	t.root = NoRef
	t.size = 0
	t.maxSize = 0
}

// find runs the iterative binary descent and returns the slot holding
// key, or NoRef.
func (t *Tree[K, V]) find(key K) Ref {
	cur := t.root
	for cur != NoRef {
		n := t.arena.node(cur)
		switch {
		case t.less(key, n.key):
			cur = n.left
		case t.less(n.key, key):
			cur = n.right
		default:
			return cur
		}
	}
	return NoRef
}

// Get returns the value stored for key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if ref := t.find(key); ref != NoRef {
		return t.arena.node(ref).val, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored for key, or nil. The
// pointer is valid only until the next mutating call on the tree.
func (t *Tree[K, V]) GetMut(key K) *V {
	if ref := t.find(key); ref != NoRef {
		return &t.arena.node(ref).val
	}
	return nil
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != NoRef
}

// Insert stores val under key, returning the previous value if key
// was already present. On a full fixed-capacity tree it panics with
// ErrTreeFull; use TryInsert where overflow must be recoverable.
func (t *Tree[K, V]) Insert(key K, val V) (V, bool) {
	prev, replaced, err := t.TryInsert(key, val)
	if err != nil {
		panic(err)
	}
	return prev, replaced
}

// TryInsert stores val under key, returning the previous value if key
// was already present. On a full fixed-capacity tree it reports
// ErrTreeFull and the tree is structurally unmodified.
func (t *Tree[K, V]) TryInsert(key K, val V) (V, bool, error) {
	var zero V

	// Descend to the insertion point, recording the ancestor path.
	// An existing key is overwritten in place with no structural
	// change, so it cannot fail even at fixed capacity.
	t.path = t.path[:0]
	cur := t.root
	for cur != NoRef {
		n := t.arena.node(cur)
		t.path = append(t.path, cur)
		switch {
		case t.less(key, n.key):
			cur = n.left
		case t.less(n.key, key):
			cur = n.right
		default:
			prev := n.val
			n.val = val
			return prev, true, nil
		}
	}

	ref, err := t.arena.allocate(key, val)
	if err != nil {
		return zero, false, err
	}
	if len(t.path) == 0 {
		t.root = ref
	} else {
		parent := t.arena.node(t.path[len(t.path)-1])
		if t.less(key, parent.key) {
			parent.left = ref
		} else {
			parent.right = ref
		}
	}
	t.size++
	if t.size > t.maxSize {
		t.maxSize = t.size
	}

	// The new leaf's depth equals the recorded path length. Exceeding
	// the height bound proves a weight violation on the path.
	if len(t.path) > t.bal.heightBound(t.size) {
		t.rebalanceAfterInsert(ref)
	}
	return zero, false, nil
}

// rebalanceAfterInsert walks the recorded ancestor path upward from
// the new leaf, recomputing subtree sizes, until it finds the first
// ancestor whose path-side child is alpha-heavy: the scapegoat. That
// ancestor's subtree is flattened and rebuilt in place.
func (t *Tree[K, V]) rebalanceAfterInsert(leaf Ref) {
	childRef := leaf
	childSize := 1
	for i := len(t.path) - 1; i >= 0; i-- {
		wRef := t.path[i]
		w := t.arena.node(wRef)
		sibling := w.left
		if sibling == childRef {
			sibling = w.right
		}
		sibSize, scratch := subtreeSize(&t.arena, sibling, t.sizeScratch)
		t.sizeScratch = scratch
		wSize := childSize + sibSize + 1
		if t.bal.isUnbalanced(childSize, wSize) {
			parent := NoRef
			if i > 0 {
				parent = t.path[i-1]
			}
			t.rebuildSubtree(wRef, parent)
			return
		}
		childRef = wRef
		childSize = wSize
	}
	// Height-bound rounding can in principle fire without a weight
	// violation on the path; restoring the bound at the root covers it.
	t.rebuildSubtree(t.root, NoRef)
}

// rebuildSubtree flattens the subtree at root and rebuilds it into a
// balanced shape over the same slots, relinking parent (NoRef for the
// tree root) to the new subtree root.
func (t *Tree[K, V]) rebuildSubtree(root, parent Ref) {
	t.flat = t.flatten(root, t.flat[:0])
	newRoot := t.rebuildRange(t.flat)
	if parent == NoRef {
		t.root = newRoot
		return
	}
	p := t.arena.node(parent)
	if p.left == root {
		p.left = newRoot
	} else {
		p.right = newRoot
	}
}
