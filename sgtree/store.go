package sgtree

// node is one element slot: key, value and two child refs. There is
// no parent ref, colour or height field; balance is decided from
// recomputed subtree sizes.
type node[K, V any] struct {
	key   K
	val   V
	left  Ref
	right Ref
}

// store is the capacity store: an index-addressable, append-only
// sequence of node slots. It has no tree knowledge. The slot backing
// is reserved to the configured capacity at construction; in fixed
// mode it never grows and appends beyond it report ErrTreeFull.
type store[K, V any] struct {
	slots []node[K, V]
	fixed bool
}

func newStore[K, V any](capacity int, fixed bool) store[K, V] {
	return store[K, V]{
		slots: make([]node[K, V], 0, capacity),
		fixed: fixed,
	}
}

// append adds a slot and returns its ref. In fixed mode a full store
// reports ErrTreeFull without touching the backing array.
func (s *store[K, V]) append(n node[K, V]) (Ref, error) {
	if s.fixed && len(s.slots) == cap(s.slots) {
		return NoRef, ErrTreeFull
	}
	if len(s.slots) >= maxSlots {
		return NoRef, ErrTooManySlots
	}
	ref := Ref(len(s.slots))
	s.slots = append(s.slots, n)
	return ref, nil
}

// at returns the slot for ref. ref must not be NoRef and must have
// been returned by append; this is the burden-of-knowledge interior
// accessor, the public API never exposes refs.
func (s *store[K, V]) at(ref Ref) *node[K, V] {
	return &s.slots[ref]
}

func (s *store[K, V]) len() int {
	return len(s.slots)
}

func (s *store[K, V]) reset() {
	s.slots = s.slots[:0]
}
