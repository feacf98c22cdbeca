package sgtree

// arena addresses the capacity store as the tree's node storage and
// owns the free list of slots returned by removal. Freed slots are
// reused before the store is grown, so removal followed by insertion
// never extends the store.
type arena[K, V any] struct {
	store store[K, V]
	free  []Ref
}

func newArena[K, V any](capacity int, fixed bool) arena[K, V] {
	return arena[K, V]{store: newStore[K, V](capacity, fixed)}
}

// allocate writes key/val into a reused or fresh slot and returns its
// ref. The slot's child refs are initialised to NoRef.
func (a *arena[K, V]) allocate(key K, val V) (Ref, error) {
	if n := len(a.free); n > 0 {
		ref := a.free[n-1]
		a.free = a.free[:n-1]
		*a.store.at(ref) = node[K, V]{key: key, val: val, left: NoRef, right: NoRef}
		return ref, nil
	}
	return a.store.append(node[K, V]{key: key, val: val, left: NoRef, right: NoRef})
}

// release clears the slot payload and pushes ref onto the free list.
// Other slots are never shifted or compacted, so every other ref in
// the arena remains valid across a release.
func (a *arena[K, V]) release(ref Ref) {
	// Zero the payload so released keys/values do not pin host memory.
	*a.store.at(ref) = node[K, V]{left: NoRef, right: NoRef}
	a.free = append(a.free, ref)
}

// node returns the slot for ref. ref must not be NoRef.
func (a *arena[K, V]) node(ref Ref) *node[K, V] {
	return a.store.at(ref)
}

// occupied is the count of live (allocated, unreleased) slots.
func (a *arena[K, V]) occupied() int {
	return a.store.len() - len(a.free)
}

func (a *arena[K, V]) reset() {
	a.store.reset()
	a.free = a.free[:0]
}
