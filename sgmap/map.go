// Package sgmap provides an ordered map over the sgtree scapegoat
// tree engine. It is a key/value projection only; every ordering and
// rebalancing decision belongs to sgtree.
package sgmap

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/cjgrand1/scapegoat/sgtree"
)

// Map is an ordered key/value map. It is not safe for concurrent use.
type Map[K, V any] struct {
	t *sgtree.Tree[K, V]
}

// New returns a Map ordered by <. Options are sgtree options.
func New[K constraints.Ordered, V any](opts ...sgtree.Option) *Map[K, V] {
	return &Map[K, V]{t: sgtree.New[K, V](opts...)}
}

// NewFunc returns a Map ordered by less.
func NewFunc[K, V any](less sgtree.LessFunc[K], opts ...sgtree.Option) *Map[K, V] {
	return &Map[K, V]{t: sgtree.NewFunc[K, V](less, opts...)}
}

// TryNew is the fallible spelling of New.
func TryNew[K constraints.Ordered, V any](opts ...sgtree.Option) (*Map[K, V], error) {
	t, err := sgtree.TryNew[K, V](opts...)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{t: t}, nil
}

// TryNewFunc is the fallible spelling of NewFunc.
func TryNewFunc[K, V any](less sgtree.LessFunc[K], opts ...sgtree.Option) (*Map[K, V], error) {
	t, err := sgtree.TryNewFunc[K, V](less, opts...)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{t: t}, nil
}

// Set stores val under key and returns the previous value, if any.
// On a full fixed-capacity map it panics with sgtree.ErrTreeFull.
func (m *Map[K, V]) Set(key K, val V) (V, bool) {
	return m.t.Insert(key, val)
}

// TrySet is the fallible spelling of Set: a full fixed-capacity map
// reports sgtree.ErrTreeFull and is left unchanged.
func (m *Map[K, V]) TrySet(key K, val V) (V, bool, error) {
	return m.t.TryInsert(key, val)
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) { return m.t.Get(key) }

// GetMut returns a pointer to the value stored for key, or nil. The
// pointer is valid only until the next mutating call.
func (m *Map[K, V]) GetMut(key K) *V { return m.t.GetMut(key) }

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool { return m.t.Contains(key) }

// Delete removes key and returns its value, if it was present.
func (m *Map[K, V]) Delete(key K) (V, bool) { return m.t.Remove(key) }

// Len is the number of entries.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.t.IsEmpty() }

// Clear removes every entry, retaining reserved capacity.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// First returns the entry with the smallest key.
func (m *Map[K, V]) First() (K, V, bool) { return m.t.First() }

// Last returns the entry with the largest key.
func (m *Map[K, V]) Last() (K, V, bool) { return m.t.Last() }

// Successor returns the entry with the smallest key strictly greater
// than key; key itself need not be present.
func (m *Map[K, V]) Successor(key K) (K, V, bool) { return m.t.Successor(key) }

// Predecessor returns the entry with the largest key strictly less
// than key; key itself need not be present.
func (m *Map[K, V]) Predecessor(key K) (K, V, bool) { return m.t.Predecessor(key) }

// All yields entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.t.All() }

// Backward yields entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] { return m.t.Backward() }

// Keys yields keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.t.All() {
			if !yield(v) {
				return
			}
		}
	}
}
