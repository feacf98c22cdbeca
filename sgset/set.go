// Package sgset provides an ordered set over the sgtree scapegoat
// tree engine: a key-only projection plus set algebra. Every ordering
// and rebalancing decision belongs to sgtree.
package sgset

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/cjgrand1/scapegoat/sgtree"
)

// Set is an ordered set of keys. It is not safe for concurrent use.
type Set[K any] struct {
	t    *sgtree.Tree[K, struct{}]
	less sgtree.LessFunc[K]
}

// New returns a Set ordered by <. Options are sgtree options.
func New[K constraints.Ordered](opts ...sgtree.Option) *Set[K] {
	return NewFunc[K](func(a, b K) bool { return a < b }, opts...)
}

// NewFunc returns a Set ordered by less.
func NewFunc[K any](less sgtree.LessFunc[K], opts ...sgtree.Option) *Set[K] {
	return &Set[K]{t: sgtree.NewFunc[K, struct{}](less, opts...), less: less}
}

// TryNew is the fallible spelling of New.
func TryNew[K constraints.Ordered](opts ...sgtree.Option) (*Set[K], error) {
	return TryNewFunc[K](func(a, b K) bool { return a < b }, opts...)
}

// TryNewFunc is the fallible spelling of NewFunc.
func TryNewFunc[K any](less sgtree.LessFunc[K], opts ...sgtree.Option) (*Set[K], error) {
	t, err := sgtree.TryNewFunc[K, struct{}](less, opts...)
	if err != nil {
		return nil, err
	}
	return &Set[K]{t: t, less: less}, nil
}

// Insert adds key, reporting whether it was newly added. On a full
// fixed-capacity set it panics with sgtree.ErrTreeFull.
func (s *Set[K]) Insert(key K) bool {
	_, replaced := s.t.Insert(key, struct{}{})
	return !replaced
}

// TryInsert is the fallible spelling of Insert: a full fixed-capacity
// set reports sgtree.ErrTreeFull and is left unchanged.
func (s *Set[K]) TryInsert(key K) (bool, error) {
	_, replaced, err := s.t.TryInsert(key, struct{}{})
	return !replaced && err == nil, err
}

// Contains reports whether key is a member.
func (s *Set[K]) Contains(key K) bool { return s.t.Contains(key) }

// Remove deletes key, reporting whether it was a member.
func (s *Set[K]) Remove(key K) bool {
	_, removed := s.t.Remove(key)
	return removed
}

// Len is the number of members.
func (s *Set[K]) Len() int { return s.t.Len() }

// IsEmpty reports whether the set has no members.
func (s *Set[K]) IsEmpty() bool { return s.t.IsEmpty() }

// Clear removes every member, retaining reserved capacity.
func (s *Set[K]) Clear() { s.t.Clear() }

// First returns the smallest member.
func (s *Set[K]) First() (K, bool) {
	k, _, ok := s.t.First()
	return k, ok
}

// Last returns the largest member.
func (s *Set[K]) Last() (K, bool) {
	k, _, ok := s.t.Last()
	return k, ok
}

// Successor returns the smallest member strictly greater than key.
func (s *Set[K]) Successor(key K) (K, bool) {
	k, _, ok := s.t.Successor(key)
	return k, ok
}

// Predecessor returns the largest member strictly less than key.
func (s *Set[K]) Predecessor(key K) (K, bool) {
	k, _, ok := s.t.Predecessor(key)
	return k, ok
}

// All yields members in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Backward yields members in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.t.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

// Set algebra. Both operands must share the same key ordering; the
// result is a new growable set with the receiver's ordering.

// Union returns a set holding every member of s and other.
func (s *Set[K]) Union(other *Set[K]) *Set[K] {
	out := NewFunc[K](s.less)
	for k := range s.All() {
		out.Insert(k)
	}
	for k := range other.All() {
		out.Insert(k)
	}
	return out
}

// Intersection returns a set holding the members present in both s
// and other.
func (s *Set[K]) Intersection(other *Set[K]) *Set[K] {
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	out := NewFunc[K](s.less)
	for k := range small.All() {
		if large.Contains(k) {
			out.Insert(k)
		}
	}
	return out
}

// Difference returns a set holding the members of s not in other.
func (s *Set[K]) Difference(other *Set[K]) *Set[K] {
	out := NewFunc[K](s.less)
	for k := range s.All() {
		if !other.Contains(k) {
			out.Insert(k)
		}
	}
	return out
}

// SymmetricDifference returns a set holding the members in exactly
// one of s and other.
func (s *Set[K]) SymmetricDifference(other *Set[K]) *Set[K] {
	out := s.Difference(other)
	for k := range other.All() {
		if !s.Contains(k) {
			out.Insert(k)
		}
	}
	return out
}

// IsSubset reports whether every member of s is in other.
func (s *Set[K]) IsSubset(other *Set[K]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for k := range s.All() {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every member of other is in s.
func (s *Set[K]) IsSuperset(other *Set[K]) bool {
	return other.IsSubset(s)
}

// IsDisjoint reports whether s and other share no members.
func (s *Set[K]) IsDisjoint(other *Set[K]) bool {
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	for k := range small.All() {
		if large.Contains(k) {
			return false
		}
	}
	return true
}
