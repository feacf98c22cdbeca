package sgtree

import "errors"

// Ref is a node slot index into the tree's arena.
type Ref uint32

// NoRef is the distinguished "no child" / "no node" sentinel.
const NoRef = ^Ref(0)

// maxSlots bounds the slot count so indices stay clear of the NoRef
// sentinel and fit int on 32 bit hosts.
const maxSlots = 1<<31 - 1

// LessFunc reports whether a sorts strictly before b. Keys for which
// neither a<b nor b<a holds are treated as equal.
type LessFunc[K any] func(a, b K) bool

// Rebalance factor default: alpha = 2/3.
const (
	DefaultAlphaNum = 2
	DefaultAlphaDen = 3
)

var (
	ErrTreeFull           = errors.New("sgtree: tree is at fixed capacity")
	ErrTooManySlots       = errors.New("sgtree: slot count does not fit the ref width")
	ErrBadRebalanceFactor = errors.New("sgtree: rebalance factor must satisfy 1/2 < num/den < 1")
	ErrBadCapacity        = errors.New("sgtree: capacity must be >= 0")
)

// Errors reported by CheckInvariants. These never surface from the
// public operations; they exist so diagnostics can name what broke.
var (
	ErrOrderViolated   = errors.New("sgtree: in-order key sequence is not strictly increasing")
	ErrHeightViolated  = errors.New("sgtree: tree height exceeds the balance bound")
	ErrSizeMismatch    = errors.New("sgtree: size disagrees with reachable node count")
	ErrFreeListInvalid = errors.New("sgtree: free list disagrees with slot occupancy")
)
