package sgtree

import "math"

// balance is the weight-balance tracker. The rebalance factor alpha is
// held as the rational num/den so the invariant checks are exact
// integer comparisons; only the post-insert height bound uses floats,
// and that bound is a trigger heuristic rather than the invariant.
type balance struct {
	num uint64
	den uint64

	// 1 / log(den/num), so heightBound is a single multiply.
	invLogInvAlpha float64
}

func newBalance(num, den uint64) (balance, error) {
	// Require 1/2 < num/den < 1.
	if num == 0 || den == 0 || num >= den || den >= 2*num {
		return balance{}, ErrBadRebalanceFactor
	}
	return balance{
		num:            num,
		den:            den,
		invLogInvAlpha: 1 / math.Log(float64(den)/float64(num)),
	}, nil
}

// isUnbalanced reports whether a child subtree of childSize nodes is
// too heavy for a parent subtree of parentSize nodes, that is
// childSize > alpha * parentSize.
func (b balance) isUnbalanced(childSize, parentSize int) bool {
	return uint64(childSize)*b.den > uint64(parentSize)*b.num
}

// heightBound is the largest depth tolerated for a tree of size
// nodes: floor(log(size) / log(1/alpha)). A leaf inserted deeper than
// this proves a weight violation exists on its ancestor path.
func (b balance) heightBound(size int) int {
	if size <= 1 {
		return 0
	}
	return int(math.Log(float64(size)) * b.invLogInvAlpha)
}

// shouldRebuildOnDelete reports whether the live size has decayed to
// an alpha-fraction of the high-water mark, size <= alpha * maxSize,
// at which point the whole tree is rebuilt once.
func (b balance) shouldRebuildOnDelete(size, maxSize int) bool {
	return uint64(size)*b.den <= uint64(maxSize)*b.num
}

// subtreeSize counts the nodes reachable from root by iterative
// traversal. Sizes are not cached per node; this runs only along the
// scapegoat search path and inside invariant checks. The scratch
// slice is reused across calls to keep the mutation path free of
// allocation at steady state.
func subtreeSize[K, V any](a *arena[K, V], root Ref, scratch []Ref) (int, []Ref) {
	if root == NoRef {
		return 0, scratch
	}
	stack := scratch[:0]
	stack = append(stack, root)
	size := 0
	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		n := a.node(ref)
		if n.left != NoRef {
			stack = append(stack, n.left)
		}
		if n.right != NoRef {
			stack = append(stack, n.right)
		}
	}
	return size, stack
}
