package sgtree

/*

# Motivation for the choice of scapegoat trees

Scapegoat trees (Galperin & Rivest, 1993; Andersson, 1989) keep a
binary search tree within a logarithmic height bound without storing
any per-node balance metadata and without rotations. The tree is
allowed to drift out of shape; when an insertion lands too deep, one
ancestor - the scapegoat - is found whose subtree has become
alpha-weight-unbalanced, and that whole subtree is rebuilt into a
perfectly balanced shape in a single linear pass. Deletions never
restructure locally at all: the tree records the largest size it has
reached since the last full rebuild, and once the live population
falls to an alpha-fraction of that high-water mark the entire tree is
rebuilt once.

This trades the worst-case O(log n) of red-black or AVL trees for an
amortized O(log n) with three properties that matter for constrained
and embedded hosts:

 1. Nodes carry only a key, a value and two child references. There is
    no colour bit, no height field, no parent pointer.
 2. Rebuilds are in-place relinks over slots the tree already owns.
    The rebalancing path performs no allocation.
 3. Every algorithm here is iterative. Depth is bounded by the balance
    invariant, the auxiliary stacks are reusable scratch buffers, and
    nothing recurses, so there is no call-stack exposure to
    adversarial insertion orders.

# Arena addressing

Nodes live in a single slot store and refer to their children by Ref,
a 32 bit slot index, with NoRef standing in for "no child". Removal
pushes the freed slot onto a free list and allocation pops it before
the store is ever grown, so a tree under churn reaches a steady state
in which no call touches the host allocator. The fixed-capacity mode
takes this further: the slot store is reserved once at construction
and an insertion that would exceed it reports ErrTreeFull and leaves
the tree untouched.

Because children are indices rather than pointers, the rebuild step is
pure bookkeeping: flattening a subtree produces its slot indices in
key order, and rebuilding writes new left/right indices around the
median of each range. No key or value is moved between slots and no
slot changes identity.

# The balance invariant

The rebalance factor alpha is a rational num/den in (1/2, 1), default
2/3. The tree maintains, for every node w with subtree size s(w) and
child c:

	s(c) <= alpha * s(w)

which bounds the height by log(n) / log(1/alpha). After an insertion
the new leaf's recorded depth is compared with that bound; a violation
proves some ancestor on the descent path breaks the weight condition,
and the first such ancestor found walking upward is the scapegoat.
Subtree sizes are not cached on nodes; they are recomputed by
iterative traversal only along the one path being examined, which
keeps the node format minimal and the common (in-bound) insertion
free of any size maintenance.

# Sources

  - Galperin, Rivest: "Scapegoat Trees", SODA 1993,
    https://people.csail.mit.edu/rivest/pubs/GR93.pdf
  - Andersson: "Improving partial rebuilding by using simple balance
    criteria", WADS 1989.
  - https://en.wikipedia.org/wiki/Scapegoat_tree

The sgmap and sgset packages provide the ordered map and ordered set
surfaces over this engine; nothing in this package is specific to
either projection.

*/
