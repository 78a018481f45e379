package lctree

// node is one slot of the arena. Indices are 1-based; index 0 is the
// permanent "absent" sentinel, so a zeroed parent/left/right field reads as
// "no such node" without an extra nil check. A Handle h is stored at index
// int(h)+1.
//
// parent plays two roles that share one slot: while the node is a child of
// another node in its auxiliary splay tree, parent is that splay-tree
// parent. Once the node becomes the root of its auxiliary splay tree, the
// same slot — if set — holds the path-parent edge into the next preferred
// path up the represented tree. Which role applies is never stored
// directly; it's inferred from whether the parent's left/right claims this
// node as a child (isRoot).
type node[W any, A any] struct {
	weight      W
	parent      int
	left, right int
	flipped     bool
	fold        A
}

// isRoot reports whether v is the root of its auxiliary splay tree: either
// it has no parent slot at all, or the slot it has doesn't claim v as a
// child (a path-parent edge).
func (t *LinkCutTree[W, A]) isRoot(v int) bool {
	p := t.nodes[v].parent
	return p == 0 || (t.nodes[p].left != v && t.nodes[p].right != v)
}

// pushDown clears a pending reversal flag on v, swapping its children and
// passing the flag down to them. Every structural read or write that
// depends on left/right identity must be preceded by pushDown on every
// ancestor of the node being inspected.
func (t *LinkCutTree[W, A]) pushDown(v int) {
	if v == 0 || !t.nodes[v].flipped {
		return
	}
	n := &t.nodes[v]
	n.flipped = false
	n.left, n.right = n.right, n.left
	if n.left != 0 {
		t.nodes[n.left].flipped = !t.nodes[n.left].flipped
	}
	if n.right != 0 {
		t.nodes[n.right].flipped = !t.nodes[n.right].flipped
	}
}

// recomputeFold re-derives v's cached fold from its (possibly absent)
// children and its own seed, in the canonical in-order combine order
// fold(left) • seed(self) • fold(right). Callers must have already pushed
// down v's own flag (recomputeFold reads n.left/n.right directly) before
// calling this.
func (t *LinkCutTree[W, A]) recomputeFold(v int) {
	n := &t.nodes[v]
	agg := t.fold.Seed(n.weight, Handle(v-1))
	if n.left != 0 {
		agg = t.fold.Combine(t.nodes[n.left].fold, agg)
	}
	if n.right != 0 {
		agg = t.fold.Combine(agg, t.nodes[n.right].fold)
	}
	n.fold = agg
}
