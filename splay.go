package lctree

// rotate lifts v up one level over its current splay-tree parent, in
// whichever direction v sits. Rather than taking an explicit direction, it
// reads which side v sits on directly off v.parent, so callers never need to
// know the shape of the tree above v.
//
// rotate preserves path-parent semantics: if the old parent p was itself an
// auxiliary-splay root (its own parent slot held a path-parent edge, not a
// child-parent one), that same slot transfers to v unchanged — v is now the
// new splay root, and the path-parent edge belongs to whichever node is
// root.
func (t *LinkCutTree[W, A]) rotate(v int) {
	p := t.nodes[v].parent
	g := t.nodes[p].parent
	pWasRoot := t.isRoot(p)

	if t.nodes[p].left == v {
		t.nodes[p].left = t.nodes[v].right
		if t.nodes[p].left != 0 {
			t.nodes[t.nodes[p].left].parent = p
		}
		t.nodes[v].right = p
	} else {
		t.nodes[p].right = t.nodes[v].left
		if t.nodes[p].right != 0 {
			t.nodes[t.nodes[p].right].parent = p
		}
		t.nodes[v].left = p
	}
	t.nodes[p].parent = v
	t.nodes[v].parent = g
	if !pWasRoot {
		if t.nodes[g].left == p {
			t.nodes[g].left = v
		} else {
			t.nodes[g].right = v
		}
	}

	// Folds are recomputed bottom-up: p's children changed first, so p is
	// re-derived before v, which now has p as a child.
	t.recomputeFold(p)
	t.recomputeFold(v)
}

// splay moves v to the root of its auxiliary splay tree, preserving
// whatever path-parent edge the tree had at its old root. Before rotating,
// it pushes down every pending reversal flag from v's splay root down to v,
// so every rotation below can trust literal left/right pointers.
//
// The zig/zig-zig/zig-zag case analysis collapses, regardless of which side
// v sits on, to exactly two shapes once rotate always lifts its argument
// over its *current* parent: rotating p-then-v (lifting p over the
// grandparent, then v over p) for the same-direction case, and v-then-v for
// the opposite-direction case.
func (t *LinkCutTree[W, A]) splay(v int) {
	t.pushDownToRoot(v)
	for !t.isRoot(v) {
		p := t.nodes[v].parent
		if t.isRoot(p) {
			// zig: p is the splay root, one rotation finishes it.
			t.rotate(v)
			continue
		}
		g := t.nodes[p].parent
		vIsLeftOfP := t.nodes[p].left == v
		pIsLeftOfG := t.nodes[g].left == p
		if vIsLeftOfP == pIsLeftOfG {
			// zig-zig: same direction twice.
			t.rotate(p)
			t.rotate(v)
		} else {
			// zig-zag: opposite directions.
			t.rotate(v)
			t.rotate(v)
		}
	}
}

// pushDownToRoot walks from v up to its splay root, collecting the chain,
// then pushes down reversal flags top-to-bottom so that every node on the
// chain has concrete (unswapped) left/right pointers before splay begins
// rotating.
func (t *LinkCutTree[W, A]) pushDownToRoot(v int) {
	chain := t.ancestorChain(v)
	for i := len(chain) - 1; i >= 0; i-- {
		t.pushDown(chain[i])
	}
}

func (t *LinkCutTree[W, A]) ancestorChain(v int) []int {
	chain := []int{v}
	for !t.isRoot(v) {
		v = t.nodes[v].parent
		chain = append(chain, v)
	}
	return chain
}
