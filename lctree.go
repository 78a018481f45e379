// Package lctree maintains a dynamic forest of rooted trees — represented
// trees, per the literature — supporting link, cut, connectivity, and
// path-aggregate queries in amortized O(log n) time. It implements the
// Sleator–Tarjan link-cut tree: a forest of splay trees with lazy subtree
// reversal, connected by path-parent pointers, whose in-order traversal
// encodes preferred paths of the represented forest.
package lctree

// LinkCutTree is a dynamic forest of rooted trees over nodes weighted by W,
// with path aggregates computed by a caller-supplied Fold producing
// aggregate values of type A. The zero value is not usable; construct one
// with New or one of the MaxByWeight/SumOfWeights convenience constructors.
type LinkCutTree[W any, A any] struct {
	fold  Fold[W, A]
	nodes []node[W, A]
}

// config holds the construction-time options for a LinkCutTree. The choice
// of fold is expressed through the type parameters and the Fold value
// passed to New; initial-capacity is WithInitialCapacity below.
type config struct {
	initialCapacity int
}

// Option configures a LinkCutTree at construction time.
type Option func(*config)

// WithInitialCapacity hints the arena's initial allocation, avoiding
// reallocation as nodes are added.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.initialCapacity = n
		}
	}
}

// New constructs an empty LinkCutTree using the given Fold.
func New[W any, A any](fold Fold[W, A], opts ...Option) *LinkCutTree[W, A] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &LinkCutTree[W, A]{
		fold:  fold,
		nodes: make([]node[W, A], 1, c.initialCapacity+1), // index 0: absent sentinel
	}
}

// NewMaxByWeight constructs a LinkCutTree whose Path queries return the
// handle and weight of the heaviest node on the queried path.
func NewMaxByWeight[W Number](opts ...Option) *LinkCutTree[W, MaxWeight[W]] {
	return New[W, MaxWeight[W]](MaxByWeight[W]{}, opts...)
}

// NewSumOfWeights constructs a LinkCutTree whose Path queries return the
// sum of weights on the queried path.
func NewSumOfWeights[W Number](opts ...Option) *LinkCutTree[W, W] {
	return New[W, W](SumOfWeights[W]{}, opts...)
}

// Size returns the number of nodes ever created by MakeTree/MakeTrees.
func (t *LinkCutTree[W, A]) Size() int {
	return len(t.nodes) - 1
}

// validateHandle checks that h refers to a node this tree created and
// returns its internal 1-based arena index. An invalid handle is a
// programming bug, not a recoverable condition, so validateHandle panics
// rather than returning an error.
func (t *LinkCutTree[W, A]) validateHandle(h Handle) int {
	idx := int(h) + 1
	if h < 0 || idx >= len(t.nodes) {
		panic(&InvalidHandleError{Handle: h})
	}
	return idx
}

// MakeTree creates a fresh single-node tree with the given weight and
// returns its handle. Handles are dense integers assigned in creation
// order starting at 0; MakeTree never fails and never reuses a handle.
func (t *LinkCutTree[W, A]) MakeTree(weight W) Handle {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node[W, A]{weight: weight})
	t.recomputeFold(idx)
	return Handle(idx - 1)
}

// MakeTrees creates one single-node tree per weight, in order, and returns
// their handles.
func (t *LinkCutTree[W, A]) MakeTrees(weights []W) []Handle {
	handles := make([]Handle, len(weights))
	for i, w := range weights {
		handles[i] = t.MakeTree(w)
	}
	return handles
}

// Link adds an edge between u and v. It returns an *AlreadyConnectedError,
// leaving the forest unchanged, if u and v are already in the same
// represented tree (including u == v).
//
// It works by rerooting u, then accessing v; if u is still a splay root
// after that (the common case, since rerooting/accessing two different
// represented trees can't touch each other), u is attached as v's right
// child — the preferred-child attachment that makes a subsequent
// Path(u, v) O(1).
func (t *LinkCutTree[W, A]) Link(u, v Handle) error {
	ui, vi := t.validateHandle(u), t.validateHandle(v)
	if u == v {
		return &AlreadyConnectedError{U: u, V: v}
	}
	t.reroot(ui)
	t.access(vi)
	if t.nodes[ui].parent != 0 {
		return &AlreadyConnectedError{U: u, V: v}
	}
	t.nodes[vi].right = ui
	t.nodes[ui].parent = vi
	t.recomputeFold(vi)
	return nil
}

// Cut removes the edge between u and v. It returns a *NotAdjacentError,
// leaving the forest unchanged, if u and v don't share an edge.
//
// It works by rerooting u, then accessing v; u must now be v's left child
// with no right child of its own (v's immediate predecessor on the
// root-to-v path, with nothing preferred past u), otherwise they weren't
// adjacent.
func (t *LinkCutTree[W, A]) Cut(u, v Handle) error {
	ui, vi := t.validateHandle(u), t.validateHandle(v)
	if u == v {
		return &NotAdjacentError{U: u, V: v}
	}
	t.reroot(ui)
	t.access(vi)
	if t.nodes[vi].left != ui || t.nodes[ui].right != 0 {
		return &NotAdjacentError{U: u, V: v}
	}
	t.nodes[vi].left = 0
	t.nodes[ui].parent = 0
	t.recomputeFold(vi)
	return nil
}

// Connected reports whether u and v are in the same represented tree.
//
// It works by rerooting u, then accessing v: u and v share a tree iff u
// still has a parent slot set after v's access (u == v trivially counts as
// connected).
func (t *LinkCutTree[W, A]) Connected(u, v Handle) bool {
	ui, vi := t.validateHandle(u), t.validateHandle(v)
	if u == v {
		return true
	}
	t.reroot(ui)
	t.access(vi)
	return t.nodes[ui].parent != 0
}

// Path returns the Fold aggregate over the path from u to v inclusive. It
// returns a *NotConnectedError if u and v are not connected.
//
// It works by rerooting u, then accessing v: the aggregate cached at v is
// then exactly the fold over the u–v path.
func (t *LinkCutTree[W, A]) Path(u, v Handle) (A, error) {
	ui, vi := t.validateHandle(u), t.validateHandle(v)
	t.reroot(ui)
	t.access(vi)
	if u != v && t.nodes[ui].parent == 0 {
		var zero A
		return zero, &NotConnectedError{U: u, V: v}
	}
	return t.nodes[vi].fold, nil
}

// Reroot makes v the root of its represented tree. It never fails.
func (t *LinkCutTree[W, A]) Reroot(v Handle) {
	vi := t.validateHandle(v)
	t.reroot(vi)
}

// FindRoot returns the represented-tree root that v belongs to.
//
// It works by accessing v, then walking left to the leftmost node of v's
// (now whole-path) splay tree, which is the root; it splays that node
// afterward so a repeated call is fast.
func (t *LinkCutTree[W, A]) FindRoot(v Handle) Handle {
	vi := t.validateHandle(v)
	t.access(vi)
	r := vi
	t.pushDown(r)
	for t.nodes[r].left != 0 {
		r = t.nodes[r].left
		t.pushDown(r)
	}
	t.splay(r)
	return Handle(r - 1)
}
