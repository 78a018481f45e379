package lctree

import "golang.org/x/exp/constraints"

// Fold is the user-supplied monoid-like aggregate over node weights along a
// preferred path. The library calls Seed and Combine only from
// recomputeFold, which re-derives a node's cached aggregate from its
// (possibly absent) children and its own weight whenever the node is created
// or its children change (rotate, access, Link, Cut); it never invents an
// identity value for an
// absent child, and it never assumes Combine is commutative, associative, or
// idempotent beyond what a given implementation documents for itself.
//
// Combine is always invoked in the canonical left-to-right order of the
// represented path: Combine(foldOfEarlierSegment, foldOfLaterSegment).
// Reversal (via Reroot) swaps which subtree is logically "left" without
// reversing the order Combine is called in, so a Fold that isn't
// commutative will observe its two arguments swapped under a pending
// reroot.
type Fold[W any, A any] interface {
	// Seed constructs the aggregate for a single-node path consisting only
	// of the node at h with weight w.
	Seed(w W, h Handle) A
	// Combine folds two adjacent path segments together, acc being the
	// shallower (earlier in-order) segment and other the deeper one.
	Combine(acc, other A) A
}

// Number is the weight-type bound shared by the two built-in folds.
type Number interface {
	constraints.Integer | constraints.Float
}

// MaxWeight is the aggregate produced by MaxByWeight: the handle and weight
// of the heaviest node on the folded path, ties broken toward the node
// encountered first in Combine's left-to-right order.
type MaxWeight[W Number] struct {
	Handle Handle
	Weight W
}

// MaxByWeight is the standard max-by-weight Fold.
type MaxByWeight[W Number] struct{}

func (MaxByWeight[W]) Seed(w W, h Handle) MaxWeight[W] {
	return MaxWeight[W]{Handle: h, Weight: w}
}

func (MaxByWeight[W]) Combine(acc, other MaxWeight[W]) MaxWeight[W] {
	if other.Weight > acc.Weight {
		return other
	}
	return acc
}

// SumOfWeights is the standard sum-of-weights Fold. Its aggregate is the
// plain sum, so W serves as both the weight and the aggregate type.
type SumOfWeights[W Number] struct{}

func (SumOfWeights[W]) Seed(w W, _ Handle) W {
	return w
}

func (SumOfWeights[W]) Combine(acc, other W) W {
	return acc + other
}
