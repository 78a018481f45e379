package lctree

import "testing"

func TestMaxByWeightSeed(t *testing.T) {
	f := MaxByWeight[int]{}
	got := f.Seed(7, 3)
	want := MaxWeight[int]{Handle: 3, Weight: 7}
	if got != want {
		t.Errorf("Seed(7, 3) = %+v, want %+v", got, want)
	}
}

func TestMaxByWeightCombineKeepsHeavier(t *testing.T) {
	f := MaxByWeight[int]{}
	left := MaxWeight[int]{Handle: 0, Weight: 5}
	right := MaxWeight[int]{Handle: 1, Weight: 9}
	if got := f.Combine(left, right); got != right {
		t.Errorf("Combine(%+v, %+v) = %+v, want %+v", left, right, got, right)
	}
	if got := f.Combine(right, left); got != right {
		t.Errorf("Combine(%+v, %+v) = %+v, want %+v", right, left, got, right)
	}
}

// TestMaxByWeightCombineTiesFavorLeft pins down the tie-breaking rule
// documented on MaxWeight: Combine favors acc (the earlier, shallower
// segment) when weights are equal.
func TestMaxByWeightCombineTiesFavorLeft(t *testing.T) {
	f := MaxByWeight[int]{}
	left := MaxWeight[int]{Handle: 0, Weight: 9}
	right := MaxWeight[int]{Handle: 1, Weight: 9}
	if got := f.Combine(left, right); got != left {
		t.Errorf("Combine(%+v, %+v) = %+v, want %+v (tie favors acc)", left, right, got, left)
	}
}

func TestSumOfWeightsCombine(t *testing.T) {
	f := SumOfWeights[float64]{}
	if got := f.Combine(f.Seed(1.5, 0), f.Seed(2.5, 1)); got != 4.0 {
		t.Errorf("sum = %v, want 4.0", got)
	}
}

// concatFold is a caller-supplied Fold with a non-numeric aggregate type,
// demonstrating that Fold constrains nothing beyond Seed/Combine's
// signatures: A need not be a Number at all.
type concatFold struct{}

func (concatFold) Seed(w string, _ Handle) string { return w }
func (concatFold) Combine(acc, other string) string {
	return acc + other
}

func TestCustomNonNumericFold(t *testing.T) {
	lt := New[string, string](concatFold{})
	a := lt.MakeTree("a")
	b := lt.MakeTree("b")
	c := lt.MakeTree("c")
	mustLinkConcat(t, lt, b, a)
	mustLinkConcat(t, lt, c, b)

	got, err := lt.Path(a, c)
	if err != nil {
		t.Fatalf("path(a, c): %v", err)
	}
	if got != "abc" {
		t.Fatalf("path(a, c) = %q, want %q", got, "abc")
	}
}

func mustLinkConcat(t *testing.T, lt *LinkCutTree[string, string], u, v Handle) {
	t.Helper()
	if err := lt.Link(u, v); err != nil {
		t.Fatalf("Link(%d, %d): %v", u, v, err)
	}
}
