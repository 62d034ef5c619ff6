// core/tree_test.go
package core

import (
	"testing"
)

func TestTree_Deterministic(t *testing.T) {
	a := NewTree(42)
	b := NewTree(42)
	if a.Value() != b.Value() {
		t.Fatalf("same seed, different root values: %v vs %v", a.Value(), b.Value())
	}
	// Walk a few paths and compare bit-for-bit.
	paths := [][]int{{0}, {1}, {0, 0}, {0, 3}, {2, 1, 7}, {5, 5, 5, 5}}
	for _, path := range paths {
		x, y := a, b
		for _, i := range path {
			x = x.Child(i)
			y = y.Child(i)
		}
		if x.Value() != y.Value() {
			t.Errorf("path %v: %v vs %v", path, x.Value(), y.Value())
		}
	}
}

func TestTree_SeedsDiffer(t *testing.T) {
	a := NewTree(1)
	b := NewTree(2)
	if a.Value() == b.Value() && a.Child(0).Value() == b.Child(0).Value() {
		t.Errorf("different seeds produced identical trees")
	}
}

func TestTree_ValueRange(t *testing.T) {
	root := NewTree(7)
	cur := root
	for i := 0; i < 100; i++ {
		v := cur.Value()
		if v < 0 || v >= 1 {
			t.Fatalf("value %v out of [0,1)", v)
		}
		cur = cur.Child(i % 3)
	}
}

func TestTree_ChildMemoized(t *testing.T) {
	root := NewTree(9)
	if root.Child(4) != root.Child(4) {
		t.Errorf("repeated Child access returned distinct nodes")
	}
}

func TestTree_SplitSharesChildren(t *testing.T) {
	root := NewTree(11)
	first, rest := root.Split()
	if first != root.Child(0) {
		t.Errorf("Split first branch is not child 0")
	}
	if rest.Value() != root.Value() {
		t.Errorf("rest view changed the node value")
	}
	for i := 0; i < 5; i++ {
		if rest.Child(i) != root.Child(i+1) {
			t.Errorf("rest child %d is not parent child %d", i, i+1)
		}
	}
}

func TestTree_SplitTwiceIdentical(t *testing.T) {
	root := NewTree(13)
	f1, r1 := root.Split()
	f2, r2 := root.Split()
	if f1 != f2 {
		t.Errorf("repeated Split produced different first branches")
	}
	if r1.Child(2) != r2.Child(2) {
		t.Errorf("rest views disagree on children")
	}
}
