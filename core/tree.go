// core/tree.go
package core

import (
	"sync"

	"gonum.org/v1/gonum/mathext/prng"
)

// seedGamma is the SplitMix64 stream increment, used here to derive
// per-child seeds from a parent seed.
const seedGamma = 0x9e3779b97f4a7c15

// Tree is a conceptually infinite tree of independent uniform draws in
// [0, 1).  Every node holds one value plus an unbounded ordered list of
// child trees.  Values are fixed at creation; children are generated on
// demand and cached, so repeated traversal is deterministic and cheap.
//
// One Tree instance backs one evaluation of a probabilistic program.
// Consumers only ever force finitely much of any path, so the infinite
// shape is realized as an index-addressed generator plus a memo table
// rather than a materialized structure.
type Tree struct {
	value float64

	mu   sync.Mutex
	kids map[int]*Tree
	gen  func(i int) *Tree
}

// NewTree deterministically expands seed into a fresh random tree.  The
// same seed always yields the same tree.
func NewTree(seed uint64) *Tree {
	return treeFromSeed(seed)
}

func treeFromSeed(seed uint64) *Tree {
	return &Tree{
		value: unitFromSeed(seed),
		gen: func(i int) *Tree {
			return treeFromSeed(childSeed(seed, uint64(i)))
		},
	}
}

// Value returns this node's uniform draw in [0, 1).
func (t *Tree) Value() float64 { return t.value }

// Child returns the i-th child tree, generating and caching it on first
// access.  The lock makes the memo table safe to share across chains
// that hold views onto a common prefix.
func (t *Tree) Child(i int) *Tree {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.kids[i]; ok {
		return c
	}
	if t.kids == nil {
		t.kids = make(map[int]*Tree)
	}
	c := t.gen(i)
	t.kids[i] = c
	return c
}

// Split peels the first child off as one independent branch and returns
// a second tree of the same shape holding the remaining children.  This
// is the operation that makes monadic sequencing referentially
// transparent: two sequenced draws can never observe the same
// randomness, and no global counter or cursor is involved.
//
// The rest-view shares the parent's memo table, so substructure forced
// through either view is forced exactly once.
func (t *Tree) Split() (first *Tree, rest *Tree) {
	rest = &Tree{
		value: t.value,
		gen: func(i int) *Tree {
			return t.Child(i + 1)
		},
	}
	return t.Child(0), rest
}

// Compact rebuilds the forced portion of t onto a fresh generator
// seeded by seed.  Forced nodes keep their exact values, so any program
// whose draws were all forced through t evaluates identically on the
// result.  Unforced substructure regenerates from the new seed lineage;
// unforced sites are independent uniforms under either lineage, so the
// joint law of the tree is unchanged.
//
// The point is memory.  Each Mutate overlay pins its predecessor tree
// through its generator closure, so a long chain of accepted proposals
// would otherwise retain one layer per acceptance.  Compacting flattens
// the stack into a single self-contained tree whose footprint is just
// the forced node count.
func Compact(t *Tree, seed uint64) *Tree {
	n := treeFromSeed(seed)
	n.value = t.Value()

	t.mu.Lock()
	forced := make(map[int]*Tree, len(t.kids))
	for i, k := range t.kids {
		forced[i] = k
	}
	t.mu.Unlock()

	if len(forced) > 0 {
		n.kids = make(map[int]*Tree, len(forced))
		for i, k := range forced {
			n.kids[i] = Compact(k, childSeed(seed, uint64(i)))
		}
	}
	return n
}

// unitFromSeed maps a seed to a uniform draw in [0, 1) using SplitMix64
// as the underlying pseudorandom function.
func unitFromSeed(seed uint64) float64 {
	src := prng.NewSplitMix64(seed)
	return float64(src.Uint64()>>11) / (1 << 53)
}

// childSeed derives the seed of the i-th child from its parent's seed.
// Offsetting by multiples of the SplitMix64 gamma before remixing keeps
// sibling streams decorrelated.
func childSeed(seed, i uint64) uint64 {
	src := prng.NewSplitMix64(seed + seedGamma*(i+1))
	return src.Uint64()
}
