// core/mutate.go
package core

import "gonum.org/v1/gonum/mathext/prng"

// Mutate perturbs a random tree: every node, independently with
// probability p, has its value resampled; all other values are kept.
// Children are recursed into lazily with independently derived seeds,
// so the mutant is itself unbounded but cheap to hold.
//
// The mutant is a deterministic function of (p, seed, t): retraversing
// it yields identical values, which the Metropolis-Hastings accept step
// relies on.  Unaccessed substructure of t stays unforced until the
// mutant forces it.
//
// p is the proposal locality knob: small p biases toward single-site
// moves, p = 1 yields a fully independent tree.
func Mutate(p float64, seed uint64, t *Tree) *Tree {
	src := prng.NewSplitMix64(seed)
	coin := float64(src.Uint64()>>11) / (1 << 53)
	fresh := float64(src.Uint64()>>11) / (1 << 53)

	value := t.value
	if coin < p {
		value = fresh
	}
	return &Tree{
		value: value,
		gen: func(i int) *Tree {
			return Mutate(p, childSeed(seed, uint64(i)), t.Child(i))
		},
	}
}
