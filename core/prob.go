// core/prob.go
package core

// Prob represents a probabilistic program producing a T: a pure
// function from a random Tree to a value.  Evaluating the same Prob on
// the same Tree always yields the identical result, which is what lets
// the samplers re-run models against perturbed trees.
//
// Composition is monadic.  Bind splits the incoming tree into two
// independent halves, so sequenced draws never reuse randomness.  Unit,
// Bind and Map are plain generic functions rather than methods because
// Go methods cannot introduce new type parameters.
type Prob[T any] struct {
	eval func(t *Tree) T
}

// NewProb wraps a raw evaluator.  The evaluator must be pure: same
// tree in, same value out.
func NewProb[T any](eval func(t *Tree) T) Prob[T] {
	return Prob[T]{eval: eval}
}

// Eval runs the program against a tree.
func (p Prob[T]) Eval(t *Tree) T { return p.eval(t) }

// Unit is the trivial program that ignores its tree and returns v.
func Unit[T any](v T) Prob[T] {
	return Prob[T]{eval: func(*Tree) T { return v }}
}

// Bind sequences two programs.  The tree is split; p consumes the first
// half, and the continuation built from p's result consumes the rest.
// The identity laws hold bit-for-bit.  Associativity holds only in
// distribution: re-associating a chain of Binds routes draws to
// different (equally uniform) tree nodes, so the two orders agree in
// law but not value-for-value.  What the samplers actually depend on is
// determinism: the same program on the same tree yields the same value.
func Bind[A, B any](p Prob[A], f func(A) Prob[B]) Prob[B] {
	return Prob[B]{eval: func(t *Tree) B {
		first, rest := t.Split()
		return f(p.eval(first)).eval(rest)
	}}
}

// Map transforms a program's result without consuming any additional
// randomness: the transformed program reads exactly the same part of
// the tree as p does.
func Map[A, B any](p Prob[A], f func(A) B) Prob[B] {
	return Prob[B]{eval: func(t *Tree) B {
		return f(p.eval(t))
	}}
}

// Uniform is the single primitive source of randomness: it reads the
// current node's value in [0, 1) and ignores the children.  Every
// derived distribution is built from Uniform via Bind and Map.
var Uniform = Prob[float64]{eval: func(t *Tree) float64 {
	return t.Value()
}}
