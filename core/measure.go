// core/measure.go
package core

import "math"

// LogWeightFloor is the log-domain weight substituted for Score(0).
// Flooring keeps log-weights finite so acceptance ratios never hit 0/0.
// The constant is part of the behavioral contract and must not change.
const LogWeightFloor = -300.0

// None is the result type of effects that produce no value, such as
// Score.  (Unit is taken: it is the monadic unit in prob.go.)
type None = struct{}

// Meas is an unnormalized measure over T: a probabilistic program
// paired with an accumulated positive weight, held in the log domain
// for numerical stability.  The two primitive effects are drawing from
// a Prob (weight 1) and multiplying the running weight by a score.
//
// Weight composition is associative and commutative: the order in which
// independent Score and draw effects are issued affects neither the
// total weight nor the joint distribution over tree usage.
type Meas[T any] struct {
	eval func(t *Tree) (T, float64)
}

// FromProb lifts a probabilistic program into a measure with weight 1
// (log-weight 0).
func FromProb[T any](p Prob[T]) Meas[T] {
	return Meas[T]{eval: func(t *Tree) (T, float64) {
		return p.eval(t), 0
	}}
}

// Return is the measure that yields v with weight 1 and consumes no
// randomness.
func Return[T any](v T) Meas[T] {
	return Meas[T]{eval: func(*Tree) (T, float64) {
		return v, 0
	}}
}

// Score multiplies the accumulated weight by w.
//
// w must be >= 0; a negative w is a contract violation and produces
// undefined results.  w == 0 is silently floored to exp(LogWeightFloor)
// so the log-weight stays finite.  A model stuck at the floor
// everywhere is merely inefficient, not broken.
func Score(w float64) Meas[None] {
	if w == 0 {
		return ScoreLog(LogWeightFloor)
	}
	return ScoreLog(math.Log(w))
}

// ScoreLog multiplies the accumulated weight by exp(lw).  Use this for
// likelihoods whose linear-domain value would overflow or underflow.
func ScoreLog(lw float64) Meas[None] {
	return Meas[None]{eval: func(*Tree) (None, float64) {
		return None{}, lw
	}}
}

// BindM sequences two measures.  Randomness is partitioned exactly as
// Prob's Bind partitions it, and log-weights add.
func BindM[A, B any](m Meas[A], f func(A) Meas[B]) Meas[B] {
	return Meas[B]{eval: func(t *Tree) (B, float64) {
		first, rest := t.Split()
		a, wa := m.eval(first)
		b, wb := f(a).eval(rest)
		return b, wa + wb
	}}
}

// MapM transforms a measure's value, leaving weight and tree usage
// untouched.
func MapM[A, B any](m Meas[A], f func(A) B) Meas[B] {
	return Meas[B]{eval: func(t *Tree) (B, float64) {
		a, w := m.eval(t)
		return f(a), w
	}}
}

// AndThen sequences m before next, discarding m's value.  Handy for
// issuing Score effects in front of a result.
func AndThen[A, B any](m Meas[A], next Meas[B]) Meas[B] {
	return BindM(m, func(A) Meas[B] { return next })
}

// Run evaluates the full measure against a tree, returning its value
// and total log-weight.
func Run[T any](m Meas[T], t *Tree) (value T, logWeight float64) {
	return m.eval(t)
}
