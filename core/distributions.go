// core/distributions.go
package core

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Derived distributions, all built strictly over Uniform via Map and
// Bind.  Continuous families go through gonum's quantile functions
// (inverse-CDF transform); discrete families walk their CDFs directly.
// None of these touch any RNG: randomness comes only from the tree.

// Normal draws from a Gaussian with the given mean and standard
// deviation.
func Normal(mu, sigma float64) Prob[float64] {
	d := distuv.Normal{Mu: mu, Sigma: sigma}
	return Map(Uniform, d.Quantile)
}

// StdNormal draws from the standard Gaussian.
func StdNormal() Prob[float64] {
	return Normal(0, 1)
}

// Exponential draws from an exponential distribution with the given
// rate.
func Exponential(rate float64) Prob[float64] {
	d := distuv.Exponential{Rate: rate}
	return Map(Uniform, d.Quantile)
}

// UniformRange draws uniformly from [lo, hi).
func UniformRange(lo, hi float64) Prob[float64] {
	return Map(Uniform, func(u float64) float64 {
		return lo + u*(hi-lo)
	})
}

// Bernoulli draws true with probability p.
func Bernoulli(p float64) Prob[bool] {
	return Map(Uniform, func(u float64) bool {
		return u < p
	})
}

// UniformDiscrete draws an integer uniformly from [0, n).
func UniformDiscrete(n int) Prob[int] {
	return Map(Uniform, func(u float64) int {
		k := int(u * float64(n))
		if k >= n { // guard against u rounding up to 1.0*n
			k = n - 1
		}
		return k
	})
}

// Categorical draws index i with probability proportional to weights[i].
// Weights must be nonnegative with a positive sum.
func Categorical(weights []float64) Prob[int] {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	return Map(Uniform, func(u float64) int {
		target := u * total
		cum := 0.0
		for i, w := range weights {
			cum += w
			if target < cum {
				return i
			}
		}
		return len(weights) - 1
	})
}

// Poisson draws a count from a Poisson distribution with the given
// mean, by walking the CDF until it passes the uniform draw.
func Poisson(lambda float64) Prob[int] {
	d := distuv.Poisson{Lambda: lambda}
	return Map(Uniform, func(u float64) int {
		cum := 0.0
		for k := 0; ; k++ {
			pk := d.Prob(float64(k))
			cum += pk
			if u < cum {
				return k
			}
			// Past the mode the pmf eventually underflows to 0 and the
			// sum plateaus; a u within rounding of 1 would otherwise
			// never be passed.  Return the last reachable count.
			if pk == 0 && float64(k) > lambda {
				return k
			}
		}
	})
}

// IID turns a program into an infinite lazy sequence of independent
// draws from it.  Element k consumes the k-th split of the tree, so the
// sequence is deterministic per tree and memoized per cell.
func IID[T any](p Prob[T]) Prob[*List[T]] {
	return NewProb(func(t *Tree) *List[T] {
		return iidFrom(p, t)
	})
}

func iidFrom[T any](p Prob[T], t *Tree) *List[T] {
	return NewList(func() (T, *List[T]) {
		first, rest := t.Split()
		return p.Eval(first), iidFrom(p, rest)
	})
}

// PoissonProcess draws the (infinite, lazily forced) increasing
// sequence of event times of a homogeneous Poisson process with the
// given rate, starting at start.  Gaps are iid exponential.
func PoissonProcess(rate, start float64) Prob[*List[float64]] {
	gap := Exponential(rate)
	return NewProb(func(t *Tree) *List[float64] {
		return poissonPointsFrom(gap, start, t)
	})
}

func poissonPointsFrom(gap Prob[float64], last float64, t *Tree) *List[float64] {
	return NewList(func() (float64, *List[float64]) {
		first, rest := t.Split()
		next := last + gap.Eval(first)
		return next, poissonPointsFrom(gap, next, rest)
	})
}
