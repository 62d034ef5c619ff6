// core/distributions_test.go
package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNormal_QuantileTransform(t *testing.T) {
	tree := NewTree(4)
	u := tree.Value()
	want := distuv.Normal{Mu: 2, Sigma: 0.5}.Quantile(u)
	got := Normal(2, 0.5).Eval(tree)
	assert.Equal(t, want, got)
}

func TestExponential_Positive(t *testing.T) {
	p := Exponential(1.5)
	for seed := uint64(0); seed < 200; seed++ {
		v := p.Eval(NewTree(seed))
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestUniformRange(t *testing.T) {
	p := UniformRange(-2, 3)
	for seed := uint64(0); seed < 200; seed++ {
		v := p.Eval(NewTree(seed))
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}

func TestUniformDiscrete_Bounds(t *testing.T) {
	p := UniformDiscrete(7)
	seen := map[int]bool{}
	for seed := uint64(0); seed < 500; seed++ {
		k := p.Eval(NewTree(seed))
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 7)
		seen[k] = true
	}
	assert.Len(t, seen, 7, "all categories should appear in 500 draws")
}

func TestCategorical(t *testing.T) {
	p := Categorical([]float64{0, 1, 0})
	for seed := uint64(0); seed < 100; seed++ {
		assert.Equal(t, 1, p.Eval(NewTree(seed)), "zero-weight categories must not be drawn")
	}

	// Rough frequency check on an uneven split.
	p = Categorical([]float64{3, 1})
	zeros := 0
	const n = 2000
	for seed := uint64(0); seed < n; seed++ {
		if p.Eval(NewTree(seed)) == 0 {
			zeros++
		}
	}
	assert.InDelta(t, 0.75, float64(zeros)/n, 0.05)
}

func TestPoisson_MeanMatches(t *testing.T) {
	p := Poisson(3)
	total := 0
	const n = 2000
	for seed := uint64(0); seed < n; seed++ {
		total += p.Eval(NewTree(seed))
	}
	mean := float64(total) / n
	// stddev of the estimator is sqrt(3/2000) ~ 0.039.
	assert.InDelta(t, 3.0, mean, 0.25)
}

func TestPoisson_ExtremeUniformTerminates(t *testing.T) {
	// A draw within rounding of 1 lands beyond the point where the pmf
	// underflows to zero; the CDF walk must still terminate with a far
	// right-tail count.
	tr := &Tree{value: math.Nextafter(1, 0)}
	for _, lambda := range []float64{0.5, 3, 30} {
		k := Poisson(lambda).Eval(tr)
		assert.Greater(t, k, int(lambda))
	}
}

func TestIID_DeterministicAndIndependentLooking(t *testing.T) {
	p := IID(Uniform)
	tree := NewTree(9)
	first := TakeList(10, p.Eval(tree))
	second := TakeList(10, p.Eval(tree))
	assert.Equal(t, first, second, "same tree must reproduce the same sequence")

	distinct := map[float64]bool{}
	for _, v := range first {
		distinct[v] = true
	}
	assert.Len(t, distinct, 10, "iid draws should not repeat")
}

func TestPoissonProcess_Increasing(t *testing.T) {
	p := PoissonProcess(2, 0)
	events := TakeList(20, p.Eval(NewTree(14)))
	last := 0.0
	for i, e := range events {
		assert.Greater(t, e, last, "event %d not after its predecessor", i)
		last = e
	}
	assert.False(t, math.IsInf(last, 1))
}
