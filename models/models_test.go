// models/models_test.go
package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panyam/stoch/core"
	"github.com/panyam/stoch/sampler"
)

func TestTriangleDensity_Weight(t *testing.T) {
	m := TriangleDensity()
	tree := core.NewTree(21)
	v, lw := core.Run(m, tree)
	assert.InDelta(t, math.Log(v), lw, 1e-12)
}

func TestLinearRegression_PosteriorConcentrates(t *testing.T) {
	if testing.Short() {
		t.Skip("long statistical test")
	}
	data := []Point{
		{0, 1.1}, {1, 2.8}, {2, 5.2}, {3, 6.9},
		{4, 9.1}, {5, 10.8}, {6, 13.2}, {7, 15.1},
	}
	m := core.MapM(LinearRegression(data, 0.5), func(p LineParams) float64 {
		return p.Slope
	})
	c := sampler.NewMHIrreducible(m, 0.2, 0.1, 77)
	batch := core.Take(4000, core.Every(5, core.Drop(2000, c.Stream())))

	mean := 0.0
	for _, s := range batch {
		mean += s.Value
	}
	mean /= float64(len(batch))
	// The dataset was generated from slope 2.
	assert.InDelta(t, 2.0, mean, 0.3)
}

func TestPoissonRateFromCount_Weight(t *testing.T) {
	m := PoissonRateFromCount(12, 4, 0.2)
	v1, lw1 := core.Run(m, core.NewTree(8))
	v2, lw2 := core.Run(m, core.NewTree(8))
	assert.Equal(t, v1, v2)
	assert.Equal(t, lw1, lw2)
	assert.Greater(t, v1, 0.0)
}

func TestPointsInWindow(t *testing.T) {
	p := PointsInWindow(3, 2)
	events := p.Eval(core.NewTree(31))
	last := 0.0
	for _, e := range events {
		require.Greater(t, e, last)
		require.LessOrEqual(t, e, 2.0)
		last = e
	}
	// Same tree, same realization.
	again := PointsInWindow(3, 2).Eval(core.NewTree(31))
	assert.Equal(t, events, again)
}

func TestWiener_StartsAtZero(t *testing.T) {
	w := Wiener().Eval(core.NewTree(1))
	assert.Equal(t, 0.0, w(0))
}

func TestWiener_Repeatable(t *testing.T) {
	w := Wiener().Eval(core.NewTree(2))
	a := w(1.5)
	b := w(1.5)
	assert.Equal(t, a, b, "same query must hit the memo")

	// A fresh evaluation on an equal tree resolves the same values.
	w2 := Wiener().Eval(core.NewTree(2))
	assert.Equal(t, a, w2(1.5))
}

func TestWiener_QueryOrderIndependentDraws(t *testing.T) {
	// The innovation for each query point is addressed by the point
	// itself, so querying the frontier in a different order still draws
	// the same gaussians; values past the first divergence can differ
	// only through bridge conditioning, not through draw reuse.
	w1 := Wiener().Eval(core.NewTree(3))
	v1 := w1(2.0)

	w2 := Wiener().Eval(core.NewTree(3))
	w2(5.0) // resolve a later point first
	// 2.0 is now a bridge query between 0 and 5, so its value may
	// differ from v1; but re-resolving 2.0 twice stays stable.
	b1 := w2(2.0)
	b2 := w2(2.0)
	assert.Equal(t, b1, b2)

	// And a third function queried in the original order reproduces v1.
	w3 := Wiener().Eval(core.NewTree(3))
	assert.Equal(t, v1, w3(2.0))
}

func TestWiener_DistinctTreesDiffer(t *testing.T) {
	a := Wiener().Eval(core.NewTree(4))
	b := Wiener().Eval(core.NewTree(5))
	assert.NotEqual(t, a(1.0), b(1.0))
}

func TestWiener_IncrementsScale(t *testing.T) {
	// Crude sanity check on the marginal variance: W(t) ~ N(0, t).
	const n = 400
	sum, sumSq := 0.0, 0.0
	for seed := uint64(0); seed < n; seed++ {
		w := Wiener().Eval(core.NewTree(seed))
		v := w(4.0)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	assert.InDelta(t, 0.0, mean, 0.35)
	assert.InDelta(t, 4.0, variance, 1.2)
}
