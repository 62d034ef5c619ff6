// models/pointprocess.go
package models

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/panyam/stoch/core"
)

// PoissonRateFromCount infers the rate of a homogeneous Poisson
// process on [0, window] from an observed event count.  The rate gets
// an Exponential(priorRate) prior and the count is scored under
// Poisson(rate * window).
func PoissonRateFromCount(observed int, window, priorRate float64) core.Meas[float64] {
	return core.BindM(core.FromProb(core.Exponential(priorRate)), func(rate float64) core.Meas[float64] {
		lik := distuv.Poisson{Lambda: rate * window}
		return core.AndThen(
			core.ScoreLog(lik.LogProb(float64(observed))),
			core.Return(rate),
		)
	})
}

// PointsInWindow draws a realization of a rate-r Poisson process and
// returns the (finite) events falling in [0, window].  It demonstrates
// how an infinite-dimensional prior is consumed: only finitely much of
// the lazy event list is ever forced.
func PointsInWindow(rate, window float64) core.Prob[[]float64] {
	return core.Map(core.PoissonProcess(rate, 0), func(events *core.List[float64]) []float64 {
		var out []float64
		for cur := events; ; cur = cur.Tail() {
			t := cur.Head()
			if t > window {
				return out
			}
			out = append(out, t)
		}
	})
}
