// models/regression.go
//
// Package models holds example generative models built on the core
// engine.  They are consumers of the engine, not part of it: each model
// is an ordinary UnnormalizedMeasure that the samplers can run.
package models

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/panyam/stoch/core"
)

// Point is one observed (x, y) pair.
type Point struct {
	X, Y float64
}

// LineParams are the latent parameters of the linear regression model.
type LineParams struct {
	Slope     float64
	Intercept float64
}

// LinearRegression is Bayesian linear regression with Gaussian noise:
// slope and intercept get Normal(0, 3) priors and each observation is
// scored under Normal(slope*x + intercept, noiseSD).
func LinearRegression(data []Point, noiseSD float64) core.Meas[LineParams] {
	prior := core.Normal(0, 3)
	return core.BindM(core.FromProb(prior), func(slope float64) core.Meas[LineParams] {
		return core.BindM(core.FromProb(prior), func(intercept float64) core.Meas[LineParams] {
			ll := 0.0
			for _, pt := range data {
				noise := distuv.Normal{Mu: slope*pt.X + intercept, Sigma: noiseSD}
				ll += noise.LogProb(pt.Y)
			}
			return core.AndThen(core.ScoreLog(ll), core.Return(LineParams{
				Slope:     slope,
				Intercept: intercept,
			}))
		})
	})
}

// TriangleDensity is the minimal closed-form test model: a uniform
// draw on [0, 1) reweighted by its own value, giving the normalized
// density 2x with mean 2/3.
func TriangleDensity() core.Meas[float64] {
	return core.BindM(core.FromProb(core.Uniform), func(x float64) core.Meas[float64] {
		return core.AndThen(core.Score(x), core.Return(x))
	})
}
