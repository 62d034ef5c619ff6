package commands

import (
	"fmt"
	"sort"

	"github.com/panyam/stoch/core"
	"github.com/panyam/stoch/models"
)

// builtinModel names a demo measure over float64 that the CLI can run.
type builtinModel struct {
	Name        string
	Description string
	Build       func() core.Meas[float64]
}

// demoData is a small synthetic regression dataset: y = 2x + 1 plus
// noise, so the slope posterior should concentrate near 2.
var demoData = []models.Point{
	{X: 0, Y: 1.1}, {X: 1, Y: 2.8}, {X: 2, Y: 5.2}, {X: 3, Y: 6.9},
	{X: 4, Y: 9.1}, {X: 5, Y: 10.8}, {X: 6, Y: 13.2}, {X: 7, Y: 15.1},
}

var builtinModels = map[string]builtinModel{
	"triangle": {
		Name:        "triangle",
		Description: "uniform(0,1) scored by its own value; posterior density 2x, mean 2/3",
		Build:       models.TriangleDensity,
	},
	"regression-slope": {
		Name:        "regression-slope",
		Description: "slope posterior of Bayesian linear regression on a built-in dataset",
		Build: func() core.Meas[float64] {
			m := models.LinearRegression(demoData, 0.5)
			return core.MapM(m, func(p models.LineParams) float64 { return p.Slope })
		},
	},
	"poisson-rate": {
		Name:        "poisson-rate",
		Description: "rate posterior of a Poisson process from an observed count (12 events in 4s)",
		Build: func() core.Meas[float64] {
			return models.PoissonRateFromCount(12, 4, 0.2)
		},
	},
}

func lookupModel(name string) (builtinModel, error) {
	m, ok := builtinModels[name]
	if !ok {
		names := make([]string, 0, len(builtinModels))
		for n := range builtinModels {
			names = append(names, n)
		}
		sort.Strings(names)
		return builtinModel{}, fmt.Errorf("unknown model %q (available: %v)", name, names)
	}
	return m, nil
}
