// models/wiener.go
package models

import (
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/panyam/stoch/core"
)

// Wiener draws a standard Wiener process as a function W: [0, inf) ->
// R with W(0) = 0.  The function is infinite-dimensional, so it is
// realized lazily: each invocation of the returned Prob owns a memo
// table from query point to resolved value, populated on first access
// and never shared across chain steps.
//
// The Gaussian innovation for a query point is a deterministic function
// of the tree and the point's bit pattern, not of query order, so
// re-querying the same point always resolves to the cached value and a
// fresh evaluation on the same tree reproduces it exactly.  Between two
// already-resolved neighbors the value is filled in by the Brownian
// bridge; beyond the largest resolved point it extends by a scaled
// increment.
//
// Queries must be >= 0.
func Wiener() core.Prob[func(float64) float64] {
	return core.NewProb(func(t *core.Tree) func(float64) float64 {
		var mu sync.Mutex
		cache := map[float64]float64{0: 0}
		var resolved []float64 // sorted keys of cache

		resolved = append(resolved, 0)
		return func(x float64) float64 {
			mu.Lock()
			defer mu.Unlock()
			if v, ok := cache[x]; ok {
				return v
			}

			z := gaussAt(t, x)
			i := sort.SearchFloat64s(resolved, x)
			var v float64
			if i == len(resolved) {
				// Past the frontier: independent scaled increment.
				last := resolved[len(resolved)-1]
				v = cache[last] + math.Sqrt(x-last)*z
			} else {
				// Brownian bridge between the two resolved neighbors.
				a, b := resolved[i-1], resolved[i]
				va, vb := cache[a], cache[b]
				frac := (x - a) / (b - a)
				mean := va + frac*(vb-va)
				sd := math.Sqrt((x - a) * (b - x) / (b - a))
				v = mean + sd*z
			}

			cache[x] = v
			resolved = append(resolved, 0)
			copy(resolved[i+1:], resolved[i:])
			resolved[i] = x
			return v
		}
	})
}

// gaussAt reads a standard normal draw for query point x from a tree
// path addressed by x's bit pattern.  Distinct points land on distinct
// lazily created nodes; the same point always lands on the same node.
func gaussAt(t *core.Tree, x float64) float64 {
	bits := math.Float64bits(x)
	node := t.
		Child(int(bits >> 48 & 0xffff)).
		Child(int(bits >> 32 & 0xffff)).
		Child(int(bits >> 16 & 0xffff)).
		Child(int(bits & 0xffff))
	return distuv.UnitNormal.Quantile(node.Value())
}
