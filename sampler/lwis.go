// sampler/lwis.go
package sampler

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/panyam/stoch/core"
)

// Resampler is a likelihood-weighted importance sampler: it draws n
// independent (tree, value, weight) evaluations of the model up front,
// builds the empirical CDF of cumulative weights, and then emits an
// unbounded resampled stream (with replacement) approximating the
// normalized measure.  There is no Markov dependency between emitted
// samples; this is the kernel-free baseline method.
type Resampler[T any] struct {
	values []T
	logw   []float64
	cum    []float64 // cumulative weights, linear domain, max-normalized
	rng    *rand.Rand
}

// NewLWIS evaluates the model on n independent fresh trees.  Weights
// are exponentiated relative to the largest log-weight so extreme
// scores cannot underflow the cumulative table.
func NewLWIS[T any](model core.Meas[T], n int, seed uint64) *Resampler[T] {
	if n < 1 {
		panic("sampler: NewLWIS requires at least one particle")
	}
	rng := rand.New(rand.NewSource(seed))
	values := make([]T, n)
	logw := make([]float64, n)
	maxLw := math.Inf(-1)
	for i := 0; i < n; i++ {
		tree := core.NewTree(rng.Uint64())
		v, lw := core.Run(model, tree)
		values[i] = v
		logw[i] = lw
		if lw > maxLw {
			maxLw = lw
		}
	}

	cum := make([]float64, n)
	total := 0.0
	for i, lw := range logw {
		total += math.Exp(lw - maxLw)
		cum[i] = total
	}
	return &Resampler[T]{values: values, logw: logw, cum: cum, rng: rng}
}

// Particles exposes the raw weighted batch behind the resampler: the n
// drawn values with their log-weights.  This is the view to hand to a
// weighted estimator; the stream emitted by Next has already consumed
// the weights and is summarized unweighted.
func (r *Resampler[T]) Particles() (values []T, logWeights []float64) {
	return r.values, r.logw
}

// Next draws one resampled value: a uniform threshold is scaled by the
// maximum cumulative weight and the first bucket whose cumulative
// weight exceeds it is selected.
func (r *Resampler[T]) Next() T {
	threshold := r.rng.Float64() * r.cum[len(r.cum)-1]
	i := sort.SearchFloat64s(r.cum, threshold)
	// SearchFloat64s finds the first index with cum >= threshold; step
	// past exact ties so the selected bucket strictly exceeds it.
	for i < len(r.cum)-1 && r.cum[i] <= threshold {
		i++
	}
	return r.values[i]
}

// Stream adapts the resampler to a pull stream.
func (r *Resampler[T]) Stream() core.Stream[T] {
	return r.Next
}
