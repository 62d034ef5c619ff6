// sampler/mh.go
//
// Package sampler implements the Metropolis-Hastings family of chain
// samplers plus likelihood-weighted importance resampling over
// unnormalized measures.  All entry points take explicit seeds; there
// is no ambient process-wide RNG.
package sampler

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/panyam/stoch/core"
)

// Sample is one emitted chain element: the model value and its
// log-domain weight at that value.
type Sample[T any] struct {
	Value     T
	LogWeight float64
}

// Options configures a Metropolis-Hastings chain.
type Options struct {
	// P is the per-site mutation probability of the tree-mutation
	// proposal kernel.  Small P biases toward local single-site moves;
	// P = 1 proposes fully independent trees.
	P float64

	// RestartQ, when positive, mixes in a global restart: before each
	// proposal a coin with probability RestartQ decides whether to
	// propose a fresh independent tree instead of a local mutation.
	// This guarantees irreducibility when P is tuned very small.
	RestartQ float64

	// Seed fully determines the chain.  The same model and options with
	// the same seed reproduce the identical sample sequence.
	Seed uint64
}

// Chain is a Metropolis-Hastings chain over a model.  Its state is the
// triple (tree, value, logWeight); value and logWeight are always
// exactly the evaluation of the model on the current tree, never stale.
//
// A Chain is an unbounded source: every step, accepted or rejected,
// emits one sample (rejections re-emit the previous value).  Skipping
// rejects would silently change the stationary distribution, so the
// chain never does.
type Chain[T any] struct {
	model core.Meas[T]
	opts  Options
	rng   *rand.Rand

	tree    *core.Tree
	cur     Sample[T]
	started bool
}

// NewMH builds a basic Metropolis-Hastings chain whose proposal kernel
// is tree mutation with probability opts.P (opts.RestartQ is ignored
// unless set).
func NewMH[T any](model core.Meas[T], opts Options) *Chain[T] {
	return &Chain[T]{
		model: model,
		opts:  opts,
		rng:   rand.New(rand.NewSource(opts.Seed)),
	}
}

// NewMHIrreducible is NewMH with a restart probability: with
// probability q each step proposes a fresh independent tree, making the
// chain irreducible over the full state space regardless of p.
func NewMHIrreducible[T any](model core.Meas[T], p, q float64, seed uint64) *Chain[T] {
	return NewMH(model, Options{P: p, RestartQ: q, Seed: seed})
}

// Next advances the chain one step and returns the emitted sample.  The
// first call evaluates the model on the initial tree; subsequent calls
// propose, accept or reject, and emit the (possibly unchanged) state.
func (c *Chain[T]) Next() Sample[T] {
	if !c.started {
		c.tree = core.NewTree(c.rng.Uint64())
		v, lw := core.Run(c.model, c.tree)
		c.cur = Sample[T]{Value: v, LogWeight: lw}
		c.started = true
		return c.cur
	}

	proposal := c.propose()
	v, lw := core.Run(c.model, proposal)

	// Accept iff u < min(1, w'/w), in the log domain.  rng.Float64 can
	// return 0, whose log is -Inf: that forces acceptance, which is the
	// right limit.
	if math.Log(c.rng.Float64()) < lw-c.cur.LogWeight {
		// Compacting flattens the mutation overlay stack so memory
		// stays proportional to the sites the model reads, not to the
		// number of accepted proposals.  The sites just read keep their
		// values, so the accepted state is unchanged.
		c.tree = core.Compact(proposal, c.rng.Uint64())
		c.cur = Sample[T]{Value: v, LogWeight: lw}
	}
	return c.cur
}

func (c *Chain[T]) propose() *core.Tree {
	if c.opts.RestartQ > 0 && c.rng.Float64() < c.opts.RestartQ {
		return core.NewTree(c.rng.Uint64())
	}
	return core.Mutate(c.opts.P, c.rng.Uint64(), c.tree)
}

// Stream adapts the chain to a pull stream for use with core.Every and
// core.Take.
func (c *Chain[T]) Stream() core.Stream[Sample[T]] {
	return c.Next
}
