package runtime

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds weighted descriptive statistics of a batch of sampler
// output.  Consumers of chains are responsible for thinning and
// truncation; Summary only describes whatever batch it is handed.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P05    float64
	P50    float64
	P95    float64
}

// Summarize computes weighted statistics over values with the given
// log-domain weights.  Weights are exponentiated relative to their
// maximum so extreme scores cannot underflow.  Both slices must have
// the same (nonzero) length.
func Summarize(values, logWeights []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("summarize: empty batch")
	}
	if len(values) != len(logWeights) {
		return Summary{}, fmt.Errorf("summarize: %d values vs %d weights", len(values), len(logWeights))
	}

	maxLw := math.Inf(-1)
	for _, lw := range logWeights {
		if lw > maxLw {
			maxLw = lw
		}
	}

	// Sort values with their weights together; gonum's quantiles need
	// sorted input.
	type wv struct{ v, w float64 }
	pairs := make([]wv, len(values))
	for i, v := range values {
		pairs[i] = wv{v, math.Exp(logWeights[i] - maxLw)}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].v < pairs[j].v })

	xs := make([]float64, len(pairs))
	ws := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.v
		ws[i] = p.w
	}

	return Summary{
		Count:  len(xs),
		Mean:   stat.Mean(xs, ws),
		StdDev: stat.StdDev(xs, ws),
		Min:    xs[0],
		Max:    xs[len(xs)-1],
		P05:    stat.Quantile(0.05, stat.Empirical, xs, ws),
		P50:    stat.Quantile(0.50, stat.Empirical, xs, ws),
		P95:    stat.Quantile(0.95, stat.Empirical, xs, ws),
	}, nil
}

// UnweightedSummary is Summarize with all weights equal, for resampled
// output where weighting has already been applied.
func UnweightedSummary(values []float64) (Summary, error) {
	return Summarize(values, make([]float64, len(values)))
}

// HistogramBin is one bar of a histogram over sampler output.
type HistogramBin struct {
	Lo, Hi float64
	Weight float64
}

// Histogram bins values (with linear-domain weights; pass nil for
// unweighted) into n equal-width bins spanning [min, max].  Returns an
// error for an empty batch or n <= 0.
func Histogram(values, weights []float64, n int) ([]HistogramBin, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("histogram: empty batch")
	}
	if n <= 0 {
		return nil, fmt.Errorf("histogram: need at least one bin, got %d", n)
	}
	if weights != nil && len(weights) != len(values) {
		return nil, fmt.Errorf("histogram: %d values vs %d weights", len(values), len(weights))
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		hi = lo + 1 // degenerate batch: one bin catches everything
	}

	width := (hi - lo) / float64(n)
	bins := make([]HistogramBin, n)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*width
		bins[i].Hi = bins[i].Lo + width
	}
	for i, v := range values {
		k := int((v - lo) / width)
		if k >= n {
			k = n - 1
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		bins[k].Weight += w
	}
	return bins, nil
}
