package paths

import "math"

// Unreachable is the distance reported for nodes the source cannot reach.
const Unreachable int64 = math.MaxInt64

// Summary is the all-pairs aggregate returned by MeanShortestPath.
type Summary struct {
	// Mean is Total / Pairs, or NaN when Pairs == 0.
	Mean float64
	// Pairs counts reachable pairs (unordered for undirected lists).
	Pairs int64
	// Total sums their hop distances.
	Total int64
}

// Summarize builds a Summary from a distance total and a pair count.
// Every backend goes through it so the NaN rule is applied once.
func Summarize(total, pairs int64) Summary {
	s := Summary{Pairs: pairs, Total: total, Mean: math.NaN()}
	if pairs > 0 {
		s.Mean = float64(total) / float64(pairs)
	}

	return s
}

// Option configures a shortest-path query at the dispatch layer.
type Option func(*Options)

// Options holds query parameters.
type Options struct {
	// Weight names a weight attribute. Accepted and ignored: distances are
	// always hop counts.
	Weight string
}

// DefaultOptions returns the zero configuration.
func DefaultOptions() Options {
	return Options{}
}

// WithWeight records a weight attribute name. It does not change results.
func WithWeight(attr string) Option {
	return func(o *Options) { o.Weight = attr }
}

// Gather applies opts over DefaultOptions.
func Gather(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
