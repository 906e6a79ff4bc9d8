package pagerank

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/edgelist"
)

// Rank runs the power iteration with DefaultOptions overridden by opts.
func Rank(el *edgelist.EdgeList, opts ...Option) ([]float64, error) {
	return Compute(el, Gather(opts...))
}

// Compute runs the power iteration with explicit options.
func Compute(el *edgelist.EdgeList, o Options) ([]float64, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	view, err := adjacency.Bidirectional(el)
	if err != nil {
		return nil, err
	}
	n := view.N
	if n == 0 {
		return []float64{}, nil
	}

	pr := Uniform(n)
	next := make([]float64, n)
	share := make([]float64, n)
	for it := 0; it < o.MaxIterations; it++ {
		dangling := Shares(view.Out, pr, share, o.Damping)
		Pull(view.In, share, Teleport(o, dangling, n), next, 0, n)

		delta := floats.Distance(next, pr, 2)
		pr, next = next, pr
		if delta < o.Tolerance {
			break
		}
	}

	return pr, nil
}

// Uniform returns the starting vector 1/n.
func Uniform(n int) []float64 {
	pr := make([]float64, n)
	for i := range pr {
		pr[i] = 1 / float64(n)
	}

	return pr
}

// Shares writes d·pr[u]/outdeg(u) into share and returns the rank mass held
// by dangling nodes, summed in node order.
func Shares(out *adjacency.CSR, pr, share []float64, d float64) float64 {
	var dangling float64
	for u := range pr {
		deg := out.Degree(u)
		if deg == 0 {
			share[u] = 0
			dangling += pr[u]
			continue
		}
		share[u] = d * pr[u] / float64(deg)
	}

	return dangling
}

// Pull fills next[v] for v in [lo, hi) from the in-rows of v, in slot order,
// then adds base. Disjoint ranges may run concurrently.
func Pull(in *adjacency.CSR, share []float64, base float64, next []float64, lo, hi int) {
	for v := lo; v < hi; v++ {
		var sum float64
		for _, u := range in.Neighbors(v) {
			sum += share[u]
		}
		next[v] = sum + base
	}
}

// Teleport returns the mass every node receives per round: (1−d)/n plus,
// when dangling handling is on, the redistributed dangling mass d·D/n.
func Teleport(o Options, dangling float64, n int) float64 {
	base := (1 - o.Damping) / float64(n)
	if o.HandleDangling {
		base += o.Damping * dangling / float64(n)
	}

	return base
}
