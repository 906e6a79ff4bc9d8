package accel

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/pagerank"
)

// PageRank implements backend.Kernels.
func (k *Kernels) PageRank(el *edgelist.EdgeList, o pagerank.Options) ([]float64, error) {
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

	pr := pagerank.Uniform(n)
	next := make([]float64, n)
	share := make([]float64, n)
	for it := 0; it < o.MaxIterations; it++ {
		dangling := pagerank.Shares(view.Out, pr, share, o.Damping)
		base := pagerank.Teleport(o, dangling, n)
		err = k.split(n, func(lo, hi int) error {
			pagerank.Pull(view.In, share, base, next, lo, hi)
			return nil
		})
		if err != nil {
			return nil, err
		}

		delta := floats.Distance(next, pr, 2)
		pr, next = next, pr
		if delta < o.Tolerance {
			break
		}
	}

	return pr, nil
}
