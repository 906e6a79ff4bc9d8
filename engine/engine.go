package engine

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/netsmith/backend"
	"github.com/katalvlaran/netsmith/community"
	"github.com/katalvlaran/netsmith/components"
	"github.com/katalvlaran/netsmith/degree"
	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/logger"
	"github.com/katalvlaran/netsmith/pagerank"
	"github.com/katalvlaran/netsmith/paths"
)

// Degree returns the degree of every node.
func (d *Dispatcher) Degree(ctx context.Context, el *edgelist.EdgeList, mode degree.Mode, b backend.Backend) ([]int64, error) {
	n, err := nodes(el)
	if err != nil {
		return nil, err
	}

	return dispatch(ctx, d, b, call[[]int64]{
		kernel: "degree",
		run:    func(k backend.Kernels) ([]int64, error) { return k.Degree(el, mode) },
		check:  perNode[int64](n),
	})
}

// DegreeOf returns the degree of one node.
func (d *Dispatcher) DegreeOf(ctx context.Context, el *edgelist.EdgeList, node int64, mode degree.Mode, b backend.Backend) (int64, error) {
	if err := checkNode(el, "node", node); err != nil {
		return 0, err
	}
	deg, err := d.Degree(ctx, el, mode, b)
	if err != nil {
		return 0, err
	}

	return deg[node], nil
}

// Strength returns the weighted degree of every node; unweighted lists
// report degrees as floats.
func (d *Dispatcher) Strength(ctx context.Context, el *edgelist.EdgeList, mode degree.Mode, b backend.Backend) ([]float64, error) {
	n, err := nodes(el)
	if err != nil {
		return nil, err
	}

	return dispatch(ctx, d, b, call[[]float64]{
		kernel: "strength",
		run:    func(k backend.Kernels) ([]float64, error) { return k.Strength(el, mode) },
		check:  perNode[float64](n),
	})
}

// Clustering returns the local clustering coefficient of every node.
func (d *Dispatcher) Clustering(ctx context.Context, el *edgelist.EdgeList, b backend.Backend) ([]float64, error) {
	n, err := nodes(el)
	if err != nil {
		return nil, err
	}

	return dispatch(ctx, d, b, call[[]float64]{
		kernel: "clustering",
		run:    func(k backend.Kernels) ([]float64, error) { return k.Clustering(el) },
		check:  perNode[float64](n),
	})
}

// ClusteringOf returns the clustering coefficient of one node.
func (d *Dispatcher) ClusteringOf(ctx context.Context, el *edgelist.EdgeList, node int64, b backend.Backend) (float64, error) {
	if err := checkNode(el, "node", node); err != nil {
		return 0, err
	}
	c, err := d.Clustering(ctx, el, b)
	if err != nil {
		return 0, err
	}

	return c[node], nil
}

// Labels is the result of Components.
type Labels struct {
	Count  int
	Labels []int64
}

// Components labels connected components (weak ones for directed lists).
func (d *Dispatcher) Components(ctx context.Context, el *edgelist.EdgeList, b backend.Backend) (Labels, error) {
	n, err := nodes(el)
	if err != nil {
		return Labels{}, err
	}

	return dispatch(ctx, d, b, call[Labels]{
		kernel: "components",
		run: func(k backend.Kernels) (Labels, error) {
			count, labels, err := k.Components(el)
			return Labels{Count: count, Labels: labels}, err
		},
		check: func(res Labels) error {
			if err := perNode[int64](n)(res.Labels); err != nil {
				return err
			}
			if !components.Canonical(res.Count, res.Labels) {
				return errors.Errorf("component labels are not contiguous in [0, %d)", res.Count)
			}
			return nil
		},
	})
}

// ShortestPaths returns hop distances from source; unreachable nodes carry
// paths.Unreachable. A weight option is accepted and has no effect.
func (d *Dispatcher) ShortestPaths(ctx context.Context, el *edgelist.EdgeList, source int64, b backend.Backend, opts ...paths.Option) ([]int64, error) {
	if err := checkNode(el, "source", source); err != nil {
		return nil, err
	}
	noteWeight(ctx, opts)

	return dispatch(ctx, d, b, call[[]int64]{
		kernel: "shortest_paths",
		run:    func(k backend.Kernels) ([]int64, error) { return k.ShortestPaths(el, source) },
		check:  perNode[int64](el.N()),
	})
}

// Distance returns the hop distance between two nodes and whether target is
// reachable from source.
func (d *Dispatcher) Distance(ctx context.Context, el *edgelist.EdgeList, source, target int64, b backend.Backend, opts ...paths.Option) (int64, bool, error) {
	if err := checkNode(el, "target", target); err != nil {
		return paths.Unreachable, false, err
	}
	dist, err := d.ShortestPaths(ctx, el, source, b, opts...)
	if err != nil {
		return paths.Unreachable, false, err
	}

	return dist[target], dist[target] != paths.Unreachable, nil
}

// MeanShortestPath averages hop distances over reachable pairs.
func (d *Dispatcher) MeanShortestPath(ctx context.Context, el *edgelist.EdgeList, b backend.Backend, opts ...paths.Option) (paths.Summary, error) {
	if _, err := nodes(el); err != nil {
		return paths.Summary{}, err
	}
	noteWeight(ctx, opts)

	return dispatch(ctx, d, b, call[paths.Summary]{
		kernel: "mean_shortest_path",
		run:    func(k backend.Kernels) (paths.Summary, error) { return k.MeanShortestPath(el) },
		check: func(s paths.Summary) error {
			if s.Pairs < 0 || s.Total < 0 {
				return errors.Errorf("negative path summary (total %d, pairs %d)", s.Total, s.Pairs)
			}
			return nil
		},
	})
}

// Reachability reports which nodes source can reach.
func (d *Dispatcher) Reachability(ctx context.Context, el *edgelist.EdgeList, source int64, b backend.Backend) ([]bool, error) {
	dist, err := d.ShortestPaths(ctx, el, source, b)
	if err != nil {
		return nil, err
	}

	return paths.Reachable(dist), nil
}

// PageRank scores every node by power iteration.
func (d *Dispatcher) PageRank(ctx context.Context, el *edgelist.EdgeList, b backend.Backend, opts ...pagerank.Option) ([]float64, error) {
	n, err := nodes(el)
	if err != nil {
		return nil, err
	}
	o := pagerank.Gather(opts...)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return dispatch(ctx, d, b, call[[]float64]{
		kernel: "pagerank",
		run:    func(k backend.Kernels) ([]float64, error) { return k.PageRank(el, o) },
		check:  perNode[float64](n),
	})
}

// Communities partitions the graph. An unknown method yields
// backend.ErrNotImplemented.
func (d *Dispatcher) Communities(ctx context.Context, el *edgelist.EdgeList, b backend.Backend, opts ...community.Option) (community.Partition, error) {
	n, err := nodes(el)
	if err != nil {
		return community.Partition{}, err
	}
	o := community.Gather(opts...)
	if err := o.Validate(); err != nil {
		if stderrors.Is(err, community.ErrUnknownMethod) {
			return community.Partition{}, errors.Wrap(backend.ErrNotImplemented, err.Error())
		}
		return community.Partition{}, err
	}

	return dispatch(ctx, d, b, call[community.Partition]{
		kernel: "communities",
		run:    func(k backend.Kernels) (community.Partition, error) { return k.Communities(el, o) },
		check: func(p community.Partition) error {
			if err := perNode[int64](n)(p.Labels); err != nil {
				return err
			}
			if !components.Canonical(p.Count, p.Labels) {
				return errors.Errorf("community labels are not canonical for %d communities", p.Count)
			}
			return nil
		},
	})
}

// CoreNumbers returns the core number of every node.
func (d *Dispatcher) CoreNumbers(ctx context.Context, el *edgelist.EdgeList, b backend.Backend) ([]int64, error) {
	n, err := nodes(el)
	if err != nil {
		return nil, err
	}

	return dispatch(ctx, d, b, call[[]int64]{
		kernel: "core_numbers",
		run:    func(k backend.Kernels) ([]int64, error) { return k.CoreNumbers(el) },
		check:  perNode[int64](n),
	})
}

// Centrality scores nodes by method: "degree" (total degree for directed
// lists) or "pagerank" with default options. Other names yield
// backend.ErrNotImplemented.
func (d *Dispatcher) Centrality(ctx context.Context, el *edgelist.EdgeList, method string, b backend.Backend) ([]float64, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "", "degree":
		deg, err := d.Degree(ctx, el, degree.Total, b)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(deg))
		for i, v := range deg {
			out[i] = float64(v)
		}
		return out, nil
	case "pagerank":
		return d.PageRank(ctx, el, b)
	default:
		return nil, errors.Wrapf(backend.ErrNotImplemented, "centrality method %q", method)
	}
}

func nodes(el *edgelist.EdgeList) (int, error) {
	if el == nil {
		return 0, edgelist.Invalid("edges", "edge list is nil")
	}

	return el.N(), nil
}

func checkNode(el *edgelist.EdgeList, field string, node int64) error {
	n, err := nodes(el)
	if err != nil {
		return err
	}

	return edgelist.CheckNode(field, node, n)
}

func perNode[T any](n int) func([]T) error {
	return func(res []T) error {
		if len(res) != n {
			return errors.Errorf("result has %d entries for %d nodes", len(res), n)
		}
		return nil
	}
}

func noteWeight(ctx context.Context, opts []paths.Option) {
	if o := paths.Gather(opts...); o.Weight != "" {
		logger.Logger(ctx).WithField("weight", o.Weight).Debug("shortest paths ignore weights; computing hop counts")
	}
}
