package community

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"
	gcommunity "gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/converters"
	"github.com/katalvlaran/netsmith/edgelist"
)

// Partition is the result of Detect.
type Partition struct {
	Labels     []int64
	Count      int
	Modularity float64
}

// Detect partitions el with DefaultOptions overridden by opts.
func Detect(el *edgelist.EdgeList, opts ...Option) (Partition, error) {
	return Run(el, Gather(opts...))
}

// Run partitions el with explicit options.
func Run(el *edgelist.EdgeList, o Options) (Partition, error) {
	if err := o.Validate(); err != nil {
		return Partition{}, err
	}
	if el == nil {
		return Partition{}, edgelist.Invalid("edges", "edge list is nil")
	}
	g := converters.ToUndirected(el)
	n := el.N()
	if g.WeightedEdges().Len() == 0 {
		labels := make([]int64, n)
		for i := range labels {
			labels[i] = int64(i)
		}

		return Partition{Labels: labels, Count: n, Modularity: math.NaN()}, nil
	}

	var raw []int64
	switch o.Method {
	case Louvain:
		raw = louvain(g, n, o)
	case LabelPropagation:
		var err error
		if raw, err = propagate(el, o.MaxIterations); err != nil {
			return Partition{}, err
		}
	}
	labels, count := Canonicalize(raw)

	return Partition{
		Labels:     labels,
		Count:      count,
		Modularity: gcommunity.Q(g, groups(labels, count), o.Resolution),
	}, nil
}

func louvain(g graph.Undirected, n int, o Options) []int64 {
	reduced := gcommunity.Modularize(g, o.Resolution, rand.NewSource(o.Seed))
	raw := make([]int64, n)
	for c, members := range reduced.Communities() {
		for _, node := range members {
			raw[node.ID()] = int64(c)
		}
	}

	return raw
}

// propagate runs asynchronous label propagation over the symmetrized rows
// of el, weighting each neighbor by its edge weight.
func propagate(el *edgelist.EdgeList, rounds int) ([]int64, error) {
	view, err := adjacency.Undirected(el)
	if err != nil {
		return nil, err
	}
	rows := view.Out
	labels := make([]int64, view.N)
	for i := range labels {
		labels[i] = int64(i)
	}

	tally := make(map[int64]float64)
	for r := 0; r < rounds; r++ {
		changed := false
		for v := 0; v < view.N; v++ {
			clear(tally)
			ids := rows.EdgeIDs(v)
			for slot, nb := range rows.Neighbors(v) {
				if nb != v {
					tally[labels[nb]] += el.Weight(ids[slot])
				}
			}
			if len(tally) == 0 {
				continue
			}
			best := pick(tally, labels[v])
			if best != labels[v] {
				labels[v] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return labels, nil
}

// pick returns current when it carries the top weight, else the smallest
// label among the top weights.
func pick(tally map[int64]float64, current int64) int64 {
	top := math.Inf(-1)
	for _, w := range tally {
		if w > top {
			top = w
		}
	}
	if tally[current] == top {
		return current
	}
	best := int64(math.MaxInt64)
	for l, w := range tally {
		if w == top && l < best {
			best = l
		}
	}

	return best
}

// Canonicalize renumbers raw so labels are contiguous from 0 in order of
// first appearance, which is order of smallest member index.
func Canonicalize(raw []int64) ([]int64, int) {
	seen := make(map[int64]int64, len(raw))
	out := make([]int64, len(raw))
	for i, l := range raw {
		c, ok := seen[l]
		if !ok {
			c = int64(len(seen))
			seen[l] = c
		}
		out[i] = c
	}

	return out, len(seen)
}

// Modularity scores labels (one per node, any non-negative numbering)
// on el at the given resolution. An edgeless graph yields NaN.
func Modularity(el *edgelist.EdgeList, labels []int64, resolution float64) (float64, error) {
	if el == nil {
		return 0, edgelist.Invalid("edges", "edge list is nil")
	}
	if len(labels) != el.N() {
		return 0, edgelist.Invalid("labels", "length %d does not match node count %d", len(labels), el.N())
	}
	for i, l := range labels {
		if l < 0 {
			return 0, &edgelist.ValidationError{Field: "labels", Index: i, Reason: "negative community label"}
		}
	}
	if err := (Options{Method: Louvain, Resolution: resolution}).Validate(); err != nil {
		return 0, err
	}
	g := converters.ToUndirected(el)
	if g.WeightedEdges().Len() == 0 {
		return math.NaN(), nil
	}
	canon, count := Canonicalize(labels)

	return gcommunity.Q(g, groups(canon, count), resolution), nil
}

func groups(labels []int64, count int) [][]graph.Node {
	out := make([][]graph.Node, count)
	for i, l := range labels {
		out[l] = append(out[l], simple.Node(i))
	}

	return out
}
