package converters

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netsmith/edgelist"
)

// ToUndirected returns the simple undirected projection of el.
func ToUndirected(el *edgelist.EdgeList) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < el.N(); i++ {
		g.AddNode(simple.Node(i))
	}
	u, v := el.U(), el.V()
	for i := range u {
		if u[i] == v[i] {
			continue
		}
		w := el.Weight(i)
		if e := g.WeightedEdge(u[i], v[i]); e != nil {
			w += e.Weight()
		}
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u[i]), T: simple.Node(v[i]), W: w})
	}

	return g
}

// ToDirected returns the simple directed projection of el. Undirected
// lists yield both arcs per edge.
func ToDirected(el *edgelist.EdgeList) *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < el.N(); i++ {
		g.AddNode(simple.Node(i))
	}
	u, v := el.U(), el.V()
	add := func(a, b int64, w float64) {
		if e := g.WeightedEdge(a, b); e != nil {
			w += e.Weight()
		}
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(a), T: simple.Node(b), W: w})
	}
	for i := range u {
		if u[i] == v[i] {
			continue
		}
		add(u[i], v[i], el.Weight(i))
		if !el.Directed() {
			add(v[i], u[i], el.Weight(i))
		}
	}

	return g
}

// FromGraph converts g into an edge list. Node IDs are sorted and mapped
// to 0..n-1; ids[i] is the original ID of node i. Weights are attached when
// g implements graph.Weighted. Edges are emitted in (from, to) index order.
func FromGraph(g graph.Graph, directed bool) (el *edgelist.EdgeList, ids []int64, err error) {
	nodes := graph.NodesOf(g.Nodes())
	ids = make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[int64]int64, len(ids))
	for i, id := range ids {
		index[id] = int64(i)
	}

	weighted, isWeighted := g.(graph.Weighted)
	var u, v []int64
	var w []float64
	for _, from := range ids {
		targets := graph.NodesOf(g.From(from))
		sort.Slice(targets, func(i, j int) bool { return index[targets[i].ID()] < index[targets[j].ID()] })
		for _, to := range targets {
			a, b := index[from], index[to.ID()]
			if !directed && b < a {
				continue
			}
			u = append(u, a)
			v = append(v, b)
			if isWeighted {
				x, _ := weighted.Weight(from, to.ID())
				w = append(w, x)
			}
		}
	}

	opts := []edgelist.Option{edgelist.WithDirected(directed), edgelist.WithNodes(len(ids))}
	if isWeighted {
		if w == nil {
			w = []float64{}
		}
		opts = append(opts, edgelist.WithWeights(w))
	}
	el, err = edgelist.New(u, v, opts...)

	return el, ids, err
}
