package kcore

import (
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/converters"
	"github.com/katalvlaran/netsmith/edgelist"
)

// CoreNumbers returns the core number of every node: the largest k such
// that the node survives in the k-core of the undirected-equivalent simple
// graph. Self-loops and parallel edges are ignored.
// Returns a *edgelist.ValidationError when el is nil or holds an index
// outside [0, N).
// Time is dominated by gonum's peeling; the projection costs O(N + M).
func CoreNumbers(el *edgelist.EdgeList) ([]int64, error) {
	// Validate indices before handing the list to gonum.
	if err := adjacency.Check(el); err != nil {
		return nil, err
	}

	// cores[k] holds the nodes peeled while the running degeneracy was k.
	_, cores := topo.DegeneracyOrdering(converters.ToUndirected(el))
	core := make([]int64, el.N())
	for k, shell := range cores {
		for _, node := range shell {
			core[node.ID()] = int64(k)
		}
	}

	return core, nil
}

// Members reports which nodes belong to the k-core.
func Members(el *edgelist.EdgeList, k int64) ([]bool, error) {
	if k < 0 {
		return nil, edgelist.Invalid("k", "%d must be non-negative", k)
	}
	core, err := CoreNumbers(el)
	if err != nil {
		return nil, err
	}
	in := make([]bool, len(core))
	for i, c := range core {
		in[i] = c >= k
	}

	return in, nil
}

// Degeneracy returns the largest core number, or 0 for an empty graph.
func Degeneracy(core []int64) int64 {
	var hi int64
	for _, c := range core {
		if c > hi {
			hi = c
		}
	}

	return hi
}
