package engine

import (
	"github.com/katalvlaran/netsmith/backend"
	"github.com/katalvlaran/netsmith/clustering"
	"github.com/katalvlaran/netsmith/community"
	"github.com/katalvlaran/netsmith/components"
	"github.com/katalvlaran/netsmith/degree"
	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/kcore"
	"github.com/katalvlaran/netsmith/pagerank"
	"github.com/katalvlaran/netsmith/paths"
)

// reference adapts the scalar kernel packages to backend.Kernels.
type reference struct{}

// Reference returns the reference kernel set.
func Reference() backend.Kernels { return reference{} }

func (reference) Name() string { return "reference" }

func (reference) Degree(el *edgelist.EdgeList, mode degree.Mode) ([]int64, error) {
	return degree.Degrees(el, mode)
}

func (reference) Strength(el *edgelist.EdgeList, mode degree.Mode) ([]float64, error) {
	return degree.Strengths(el, mode)
}

func (reference) Clustering(el *edgelist.EdgeList) ([]float64, error) {
	return clustering.Local(el)
}

func (reference) Components(el *edgelist.EdgeList) (int, []int64, error) {
	return components.Connected(el)
}

func (reference) ShortestPaths(el *edgelist.EdgeList, source int64) ([]int64, error) {
	return paths.SingleSource(el, source)
}

func (reference) MeanShortestPath(el *edgelist.EdgeList) (paths.Summary, error) {
	return paths.MeanShortestPath(el)
}

func (reference) PageRank(el *edgelist.EdgeList, o pagerank.Options) ([]float64, error) {
	return pagerank.Compute(el, o)
}

func (reference) Communities(el *edgelist.EdgeList, o community.Options) (community.Partition, error) {
	return community.Run(el, o)
}

func (reference) CoreNumbers(el *edgelist.EdgeList) ([]int64, error) {
	return kcore.CoreNumbers(el)
}
