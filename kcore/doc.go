// Package kcore computes core numbers.
//
// The core number of a node is the largest k such that the node belongs to
// a subgraph in which every node has degree at least k. Direction is
// ignored, parallel edges count once and self-loops are not counted.
//
// CoreNumbers converts the list with converters.ToUndirected and reads the
// k-shells off gonum's topo.DegeneracyOrdering.
package kcore
