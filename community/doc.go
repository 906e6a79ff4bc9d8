// Package community partitions a graph into communities and scores
// partitions by modularity.
//
// Contract
//
//	Detect takes an edge list and returns a Partition: one label per node,
//	the number of communities, and the modularity of the partition at the
//	requested resolution. Labels are canonical: contiguous from 0 and
//	numbered in order of each community's smallest node index, so node 0 is
//	always in community 0. Two runs that find the same grouping report the
//	same labels regardless of how the algorithm numbered them internally.
//
// Methods
//
//   - Louvain: delegated to gonum's graph/community.Modularize, seeded
//     through Options.Seed.
//   - LabelPropagation: native and deterministic. Nodes are visited in
//     ascending order and adopt the label with the largest incident weight;
//     a node keeps its label when it is among the best, otherwise the
//     smallest best label wins.
//
// Input handling
//
//	Direction is ignored, self-loops are dropped and parallel edges are
//	merged with summed weights. A graph with no remaining edge puts every
//	node in its own community and reports NaN modularity.
package community
