// Package components labels the connected components of an edge list.
//
// Labeling
//
//	Nodes are scanned in ascending index order; every node not yet labeled
//	starts a breadth-first sweep that stamps the next label. Labels are
//	therefore contiguous in [0, count) and ordered by the smallest node
//	index of each component: node 0 always carries label 0.
//
// Directed lists
//
//	Direction is ignored: the kernel computes weak components on the
//	undirected-equivalent view. Strongly connected components are not
//	computed here.
//
// Complexity: O(N + M) time and memory.
package components
