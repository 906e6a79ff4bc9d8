// Package converters adapts edge lists to and from gonum/graph.
//
// ToUndirected and ToDirected produce simple weighted gonum graphs that
// carry every node of the list, including isolated ones. gonum's simple
// graphs reject self-edges and hold one edge per node pair, so conversion
// drops self-loops and sums the weights of parallel edges. For
// ToUndirected the pair is unordered, which also merges the two directions
// of a directed list. An unweighted list contributes weight 1 per edge.
//
// FromGraph goes the other way: node IDs are relabelled densely in
// ascending ID order and the mapping is returned alongside the list.
package converters
