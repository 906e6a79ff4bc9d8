// Package paths computes unweighted shortest-path distances by
// breadth-first search over an edge list.
//
// What
//
//   - SingleSource: hop distance from one source to every node.
//   - Distance: hop distance between one source and one target.
//   - MeanShortestPath: mean distance over all reachable pairs.
//   - Reachable: turns a distance row into a reachability mask.
//
// Unreachable nodes
//
//	A node the source cannot reach carries Unreachable (math.MaxInt64), the
//	largest value of the result type. Callers must compare against it
//	explicitly; every other value is an exact hop count and the source
//	itself is always 0.
//
// Direction
//
//	On a directed list BFS follows edge direction only. Undirected lists are
//	walked in both directions.
//
// Weights
//
//	Only unweighted distances are computed. WithWeight is accepted so callers
//	can pass a weight column through, but it does not change the algorithm:
//	weights are ignored even when the list carries them.
//
// Mean shortest path
//
//	Undirected lists average over unordered pairs {s, t}; directed lists
//	over ordered pairs (s, t), s ≠ t. Unreachable pairs are excluded from
//	both the sum and the count. With no reachable pair the mean is NaN.
//
// Complexity
//
//   - SingleSource / Distance: O(N + M) time, O(N) memory.
//   - MeanShortestPath:        O(N·(N + M)) time, O(N) memory.
package paths
