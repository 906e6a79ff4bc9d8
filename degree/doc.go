// Package degree computes per-node degree and weighted strength over an
// edgelist.EdgeList, plus degree assortativity.
//
// Modes
//
//	Out, In and Total select which incident edges count on a directed list.
//	An undirected list always reports its total degree; the mode is ignored.
//
// Self-loops
//
//	A self-loop adds 2 to the degree of its node on an undirected list, the
//	usual graph-theoretic convention that keeps sum(degree) == 2·M. On a
//	directed list it adds 1 to out-degree and 1 to in-degree, so 2 to the
//	total. Strength applies the same rule to the edge weight.
//
// Strength
//
//	Strengths sums edge weights instead of counting edges and returns the
//	degree (as float64) when the list carries no weights.
//
// Assortativity
//
//	Pearson correlation of a node attribute (degree when none is given)
//	across edge endpoints. Undirected edges contribute both orientations so
//	the result does not depend on how an edge was written down.
//
// Complexity: O(M) time, O(N) memory.
package degree
