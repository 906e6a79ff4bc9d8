// Package pagerank ranks nodes by power iteration over the link structure
// of an edge list.
//
// Iteration
//
//	Starting from the uniform vector 1/N, each round computes
//
//	    next[v] = Σ_{u→v} d·pr[u]/outdeg(u) + (1−d)/N [+ d·D/N]
//
//	where d is the damping factor and D the rank mass held by dangling nodes
//	(out-degree 0). The bracketed term is added when HandleDangling is set:
//	dangling nodes then behave as if they linked to every node and the vector
//	keeps summing to 1. Without it the legacy leaking behaviour is kept and
//	the sum drops below 1.
//
//	Undirected lists link both ways: edge (u, v) is read as the arcs u→v and
//	v→u, so an undirected list ranks exactly like the directed list holding
//	both arcs. Only directed lists follow u→v alone. A self-loop is one
//	out-link.
//
// Termination
//
//	The loop stops once the L2 distance between successive vectors is below
//	Tolerance, or after MaxIterations rounds. Running out of rounds is not an
//	error: the latest vector is returned.
//
// Options
//
//   - Damping        ∈ [0, 1], default 0.85.
//   - Tolerance      ≥ 0,      default 1e-6.
//   - MaxIterations  ≥ 0,      default 200. Zero returns the uniform vector.
//   - HandleDangling default true.
//
// Complexity: O(MaxIterations · (N + M)) time, O(N + M) memory.
package pagerank
