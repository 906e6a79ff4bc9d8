// Package clustering computes the local clustering coefficient of every
// node: the fraction of a node's neighbor pairs that are themselves linked.
//
// Definition
//
//	For node i with neighbor set N(i) (self excluded, parallel edges
//	collapsed) and k = |N(i)|:
//
//	    C(i) = 0                      if k < 2
//	    C(i) = 2·T(i) / (k·(k−1))     otherwise
//
//	where T(i) counts unordered pairs {j, l} ⊂ N(i) joined by an edge.
//
// Directed lists
//
//	A directed list is first converted to its undirected equivalent (the
//	union of forward and reverse edges). Reciprocal edges u→v and v→u merge
//	into one neighbor, so k — and with it the denominator — is the number of
//	distinct nodes linked to i in either direction.
//
// Reference algorithm
//
//	Every neighbor pair is tested for an edge by probing the hash set of the
//	endpoint with fewer neighbors. O(Σ k²) time, O(N + M) memory. The
//	accelerated backend replaces this with degree-ordered intersection and
//	must produce identical values.
package clustering
