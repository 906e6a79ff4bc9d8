// Package adjacency builds the ephemeral neighbor-access views every
// netsmith kernel traverses.
//
// What
//
//   - CSR: compressed sparse rows. Offsets has N+1 entries; the neighbors of
//     node i are Targets[Offsets[i]:Offsets[i+1]] and Edges records, per slot,
//     the index of the edge that produced it (for weight lookups).
//   - Undirected(el): symmetrized view. Edge (u,v) contributes v to u and u
//     to v; a self-loop contributes once. Directed lists are symmetrized too,
//     which is the "undirected-equivalent" view used by clustering and weak
//     components.
//   - Directed(el, withReverse): forward (out) rows always, reverse (in) rows
//     only when asked.
//   - Follow(el): the view a traversal should walk: directed rows for a
//     directed list, symmetrized rows otherwise.
//   - CSR.Simple(): sorted, de-duplicated, self-loop-free rows.
//
// Determinism
//
//	Rows are filled in edge order, so neighbor order is reproducible for a
//	given EdgeList. Simple() sorts ascending.
//
// Ownership
//
//	Views are built per kernel call and never cached or shared; they own no
//	reference into the EdgeList slices.
//
// Errors
//
//	An edge referencing a node >= N is rejected with *edgelist.ValidationError
//	at build time. Out-of-range edges are never skipped silently.
//
// Complexity: O(N + M) time and memory for every builder.
package adjacency
