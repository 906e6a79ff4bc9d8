// Package accel is the accelerated kernel set.
//
// Kernels work on CSR rows and fan out over node or source ranges with
// errgroup, one goroutine per range, up to Workers ranges. Every kernel
// produces exactly the values of the reference kernels:
//
//   - degree and strength sum each node's row in edge order;
//   - clustering counts triangles once each over degree-ordered forward
//     rows, with atomic per-node counters;
//   - components use union-find and relabel roots by first occurrence;
//   - shortest paths run CSR breadth-first search, parallel over sources
//     for the all-pairs mean;
//   - PageRank runs the reference pull step over disjoint node ranges.
//
// Community detection and k-core decomposition report
// backend.ErrUnavailable.
package accel
