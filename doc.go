// Package netsmith computes structural statistics over graphs given as
// edge lists: degree and strength, local clustering, connected components,
// shortest-path distances, PageRank, communities and core numbers.
//
// What is inside?
//
//	edgelist/   — the canonical (u, v, w?, directed, n) input, validation, CSV loading
//	adjacency/  — CSR neighbor rows built per call from an edge list
//	degree/     — degree, strength, assortativity
//	clustering/ — local clustering coefficient
//	components/ — connected (weak) components
//	paths/      — breadth-first hop distances, mean shortest path, reachability
//	pagerank/   — power iteration with dangling-mass redistribution
//	community/  — Louvain (gonum) and label propagation, modularity
//	kcore/      — core numbers and k-core membership
//	converters/ — edge lists to and from gonum/graph
//	backend/    — kernel-set interface, backend names, error taxonomy
//	accel/      — parallel CSR kernels matching the reference results
//	engine/     — the dispatcher every caller goes through
//	logger/     — logrus logger carried on a context
//	cmd/netsmith — command line front end
//
// Data flows one way: edge list → adjacency rows → kernel → one value per
// node. The engine picks the kernel set per call (auto, reference or
// accelerated) and normalizes failures; both sets return identical
// results for the same input.
//
// Quick example:
//
//	el, _ := edgelist.New([]int64{0, 1, 2}, []int64{1, 2, 0})
//	deg, _ := engine.New().Degree(ctx, el, degree.Out, backend.Auto)
//	// deg == [2 2 2]
//
//	go get github.com/katalvlaran/netsmith
package netsmith
