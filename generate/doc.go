// Package generate builds deterministic edge lists for standard topologies
// and seeded random graphs. Tests, benchmarks and examples use it to get
// fixtures whose node and edge order never changes between runs.
//
// Topologies
//
//	Path(n)              0–1–…–(n−1)                              n ≥ 1
//	Cycle(n)             Path plus (n−1)–0                         n ≥ 3
//	Star(n)              hub 0 linked to 1..n−1                     n ≥ 2
//	Wheel(n)             hub 0 plus a rim cycle over 1..n−1         n ≥ 4
//	Complete(n)          every pair i < j                           n ≥ 1
//	CompleteBipartite    left 0..m−1, right m..m+k−1                m, k ≥ 1
//	Grid(rows, cols)     4-neighborhood, row-major ids r·cols + c   rows, cols ≥ 1
//
// Random graphs
//
//	RandomSparse(n, p)   each admissible pair kept with probability p
//	RandomEdges(n, m)    m endpoints drawn uniformly; loops and parallel
//	                     edges are kept, which makes it a stress input
//
// Edges are emitted in a fixed order (ascending i, then ascending j) and one
// weight is drawn per emitted edge, so a fixed seed yields a fixed list.
// Lists are unweighted unless WithWeights is given.
//
// Errors
//
//	ErrTooFewNodes        a size parameter is below its minimum
//	ErrInvalidProbability p is outside [0, 1] or NaN
package generate
