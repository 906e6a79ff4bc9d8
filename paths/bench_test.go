package paths_test

import (
	"testing"

	"github.com/katalvlaran/netsmith/generate"
	"github.com/katalvlaran/netsmith/paths"
)

// BenchmarkSingleSource_Grid runs BFS from a corner of a 100x100 grid.
func BenchmarkSingleSource_Grid(b *testing.B) {
	el, err := generate.Grid(100, 100)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(el.N() + el.M()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = paths.SingleSource(el, 0)
	}
}

// BenchmarkMeanShortestPath_Sparse averages over all sources of a sparse random graph.
func BenchmarkMeanShortestPath_Sparse(b *testing.B) {
	el, err := generate.RandomEdges(500, 2000, generate.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = paths.MeanShortestPath(el)
	}
}
