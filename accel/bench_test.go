package accel_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/netsmith/accel"
	"github.com/katalvlaran/netsmith/backend"
	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/engine"
	"github.com/katalvlaran/netsmith/generate"
	"github.com/katalvlaran/netsmith/pagerank"
)

// benchList is a sparse random graph: 20k nodes, 100k edges.
func benchList(b *testing.B) *edgelist.EdgeList {
	el, err := generate.RandomEdges(20000, 100000, generate.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}

	return el
}

func benchBackends(b *testing.B, run func(d *engine.Dispatcher, bk backend.Backend) error) {
	d := engine.New(engine.WithAccelerated(accel.New()))
	for _, bk := range []backend.Backend{backend.Reference, backend.Accelerated} {
		b.Run(bk.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := run(d, bk); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkClustering compares set-probing against forward triangle counting.
func BenchmarkClustering(b *testing.B) {
	el := benchList(b)
	ctx := context.Background()
	benchBackends(b, func(d *engine.Dispatcher, bk backend.Backend) error {
		_, err := d.Clustering(ctx, el, bk)
		return err
	})
}

// BenchmarkComponents compares BFS labeling against union-find.
func BenchmarkComponents(b *testing.B) {
	el := benchList(b)
	ctx := context.Background()
	benchBackends(b, func(d *engine.Dispatcher, bk backend.Backend) error {
		_, err := d.Components(ctx, el, bk)
		return err
	})
}

// BenchmarkPageRank runs 20 fixed rounds on both sets.
func BenchmarkPageRank(b *testing.B) {
	el := benchList(b)
	ctx := context.Background()
	benchBackends(b, func(d *engine.Dispatcher, bk backend.Backend) error {
		_, err := d.PageRank(ctx, el, bk, pagerank.WithMaxIterations(20), pagerank.WithTolerance(0))
		return err
	})
}

// BenchmarkMeanShortestPath is all-pairs BFS on a 40×40 grid.
func BenchmarkMeanShortestPath(b *testing.B) {
	el, err := generate.Grid(40, 40)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	benchBackends(b, func(d *engine.Dispatcher, bk backend.Backend) error {
		_, err := d.MeanShortestPath(ctx, el, bk)
		return err
	})
}
