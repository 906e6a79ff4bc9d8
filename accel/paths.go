package accel

import (
	"sync/atomic"

	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/paths"
)

// ShortestPaths implements backend.Kernels.
func (k *Kernels) ShortestPaths(el *edgelist.EdgeList, source int64) ([]int64, error) {
	if err := edgelist.CheckNode("source", source, el.N()); err != nil {
		return nil, err
	}
	view, err := adjacency.Follow(el)
	if err != nil {
		return nil, err
	}
	dist := make([]int64, view.N)
	bfs(view.Out, int(source), dist, make([]int, 0, view.N))

	return dist, nil
}

// MeanShortestPath implements backend.Kernels.
func (k *Kernels) MeanShortestPath(el *edgelist.EdgeList) (paths.Summary, error) {
	view, err := adjacency.Follow(el)
	if err != nil {
		return paths.Summary{}, err
	}
	var total, pairs int64
	err = k.split(view.N, func(lo, hi int) error {
		dist := make([]int64, view.N)
		queue := make([]int, 0, view.N)
		var t, p int64
		for s := lo; s < hi; s++ {
			queue = bfs(view.Out, s, dist, queue)
			dt, dp := paths.Accumulate(dist, s, view.Directed)
			t += dt
			p += dp
		}
		atomic.AddInt64(&total, t)
		atomic.AddInt64(&pairs, p)
		return nil
	})
	if err != nil {
		return paths.Summary{}, err
	}

	return paths.Summarize(total, pairs), nil
}

// bfs fills dist from source over rows, reusing queue's storage.
func bfs(rows *adjacency.CSR, source int, dist []int64, queue []int) []int {
	for i := range dist {
		dist[i] = paths.Unreachable
	}
	dist[source] = 0
	queue = append(queue[:0], source)
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, nb := range rows.Neighbors(cur) {
			if dist[nb] == paths.Unreachable {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}

	return queue
}
