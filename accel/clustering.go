package accel

import (
	"sync/atomic"

	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/clustering"
	"github.com/katalvlaran/netsmith/edgelist"
)

// Clustering implements backend.Kernels.
func (k *Kernels) Clustering(el *edgelist.EdgeList) ([]float64, error) {
	view, err := adjacency.Undirected(el)
	if err != nil {
		return nil, err
	}
	rows := view.Out.Simple()
	n := rows.Len()
	fwd := forward(rows)

	tri := make([]int64, n)
	err = k.split(n, func(lo, hi int) error {
		for v := lo; v < hi; v++ {
			for _, u := range fwd[v] {
				intersect(fwd[v], fwd[u], func(w int) {
					atomic.AddInt64(&tri[v], 1)
					atomic.AddInt64(&tri[u], 1)
					atomic.AddInt64(&tri[w], 1)
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = clustering.Coefficient(tri[i], rows.Degree(i))
	}

	return out, nil
}

// forward keeps, for every node, the neighbors ranked above it by
// (degree, index). Rows stay sorted by index since Simple rows are.
// Each triangle is then seen exactly once.
func forward(rows *adjacency.CSR) [][]int {
	n := rows.Len()
	above := func(a, b int) bool {
		da, db := rows.Degree(a), rows.Degree(b)
		return da < db || (da == db && a < b)
	}
	fwd := make([][]int, n)
	for v := 0; v < n; v++ {
		for _, u := range rows.Neighbors(v) {
			if above(v, u) {
				fwd[v] = append(fwd[v], u)
			}
		}
	}

	return fwd
}

// intersect calls fn for every value present in both sorted slices.
func intersect(a, b []int, fn func(int)) {
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			fn(a[i])
			i++
			j++
		}
	}
}
