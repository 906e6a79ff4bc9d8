package accel

import (
	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/edgelist"
)

// Components implements backend.Kernels.
func (k *Kernels) Components(el *edgelist.EdgeList) (int, []int64, error) {
	if err := adjacency.Check(el); err != nil {
		return 0, nil, err
	}
	n := el.N()
	uf := newDisjointSet(n)
	u, v := el.U(), el.V()
	for i := range u {
		uf.union(int(u[i]), int(v[i]))
	}

	labels := make([]int64, n)
	byRoot := make(map[int]int64)
	for i := 0; i < n; i++ {
		r := uf.find(i)
		l, ok := byRoot[r]
		if !ok {
			l = int64(len(byRoot))
			byRoot[r] = l
		}
		labels[i] = l
	}

	return len(byRoot), labels, nil
}

// disjointSet is union by size with path halving.
type disjointSet struct {
	parent []int
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), size: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

func (d *disjointSet) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
}
