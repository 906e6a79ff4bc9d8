package accel

import (
	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/degree"
	"github.com/katalvlaran/netsmith/edgelist"
)

// Degree implements backend.Kernels.
func (k *Kernels) Degree(el *edgelist.EdgeList, mode degree.Mode) ([]int64, error) {
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	view, err := adjacency.Bidirectional(el)
	if err != nil {
		return nil, err
	}
	deg := make([]int64, view.N)
	err = k.split(view.N, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if !view.Directed {
				// a self-loop occupies one slot but counts twice
				deg[i] = int64(view.Out.Degree(i) + loops(view.Out, i))
				continue
			}
			if mode != degree.In {
				deg[i] += int64(view.Out.Degree(i))
			}
			if mode != degree.Out {
				deg[i] += int64(view.In.Degree(i))
			}
		}
		return nil
	})

	return deg, err
}

// Strength implements backend.Kernels.
func (k *Kernels) Strength(el *edgelist.EdgeList, mode degree.Mode) ([]float64, error) {
	if !el.Weighted() {
		deg, err := k.Degree(el, mode)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(deg))
		for i, d := range deg {
			out[i] = float64(d)
		}
		return out, nil
	}
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	view, err := adjacency.Bidirectional(el)
	if err != nil {
		return nil, err
	}
	s := make([]float64, view.N)
	err = k.split(view.N, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			switch {
			case !view.Directed:
				s[i] = sumSymmetric(el, view.Out, i)
			case mode == degree.Out:
				s[i] = sumRow(el, view.Out, i)
			case mode == degree.In:
				s[i] = sumRow(el, view.In, i)
			default:
				s[i] = sumMerged(el, view.Out, view.In, i)
			}
		}
		return nil
	})

	return s, err
}

func checkMode(m degree.Mode) error {
	if m < degree.Out || m > degree.Total {
		return edgelist.Invalid("mode", "unknown degree mode %d", int(m))
	}

	return nil
}

func loops(rows *adjacency.CSR, i int) int {
	c := 0
	for _, j := range rows.Neighbors(i) {
		if j == i {
			c++
		}
	}

	return c
}

// sumRow adds the weights of row i in edge order.
func sumRow(el *edgelist.EdgeList, rows *adjacency.CSR, i int) float64 {
	var s float64
	for _, e := range rows.EdgeIDs(i) {
		s += el.Weight(e)
	}

	return s
}

// sumSymmetric is sumRow with self-loops added twice.
func sumSymmetric(el *edgelist.EdgeList, rows *adjacency.CSR, i int) float64 {
	var s float64
	ids := rows.EdgeIDs(i)
	for slot, j := range rows.Neighbors(i) {
		w := el.Weight(ids[slot])
		s += w
		if j == i {
			s += w
		}
	}

	return s
}

// sumMerged adds the weights of out row and in row i in global edge order.
func sumMerged(el *edgelist.EdgeList, out, in *adjacency.CSR, i int) float64 {
	a, b := out.EdgeIDs(i), in.EdgeIDs(i)
	var s float64
	for len(a) > 0 || len(b) > 0 {
		switch {
		case len(b) == 0 || (len(a) > 0 && a[0] <= b[0]):
			s += el.Weight(a[0])
			a = a[1:]
		default:
			s += el.Weight(b[0])
			b = b[1:]
		}
	}

	return s
}
