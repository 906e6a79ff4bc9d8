package generate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netsmith/edgelist"
)

// sink accumulates edges in emission order.
type sink struct {
	cfg  config
	u, v []int64
	w    []float64
}

func (s *sink) add(a, b int) {
	s.u = append(s.u, int64(a))
	s.v = append(s.v, int64(b))
	if s.cfg.weightFn != nil {
		s.w = append(s.w, s.cfg.weightFn(s.cfg.rng))
	}
}

func (s *sink) build(n int) (*edgelist.EdgeList, error) {
	opts := []edgelist.Option{edgelist.WithNodes(n), edgelist.WithDirected(s.cfg.directed)}
	if s.cfg.weightFn != nil {
		if s.w == nil {
			s.w = []float64{}
		}
		opts = append(opts, edgelist.WithWeights(s.w))
	}

	return edgelist.New(s.u, s.v, opts...)
}

func tooFew(method, name string, got, least int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, least, ErrTooFewNodes)
}

// Path returns the path 0–1–…–(n−1).
func Path(n int, opts ...Option) (*edgelist.EdgeList, error) {
	if n < 1 {
		return nil, tooFew("Path", "n", n, 1)
	}
	s := &sink{cfg: newConfig(opts)}
	for i := 0; i+1 < n; i++ {
		s.add(i, i+1)
	}

	return s.build(n)
}

// Cycle returns the ring over n nodes.
func Cycle(n int, opts ...Option) (*edgelist.EdgeList, error) {
	if n < 3 {
		return nil, tooFew("Cycle", "n", n, 3)
	}
	s := &sink{cfg: newConfig(opts)}
	for i := 0; i < n; i++ {
		s.add(i, (i+1)%n)
	}

	return s.build(n)
}

// Star returns hub 0 linked to every other node.
func Star(n int, opts ...Option) (*edgelist.EdgeList, error) {
	if n < 2 {
		return nil, tooFew("Star", "n", n, 2)
	}
	s := &sink{cfg: newConfig(opts)}
	for i := 1; i < n; i++ {
		s.add(0, i)
	}

	return s.build(n)
}

// Wheel returns hub 0 plus a rim cycle over 1..n−1, spokes first.
func Wheel(n int, opts ...Option) (*edgelist.EdgeList, error) {
	if n < 4 {
		return nil, tooFew("Wheel", "n", n, 4)
	}
	s := &sink{cfg: newConfig(opts)}
	for i := 1; i < n; i++ {
		s.add(0, i)
	}
	rim := n - 1
	for i := 0; i < rim; i++ {
		s.add(1+i, 1+(i+1)%rim)
	}

	return s.build(n)
}

// Complete returns K_n.
func Complete(n int, opts ...Option) (*edgelist.EdgeList, error) {
	if n < 1 {
		return nil, tooFew("Complete", "n", n, 1)
	}
	s := &sink{cfg: newConfig(opts)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s.add(i, j)
		}
	}

	return s.build(n)
}

// CompleteBipartite returns K_{m,k} with left side 0..m−1.
func CompleteBipartite(m, k int, opts ...Option) (*edgelist.EdgeList, error) {
	if m < 1 {
		return nil, tooFew("CompleteBipartite", "m", m, 1)
	}
	if k < 1 {
		return nil, tooFew("CompleteBipartite", "k", k, 1)
	}
	s := &sink{cfg: newConfig(opts)}
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			s.add(i, m+j)
		}
	}

	return s.build(m + k)
}

// Grid returns a rows×cols lattice; each cell links right, then down.
func Grid(rows, cols int, opts ...Option) (*edgelist.EdgeList, error) {
	if rows < 1 {
		return nil, tooFew("Grid", "rows", rows, 1)
	}
	if cols < 1 {
		return nil, tooFew("Grid", "cols", cols, 1)
	}
	s := &sink{cfg: newConfig(opts)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				s.add(id, id+1)
			}
			if r+1 < rows {
				s.add(id, id+cols)
			}
		}
	}

	return s.build(rows * cols)
}

// RandomSparse keeps each pair i < j (every ordered pair i ≠ j when
// directed) independently with probability p.
func RandomSparse(n int, p float64, opts ...Option) (*edgelist.EdgeList, error) {
	if n < 1 {
		return nil, tooFew("RandomSparse", "n", n, 1)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%v not in [0,1]: %w", p, ErrInvalidProbability)
	}
	s := &sink{cfg: newConfig(opts)}
	for i := 0; i < n; i++ {
		j0 := i + 1
		if s.cfg.directed {
			j0 = 0
		}
		for j := j0; j < n; j++ {
			if i != j && s.cfg.rng.Float64() < p {
				s.add(i, j)
			}
		}
	}

	return s.build(n)
}

// RandomEdges draws m edges with uniform endpoints over n nodes.
func RandomEdges(n, m int, opts ...Option) (*edgelist.EdgeList, error) {
	if n < 1 {
		return nil, tooFew("RandomEdges", "n", n, 1)
	}
	if m < 0 {
		return nil, tooFew("RandomEdges", "m", m, 0)
	}
	s := &sink{cfg: newConfig(opts)}
	for i := 0; i < m; i++ {
		a := s.cfg.rng.Intn(n)
		b := s.cfg.rng.Intn(n)
		s.add(a, b)
	}

	return s.build(n)
}
