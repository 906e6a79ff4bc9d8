package paths

import (
	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/edgelist"
)

// walker holds the mutable state of one breadth-first sweep.
type walker struct {
	rows  *adjacency.CSR
	dist  []int64
	queue []int
}

func newWalker(rows *adjacency.CSR) *walker {
	n := rows.Len()

	return &walker{rows: rows, dist: make([]int64, n), queue: make([]int, 0, n)}
}

// run fills w.dist with hop distances from source.
func (w *walker) run(source int) []int64 {
	for i := range w.dist {
		w.dist[i] = Unreachable
	}
	w.queue = w.queue[:0]
	w.enqueue(source, 0)
	// Pop in FIFO order; the first visit fixes the distance
	for qi := 0; qi < len(w.queue); qi++ {
		cur := w.queue[qi]
		next := w.dist[cur] + 1
		for _, nb := range w.rows.Neighbors(cur) {
			if w.dist[nb] == Unreachable {
				w.enqueue(nb, next)
			}
		}
	}

	return w.dist
}

func (w *walker) enqueue(id int, d int64) {
	w.dist[id] = d
	w.queue = append(w.queue, id)
}

// SingleSource returns the hop distance from source to every node.
// Directed lists are walked along u→v only. Unreached nodes carry
// Unreachable; the source itself is 0.
// Returns a *edgelist.ValidationError for a nil list, an out-of-range
// source or an edge index outside [0, N).
// Complexity: O(N + M).
func SingleSource(el *edgelist.EdgeList, source int64) ([]int64, error) {
	// Validate list, then start vertex
	if err := adjacency.Check(el); err != nil {
		return nil, err
	}
	if err := edgelist.CheckNode("source", source, el.N()); err != nil {
		return nil, err
	}

	// Build the rows the walk follows
	view, err := adjacency.Follow(el)
	if err != nil {
		return nil, err
	}

	return newWalker(view.Out).run(int(source)), nil
}

// Distance returns the hop distance from source to target and whether the
// target is reachable. An unreachable target reports (Unreachable, false).
// Returns the errors of SingleSource, and a *edgelist.ValidationError for an
// out-of-range target.
func Distance(el *edgelist.EdgeList, source, target int64) (int64, bool, error) {
	if el == nil {
		return Unreachable, false, edgelist.Invalid("edges", "edge list is nil")
	}
	if err := edgelist.CheckNode("target", target, el.N()); err != nil {
		return Unreachable, false, err
	}
	dist, err := SingleSource(el, source)
	if err != nil {
		return Unreachable, false, err
	}
	d := dist[target]

	return d, d != Unreachable, nil
}

// MeanShortestPath averages hop distances over every reachable pair:
// unordered pairs on undirected lists, ordered pairs with s != t on
// directed ones. With no reachable pair the mean is NaN.
// Returns a *edgelist.ValidationError for a nil list or an edge index
// outside [0, N).
// Complexity: O(N · (N + M)).
func MeanShortestPath(el *edgelist.EdgeList) (Summary, error) {
	view, err := adjacency.Follow(el)
	if err != nil {
		return Summary{}, err
	}
	// One walker, reused across sources
	w := newWalker(view.Out)
	n := view.N

	var total, pairs int64
	for s := 0; s < n; s++ {
		dist := w.run(s)
		t, p := Accumulate(dist, s, view.Directed)
		total += t
		pairs += p
	}

	return Summarize(total, pairs), nil
}

// Accumulate sums the reachable distances of one BFS row that belong to the
// pair set: t > s for undirected lists, t != s for directed ones.
func Accumulate(dist []int64, s int, directed bool) (total, pairs int64) {
	start := s + 1
	if directed {
		start = 0
	}
	for t := start; t < len(dist); t++ {
		if t == s || dist[t] == Unreachable {
			continue
		}
		total += dist[t]
		pairs++
	}

	return total, pairs
}

// Reachable maps a distance row to a reachability mask.
func Reachable(dist []int64) []bool {
	out := make([]bool, len(dist))
	for i, d := range dist {
		out[i] = d != Unreachable
	}

	return out
}
