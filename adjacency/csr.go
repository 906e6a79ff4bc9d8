package adjacency

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/netsmith/edgelist"
)

// CSR stores per-node neighbor rows contiguously.
type CSR struct {
	Offsets []int
	Targets []int
	Edges   []int // edge index per slot; nil for views produced by Simple
}

// Len returns the number of rows (nodes).
func (c *CSR) Len() int { return len(c.Offsets) - 1 }

// Neighbors returns the row of node i. Read-only.
func (c *CSR) Neighbors(i int) []int { return c.Targets[c.Offsets[i]:c.Offsets[i+1]] }

// EdgeIDs returns the originating edge indices of row i, aligned with Neighbors.
func (c *CSR) EdgeIDs(i int) []int { return c.Edges[c.Offsets[i]:c.Offsets[i+1]] }

// Degree returns the row length of node i.
func (c *CSR) Degree(i int) int { return c.Offsets[i+1] - c.Offsets[i] }

// Simple returns a copy whose rows are sorted ascending, free of
// duplicates and free of self-loops.
func (c *CSR) Simple() *CSR {
	n := c.Len()
	out := &CSR{Offsets: make([]int, n+1), Targets: make([]int, 0, len(c.Targets))}
	row := make([]int, 0)
	for i := 0; i < n; i++ {
		row = append(row[:0], c.Neighbors(i)...)
		sort.Ints(row)
		prev := -1
		for _, j := range row {
			if j == i || j == prev {
				continue
			}
			out.Targets = append(out.Targets, j)
			prev = j
		}
		out.Offsets[i+1] = len(out.Targets)
	}

	return out
}

// View groups the rows a kernel needs.
// For undirected views In == Out.
type View struct {
	N        int
	Directed bool
	Out      *CSR
	In       *CSR // nil when a directed view was built without reverse rows
}

// Undirected builds the symmetrized view of el, regardless of el.Directed().
func Undirected(el *edgelist.EdgeList) (*View, error) {
	if err := Check(el); err != nil {
		return nil, err
	}
	u, v := el.U(), el.V()
	n := el.N()

	offsets := make([]int, n+1)
	for i := range u {
		offsets[u[i]+1]++
		if u[i] != v[i] {
			offsets[v[i]+1]++
		}
	}
	prefix(offsets)

	c := &CSR{Offsets: offsets, Targets: make([]int, offsets[n]), Edges: make([]int, offsets[n])}
	cursor := append([]int(nil), offsets[:n]...)
	for i := range u {
		a, b := int(u[i]), int(v[i])
		put(c, cursor, a, b, i)
		if a != b {
			put(c, cursor, b, a, i)
		}
	}

	return &View{N: n, Out: c, In: c}, nil
}

// Directed builds forward rows, plus reverse rows when withReverse is set.
func Directed(el *edgelist.EdgeList, withReverse bool) (*View, error) {
	if err := Check(el); err != nil {
		return nil, err
	}
	view := &View{N: el.N(), Directed: true, Out: build(el.N(), el.U(), el.V())}
	if withReverse {
		view.In = build(el.N(), el.V(), el.U())
	}

	return view, nil
}

// Follow returns the view a direction-respecting traversal walks:
// forward rows for directed lists, symmetrized rows otherwise.
func Follow(el *edgelist.EdgeList) (*View, error) {
	if el != nil && el.Directed() {
		return Directed(el, false)
	}

	return Undirected(el)
}

// Bidirectional returns a view with both Out and In rows populated:
// reverse rows for directed lists, the shared symmetrized rows otherwise.
func Bidirectional(el *edgelist.EdgeList) (*View, error) {
	if el != nil && el.Directed() {
		return Directed(el, true)
	}

	return Undirected(el)
}

// build fills rows from[i] → to[i] in edge order.
func build(n int, from, to []int64) *CSR {
	offsets := make([]int, n+1)
	for _, a := range from {
		offsets[a+1]++
	}
	prefix(offsets)

	c := &CSR{Offsets: offsets, Targets: make([]int, offsets[n]), Edges: make([]int, offsets[n])}
	cursor := append([]int(nil), offsets[:n]...)
	for i := range from {
		put(c, cursor, int(from[i]), int(to[i]), i)
	}

	return c
}

func put(c *CSR, cursor []int, row, target, edge int) {
	slot := cursor[row]
	c.Targets[slot] = target
	c.Edges[slot] = edge
	cursor[row]++
}

func prefix(offsets []int) {
	for i := 1; i < len(offsets); i++ {
		offsets[i] += offsets[i-1]
	}
}

// Check re-asserts the range invariant so a view is never built over
// indices it cannot hold. Kernels that walk el directly call it instead of
// building a view.
// Returns a *edgelist.ValidationError for a nil list or an index outside
// [0, N).
func Check(el *edgelist.EdgeList) error {
	if el == nil {
		return edgelist.Invalid("edges", "edge list is nil")
	}
	n := int64(el.N())
	u, v := el.U(), el.V()
	for i := range u {
		if u[i] < 0 || u[i] >= n {
			return &edgelist.ValidationError{Field: "u", Index: i,
				Reason: fmt.Sprintf("node index %d outside [0, %d)", u[i], n)}
		}
		if v[i] < 0 || v[i] >= n {
			return &edgelist.ValidationError{Field: "v", Index: i,
				Reason: fmt.Sprintf("node index %d outside [0, %d)", v[i], n)}
		}
	}

	return nil
}
