package degree

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/edgelist"
)

// Mode selects which incident edges are counted on a directed list.
type Mode int

const (
	// Out counts edges leaving the node.
	Out Mode = iota
	// In counts edges entering the node.
	In
	// Total counts both.
	Total
)

func (m Mode) String() string {
	switch m {
	case Out:
		return "out"
	case In:
		return "in"
	case Total:
		return "total"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "out", "in" and "total" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "out", "":
		return Out, nil
	case "in":
		return In, nil
	case "total", "all":
		return Total, nil
	}

	return Out, edgelist.Invalid("mode", "unknown degree mode %q (want out, in or total)", s)
}

func checkMode(m Mode) error {
	if m < Out || m > Total {
		return edgelist.Invalid("mode", "unknown degree mode %d", int(m))
	}

	return nil
}

// Degrees returns the degree of every node under mode.
// Undirected lists ignore mode and report total degree; a self-loop adds 2.
// On directed lists a self-loop adds 1 to out and 1 to in.
// Returns a *edgelist.ValidationError for an unknown mode, a nil list or an
// index outside [0, N).
// Complexity: O(N + M).
func Degrees(el *edgelist.EdgeList, mode Mode) ([]int64, error) {
	// Validate mode and list before sizing the result
	if err := checkMode(mode); err != nil {
		return nil, err
	}
	if err := adjacency.Check(el); err != nil {
		return nil, err
	}
	u, v := el.U(), el.V()
	deg := make([]int64, el.N())

	// Undirected: both endpoints, whatever the mode
	if !el.Directed() {
		for i := range u {
			deg[u[i]]++
			deg[v[i]]++ // a self-loop lands twice on the same node
		}
		return deg, nil
	}

	// Directed: count the sides mode asks for
	for i := range u {
		if mode != In {
			deg[u[i]]++
		}
		if mode != Out {
			deg[v[i]]++
		}
	}

	return deg, nil
}

// Strengths returns the weighted degree of every node under mode, with the
// same self-loop convention as Degrees.
// Unweighted lists fall back to Degrees converted to float64.
// Returns a *edgelist.ValidationError for an unknown mode, a nil list or an
// index outside [0, N).
func Strengths(el *edgelist.EdgeList, mode Mode) ([]float64, error) {
	if el == nil {
		return nil, edgelist.Invalid("edges", "edge list is nil")
	}
	// Unweighted: reuse the integer counts
	if !el.Weighted() {
		deg, err := Degrees(el, mode)
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
	if err := adjacency.Check(el); err != nil {
		return nil, err
	}

	// Sum weights in edge order so every caller sees the same rounding
	u, v, w := el.U(), el.V(), el.W()
	s := make([]float64, el.N())
	for i := range u {
		if !el.Directed() || mode != In {
			s[u[i]] += w[i]
		}
		if !el.Directed() || mode != Out {
			s[v[i]] += w[i]
		}
	}

	return s, nil
}

// Of returns the degree of a single node.
// Returns a *edgelist.ValidationError for a nil list, an out-of-range node
// or an unknown mode.
func Of(el *edgelist.EdgeList, node int64, mode Mode) (int64, error) {
	if el == nil {
		return 0, edgelist.Invalid("edges", "edge list is nil")
	}
	if err := edgelist.CheckNode("node", node, el.N()); err != nil {
		return 0, err
	}
	deg, err := Degrees(el, mode)
	if err != nil {
		return 0, err
	}

	return deg[node], nil
}

// StrengthOf returns the strength of a single node.
// Errors as Of.
func StrengthOf(el *edgelist.EdgeList, node int64, mode Mode) (float64, error) {
	if el == nil {
		return 0, edgelist.Invalid("edges", "edge list is nil")
	}
	if err := edgelist.CheckNode("node", node, el.N()); err != nil {
		return 0, err
	}
	s, err := Strengths(el, mode)
	if err != nil {
		return 0, err
	}

	return s[node], nil
}

// Assortativity returns the Pearson correlation of attr across edge
// endpoints. A nil attr uses the total degree. Fewer than two endpoint
// observations yield 0; a constant attribute yields NaN.
// Returns a *edgelist.ValidationError when attr does not hold one value per
// node, or when el is nil or out of range.
func Assortativity(el *edgelist.EdgeList, attr []float64) (float64, error) {
	if err := adjacency.Check(el); err != nil {
		return 0, err
	}
	// Default attribute: total degree
	if attr == nil {
		deg, err := Degrees(el, Total)
		if err != nil {
			return 0, err
		}
		attr = make([]float64, len(deg))
		for i, d := range deg {
			attr[i] = float64(d)
		}
	}
	if len(attr) != el.N() {
		return 0, edgelist.Invalid("attr", "length %d does not match n_nodes %d", len(attr), el.N())
	}

	// Undirected edges are observed in both orientations
	u, v := el.U(), el.V()
	size := len(u)
	if !el.Directed() {
		size *= 2
	}
	if size < 2 {
		return 0, nil
	}

	x := make([]float64, 0, size)
	y := make([]float64, 0, size)
	for i := range u {
		x = append(x, attr[u[i]])
		y = append(y, attr[v[i]])
		if !el.Directed() {
			x = append(x, attr[v[i]])
			y = append(y, attr[u[i]])
		}
	}

	return stat.Correlation(x, y, nil), nil
}
