package edgelist

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for edge list construction and loading.
var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("edgelist: validation failed")

	// ErrMissingColumn indicates a requested column is absent from a table header.
	ErrMissingColumn = errors.New("edgelist: missing column")

	// ErrMalformedRow indicates a table cell could not be parsed.
	ErrMalformedRow = errors.New("edgelist: malformed row")

	// ErrUnsupportedFormat indicates LoadFile cannot read the file extension.
	ErrUnsupportedFormat = errors.New("edgelist: unsupported file format")
)

// ValidationError describes malformed input: which field, which position
// (Index, or -1 when the problem is not positional) and why.
type ValidationError struct {
	Field  string
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("edgelist: invalid %s[%d]: %s", e.Field, e.Index, e.Reason)
	}

	return fmt.Sprintf("edgelist: invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) true for every *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid builds a non-positional *ValidationError.
func Invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Index: -1, Reason: fmt.Sprintf(format, args...)}
}

// CheckNode returns a *ValidationError when node is outside [0, n).
// field names the parameter being checked ("node", "source", "target").
func CheckNode(field string, node int64, n int) error {
	if node < 0 || node >= int64(n) {
		return Invalid(field, "%d is out of range [0, %d)", node, n)
	}

	return nil
}

// EdgeList is the canonical (u, v, w?, directed, n) graph representation.
// It is immutable after New returns.
type EdgeList struct {
	u        []int64
	v        []int64
	w        []float64 // nil means unweighted
	directed bool
	n        int
}

// Option configures New.
type Option func(*config)

type config struct {
	w        []float64
	directed bool
	n        int // -1: derive from indices
	err      error
}

// WithWeights attaches one finite weight per edge.
// A nil slice keeps the list unweighted.
func WithWeights(w []float64) Option {
	return func(c *config) { c.w = w }
}

// WithDirected sets the directed flag (default false).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithNodes declares the node count explicitly.
// Every index must then be < n; a negative n is rejected by New.
func WithNodes(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.err = Invalid("n_nodes", "must be non-negative, got %d", n)
			return
		}
		c.n = n
	}
}

// New validates u, v and the optional weights, then returns an immutable
// EdgeList holding copies of them.
// Complexity: O(m) time and memory.
func New(u, v []int64, opts ...Option) (*EdgeList, error) {
	c := config{n: -1}
	for _, opt := range opts {
		opt(&c)
	}
	if c.err != nil {
		return nil, c.err
	}
	if err := Validate(u, v, c.w, c.n); err != nil {
		return nil, err
	}

	n := c.n
	if n < 0 {
		var err error
		if n, err = deriveNodes(u, v); err != nil {
			return nil, err
		}
	}
	el := &EdgeList{
		u:        append([]int64(nil), u...),
		v:        append([]int64(nil), v...),
		directed: c.directed,
		n:        n,
	}
	if el.u == nil {
		el.u, el.v = []int64{}, []int64{}
	}
	if c.w != nil {
		el.w = append(make([]float64, 0, len(c.w)), c.w...)
	}

	return el, nil
}

// deriveNodes returns max(max(u), max(v)) + 1, or 0 for an empty list.
// The largest index must leave room for the count in an int.
func deriveNodes(u, v []int64) (int, error) {
	if len(u) == 0 {
		return 0, nil
	}
	hi, field, at := u[0], "u", 0
	for i := range u {
		if u[i] > hi {
			hi, field, at = u[i], "u", i
		}
		if v[i] > hi {
			hi, field, at = v[i], "v", i
		}
	}
	if hi >= math.MaxInt {
		return 0, &ValidationError{Field: field, Index: at,
			Reason: fmt.Sprintf("node index %d leaves no room for a node count (max index %d)", hi, int64(math.MaxInt-1))}
	}

	return int(hi) + 1, nil
}

// N returns the number of nodes.
func (el *EdgeList) N() int { return el.n }

// M returns the number of edges.
func (el *EdgeList) M() int { return len(el.u) }

// Directed reports the directed flag.
func (el *EdgeList) Directed() bool { return el.directed }

// Weighted reports whether weights are attached.
func (el *EdgeList) Weighted() bool { return el.w != nil }

// U returns the source indices. Read-only.
func (el *EdgeList) U() []int64 { return el.u }

// V returns the destination indices. Read-only.
func (el *EdgeList) V() []int64 { return el.v }

// W returns the weights, or nil when unweighted. Read-only.
func (el *EdgeList) W() []float64 { return el.w }

// Weight returns the weight of edge i, or 1 when the list is unweighted.
func (el *EdgeList) Weight(i int) float64 {
	if el.w == nil {
		return 1
	}

	return el.w[i]
}

// String implements fmt.Stringer.
func (el *EdgeList) String() string {
	return fmt.Sprintf("EdgeList(n=%d, m=%d, directed=%t, weighted=%t)",
		el.n, len(el.u), el.directed, el.w != nil)
}
