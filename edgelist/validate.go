package edgelist

import (
	"fmt"
	"math"
)

// Validate checks u, v and the optional weights w against the edge list
// contract and returns the first violation as a *ValidationError.
// n < 0 means the node count is not declared and the range check is skipped.
//
// Order: length mismatch → negative index → non-finite weight → out-of-range index.
// Complexity: O(m).
func Validate(u, v []int64, w []float64, n int) error {
	if len(u) != len(v) {
		return Invalid("v", "length %d does not match len(u) = %d", len(v), len(u))
	}
	if w != nil && len(w) != len(u) {
		return Invalid("w", "length %d does not match len(u) = %d", len(w), len(u))
	}

	for i := range u {
		if u[i] < 0 {
			return &ValidationError{Field: "u", Index: i, Reason: fmt.Sprintf("negative node index %d", u[i])}
		}
		if v[i] < 0 {
			return &ValidationError{Field: "v", Index: i, Reason: fmt.Sprintf("negative node index %d", v[i])}
		}
	}

	for i, x := range w {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &ValidationError{Field: "w", Index: i, Reason: fmt.Sprintf("weight %v is not finite", x)}
		}
	}

	if n < 0 {
		return nil
	}
	for i := range u {
		if u[i] >= int64(n) {
			return &ValidationError{Field: "u", Index: i,
				Reason: fmt.Sprintf("node index %d >= n_nodes %d", u[i], n)}
		}
		if v[i] >= int64(n) {
			return &ValidationError{Field: "v", Index: i,
				Reason: fmt.Sprintf("node index %d >= n_nodes %d", v[i], n)}
		}
	}

	return nil
}
