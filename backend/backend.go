package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/netsmith/community"
	"github.com/katalvlaran/netsmith/degree"
	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/pagerank"
	"github.com/katalvlaran/netsmith/paths"
)

// Sentinel errors.
var (
	// ErrUnavailable marks a kernel or kernel set that is not present.
	ErrUnavailable = errors.New("backend: unavailable")

	// ErrNotImplemented marks a requested method with no implementation.
	ErrNotImplemented = errors.New("backend: not implemented")

	// ErrBackend is matched by every *Error.
	ErrBackend = errors.New("backend: kernel failed")
)

// Backend is the implementation preference of a call.
type Backend int

const (
	// Auto prefers Accelerated and falls back to Reference.
	Auto Backend = iota
	// Reference runs the scalar kernels.
	Reference
	// Accelerated runs the accelerated kernels or fails.
	Accelerated
)

func (b Backend) String() string {
	switch b {
	case Auto:
		return "auto"
	case Reference:
		return "reference"
	case Accelerated:
		return "accelerated"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Parse maps a backend name to a Backend. The legacy names "python" and
// "rust" are accepted for Reference and Accelerated.
func Parse(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "reference", "python":
		return Reference, nil
	case "accelerated", "rust":
		return Accelerated, nil
	}

	return Auto, edgelist.Invalid("backend", "unknown backend %q (want auto, reference or accelerated)", name)
}

// Valid reports whether b is one of the declared backends.
func (b Backend) Valid() bool { return b >= Auto && b <= Accelerated }

// Error reports a kernel that failed for a reason other than being absent.
type Error struct {
	Kernel  string
	Backend Backend
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %s kernel failed on %s backend: %v", e.Kernel, e.Backend, e.Err)
}

// Unwrap exposes the underlying failure.
func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrBackend) true for every *Error.
func (e *Error) Is(target error) bool { return target == ErrBackend }

// Kernels is one complete kernel implementation set. Results must hold
// exactly one entry per node.
type Kernels interface {
	Name() string
	Degree(el *edgelist.EdgeList, mode degree.Mode) ([]int64, error)
	Strength(el *edgelist.EdgeList, mode degree.Mode) ([]float64, error)
	Clustering(el *edgelist.EdgeList) ([]float64, error)
	Components(el *edgelist.EdgeList) (int, []int64, error)
	ShortestPaths(el *edgelist.EdgeList, source int64) ([]int64, error)
	MeanShortestPath(el *edgelist.EdgeList) (paths.Summary, error)
	PageRank(el *edgelist.EdgeList, o pagerank.Options) ([]float64, error)
	Communities(el *edgelist.EdgeList, o community.Options) (community.Partition, error)
	CoreNumbers(el *edgelist.EdgeList) ([]int64, error)
}
