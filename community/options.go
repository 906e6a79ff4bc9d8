package community

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/netsmith/edgelist"
)

// ErrUnknownMethod indicates a method name ParseMethod does not recognize.
var ErrUnknownMethod = errors.New("community: unknown method")

// Method selects the detection algorithm.
type Method int

const (
	// Louvain optimizes modularity greedily through gonum.
	Louvain Method = iota
	// LabelPropagation spreads majority labels over neighbors.
	LabelPropagation
)

func (m Method) String() string {
	switch m {
	case Louvain:
		return "louvain"
	case LabelPropagation:
		return "label_propagation"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name to a Method; "" means Louvain.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "louvain":
		return Louvain, nil
	case "label_propagation", "label-propagation", "lpa":
		return LabelPropagation, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownMethod, name)
	}
}

// Options configures Detect.
type Options struct {
	Method        Method
	Resolution    float64
	Seed          uint64
	MaxIterations int // label propagation rounds
}

// DefaultOptions returns Louvain at resolution 1, seed 1 and 100
// propagation rounds.
func DefaultOptions() Options {
	return Options{Method: Louvain, Resolution: 1, Seed: 1, MaxIterations: 100}
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the algorithm.
func WithMethod(m Method) Option { return func(o *Options) { o.Method = m } }

// WithResolution sets the modularity resolution parameter.
func WithResolution(r float64) Option { return func(o *Options) { o.Resolution = r } }

// WithSeed seeds the Louvain shuffle.
func WithSeed(seed uint64) Option { return func(o *Options) { o.Seed = seed } }

// WithMaxIterations bounds label propagation rounds.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// Gather applies opts over DefaultOptions.
func Gather(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Validate rejects out-of-domain parameters.
func (o Options) Validate() error {
	if o.Method != Louvain && o.Method != LabelPropagation {
		return fmt.Errorf("%w %d", ErrUnknownMethod, int(o.Method))
	}
	if math.IsNaN(o.Resolution) || math.IsInf(o.Resolution, 0) || o.Resolution <= 0 {
		return edgelist.Invalid("resolution", "%v must be a positive number", o.Resolution)
	}
	if o.MaxIterations < 0 {
		return edgelist.Invalid("max_iterations", "%d must be non-negative", o.MaxIterations)
	}

	return nil
}
