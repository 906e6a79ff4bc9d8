package pagerank

import (
	"math"

	"github.com/katalvlaran/netsmith/edgelist"
)

// Defaults.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 200
)

// Options configures the power iteration.
type Options struct {
	Damping        float64
	Tolerance      float64
	MaxIterations  int
	HandleDangling bool
}

// DefaultOptions returns 0.85 damping, 1e-6 tolerance, 200 rounds and
// dangling-mass redistribution.
func DefaultOptions() Options {
	return Options{
		Damping:        DefaultDamping,
		Tolerance:      DefaultTolerance,
		MaxIterations:  DefaultMaxIterations,
		HandleDangling: true,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithDamping sets the damping factor.
func WithDamping(d float64) Option { return func(o *Options) { o.Damping = d } }

// WithTolerance sets the L2 convergence threshold.
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }

// WithMaxIterations bounds the number of rounds.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithHandleDangling toggles dangling-mass redistribution.
func WithHandleDangling(on bool) Option { return func(o *Options) { o.HandleDangling = on } }

// Gather applies opts over DefaultOptions.
func Gather(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Validate rejects out-of-domain parameters with *edgelist.ValidationError.
func (o Options) Validate() error {
	if math.IsNaN(o.Damping) || o.Damping < 0 || o.Damping > 1 {
		return edgelist.Invalid("damping", "%v is outside [0, 1]", o.Damping)
	}
	if math.IsNaN(o.Tolerance) || o.Tolerance < 0 {
		return edgelist.Invalid("tolerance", "%v must be a non-negative number", o.Tolerance)
	}
	if o.MaxIterations < 0 {
		return edgelist.Invalid("max_iterations", "%d must be non-negative", o.MaxIterations)
	}

	return nil
}
