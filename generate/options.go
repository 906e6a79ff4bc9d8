package generate

import (
	"errors"
	"math/rand"
)

// Sentinel errors. Constructors wrap them with the method and the offending
// parameter; match with errors.Is.
var (
	ErrTooFewNodes        = errors.New("generate: parameter too small")
	ErrInvalidProbability = errors.New("generate: probability out of range")
)

// WeightFn draws one edge weight.
type WeightFn func(*rand.Rand) float64

// Option customizes a constructor.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	directed bool
	weightFn WeightFn
}

const defaultSeed = 1

func newConfig(opts []Option) config {
	c := config{rng: rand.New(rand.NewSource(defaultSeed))}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSeed reseeds the random source (default seed 1).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDirected marks the list directed. Topologies keep their arc
// orientation (low index to high); no reverse arcs are added.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithWeights attaches fn-drawn weights. Panics on nil.
func WithWeights(fn WeightFn) Option {
	if fn == nil {
		panic("generate: WithWeights(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// Constant returns a WeightFn that always yields w.
func Constant(w float64) WeightFn {
	return func(*rand.Rand) float64 { return w }
}

// Uniform returns a WeightFn drawing from [lo, hi). Panics if hi < lo.
func Uniform(lo, hi float64) WeightFn {
	if hi < lo {
		panic("generate: Uniform(hi < lo)")
	}

	return func(r *rand.Rand) float64 { return lo + r.Float64()*(hi-lo) }
}
