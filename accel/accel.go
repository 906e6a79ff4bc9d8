package accel

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netsmith/backend"
	"github.com/katalvlaran/netsmith/community"
	"github.com/katalvlaran/netsmith/edgelist"
)

// Kernels implements backend.Kernels.
type Kernels struct {
	workers int
}

var _ backend.Kernels = (*Kernels)(nil)

// Option configures New.
type Option func(*Kernels)

// WithWorkers bounds the number of concurrent ranges; n < 1 means
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(k *Kernels) { k.workers = n }
}

// New returns an accelerated kernel set.
func New(opts ...Option) *Kernels {
	k := &Kernels{}
	for _, opt := range opts {
		opt(k)
	}
	if k.workers < 1 {
		k.workers = runtime.GOMAXPROCS(0)
	}

	return k
}

// Name implements backend.Kernels.
func (k *Kernels) Name() string { return "accelerated" }

// Workers returns the configured fan-out.
func (k *Kernels) Workers() int { return k.workers }

// split runs fn over up to k.workers contiguous ranges covering [0, n).
func (k *Kernels) split(n int, fn func(lo, hi int) error) error {
	if n == 0 {
		return nil
	}
	chunk := (n + k.workers - 1) / k.workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}

// Communities implements backend.Kernels; no accelerated version exists.
func (k *Kernels) Communities(*edgelist.EdgeList, community.Options) (community.Partition, error) {
	return community.Partition{}, fmt.Errorf("%w: communities", backend.ErrUnavailable)
}

// CoreNumbers implements backend.Kernels; no accelerated version exists.
func (k *Kernels) CoreNumbers(*edgelist.EdgeList) ([]int64, error) {
	return nil, fmt.Errorf("%w: core numbers", backend.ErrUnavailable)
}
