package engine

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/netsmith/backend"
	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/logger"
)

// Dispatcher routes kernel calls between a reference and an accelerated set.
// It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	reference   backend.Kernels
	accelerated backend.Kernels
}

// Option configures New.
type Option func(*Dispatcher)

// WithAccelerated installs k as the accelerated set; nil removes it.
func WithAccelerated(k backend.Kernels) Option {
	return func(d *Dispatcher) { d.accelerated = k }
}

// WithReference replaces the reference set.
func WithReference(k backend.Kernels) Option {
	return func(d *Dispatcher) {
		if k != nil {
			d.reference = k
		}
	}
}

// New returns a Dispatcher over the reference set and the build's default
// accelerated set.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{reference: Reference(), accelerated: defaultAccelerated()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// HasAccelerated reports whether an accelerated set is installed.
func (d *Dispatcher) HasAccelerated() bool { return d.accelerated != nil }

// call describes one kernel invocation.
type call[T any] struct {
	kernel string
	run    func(backend.Kernels) (T, error)
	check  func(T) error // shape contract; nil skips
}

// dispatch applies the backend policy to c.
func dispatch[T any](ctx context.Context, d *Dispatcher, b backend.Backend, c call[T]) (T, error) {
	var zero T
	if !b.Valid() {
		return zero, edgelist.Invalid("backend", "unknown backend %d", int(b))
	}
	log := logger.Logger(ctx).WithFields(logrus.Fields{"kernel": c.kernel, "backend": b.String()})

	if b != backend.Reference {
		if d.accelerated == nil {
			if b == backend.Accelerated {
				return zero, errors.Wrapf(backend.ErrUnavailable, "%s: no accelerated kernel set", c.kernel)
			}
			log.Debug("accelerated kernels not built, using reference")
		} else {
			res, err := attempt(log, backend.Accelerated, d.accelerated, c)
			switch {
			case err == nil:
				return res, nil
			case stderrors.Is(err, backend.ErrUnavailable) && b == backend.Auto:
				log.WithError(err).Debug("accelerated kernel unavailable, falling back to reference")
			default:
				return zero, err
			}
		}
	}

	return attempt(log, backend.Reference, d.reference, c)
}

// attempt runs c on one kernel set and normalizes its outcome.
func attempt[T any](log logrus.FieldLogger, b backend.Backend, k backend.Kernels, c call[T]) (T, error) {
	var zero T
	res, err := c.run(k)
	if err == nil && c.check != nil {
		err = c.check(res)
	}
	switch {
	case err == nil:
		return res, nil
	case stderrors.Is(err, edgelist.ErrValidation), stderrors.Is(err, backend.ErrUnavailable):
		return zero, err
	}

	failure := &backend.Error{Kernel: c.kernel, Backend: b, Err: withStack(err)}
	log.WithField("kernels", k.Name()).Errorf("kernel failed: %+v", failure.Err)

	return zero, failure
}

// withStack attaches a stack trace unless err already carries one.
func withStack(err error) error {
	type stackTracer interface{ StackTrace() errors.StackTrace }
	var st stackTracer
	if stderrors.As(err, &st) {
		return err
	}

	return errors.WithStack(err)
}
