package engine_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netsmith/accel"
	"github.com/katalvlaran/netsmith/backend"
	"github.com/katalvlaran/netsmith/community"
	"github.com/katalvlaran/netsmith/degree"
	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/engine"
	"github.com/katalvlaran/netsmith/logger"
	"github.com/katalvlaran/netsmith/pagerank"
	"github.com/katalvlaran/netsmith/paths"
)

// stub delegates to the reference set and overrides Degree and Components.
type stub struct {
	backend.Kernels
	degreeErr   error
	truncate    bool
	badLabels   bool
	degreeCalls int
}

func newStub() *stub { return &stub{Kernels: engine.Reference()} }

func (s *stub) Name() string { return "stub" }

func (s *stub) Degree(el *edgelist.EdgeList, mode degree.Mode) ([]int64, error) {
	s.degreeCalls++
	if s.degreeErr != nil {
		return nil, s.degreeErr
	}
	deg, err := s.Kernels.Degree(el, mode)
	if s.truncate && len(deg) > 0 {
		deg = deg[:len(deg)-1]
	}

	return deg, err
}

func (s *stub) Components(el *edgelist.EdgeList) (int, []int64, error) {
	count, labels, err := s.Kernels.Components(el)
	if s.badLabels && len(labels) > 0 {
		labels[0] = int64(count) + 5
	}

	return count, labels, err
}

type DispatchSuite struct {
	suite.Suite
	el   *edgelist.EdgeList
	ctx  context.Context
	hook *test.Hook
}

func (s *DispatchSuite) SetupTest() {
	// two triangles bridged by 2–3, plus isolated node 6
	el, err := edgelist.New([]int64{0, 1, 2, 3, 4, 5, 2}, []int64{1, 2, 0, 4, 5, 3, 3}, edgelist.WithNodes(7))
	s.Require().NoError(err)
	s.el = el

	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	s.hook = hook
	s.ctx = logger.WithLogger(context.Background(), l)
}

func (s *DispatchSuite) entries(level logrus.Level) int {
	c := 0
	for _, e := range s.hook.AllEntries() {
		if e.Level == level {
			c++
		}
	}

	return c
}

func (s *DispatchSuite) TestBackendsAgree() {
	d := engine.New(engine.WithAccelerated(accel.New(accel.WithWorkers(2))))
	for _, b := range []backend.Backend{backend.Reference, backend.Accelerated, backend.Auto} {
		deg, err := d.Degree(s.ctx, s.el, degree.Out, b)
		s.Require().NoError(err, b.String())
		s.Equal([]int64{2, 2, 3, 3, 2, 2, 0}, deg, b.String())

		c, err := d.Clustering(s.ctx, s.el, b)
		s.Require().NoError(err)
		s.Equal([]float64{1, 1, 1.0 / 3, 1.0 / 3, 1, 1, 0}, c, b.String())

		comp, err := d.Components(s.ctx, s.el, b)
		s.Require().NoError(err)
		s.Equal(2, comp.Count)
		s.Equal([]int64{0, 0, 0, 0, 0, 0, 1}, comp.Labels)

		pr, err := d.PageRank(s.ctx, s.el, b)
		s.Require().NoError(err)
		s.Len(pr, 7)
	}
	s.Zero(s.entries(logrus.ErrorLevel))
}

func (s *DispatchSuite) TestAutoFallsBackOnUnavailable() {
	acc := newStub()
	acc.degreeErr = backend.ErrUnavailable
	d := engine.New(engine.WithAccelerated(acc))

	deg, err := d.Degree(s.ctx, s.el, degree.Out, backend.Auto)
	s.Require().NoError(err)
	s.Equal([]int64{2, 2, 3, 3, 2, 2, 0}, deg)
	s.Equal(1, acc.degreeCalls)
	s.Equal(1, s.entries(logrus.DebugLevel))
}

func (s *DispatchSuite) TestAcceleratedDoesNotFallBack() {
	acc := newStub()
	acc.degreeErr = backend.ErrUnavailable
	d := engine.New(engine.WithAccelerated(acc))

	_, err := d.Degree(s.ctx, s.el, degree.Out, backend.Accelerated)
	s.ErrorIs(err, backend.ErrUnavailable)
	s.NotErrorIs(err, backend.ErrBackend)

	bare := engine.New(engine.WithAccelerated(nil))
	s.False(bare.HasAccelerated())
	_, err = bare.Degree(s.ctx, s.el, degree.Out, backend.Accelerated)
	s.ErrorIs(err, backend.ErrUnavailable)

	deg, err := bare.Degree(s.ctx, s.el, degree.Out, backend.Auto)
	s.Require().NoError(err)
	s.Len(deg, 7)
}

func (s *DispatchSuite) TestFailureIsNotRetried() {
	cause := errors.New("index overflow")
	acc := newStub()
	acc.degreeErr = cause
	ref := newStub()
	d := engine.New(engine.WithAccelerated(acc), engine.WithReference(ref))

	_, err := d.Degree(s.ctx, s.el, degree.Out, backend.Auto)
	s.ErrorIs(err, backend.ErrBackend)
	s.ErrorIs(err, cause)

	var be *backend.Error
	s.Require().ErrorAs(err, &be)
	s.Equal("degree", be.Kernel)
	s.Equal(backend.Accelerated, be.Backend)
	s.Zero(ref.degreeCalls)
	s.Equal(1, s.entries(logrus.ErrorLevel))
}

func (s *DispatchSuite) TestShapeViolations() {
	acc := newStub()
	acc.truncate = true
	d := engine.New(engine.WithAccelerated(acc))
	_, err := d.Degree(s.ctx, s.el, degree.Out, backend.Auto)
	s.ErrorIs(err, backend.ErrBackend)

	ref := newStub()
	ref.truncate = true
	d = engine.New(engine.WithReference(ref))
	_, err = d.Degree(s.ctx, s.el, degree.Out, backend.Reference)
	s.ErrorIs(err, backend.ErrBackend)

	acc = newStub()
	acc.badLabels = true
	d = engine.New(engine.WithAccelerated(acc))
	_, err = d.Components(s.ctx, s.el, backend.Accelerated)
	s.ErrorIs(err, backend.ErrBackend)
}

func (s *DispatchSuite) TestValidationPassesThrough() {
	d := engine.New()
	_, err := d.ShortestPaths(s.ctx, s.el, 7, backend.Auto)
	s.ErrorIs(err, edgelist.ErrValidation)
	s.NotErrorIs(err, backend.ErrBackend)

	acc := newStub()
	acc.degreeErr = edgelist.Invalid("mode", "bad")
	d = engine.New(engine.WithAccelerated(acc))
	_, err = d.Degree(s.ctx, s.el, degree.Out, backend.Auto)
	s.ErrorIs(err, edgelist.ErrValidation)
	s.NotErrorIs(err, backend.ErrBackend)

	_, err = d.Degree(s.ctx, s.el, degree.Out, backend.Backend(9))
	s.ErrorIs(err, edgelist.ErrValidation)
	_, err = d.Degree(s.ctx, nil, degree.Out, backend.Auto)
	s.ErrorIs(err, edgelist.ErrValidation)
	_, err = d.PageRank(s.ctx, s.el, backend.Auto, pagerank.WithDamping(-1))
	s.ErrorIs(err, edgelist.ErrValidation)
	s.Zero(s.entries(logrus.ErrorLevel))
}

func (s *DispatchSuite) TestCommunities() {
	d := engine.New(engine.WithAccelerated(accel.New()))

	p, err := d.Communities(s.ctx, s.el, backend.Auto)
	s.Require().NoError(err)
	s.Equal([]int64{0, 0, 0, 1, 1, 1, 2}, p.Labels)
	s.Equal(3, p.Count)

	_, err = d.Communities(s.ctx, s.el, backend.Accelerated)
	s.ErrorIs(err, backend.ErrUnavailable)

	_, err = d.Communities(s.ctx, s.el, backend.Auto, community.WithMethod(community.Method(99)))
	s.ErrorIs(err, backend.ErrNotImplemented)
}

func (s *DispatchSuite) TestCoreNumbersFallBack() {
	d := engine.New(engine.WithAccelerated(accel.New()))

	core, err := d.CoreNumbers(s.ctx, s.el, backend.Auto)
	s.Require().NoError(err)
	s.Equal([]int64{2, 2, 2, 2, 2, 2, 0}, core)
}

func (s *DispatchSuite) TestCentrality() {
	d := engine.New()

	c, err := d.Centrality(s.ctx, s.el, "degree", backend.Auto)
	s.Require().NoError(err)
	s.Equal([]float64{2, 2, 3, 3, 2, 2, 0}, c)

	c, err = d.Centrality(s.ctx, s.el, "pagerank", backend.Reference)
	s.Require().NoError(err)
	s.Len(c, 7)

	_, err = d.Centrality(s.ctx, s.el, "betweenness", backend.Auto)
	s.ErrorIs(err, backend.ErrNotImplemented)
}

func (s *DispatchSuite) TestPathQueries() {
	d := engine.New()

	dist, err := d.ShortestPaths(s.ctx, s.el, 0, backend.Auto, paths.WithWeight("w"))
	s.Require().NoError(err)
	s.Equal([]int64{0, 1, 1, 2, 3, 3, paths.Unreachable}, dist)

	hop, ok, err := d.Distance(s.ctx, s.el, 0, 5, backend.Reference)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(int64(3), hop)

	_, ok, err = d.Distance(s.ctx, s.el, 0, 6, backend.Reference)
	s.Require().NoError(err)
	s.False(ok)

	reach, err := d.Reachability(s.ctx, s.el, 6, backend.Auto)
	s.Require().NoError(err)
	s.Equal([]bool{false, false, false, false, false, false, true}, reach)

	sum, err := d.MeanShortestPath(s.ctx, s.el, backend.Accelerated)
	s.Require().NoError(err)
	s.Equal(int64(15), sum.Pairs)
	s.False(math.IsNaN(sum.Mean))
}

func (s *DispatchSuite) TestSingleNodeQueries() {
	d := engine.New()

	deg, err := d.DegreeOf(s.ctx, s.el, 2, degree.Out, backend.Auto)
	s.Require().NoError(err)
	s.Equal(int64(3), deg)

	c, err := d.ClusteringOf(s.ctx, s.el, 0, backend.Auto)
	s.Require().NoError(err)
	s.Equal(1.0, c)

	_, err = d.DegreeOf(s.ctx, s.el, -1, degree.Out, backend.Auto)
	s.ErrorIs(err, edgelist.ErrValidation)
}

func TestDispatchSuite(t *testing.T) {
	suite.Run(t, new(DispatchSuite))
}

func TestStrengthUnweightedFallsBackToDegree(t *testing.T) {
	el, err := edgelist.New([]int64{0, 0}, []int64{1, 0})
	require.NoError(t, err)

	s, err := engine.New().Strength(context.Background(), el, degree.Total, backend.Auto)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1}, s)
}
