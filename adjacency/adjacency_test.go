package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/edgelist"
)

type AdjacencySuite struct {
	suite.Suite
	el *edgelist.EdgeList
}

func (s *AdjacencySuite) SetupTest() {
	// triangle 0-1-2 with a tail 2-3, a self-loop on 3 and a parallel 0-1
	el, err := edgelist.New(
		[]int64{0, 1, 2, 2, 3, 1},
		[]int64{1, 2, 0, 3, 3, 0},
	)
	require.NoError(s.T(), err)
	s.el = el
}

func (s *AdjacencySuite) TestUndirectedSymmetrized() {
	require := require.New(s.T())
	view, err := adjacency.Undirected(s.el)
	require.NoError(err)
	require.Equal(4, view.N)
	require.False(view.Directed)
	require.Same(view.Out, view.In)

	// rows follow edge order
	require.Equal([]int{1, 2, 1}, view.Out.Neighbors(0))
	require.Equal([]int{0, 2, 0}, view.Out.Neighbors(1))
	require.Equal([]int{1, 0, 3}, view.Out.Neighbors(2))
	// self-loop stored once
	require.Equal([]int{2, 3}, view.Out.Neighbors(3))
	require.Equal([]int{3, 4}, view.Out.EdgeIDs(3))
	require.Equal(3, view.Out.Degree(0))
	require.Equal(4, view.Out.Len())
}

func (s *AdjacencySuite) TestSimpleRows() {
	require := require.New(s.T())
	view, err := adjacency.Undirected(s.el)
	require.NoError(err)

	simple := view.Out.Simple()
	require.Equal([]int{1, 2}, simple.Neighbors(0))
	require.Equal([]int{0, 2}, simple.Neighbors(1))
	require.Equal([]int{0, 1, 3}, simple.Neighbors(2))
	require.Equal([]int{2}, simple.Neighbors(3))
	require.Nil(simple.Edges)
}

func (s *AdjacencySuite) TestDirected() {
	require := require.New(s.T())
	el, err := edgelist.New([]int64{0, 1, 0}, []int64{1, 2, 2}, edgelist.WithDirected(true), edgelist.WithNodes(4))
	require.NoError(err)

	view, err := adjacency.Directed(el, false)
	require.NoError(err)
	require.True(view.Directed)
	require.Nil(view.In)
	require.Equal([]int{1, 2}, view.Out.Neighbors(0))
	require.Equal([]int{2}, view.Out.Neighbors(1))
	require.Empty(view.Out.Neighbors(2))
	require.Empty(view.Out.Neighbors(3))

	view, err = adjacency.Directed(el, true)
	require.NoError(err)
	require.Equal([]int{1, 0}, view.In.Neighbors(2))
	require.Equal([]int{0}, view.In.Neighbors(1))

	follow, err := adjacency.Follow(el)
	require.NoError(err)
	require.True(follow.Directed)

	// the undirected-equivalent view ignores direction
	sym, err := adjacency.Undirected(el)
	require.NoError(err)
	require.Equal([]int{1, 0}, sym.Out.Neighbors(2))
}

func (s *AdjacencySuite) TestEmpty() {
	require := require.New(s.T())
	el, err := edgelist.New(nil, nil, edgelist.WithNodes(3))
	require.NoError(err)
	view, err := adjacency.Undirected(el)
	require.NoError(err)
	require.Equal(3, view.Out.Len())
	for i := 0; i < 3; i++ {
		require.Empty(view.Out.Neighbors(i))
	}
}

func (s *AdjacencySuite) TestNilEdgeList() {
	_, err := adjacency.Undirected(nil)
	require.ErrorIs(s.T(), err, edgelist.ErrValidation)
	_, err = adjacency.Directed(nil, true)
	require.ErrorIs(s.T(), err, edgelist.ErrValidation)
}

func (s *AdjacencySuite) TestCheck() {
	require := require.New(s.T())
	require.NoError(adjacency.Check(s.el))
	require.ErrorIs(adjacency.Check(nil), edgelist.ErrValidation)

	el, err := edgelist.New(nil, nil)
	require.NoError(err)
	require.NoError(adjacency.Check(el))
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}
