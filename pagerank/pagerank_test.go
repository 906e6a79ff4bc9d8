package pagerank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/pagerank"
)

func TestRank_SymmetricTriangle(t *testing.T) {
	el, err := edgelist.New([]int64{0, 1, 2}, []int64{1, 2, 0})
	require.NoError(t, err)

	pr, err := pagerank.Rank(el)
	require.NoError(t, err)
	require.Len(t, pr, 3)
	for _, p := range pr {
		assert.InDelta(t, 1.0/3, p, 1e-9)
	}
}

func TestRank_StarCenterDominates(t *testing.T) {
	el, err := edgelist.New([]int64{0, 0, 0, 0}, []int64{1, 2, 3, 4})
	require.NoError(t, err)

	pr, err := pagerank.Rank(el)
	require.NoError(t, err)
	for leaf := 1; leaf < 5; leaf++ {
		assert.Greater(t, pr[0], pr[leaf])
		assert.InDelta(t, pr[1], pr[leaf], 1e-12)
	}
	assert.InDelta(t, 1.0, floats.Sum(pr), 1e-9)
}

func TestRank_DanglingRedistribution(t *testing.T) {
	// 0 → 1 → 2, node 2 is dangling.
	el, err := edgelist.New([]int64{0, 1}, []int64{1, 2}, edgelist.WithDirected(true))
	require.NoError(t, err)

	handled, err := pagerank.Rank(el)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, floats.Sum(handled), 1e-6)
	assert.Less(t, handled[0], handled[1])
	assert.Less(t, handled[1], handled[2])

	leaking, err := pagerank.Rank(el, pagerank.WithHandleDangling(false))
	require.NoError(t, err)
	assert.Less(t, floats.Sum(leaking), 0.9)
}

func TestRank_MatchesGonumNetwork(t *testing.T) {
	u := []int64{0, 0, 1, 2, 3, 3, 4}
	v := []int64{1, 2, 2, 0, 2, 4, 5}
	el, err := edgelist.New(u, v, edgelist.WithDirected(true))
	require.NoError(t, err)

	g := simple.NewDirectedGraph()
	for i := 0; i < el.N(); i++ {
		g.AddNode(simple.Node(i))
	}
	for i := range u {
		g.SetEdge(simple.Edge{F: simple.Node(u[i]), T: simple.Node(v[i])})
	}
	want := network.PageRank(g, 0.85, 1e-12)

	got, err := pagerank.Rank(el, pagerank.WithTolerance(1e-12), pagerank.WithMaxIterations(1000))
	require.NoError(t, err)
	for id, score := range want {
		assert.InDelta(t, score, got[id], 1e-6, "node %d", id)
	}
}

func TestRank_UndirectedLinksBothWays(t *testing.T) {
	u, v := []int64{0, 1, 2}, []int64{1, 2, 3}
	und, err := edgelist.New(u, v)
	require.NoError(t, err)
	both, err := edgelist.New(append(u, v...), append(v, u...), edgelist.WithDirected(true))
	require.NoError(t, err)
	fwd, err := edgelist.New(u, v, edgelist.WithDirected(true))
	require.NoError(t, err)

	prUnd, err := pagerank.Rank(und)
	require.NoError(t, err)
	prBoth, err := pagerank.Rank(both)
	require.NoError(t, err)
	prFwd, err := pagerank.Rank(fwd)
	require.NoError(t, err)

	// An undirected edge counts as the two arcs u→v and v→u.
	assert.InDeltaSlice(t, prBoth, prUnd, 1e-12)
	assert.InDelta(t, prUnd[0], prUnd[3], 1e-12)
	assert.Greater(t, prFwd[3], prFwd[0])
}

func TestRank_NoEdges(t *testing.T) {
	el, err := edgelist.New(nil, nil, edgelist.WithNodes(4))
	require.NoError(t, err)

	pr, err := pagerank.Rank(el)
	require.NoError(t, err)
	for _, p := range pr {
		assert.InDelta(t, 0.25, p, 1e-12)
	}

	empty, err := edgelist.New(nil, nil)
	require.NoError(t, err)
	pr, err = pagerank.Rank(empty)
	require.NoError(t, err)
	assert.Empty(t, pr)
}

func TestRank_ZeroIterationsIsUniform(t *testing.T) {
	el, err := edgelist.New([]int64{0, 0}, []int64{1, 2}, edgelist.WithDirected(true))
	require.NoError(t, err)

	pr, err := pagerank.Rank(el, pagerank.WithMaxIterations(0))
	require.NoError(t, err)
	assert.Equal(t, pagerank.Uniform(3), pr)
}

func TestRank_Deterministic(t *testing.T) {
	el, err := edgelist.New([]int64{0, 1, 2, 2, 3}, []int64{1, 2, 0, 3, 3})
	require.NoError(t, err)

	a, err := pagerank.Rank(el)
	require.NoError(t, err)
	b, err := pagerank.Rank(el)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestOptions_Validate(t *testing.T) {
	cases := map[string]pagerank.Option{
		"damping above one": pagerank.WithDamping(1.5),
		"negative damping":  pagerank.WithDamping(-0.1),
		"negative tol":      pagerank.WithTolerance(-1),
		"negative max iter": pagerank.WithMaxIterations(-3),
	}
	el, err := edgelist.New([]int64{0}, []int64{1})
	require.NoError(t, err)
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := pagerank.Rank(el, opt)
			assert.ErrorIs(t, err, edgelist.ErrValidation)
		})
	}

	assert.NoError(t, pagerank.DefaultOptions().Validate())
	assert.NoError(t, pagerank.Gather(pagerank.WithDamping(0), pagerank.WithTolerance(0)).Validate())
}
