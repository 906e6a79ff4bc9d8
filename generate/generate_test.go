package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netsmith/edgelist"
	"github.com/katalvlaran/netsmith/generate"
)

func TestTopologies(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*edgelist.EdgeList, error)
		n, m  int
	}{
		{"path", wrap(generate.Path(5)), 5, 4},
		{"single node path", wrap(generate.Path(1)), 1, 0},
		{"cycle", wrap(generate.Cycle(6)), 6, 6},
		{"star", wrap(generate.Star(5)), 5, 4},
		{"wheel", wrap(generate.Wheel(6)), 6, 10},
		{"complete", wrap(generate.Complete(5)), 5, 10},
		{"bipartite", wrap(generate.CompleteBipartite(2, 3)), 5, 6},
		{"grid", wrap(generate.Grid(3, 4)), 12, 17},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			el, err := tc.build()
			require.NoError(t, err)
			assert.Equal(t, tc.n, el.N())
			assert.Equal(t, tc.m, el.M())
		})
	}
}

func wrap(el *edgelist.EdgeList, err error) func() (*edgelist.EdgeList, error) {
	return func() (*edgelist.EdgeList, error) { return el, err }
}

func TestEdgeOrder(t *testing.T) {
	el, err := generate.Wheel(5)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 0, 1, 2, 3, 4}, el.U())
	assert.Equal(t, []int64{1, 2, 3, 4, 2, 3, 4, 1}, el.V())

	grid, err := generate.Grid(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 1, 2}, grid.U())
	assert.Equal(t, []int64{1, 2, 3, 3}, grid.V())
}

func TestTooFew(t *testing.T) {
	_, err := generate.Cycle(2)
	assert.ErrorIs(t, err, generate.ErrTooFewNodes)
	_, err = generate.Wheel(3)
	assert.ErrorIs(t, err, generate.ErrTooFewNodes)
	_, err = generate.Grid(0, 3)
	assert.ErrorIs(t, err, generate.ErrTooFewNodes)
	_, err = generate.CompleteBipartite(1, 0)
	assert.ErrorIs(t, err, generate.ErrTooFewNodes)
	_, err = generate.RandomEdges(3, -1)
	assert.ErrorIs(t, err, generate.ErrTooFewNodes)
}

func TestRandomSparse(t *testing.T) {
	full, err := generate.RandomSparse(6, 1)
	require.NoError(t, err)
	assert.Equal(t, 15, full.M())

	directed, err := generate.RandomSparse(6, 1, generate.WithDirected(true))
	require.NoError(t, err)
	assert.Equal(t, 30, directed.M())
	assert.True(t, directed.Directed())

	none, err := generate.RandomSparse(6, 0)
	require.NoError(t, err)
	assert.Zero(t, none.M())

	_, err = generate.RandomSparse(6, 1.5)
	assert.ErrorIs(t, err, generate.ErrInvalidProbability)
}

func TestSeedsAreReproducible(t *testing.T) {
	a, err := generate.RandomEdges(20, 50, generate.WithSeed(9), generate.WithWeights(generate.Uniform(1, 2)))
	require.NoError(t, err)
	b, err := generate.RandomEdges(20, 50, generate.WithSeed(9), generate.WithWeights(generate.Uniform(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, a.U(), b.U())
	assert.Equal(t, a.V(), b.V())
	assert.Equal(t, a.W(), b.W())
	for _, w := range a.W() {
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 2.0)
	}

	c, err := generate.RandomEdges(20, 50, generate.WithSeed(10))
	require.NoError(t, err)
	assert.NotEqual(t, a.U(), c.U())
	assert.False(t, c.Weighted())
}

func TestConstantWeights(t *testing.T) {
	el, err := generate.Path(3, generate.WithWeights(generate.Constant(2.5)))
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5}, el.W())

	assert.Panics(t, func() { generate.WithWeights(nil) })
	assert.Panics(t, func() { generate.Uniform(2, 1) })
}
