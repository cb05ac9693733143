package bmssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlath-bmssp/bmssp"
)

// gonumOracle mirrors a bmssp.Graph into a gonum WeightedDirectedGraph and
// returns gonum's own Dijkstra distances from src, as an implementation
// independent of anything in this package.
func gonumOracle(t *testing.T, edges [][3]float64, n, src int) []float64 {
	t.Helper()
	gg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < n; v++ {
		gg.AddNode(simple.Node(int64(v)))
	}
	for _, e := range edges {
		gg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(int64(e[0])), T: simple.Node(int64(e[1])), W: e[2]})
	}

	shortest := path.DijkstraFrom(simple.Node(int64(src)), gg)
	dist := make([]float64, n)
	for v := 0; v < n; v++ {
		dist[v] = shortest.WeightTo(int64(v))
	}
	return dist
}

// TestRun_CrossCheckAgainstGonum independently verifies bmssp.Run's
// distances for every certified vertex against gonum's own Dijkstra
// implementation, on a graph with no particular structure favoring
// BMSSP's pivot selection.
func TestRun_CrossCheckAgainstGonum(t *testing.T) {
	edges := [][3]float64{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 1}, {1, 3, 2},
		{2, 3, 7}, {3, 4, 3}, {4, 5, 1}, {3, 5, 6},
		{5, 6, 2}, {1, 6, 9}, {6, 7, 1}, {0, 7, 20},
	}
	const n = 8

	g := bmssp.NewGraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	_, u, dhat, _, err := bmssp.Run(g, math.Inf(1), []int{0}, bmssp.Config{})
	require.NoError(t, err)
	require.NotEmpty(t, u)

	want := gonumOracle(t, edges, n, 0)
	for _, v := range u {
		require.Equalf(t, want[v], dhat[v], "vertex %d", v)
	}
}

// TestRun_CrossCheckAgainstGonum_FullCoverage uses a generous k so U
// certifies every reachable vertex, letting the comparison cover the
// whole graph rather than just whatever BMSSP happens to certify.
func TestRun_CrossCheckAgainstGonum_FullCoverage(t *testing.T) {
	edges := [][3]float64{
		{0, 1, 2}, {1, 2, 2}, {2, 3, 2}, {3, 4, 2},
		{4, 5, 2}, {0, 5, 100}, {1, 4, 5}, {2, 5, 5},
	}
	const n = 6

	g := bmssp.NewGraph(n, bmssp.WithParams(n, 1))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	_, u, dhat, _, err := bmssp.Run(g, math.Inf(1), []int{0}, bmssp.Config{})
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, u)

	want := gonumOracle(t, edges, n, 0)
	require.Equal(t, want, dhat)
}
