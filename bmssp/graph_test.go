package bmssp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-bmssp/bmssp"
)

func TestNewGraph_DerivesParams(t *testing.T) {
	g := bmssp.NewGraph(1000)
	require.GreaterOrEqual(t, g.K(), 1)
	require.GreaterOrEqual(t, g.T(), 1)
	require.Equal(t, 1000, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())
}

func TestNewGraph_ClampsToOne(t *testing.T) {
	g := bmssp.NewGraph(1) // ln(1) == 0
	require.Equal(t, 1, g.K())
	require.Equal(t, 1, g.T())
}

func TestWithParams_Override(t *testing.T) {
	g := bmssp.NewGraph(1000, bmssp.WithParams(4, 2))
	require.Equal(t, 4, g.K())
	require.Equal(t, 2, g.T())
}

func TestWithParams_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { bmssp.WithParams(0, 2) })
	require.Panics(t, func() { bmssp.WithParams(2, 0) })
}

func TestWithCapacityClamp_PanicsOnZero(t *testing.T) {
	require.Panics(t, func() { bmssp.WithCapacityClamp(0) })
}

func TestAddEdge_RejectsOutOfRangeAndNegative(t *testing.T) {
	g := bmssp.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.Equal(t, 1, g.NumEdges())

	err := g.AddEdge(0, 5, 1)
	require.ErrorIs(t, err, bmssp.ErrInvalidIndex)

	err = g.AddEdge(-1, 1, 1)
	require.ErrorIs(t, err, bmssp.ErrInvalidIndex)

	err = g.AddEdge(0, 1, -3)
	require.ErrorIs(t, err, bmssp.ErrInvalidArgument)
}

func TestNeighbors_OutOfRange(t *testing.T) {
	g := bmssp.NewGraph(2)
	_, err := g.Neighbors(7)
	require.ErrorIs(t, err, bmssp.ErrInvalidIndex)
}

func TestNeighbors_ParallelAndSelfLoop(t *testing.T) {
	g := bmssp.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 1, 5)) // parallel edge, different weight
	require.NoError(t, g.AddEdge(0, 0, 2)) // self loop

	neighbors, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, neighbors, 3)
}
