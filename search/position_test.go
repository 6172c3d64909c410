package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"pacman/grid"
)

/**
Covers the single target space: defaults, options, wall aware expansion
and path costs charged on the cells entered.
*/

func TestPositionDefaults(t *testing.T) {
	representation := NewPosition(board(t,
		"%%%%",
		"%  %",
		"%P %",
		"%%%%",
	))

	require.Equal(t, grid.Unit, representation.Start(), "The space should start at pacman")
	require.Equal(t, grid.Unit, representation.Goal(), "The default goal should be the bottom left corner")
}

func TestPositionOptions(t *testing.T) {
	doubled := func(grid.Vector) float64 { return 2 }
	representation := NewPosition(board(t,
		"%%%%",
		"%  %",
		"%P %",
		"%%%%",
	), WithGoal(grid.Vector{X: 2, Y: 2}), WithCostFunc(doubled))

	require.Equal(t, grid.Vector{X: 2, Y: 2}, representation.Goal(), "The goal option should replace the default")
	require.Equal(t, 4.0, representation.PathCost([]grid.Move{grid.Right, grid.Up}), "Two steps at cost two should cost four")
}

func TestPositionSuccessors(t *testing.T) {
	westward := func(v grid.Vector) float64 {
		return math.Pow(2, float64(v.X))
	}
	representation := NewPosition(board(t,
		"%%%%",
		"%P.%",
		"%%%%",
	), WithCostFunc(westward))

	successors := representation.Successors(grid.Unit)
	require.Equal(t, []Successor{{
		State: grid.Vector{X: 2, Y: 1},
		Moves: []grid.Move{grid.Right},
		Cost:  4,
	}}, successors, "Only the dot cell should be open, at the price of the cell entered")

	require.Equal(t, 4.0, representation.PathCost([]grid.Move{grid.Right}), "The path cost should match the successor cost")
}

func TestPositionPathCost(t *testing.T) {
	representation := NewPosition(board(t,
		"%%%%",
		"%P.%",
		"%%%%",
	))

	require.Equal(t, 0.0, representation.PathCost(nil), "An empty path should cost nothing")
	require.True(t, math.IsInf(representation.PathCost([]grid.Move{grid.Up}), 1), "A path into a wall should cost infinitely much")
}

func TestPositionRecordsGoalTests(t *testing.T) {
	representation := NewPosition(board(t,
		"%%%%",
		"%P.%",
		"%%%%",
	))

	require.True(t, representation.IsGoal(grid.Unit), "The start cell should be the default goal")
	require.False(t, representation.IsGoal(grid.Vector{X: 2, Y: 1}), "The dot cell should not be the goal")

	require.Equal(t, 2, representation.Count(), "Both tests should be counted")
	index, ok := representation.Order().At(grid.Vector{X: 2, Y: 1})
	require.True(t, ok, "The tested cell should be on the board")
	require.Equal(t, 1, index, "The second test should be marked one")
}
