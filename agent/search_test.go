package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pacman/game"
	"pacman/grid"
	"pacman/search"
)

/**
Exercises the planning agents end to end on small boards:
- a search agent replays its found path and then stands still
- wall prices steer the stay left and stay right variants
- the closest dot agent chains segments until the board is clear
- the approximate agent replans mid game and survives hopeless boards
*/

func maze(t *testing.T, name string) *game.Gamestate {
	t.Helper()
	layout, err := game.LoadLayout(name)
	require.NoError(t, err, "Should load the builtin layout")
	return game.NewGamestate(layout.Grid, nil)
}

func TestSearchAgent(t *testing.T) {
	gs := maze(t, "tinyMaze")
	a := NewSearch(search.BreadthFirst, func(gs *game.Gamestate) search.Representation {
		return search.NewPosition(gs)
	})
	a.Prepare(gs)

	require.Len(t, a.actions, 16, "Should have planned the full corridor")
	for i := 0; i < 16; i++ {
		gs.ApplyMove(game.PacmanID, a.Move(gs))
	}
	require.True(t, gs.Win(), "Should have eaten the lone dot at the goal")
	require.Equal(t, grid.Stop, a.Move(gs), "Should stand still once the plan is spent")
}

func TestStayLeftAndRight(t *testing.T) {
	rows := []string{
		"%%%%%",
		"%  P%",
		"% % %",
		"%   %",
		"%%%%%",
	}

	t.Run("staying left", func(t *testing.T) {
		a := NewStayLeft(search.UniformCost)
		a.Prepare(board(t, rows...))
		require.Equal(t, []grid.Move{grid.Left, grid.Left, grid.Down, grid.Down}, a.actions,
			"Should route through the cheap west columns")
	})

	t.Run("staying right", func(t *testing.T) {
		a := NewStayRight(search.UniformCost)
		a.Prepare(board(t, rows...))
		require.Equal(t, []grid.Move{grid.Down, grid.Down, grid.Left, grid.Left}, a.actions,
			"Should route through the cheap east columns")
	})
}

func TestClosestDot(t *testing.T) {
	gs := board(t,
		"%%%%%",
		"%.P.%",
		"%%%%%",
	)
	a := NewClosestDot()
	a.Prepare(gs)

	require.Equal(t, []grid.Move{grid.Right, grid.Left, grid.Left}, a.actions,
		"Should chain one segment per dot, nearest first")
	for len(a.actions) > 0 {
		gs.ApplyMove(game.PacmanID, a.Move(gs))
	}
	require.True(t, gs.Win(), "Should clear the board by replaying the plan")
	require.Equal(t, grid.Stop, a.Move(gs), "Should stand still once the board is planned clear")
}

func TestApproximate(t *testing.T) {
	t.Run("sweeping west before east", func(t *testing.T) {
		gs := board(t,
			"%%%%%%%",
			"%. P .%",
			"%%%%%%%",
		)
		a := NewApproximate()
		a.Prepare(gs)

		for _, expected := range []grid.Move{grid.Left, grid.Left} {
			move := a.Move(gs)
			require.Equal(t, expected, move, "Should head for the western dot first")
			gs.ApplyMove(game.PacmanID, move)
		}
		require.Equal(t, grid.Right, a.Move(gs), "Should replan towards the eastern dot")
	})

	t.Run("no dot in reach", func(t *testing.T) {
		gs := board(t,
			"%%%%%",
			"%P%.%",
			"%%%%%",
		)
		a := NewApproximate()
		require.Equal(t, grid.Stop, a.Move(gs), "Should stand still when no sweep exists")
	})
}
