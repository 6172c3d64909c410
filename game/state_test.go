package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pacman/grid"
)

/**
Exercises the rules on hand-built boards:
- construction: agents derived from the layout, floor clearing, explicit positions
- moves: dots, pellets, walls, dead agents
- encounters: both directions, scared and unscared, collisions over dots
- timing: scared timers, half speed, the turn limit
- lifecycle: kill vs destroy, legal moves, copies and successors, rendering
*/

// board builds a game from layout rows, top row first.
func board(t *testing.T, rows ...string) *Gamestate {
	t.Helper()
	layout, err := ParseLayout(rows)
	require.NoError(t, err, "Board should parse")
	return NewGamestate(layout.Grid, nil)
}

// A 5x4 board with pacman, one ghost, three dots and a pellet.
func crossing(t *testing.T) *Gamestate {
	t.Helper()
	return board(t,
		"%%%%%",
		"%P.G%",
		"%o..%",
		"%%%%%",
	)
}

func TestNewGamestate(t *testing.T) {
	t.Run("deriving agents from the layout", func(t *testing.T) {
		gs := crossing(t)

		require.Equal(t, 2, gs.NumAgents(), "Board should have pacman and one ghost")
		require.Equal(t, grid.Vector{X: 1, Y: 2}, gs.Position(PacmanID), "Pacman should stand on its layout cell")
		require.Equal(t, grid.Vector{X: 3, Y: 2}, gs.Position(1), "Ghost should stand on its layout cell")
		require.Equal(t, []grid.Vector{{X: 1, Y: 2}, {X: 3, Y: 2}}, gs.Starts, "Starts should record the layout cells")
		require.Equal(t, []grid.Move{grid.Stop, grid.Stop}, gs.Facings, "Agents should start facing nowhere")
		require.Equal(t, 0, gs.Score, "Score should start at zero")
		require.Equal(t, 0, gs.Ticks(), "Turn counter should start at zero")
		require.Equal(t, 0, gs.Timer(1), "Ghost should not start scared")
		require.Equal(t, 3, gs.Dots().Len(), "Board should keep its three dots")
		require.Equal(t, 1, gs.Pellets().Len(), "Board should keep its pellet")

		cell, ok := gs.statics.At(grid.Vector{X: 1, Y: 2})
		require.True(t, ok && cell == Empty, "Floor under pacman should be cleared")
		cell, ok = gs.statics.At(grid.Vector{X: 3, Y: 2})
		require.True(t, ok && cell == Empty, "Floor under the ghost should be cleared")
	})

	t.Run("placing agents explicitly", func(t *testing.T) {
		layout, err := ParseLayout([]string{
			"%%%%%",
			"%P.G%",
			"%o..%",
			"%%%%%",
		})
		require.NoError(t, err, "Board should parse")

		gs := NewGamestate(layout.Grid, []grid.Vector{{X: 2, Y: 1}})

		require.Equal(t, 1, gs.NumAgents(), "Explicit positions should replace the layout agents")
		require.Equal(t, grid.Vector{X: 2, Y: 1}, gs.Position(PacmanID), "Pacman should stand on the explicit cell")
		require.Equal(t, 2, gs.Dots().Len(), "Dot under the explicit position should be cleared")
	})

	t.Run("requiring a pacman", func(t *testing.T) {
		layout, err := ParseLayout([]string{
			"%%%",
			"% %",
			"%%%",
		})
		require.NoError(t, err, "Board should parse")

		require.Panics(t, func() { NewGamestate(layout.Grid, nil) },
			"Should refuse a board without agents")
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("eating a dot", func(t *testing.T) {
		gs := crossing(t)

		gs.ApplyMove(PacmanID, grid.Right)

		require.Equal(t, grid.Vector{X: 2, Y: 2}, gs.Position(PacmanID), "Pacman should step right")
		require.Equal(t, grid.Right, gs.Facings[PacmanID], "Pacman should face its move")
		require.Equal(t, ScoreTickPenalty+ScoreDot, gs.Score, "Score should pay the move and gain the dot")
		require.Equal(t, 2, gs.Dots().Len(), "The dot should be gone")
	})

	t.Run("finishing the dots", func(t *testing.T) {
		gs := board(t,
			"%%%%",
			"%P.%",
			"%%%%",
		)

		gs.ApplyMove(PacmanID, grid.Right)

		require.Equal(t, ScoreTickPenalty+ScoreDot+ScoreAllDots, gs.Score, "The last dot should pay the clearance bonus")
		require.True(t, gs.Win(), "Clearing the dots should win the game")
		require.False(t, gs.Loss(), "A won game should not read as lost")
		require.True(t, gs.GameOver(), "A won game should be over")
	})

	t.Run("eating a pellet", func(t *testing.T) {
		gs := crossing(t)

		gs.ApplyMove(PacmanID, grid.Down)

		require.Equal(t, ScoreTickPenalty+ScorePellet, gs.Score, "Score should pay the move and gain the pellet")
		require.False(t, gs.Pellets().Any(), "The pellet should be gone")
		require.Equal(t, ScaredTime, gs.Timer(1), "The ghost should be scared for the full time")
	})

	t.Run("stepping into a wall", func(t *testing.T) {
		gs := crossing(t)

		require.Panics(t, func() { gs.ApplyMove(PacmanID, grid.Up) },
			"Walking into a wall should panic")
		require.Equal(t, ScoreTickPenalty+ScoreDiePenalty, gs.Score, "The wall should cost pacman its life first")
	})

	t.Run("ignoring moves by dead agents", func(t *testing.T) {
		gs := crossing(t)
		gs.Kill(PacmanID)

		gs.ApplyMove(PacmanID, grid.Right)

		require.Equal(t, 0, gs.Score, "A dead agent's move should change nothing")
		require.Equal(t, grid.Stop, gs.Facings[PacmanID], "A dead agent's move should change nothing")
	})

	t.Run("collecting the dot in a fatal collision", func(t *testing.T) {
		gs := board(t,
			"%%%%%",
			"%P.G%",
			"%%%%%",
		)
		gs.ApplyMove(1, grid.Left)

		gs.ApplyMove(PacmanID, grid.Right)

		// The dot shared with the ghost is still collected, bonus included.
		require.Equal(t, ScoreTickPenalty+ScoreDiePenalty+ScoreDot+ScoreAllDots, gs.Score,
			"The shared dot should still be collected")
		require.False(t, gs.Dots().Any(), "The shared dot should be gone")
		require.True(t, gs.Loss(), "Pacman should die in the collision")
		require.False(t, gs.Win(), "A lost game should not read as won")
	})
}

func TestEncounters(t *testing.T) {
	t.Run("pacman dying to a ghost", func(t *testing.T) {
		gs := crossing(t)
		gs.ApplyMove(PacmanID, grid.Right)

		gs.ApplyMove(PacmanID, grid.Right)

		require.Equal(t, ScoreDot+2*ScoreTickPenalty+ScoreDiePenalty, gs.Score, "Pacman should pay the death penalty")
		require.True(t, gs.Loss(), "Pacman should be dead")
		_, ok := gs.Pacman()
		require.False(t, ok, "Pacman should report no position")
		require.True(t, gs.Alive(1), "The ghost should survive the encounter")
	})

	t.Run("pacman eating a scared ghost", func(t *testing.T) {
		gs := board(t,
			"%%%%%%",
			"%Po.G%",
			"%%%%%%",
		)
		gs.ApplyMove(1, grid.Left)
		gs.ApplyMove(PacmanID, grid.Right)
		require.Equal(t, ScaredTime, gs.Timer(1), "The pellet should scare the ghost")

		gs.ApplyMove(PacmanID, grid.Right)

		require.Equal(t, ScorePellet+ScoreGhost+ScoreDot+ScoreAllDots+2*ScoreTickPenalty, gs.Score,
			"Score should collect the ghost bounty and the dot under it")
		require.True(t, gs.Alive(1), "The eaten ghost should respawn")
		require.Equal(t, grid.Vector{X: 4, Y: 1}, gs.Position(1), "The eaten ghost should respawn at its start")
		require.Equal(t, 0, gs.Timer(1), "Respawning should clear the scared timer")
		require.True(t, gs.Win(), "The board should be cleared")
	})

	t.Run("a ghost catching pacman", func(t *testing.T) {
		gs := crossing(t)

		gs.ApplyMove(1, grid.Left)
		gs.ApplyMove(1, grid.Left)

		require.Equal(t, ScoreDiePenalty, gs.Score, "Ghost moves should cost nothing beyond the kill")
		require.True(t, gs.Loss(), "Pacman should be dead")
		require.Equal(t, 3, gs.Dots().Len(), "Ghosts should not eat dots on the way")
		require.Equal(t, grid.Vector{X: 1, Y: 2}, gs.Position(1), "The ghost should stand where pacman stood")
	})

	t.Run("a scared ghost blundering into pacman", func(t *testing.T) {
		gs := board(t,
			"%%%%",
			"%PG%",
			"%..%",
			"%%%%",
		)
		gs.timers[1] = 5

		gs.ApplyMove(1, grid.Left)

		require.Equal(t, ScoreGhost, gs.Score, "Pacman should collect the bounty")
		require.Equal(t, grid.Vector{X: 1, Y: 2}, gs.Position(PacmanID), "Pacman should survive in place")
		require.Equal(t, grid.Vector{X: 2, Y: 2}, gs.Position(1), "The ghost should respawn at its start")
		require.Equal(t, 0, gs.Timer(1), "Respawning should clear the scared timer")
	})
}

func TestScaredTimers(t *testing.T) {
	t.Run("counting down on the ghost's own moves", func(t *testing.T) {
		gs := crossing(t)
		gs.ApplyMove(PacmanID, grid.Down)
		require.Equal(t, ScaredTime, gs.Timer(1), "The pellet should scare the ghost")

		gs.ApplyMove(1, grid.Stop)
		require.Equal(t, ScaredTime-1, gs.Timer(1), "The ghost's move should count its timer down")

		gs.ApplyMove(PacmanID, grid.Stop)
		require.Equal(t, ScaredTime-1, gs.Timer(1), "Pacman's moves should not touch the ghost's timer")
	})

	t.Run("halving scared speed", func(t *testing.T) {
		gs := crossing(t)
		gs.timers[1] = 3

		require.True(t, gs.CanMove(1), "A scared ghost should move on even turns")
		gs.ticks = 1
		require.False(t, gs.CanMove(1), "A scared ghost should sit out odd turns")
		require.True(t, gs.CanMove(PacmanID), "Pacman should be unaffected")
		gs.timers[1] = 0
		require.True(t, gs.CanMove(1), "An unscared ghost should move every turn")
	})

	t.Run("no moves after the game ends", func(t *testing.T) {
		gs := crossing(t)
		gs.Kill(PacmanID)

		require.False(t, gs.CanMove(PacmanID), "A dead agent should not move")
		require.False(t, gs.CanMove(1), "Nobody should move after the game ends")
	})
}

func TestTick(t *testing.T) {
	t.Run("advancing the counter", func(t *testing.T) {
		gs := crossing(t)

		gs.Tick()

		require.Equal(t, 1, gs.Ticks(), "Tick should advance the counter")
		require.True(t, gs.Alive(PacmanID), "Pacman should be untouched")
	})

	t.Run("destroying pacman at the limit", func(t *testing.T) {
		gs := crossing(t)
		gs.ticks = MaxTicks - 1

		gs.Tick()

		require.Equal(t, MaxTicks, gs.Ticks(), "The counter should reach the limit")
		require.True(t, gs.Loss(), "The limit should end the game")
		require.Equal(t, ScoreDiePenalty, gs.Score, "The limit should charge the death penalty")
	})
}

func TestKillDestroy(t *testing.T) {
	t.Run("respawning a killed ghost", func(t *testing.T) {
		gs := crossing(t)
		gs.ApplyMove(1, grid.Down)
		gs.timers[1] = 7

		gs.Kill(1)

		require.Equal(t, grid.Vector{X: 3, Y: 2}, gs.Position(1), "The ghost should be back at its start")
		require.Equal(t, 0, gs.Timer(1), "The kill should clear the scared timer")
		require.Equal(t, 3, gs.Dots().Len(), "The board should be untouched")
	})

	t.Run("removing killed pacman", func(t *testing.T) {
		gs := crossing(t)

		gs.Kill(PacmanID)

		require.True(t, gs.Loss(), "Pacman should be gone")
		require.Equal(t, 0, gs.Score, "Kill itself should not charge a penalty")
	})

	t.Run("destroying a ghost for good", func(t *testing.T) {
		gs := crossing(t)

		gs.Destroy(1)

		require.False(t, gs.Alive(1), "The ghost should be gone")
		require.Equal(t, 0, gs.Score, "Destroying a ghost should not touch the score")

		gs.ApplyMove(PacmanID, grid.Right)
		gs.ApplyMove(PacmanID, grid.Right)
		require.False(t, gs.Loss(), "Pacman should walk over the empty cell unharmed")
		require.Equal(t, ScoreDot+2*ScoreTickPenalty, gs.Score, "Only the dot should score")
	})

	t.Run("charging for destroyed pacman", func(t *testing.T) {
		gs := crossing(t)

		gs.Destroy(PacmanID)

		require.True(t, gs.Loss(), "Pacman should be gone")
		require.Equal(t, ScoreDiePenalty, gs.Score, "Destroying pacman should charge the death penalty")
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("listing open directions and stop", func(t *testing.T) {
		gs := crossing(t)

		got := gs.LegalMoves(PacmanID)

		require.Equal(t, []grid.Move{grid.Down, grid.Right, grid.Stop}, got,
			"Moves should come in enumeration order with stop included")
	})

	t.Run("treating cells beyond the board as open", func(t *testing.T) {
		gs := board(t, "P.")

		got := gs.LegalMoves(PacmanID)

		require.Equal(t, grid.Moves, got, "Only walls should block, not the board edge")
	})
}

func TestCopyIndependence(t *testing.T) {
	gs := crossing(t)

	clone := gs.Copy()
	clone.ApplyMove(PacmanID, grid.Right)
	gs.Tick()

	require.Equal(t, 0, gs.Score, "Moves on the copy should not touch the original")
	require.Equal(t, 3, gs.Dots().Len(), "Moves on the copy should not touch the original")
	require.Equal(t, grid.Vector{X: 1, Y: 2}, gs.Position(PacmanID), "Moves on the copy should not touch the original")
	require.Equal(t, 0, clone.Ticks(), "Ticks on the original should not touch the copy")
}

func TestSuccessors(t *testing.T) {
	gs := crossing(t)

	next := gs.Successor(PacmanID, grid.Right)

	require.Equal(t, ScoreTickPenalty+ScoreDot, next.Score, "The successor should have played the move")
	require.Equal(t, 0, gs.Score, "The original should be untouched")

	all := gs.Successors(PacmanID)
	require.Len(t, all, len(gs.LegalMoves(PacmanID)), "Should branch once per legal move")
}

func TestRender(t *testing.T) {
	t.Run("drawing the board with the score", func(t *testing.T) {
		gs := board(t,
			"%%%%",
			"%P.%",
			"%%%%",
		)

		require.Equal(t, "% % % %\n% P . %\n% % % %\nScore: 0", gs.String(),
			"Should draw rows top down with the score underneath")
	})

	t.Run("marking scared ghosts", func(t *testing.T) {
		gs := board(t,
			"%%%%",
			"%PG%",
			"%%%%",
		)
		gs.timers[1] = 2

		require.Contains(t, gs.String(), "% P S %", "A scared ghost should draw as S")

		gs.Kill(PacmanID)
		require.NotContains(t, gs.String(), "P", "Dead pacman should not be drawn")
	})
}
