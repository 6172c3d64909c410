// Package agent implements the participants of a game: the pacman
// players, from simple reflexes to full game tree searchers, and the
// ghosts that oppose them. Agents receive private copies of the
// gamestate and are free to mutate them while deciding.
package agent

import (
	"slices"

	"pacman/game"
	"pacman/grid"
)

// Agent is an active participant in a game. The engine calls Prepare once
// before the first turn and Move whenever it is the agent's turn.
type Agent interface {
	ID() int
	Prepare(gs *game.Gamestate)
	Move(gs *game.Gamestate) grid.Move
}

// pacman is the base of every pacman agent: the fixed agent id and a
// preparation that does nothing.
type pacman struct{}

func (pacman) ID() int { return game.PacmanID }

func (pacman) Prepare(*game.Gamestate) {}

// GoLeft walks west whenever the walls allow it.
type GoLeft struct{ pacman }

func (GoLeft) Move(gs *game.Gamestate) grid.Move {
	if slices.Contains(gs.LegalMoves(game.PacmanID), grid.Left) {
		return grid.Left
	}
	return grid.Stop
}

// GoRight walks east whenever the walls allow it.
type GoRight struct{ pacman }

func (GoRight) Move(gs *game.Gamestate) grid.Move {
	if slices.Contains(gs.LegalMoves(game.PacmanID), grid.Right) {
		return grid.Right
	}
	return grid.Stop
}
