package search

import (
	"pacman/game"
	"pacman/grid"
)

// CrossroadRepresentation collapses corridors: each successor is the next
// branch point or dead end in one direction, carrying the whole move list
// and its length as cost. Cells passed through in between never become
// states, so goals inside a corridor are not reachable stopping points.
type CrossroadRepresentation struct {
	*PositionRepresentation
}

func NewCrossroad(gs *game.Gamestate, options ...option) *CrossroadRepresentation {
	return &CrossroadRepresentation{PositionRepresentation: NewPosition(gs, options...)}
}

func (r *CrossroadRepresentation) Successors(state State) []Successor {
	position := state.(grid.Vector)
	successors := make([]Successor, 0, len(grid.Directions))
	for _, first := range r.open(position) {
		next := position.Add(first.Vector())
		path := []grid.Move{first}

		// Keep walking while there is exactly one way onward. Coming back
		// around to the expanded cell means the corridor is a closed loop.
		onward := r.onward(next, first)
		for len(onward) == 1 && next != position {
			next = next.Add(onward[0].Vector())
			path = append(path, onward[0])
			onward = r.onward(next, path[len(path)-1])
		}

		successors = append(successors, Successor{
			State: next,
			Moves: path,
			Cost:  float64(len(path)),
		})
	}
	return successors
}

// open lists the wall-free directional moves from a position.
func (r *CrossroadRepresentation) open(position grid.Vector) []grid.Move {
	moves := make([]grid.Move, 0, len(grid.Directions))
	for _, move := range grid.Directions {
		if !r.walls.At(position.Add(move.Vector())) {
			moves = append(moves, move)
		}
	}
	return moves
}

// onward lists the continuations from a position that do not reverse the
// move that entered it.
func (r *CrossroadRepresentation) onward(position grid.Vector, entered grid.Move) []grid.Move {
	moves := make([]grid.Move, 0, len(grid.Directions))
	for _, move := range r.open(position) {
		if move != entered.Opposite() {
			moves = append(moves, move)
		}
	}
	return moves
}
