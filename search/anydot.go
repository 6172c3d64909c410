package search

import (
	"pacman/game"
	"pacman/grid"
)

// AnyDotRepresentation relaxes the position goal to "any cell that still
// holds a dot", judged against the live board of the gamestate it was
// built from. It leaves no expansion marks.
type AnyDotRepresentation struct {
	*PositionRepresentation
	dots grid.Indicator[game.Cell]
}

func NewAnyDot(gs *game.Gamestate) *AnyDotRepresentation {
	return &AnyDotRepresentation{
		PositionRepresentation: NewPosition(gs),
		dots:                   gs.Dots(),
	}
}

func (r *AnyDotRepresentation) IsGoal(state State) bool {
	return r.dots.At(state.(grid.Vector))
}
