package search

import (
	"pacman/game"
	"pacman/grid"
)

// option configures a position representation.
type option func(*PositionRepresentation)

// WithGoal sets the target cell. The default is the bottom-left open
// corner (1, 1).
func WithGoal(goal grid.Vector) option {
	return func(r *PositionRepresentation) {
		r.goal = goal
	}
}

// WithCostFunc sets the cost charged for every position entered. The
// default charges 1 everywhere.
func WithCostFunc(costFn CostFunc) option {
	return func(r *PositionRepresentation) {
		r.costFn = costFn
	}
}

// PositionRepresentation is the bread-and-butter search space: states are
// board positions and the goal is one fixed target cell.
type PositionRepresentation struct {
	*Expansion
	start  grid.Vector
	goal   grid.Vector
	costFn CostFunc
	walls  grid.Indicator[game.Cell]
}

// NewPosition builds the space from pacman's point of view on the given
// gamestate.
func NewPosition(gs *game.Gamestate, options ...option) *PositionRepresentation {
	r := &PositionRepresentation{
		Expansion: NewExpansion(gs.Shape()),
		start:     gs.Position(game.PacmanID),
		goal:      grid.Unit,
		costFn:    UnitCost,
		walls:     gs.Walls(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *PositionRepresentation) Start() State {
	return r.start
}

func (r *PositionRepresentation) IsGoal(state State) bool {
	position := state.(grid.Vector)
	r.Record(position)
	return position == r.goal
}

func (r *PositionRepresentation) Successors(state State) []Successor {
	position := state.(grid.Vector)
	successors := make([]Successor, 0, len(grid.Directions))
	for _, move := range grid.Directions {
		next := position.Add(move.Vector())
		if r.walls.At(next) {
			continue
		}
		successors = append(successors, Successor{
			State: next,
			Moves: []grid.Move{move},
			Cost:  r.costFn(next),
		})
	}
	return successors
}

func (r *PositionRepresentation) PathCost(path []grid.Move) float64 {
	return StandardPathCost(path, r.start, r.walls, r.costFn)
}

// Goal returns the target cell. The distance heuristics aim at it.
func (r *PositionRepresentation) Goal() grid.Vector {
	return r.goal
}
