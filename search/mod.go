// Package search solves problems phrased as a Representation with
// frontier-driven graph search.
package search

import (
	"math"

	"pacman/game"
	"pacman/grid"
)

// A search state is whatever value a representation chooses to describe
// one node of its search space. The methods track explored states in
// maps, so comparability is the one hard requirement.
type State = any

// Successor is one expansion result: the state reached, the move or moves
// that reach it, and the cost of making them.
type Successor struct {
	State State
	Moves []grid.Move
	Cost  float64
}

// Representation defines a search space: where searching starts, what
// counts as a goal, how states expand, and what a path through the space
// costs. Implementing these four is all it takes to be solvable by every
// Method in this package.
type Representation interface {
	Start() State
	IsGoal(State) bool
	Successors(State) []Successor
	PathCost([]grid.Move) float64
}

// Method is a search algorithm: from a representation it produces the
// moves leading from the start to a goal. ok is false when the space was
// exhausted without reaching one, which is an expected outcome for
// unreachable goals, not an error.
type Method func(Representation) (moves []grid.Move, ok bool)

// Heuristic estimates the cost from a state to a representation's goal.
// Methods that order by it stay optimal as long as the estimate never
// exceeds the true cost; that is the caller's obligation.
type Heuristic func(State, Representation) float64

// CostFunc assigns a cost to the position a move lands on.
type CostFunc func(grid.Vector) float64

// UnitCost charges every position the same.
func UnitCost(grid.Vector) float64 {
	return 1
}

// StandardPathCost replays a path from start, charging costFn for every
// position entered. A path leading through a wall costs +Inf.
func StandardPathCost(path []grid.Move, start grid.Vector, walls grid.Indicator[game.Cell], costFn CostFunc) float64 {
	position := start
	cost := 0.0
	for _, move := range path {
		position = position.Add(move.Vector())
		if walls.At(position) {
			return math.Inf(1)
		}
		cost += costFn(position)
	}
	return cost
}
