package search

import (
	"slices"
	"strings"

	"pacman/game"
	"pacman/grid"
)

// AllDotsState is the search state of AllDotsRepresentation: pacman's
// position plus the dots not yet collected, encoded as a bitstring over
// the representation's dot list so that states stay comparable.
type AllDotsState struct {
	Pos       grid.Vector
	Remaining string
}

// AllDotsRepresentation is the search space whose goal is an empty board:
// every move that lands on a dot removes it from the state.
type AllDotsRepresentation struct {
	*Expansion
	start AllDotsState
	dots  []grid.Vector
	index map[grid.Vector]int
	walls grid.Indicator[game.Cell]
}

func NewAllDots(gs *game.Gamestate) *AllDotsRepresentation {
	dots := slices.Clone(gs.Dots().List())
	index := make(map[grid.Vector]int, len(dots))
	for i, dot := range dots {
		index[dot] = i
	}
	return &AllDotsRepresentation{
		Expansion: NewExpansion(gs.Shape()),
		start: AllDotsState{
			Pos:       gs.Position(game.PacmanID),
			Remaining: strings.Repeat("1", len(dots)),
		},
		dots:  dots,
		index: index,
		walls: gs.Walls(),
	}
}

func (r *AllDotsRepresentation) Start() State {
	return r.start
}

func (r *AllDotsRepresentation) IsGoal(state State) bool {
	s := state.(AllDotsState)
	r.Record(s.Pos)
	return !strings.Contains(s.Remaining, "1")
}

func (r *AllDotsRepresentation) Successors(state State) []Successor {
	s := state.(AllDotsState)
	successors := make([]Successor, 0, len(grid.Directions))
	for _, move := range grid.Directions {
		next := s.Pos.Add(move.Vector())
		if r.walls.At(next) {
			continue
		}
		remaining := s.Remaining
		if i, ok := r.index[next]; ok && remaining[i] == '1' {
			remaining = remaining[:i] + "0" + remaining[i+1:]
		}
		successors = append(successors, Successor{
			State: AllDotsState{Pos: next, Remaining: remaining},
			Moves: []grid.Move{move},
			Cost:  1,
		})
	}
	return successors
}

func (r *AllDotsRepresentation) PathCost(path []grid.Move) float64 {
	return StandardPathCost(path, r.start.Pos, r.walls, UnitCost)
}

// Dots lists every dot position the representation was built with, in
// board scan order.
func (r *AllDotsRepresentation) Dots() []grid.Vector {
	return r.dots
}

// Remaining decodes the dots a state has not collected yet.
func (r *AllDotsRepresentation) Remaining(state AllDotsState) []grid.Vector {
	remaining := make([]grid.Vector, 0, len(r.dots))
	for i, dot := range r.dots {
		if state.Remaining[i] == '1' {
			remaining = append(remaining, dot)
		}
	}
	return remaining
}
