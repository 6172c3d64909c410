package search

import (
	"pacman/game"
	"pacman/grid"
)

// CornersState is the search state of CornersRepresentation: pacman's
// position plus one visited flag per corner, in the order of Corners.
type CornersState struct {
	Pos     grid.Vector
	Visited [4]bool
}

// CornersRepresentation is the search space whose goal is to have touched
// all four inner corners of the board.
type CornersRepresentation struct {
	*Expansion
	start   grid.Vector
	corners [4]grid.Vector
	walls   grid.Indicator[game.Cell]
}

func NewCorners(gs *game.Gamestate) *CornersRepresentation {
	shape := gs.Shape()
	inner := shape.Sub(grid.Unit.Scale(2))
	return &CornersRepresentation{
		Expansion: NewExpansion(shape),
		start:     gs.Position(game.PacmanID),
		corners: [4]grid.Vector{
			{X: 1, Y: 1},
			{X: 1, Y: inner.Y},
			{X: inner.X, Y: 1},
			{X: inner.X, Y: inner.Y},
		},
		walls: gs.Walls(),
	}
}

func (r *CornersRepresentation) Start() State {
	return CornersState{Pos: r.start}
}

func (r *CornersRepresentation) IsGoal(state State) bool {
	s := state.(CornersState)
	r.Record(s.Pos)
	return s.Visited == [4]bool{true, true, true, true}
}

func (r *CornersRepresentation) Successors(state State) []Successor {
	s := state.(CornersState)
	successors := make([]Successor, 0, len(grid.Directions))
	for _, move := range grid.Directions {
		next := s.Pos.Add(move.Vector())
		if r.walls.At(next) {
			continue
		}
		visited := s.Visited
		for i, corner := range r.corners {
			if next == corner {
				visited[i] = true
			}
		}
		successors = append(successors, Successor{
			State: CornersState{Pos: next, Visited: visited},
			Moves: []grid.Move{move},
			Cost:  1,
		})
	}
	return successors
}

func (r *CornersRepresentation) PathCost(path []grid.Move) float64 {
	return StandardPathCost(path, r.start, r.walls, UnitCost)
}

// Corners returns the four target cells, left column first, bottom row
// first.
func (r *CornersRepresentation) Corners() [4]grid.Vector {
	return r.corners
}
