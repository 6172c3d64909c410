package search

import (
	"cmp"
	"slices"

	"pacman/grid"
)

// positioned is satisfied by representations that chase a single cell.
type positioned interface {
	Goal() grid.Vector
}

// Null ignores the state entirely, which turns AStar into UniformCost.
func Null(State, Representation) float64 {
	return 0
}

// Manhattan measures the taxicab distance to the representation's goal.
func Manhattan(state State, representation Representation) float64 {
	goal := representation.(positioned).Goal()
	return float64(grid.Manhattan(state.(grid.Vector), goal))
}

// Euclidean measures the straight line distance to the goal.
func Euclidean(state State, representation Representation) float64 {
	goal := representation.(positioned).Goal()
	return grid.Euclidean(state.(grid.Vector), goal)
}

// Corners chains greedy hops through the nearest unvisited corner until
// all four are covered, and prices the chain in manhattan distance.
func Corners(state State, representation Representation) float64 {
	s := state.(CornersState)
	corners := representation.(*CornersRepresentation).Corners()

	total := 0
	position := s.Pos
	visited := s.Visited
	for {
		closest := -1
		for i, corner := range corners {
			if visited[i] {
				continue
			}
			if closest == -1 || grid.Manhattan(position, corner) < grid.Manhattan(position, corners[closest]) {
				closest = i
			}
		}
		if closest == -1 {
			return float64(total)
		}
		total += grid.Manhattan(position, corners[closest])
		position = corners[closest]
		visited[closest] = true
	}
}

type rankedDot struct {
	dot  grid.Vector
	dist int
}

// Dots prices a detour over the three farthest remaining dots: the walk
// to the third farthest plus the legs linking it to the second and the
// first. Boards down to two dots are close enough to cost nothing.
func Dots(state State, representation Representation) float64 {
	s := state.(AllDotsState)
	remaining := representation.(*AllDotsRepresentation).Remaining(s)
	if len(remaining) <= 2 {
		return 0
	}

	ranked := make([]rankedDot, len(remaining))
	for i, dot := range remaining {
		ranked[i] = rankedDot{dot: dot, dist: grid.Manhattan(s.Pos, dot)}
	}
	slices.SortFunc(ranked, func(a, b rankedDot) int {
		if c := cmp.Compare(b.dist, a.dist); c != 0 {
			return c
		}
		if c := cmp.Compare(b.dot.X, a.dot.X); c != 0 {
			return c
		}
		return cmp.Compare(b.dot.Y, a.dot.Y)
	})

	return float64(ranked[2].dist +
		grid.Manhattan(ranked[2].dot, ranked[1].dot) +
		grid.Manhattan(ranked[1].dot, ranked[0].dot))
}
