package search

import (
	"slices"

	"pacman/grid"
)

// Approx searches the all-dots space for the nearest worthwhile dot,
// finishing the left half of the board before touching the right half.
// A drift term pulls the search toward the leftmost dot still behind
// pacman, which keeps the sweep from leaving stragglers. The returned
// path leads to one dot, not through all of them; callers re-run it as
// the board empties.
func Approx(representation *AllDotsRepresentation) ([]grid.Move, bool) {
	dots := representation.Dots()
	width := representation.walls.Shape().X

	var left, right []grid.Vector
	for _, dot := range dots {
		switch {
		case 2*dot.X < width:
			left = append(left, dot)
		case 2*dot.X > width:
			right = append(right, dot)
		}
	}

	drift := func(state State) float64 {
		pos := state.(AllDotsState).Pos
		behind, found := grid.Vector{}, false
		for _, dot := range dots {
			if dot.X < pos.X && (!found || dot.X < behind.X) {
				behind, found = dot, true
			}
		}
		if !found {
			return 0
		}
		return float64(grid.Manhattan(behind, pos))
	}

	frontier := newPriorityFrontier(func(n node) float64 {
		return n.cost + drift(n.state)
	})
	frontier.push(node{state: representation.Start()})
	explored := map[State]bool{}

	for !frontier.empty() {
		n := frontier.pop()

		if explored[n.state] {
			continue
		}
		explored[n.state] = true

		pos := n.state.(AllDotsState).Pos
		if slices.Contains(left, pos) || (len(left) == 0 && slices.Contains(right, pos)) {
			return n.path, true
		}

		for _, successor := range representation.Successors(n.state) {
			if explored[successor.State] {
				continue
			}
			frontier.push(node{
				state: successor.State,
				path:  append(slices.Clip(n.path), successor.Moves...),
				cost:  n.cost + successor.Cost,
			})
		}
	}

	return nil, false
}
