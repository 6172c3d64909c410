package search

import (
	"slices"

	"pacman/grid"
)

// DepthFirst explores the deepest frontier node first. Complete on these
// finite spaces but not optimal.
func DepthFirst(representation Representation) ([]grid.Move, bool) {
	return traverse(representation, &stack{})
}

// BreadthFirst explores the shallowest frontier node first. Optimal for
// unit step costs.
func BreadthFirst(representation Representation) ([]grid.Move, bool) {
	return traverse(representation, &fifo{})
}

// UniformCost explores the cheapest frontier node first. Optimal for any
// non-negative step costs.
func UniformCost(representation Representation) ([]grid.Move, bool) {
	return traverse(representation, newPriorityFrontier(func(n node) float64 {
		return n.cost
	}))
}

// AStar builds a method that explores the node with the least cost plus
// heuristic first.
func AStar(heuristic Heuristic) Method {
	return func(representation Representation) ([]grid.Move, bool) {
		return traverse(representation, newPriorityFrontier(func(n node) float64 {
			return n.cost + heuristic(n.state, representation)
		}))
	}
}

// traverse is the skeleton every method shares: pop by the frontier's
// discipline, skip explored states, test the goal, expand the rest. The
// explored check on pop makes re-pushed states harmless.
func traverse(representation Representation, frontier frontier) ([]grid.Move, bool) {
	frontier.push(node{state: representation.Start()})
	explored := map[State]bool{}

	for !frontier.empty() {
		n := frontier.pop()

		if explored[n.state] {
			continue
		}
		explored[n.state] = true

		if representation.IsGoal(n.state) {
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
