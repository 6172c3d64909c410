package search

import (
	"math"

	"pacman/game"
	"pacman/grid"
)

// Distancer precomputes true maze distances between every pair of open
// cells, so lookups during play are a map read. Where the manhattan
// distance tunnels through walls, these distances follow the corridors.
type Distancer struct {
	distances map[[2]grid.Vector]float64
}

// NewDistancer walks the whole board once per open cell. Construction
// is the expensive part, so build one in Prepare rather than per move.
func NewDistancer(gs *game.Gamestate) *Distancer {
	walls := gs.Walls()
	shape := walls.Shape()

	distancer := &Distancer{distances: map[[2]grid.Vector]float64{}}
	for x := 0; x < shape.X; x++ {
		for y := 0; y < shape.Y; y++ {
			start := grid.Vector{X: x, Y: y}
			if !walls.At(start) {
				distancer.spread(start, walls)
			}
		}
	}
	return distancer
}

func (d *Distancer) spread(start grid.Vector, walls grid.Indicator[game.Cell]) {
	frontier := newPriorityFrontier(func(n node) float64 { return n.cost })
	frontier.push(node{state: start})
	visited := map[State]bool{}

	for !frontier.empty() {
		n := frontier.pop()
		if visited[n.state] {
			continue
		}
		visited[n.state] = true

		position := n.state.(grid.Vector)
		d.distances[[2]grid.Vector{start, position}] = n.cost

		for _, move := range grid.Directions {
			next := position.Add(move.Vector())
			if !walls.Contains(next) || walls.At(next) || visited[next] {
				continue
			}
			frontier.push(node{state: next, cost: n.cost + 1})
		}
	}
}

// Distance returns the maze distance between two open cells, or +Inf
// when no corridor connects them.
func (d *Distancer) Distance(from, to grid.Vector) float64 {
	if distance, ok := d.distances[[2]grid.Vector{from, to}]; ok {
		return distance
	}
	return math.Inf(1)
}
