package main

import (
	"fmt"

	"golang.org/x/exp/rand"

	"pacman/agent"
	"pacman/engine"
	"pacman/game"
	"pacman/search"
)

func main() {
	runMazeDemo()
	runClassicSeries()
}

// runMazeDemo clears the ghostless builtin mazes with one search method
// each.
func runMazeDemo() {
	position := func(gs *game.Gamestate) search.Representation {
		return search.NewPosition(gs)
	}
	corners := func(gs *game.Gamestate) search.Representation {
		return search.NewCorners(gs)
	}

	mazes := []struct {
		name   string
		method search.Method
		build  func(*game.Gamestate) search.Representation
	}{
		{"tinyMaze", search.BreadthFirst, position},
		{"mediumMaze", search.AStar(search.Manhattan), position},
		{"tinyCorners", search.AStar(search.Corners), corners},
	}

	fmt.Printf("Solving the builtin mazes...\n")
	for _, maze := range mazes {
		layout, err := game.LoadLayout(maze.name)
		if err != nil {
			panic(err)
		}
		gs := game.NewGamestate(layout.Grid, nil)

		pac := agent.NewSearch(maze.method, maze.build)
		_, stats := engine.NewLocal(gs, []agent.Agent{pac}).Run()
		fmt.Printf("%s cleared: win=%t score=%d ticks=%d\n", maze.name, stats.Win, stats.Score, stats.Ticks)
	}
}

// runClassicSeries pits an adversarial pacman against the smallClassic
// ghosts over a seeded series.
func runClassicSeries() {
	fmt.Printf("Playing smallClassic...\n")
	stats := engine.RunSeries(5, 1, 2, func(seed uint64) *engine.Local {
		layout, err := game.LoadLayout("smallClassic")
		if err != nil {
			panic(err)
		}
		gs := game.NewGamestate(layout.Grid, nil)

		rng := rand.New(rand.NewSource(seed))
		pac := agent.NewMultiAlphaBeta(agent.WithDepth(2), agent.WithEvaluate(game.BetterEvaluate(rng)))
		agents := append([]agent.Agent{pac}, agent.Ghosts(layout.Ghosts, rng)...)
		return engine.NewLocal(gs, agents)
	})

	for i, g := range stats.Games {
		fmt.Printf("Game %d over! win=%t score=%d ticks=%d\n", i+1, g.Win, g.Score, g.Ticks)
	}
	fmt.Printf("Series done: %d/%d wins, average score %.1f\n", stats.Wins, len(stats.Games), stats.AverageScore())
}
