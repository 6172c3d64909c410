package agent

import (
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog/log"

	"pacman/game"
	"pacman/grid"
	"pacman/search"
)

// scripted is the base of the agents that plan ahead: a queue of moves
// played back one per turn, standing still once it runs out.
type scripted struct {
	pacman
	actions []grid.Move
}

func (s *scripted) Move(*game.Gamestate) grid.Move {
	if len(s.actions) == 0 {
		return grid.Stop
	}
	move := s.actions[0]
	s.actions = s.actions[1:]
	return move
}

// SearchAgent runs one search over a representation of the board before
// the game starts and then plays the found path back.
type SearchAgent struct {
	scripted
	method search.Method
	build  func(*game.Gamestate) search.Representation
}

func NewSearch(method search.Method, build func(*game.Gamestate) search.Representation) *SearchAgent {
	return &SearchAgent{method: method, build: build}
}

// NewStayLeft builds a position searcher that prices a cell at 2 to the
// power of its column, steering the path through the west of the board.
func NewStayLeft(method search.Method) *SearchAgent {
	return NewSearch(method, func(gs *game.Gamestate) search.Representation {
		return search.NewPosition(gs, search.WithCostFunc(func(v grid.Vector) float64 {
			return math.Pow(2, float64(v.X))
		}))
	})
}

// NewStayRight is the eastern counterpart of NewStayLeft, pricing a cell
// at 0.5 to the power of its column.
func NewStayRight(method search.Method) *SearchAgent {
	return NewSearch(method, func(gs *game.Gamestate) search.Representation {
		return search.NewPosition(gs, search.WithCostFunc(func(v grid.Vector) float64 {
			return math.Pow(0.5, float64(v.X))
		}))
	})
}

func (a *SearchAgent) Prepare(gs *game.Gamestate) {
	representation := a.build(gs)
	actions, ok := a.method(representation)
	if !ok {
		log.Warn().Msg("search found no path to the goal")
		a.actions = nil
		return
	}
	a.actions = actions
	log.Info().Msgf("search found a path with %d moves at cost %v", len(actions), representation.PathCost(actions))
	if counter, ok := representation.(interface{ Count() int }); ok {
		log.Info().Msgf("search expanded %d nodes", counter.Count())
	}
}

// ClosestDotAgent chains short searches, each to the nearest dot, until
// the combined plan clears the whole board.
type ClosestDotAgent struct{ scripted }

func NewClosestDot() *ClosestDotAgent {
	return &ClosestDotAgent{}
}

func (a *ClosestDotAgent) Prepare(gs *game.Gamestate) {
	a.actions = nil
	current := gs.Copy()
	for current.Dots().Any() {
		segment, ok := search.BreadthFirst(search.NewAnyDot(current))
		if !ok {
			log.Warn().Msgf("no path to any of the %d remaining dots", current.Dots().Len())
			break
		}
		for _, move := range segment {
			if !slices.Contains(current.LegalMoves(game.PacmanID), move) {
				panic(fmt.Sprintf("planned an illegal move %v", move))
			}
			current.ApplyMove(game.PacmanID, move)
		}
		a.actions = append(a.actions, segment...)
	}
	cost := search.StandardPathCost(a.actions, gs.Position(game.PacmanID), gs.Walls(), search.UnitCost)
	log.Info().Msgf("planned a sweep of %d moves at cost %v", len(a.actions), cost)
}

// ApproximateAgent plans a greedy dot sweep whenever it runs out of
// moves, clearing the west half of the board before the east half.
type ApproximateAgent struct{ scripted }

func NewApproximate() *ApproximateAgent {
	return &ApproximateAgent{}
}

func (a *ApproximateAgent) Move(gs *game.Gamestate) grid.Move {
	if len(a.actions) == 0 {
		actions, ok := search.Approx(search.NewAllDots(gs))
		if !ok {
			log.Warn().Msg("no dot left to sweep towards")
			return grid.Stop
		}
		a.actions = actions
	}
	return a.scripted.Move(gs)
}
