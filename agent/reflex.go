package agent

import (
	"math"
	"slices"

	"golang.org/x/exp/rand"

	"pacman/game"
	"pacman/grid"
)

// MoveEvaluate scores taking one move from a state. The state is the
// evaluator's private copy, free to mutate.
type MoveEvaluate func(gs *game.Gamestate, move grid.Move) float64

// ReflexAgent tries every legal move one step ahead and plays a best one,
// breaking ties at random.
type ReflexAgent struct {
	pacman
	evaluate MoveEvaluate
	rng      *rand.Rand
}

func NewReflex(evaluate MoveEvaluate, rng *rand.Rand) *ReflexAgent {
	return &ReflexAgent{evaluate: evaluate, rng: rng}
}

func (a *ReflexAgent) Move(gs *game.Gamestate) grid.Move {
	moves := gs.LegalMoves(game.PacmanID)
	scores := make([]float64, len(moves))
	for i, move := range moves {
		scores[i] = a.evaluate(gs.Copy(), move)
	}

	best := slices.Max(scores)
	var ties []grid.Move
	for i, move := range moves {
		if scores[i] == best {
			ties = append(ties, move)
		}
	}
	return ties[a.rng.Intn(len(ties))]
}

// ScoreMoveEvaluate prices a move by the score of the state it leads to.
func ScoreMoveEvaluate(gs *game.Gamestate, move grid.Move) float64 {
	gs.ApplyMove(game.PacmanID, move)
	return float64(gs.Score)
}

// BetterMoveEvaluate steers clear of every cell a ghost could reach on
// its answer, grabs dots whenever that is safe, and otherwise drifts
// towards the nearest dot.
func BetterMoveEvaluate(gs *game.Gamestate, move grid.Move) float64 {
	next := gs.Position(game.PacmanID).Add(move.Vector())

	score := 0.0
	for id := game.PacmanID + 1; id < gs.NumAgents(); id++ {
		if !gs.Alive(id) {
			continue
		}
		ghost := gs.Position(id)
		for _, answer := range gs.LegalMovesAt(ghost) {
			if next == ghost.Add(answer.Vector()) {
				return math.Inf(-1)
			}
		}
		if gs.Dots().At(next) {
			score += math.Inf(1)
		}
	}

	nearest := math.Inf(1)
	for _, dot := range gs.Dots().List() {
		if distance := float64(grid.Manhattan(next, dot)); distance < nearest {
			nearest = distance
		}
	}
	if !math.IsInf(nearest, 1) {
		score -= nearest
	}
	return score
}
