package adversarial

import (
	"golang.org/x/exp/rand"

	"pacman/game"
	"pacman/grid"
)

// Minimax plays pacman against the first ghost to the given depth and
// returns the value of the position and the move achieving it. Equally
// valued moves are tied and rng picks among them, on both sides of the
// board.
func Minimax(gs *game.Gamestate, depth int, evaluate game.Evaluate, rng *rand.Rand) (float64, grid.Move) {
	m := &minimax{evaluate: evaluate, rng: rng}
	return m.search(gs, depth, true)
}

type minimax struct {
	evaluate game.Evaluate
	rng      *rand.Rand
}

func (m *minimax) search(gs *game.Gamestate, depth int, maximizer bool) (float64, grid.Move) {
	if terminal(gs, depth) {
		return m.evaluate(gs), grid.Stop
	}

	agentID := game.PacmanID
	if !maximizer {
		agentID = 1
	}

	moves := gs.LegalMoves(agentID)
	scores := make([]float64, len(moves))
	for i, move := range moves {
		if maximizer {
			scores[i], _ = m.search(gs.Successor(agentID, move), depth, false)
		} else {
			scores[i], _ = m.search(gs.Successor(agentID, move), depth-1, true)
		}
	}

	best := scores[0]
	for _, score := range scores[1:] {
		if maximizer && score > best || !maximizer && score < best {
			best = score
		}
	}

	var ties []grid.Move
	for i, score := range scores {
		if score == best {
			ties = append(ties, moves[i])
		}
	}
	return best, ties[m.rng.Intn(len(ties))]
}
