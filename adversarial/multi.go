package adversarial

import (
	"math"

	"pacman/game"
	"pacman/grid"
)

// MultiAlphaBeta extends the pruned search to every ghost on the board:
// all ghosts answer in turn within one round, and the depth drops only
// when the last of them has moved.
func MultiAlphaBeta(gs *game.Gamestate, depth int, evaluate game.Evaluate) (float64, grid.Move) {
	m := &multi{evaluate: evaluate}
	return m.alphaScore(gs, math.Inf(-1), math.Inf(1), depth)
}

type multi struct {
	evaluate game.Evaluate
}

func (m *multi) alphaScore(gs *game.Gamestate, alpha, beta float64, depth int) (float64, grid.Move) {
	if gs.Win() || gs.Loss() {
		return m.evaluate(gs), grid.Stop
	}

	score := math.Inf(-1)
	moves := gs.LegalMoves(game.PacmanID)
	bestMove := moves[0]

	for _, move := range moves {
		former := score
		successor := gs.Successor(game.PacmanID, move)
		if successor.Win() || successor.Loss() || depth == 0 {
			score = math.Max(score, m.evaluate(successor))
		} else {
			score = math.Max(score, m.betaScore(successor, alpha, beta, 1, depth))
		}

		if score > beta {
			return score, move
		}
		alpha = math.Max(alpha, score)
		if score != former {
			bestMove = move
		}
	}
	return score, bestMove
}

func (m *multi) betaScore(gs *game.Gamestate, alpha, beta float64, agentID, depth int) float64 {
	if gs.Win() || gs.Loss() {
		return m.evaluate(gs)
	}

	score := math.Inf(1)
	hasDecremented := false

	for _, move := range gs.LegalMoves(agentID) {
		successor := gs.Successor(agentID, move)
		switch {
		case depth == 0 || successor.Win() || successor.Loss():
			score = math.Min(score, m.evaluate(successor))
		case agentID == gs.NumAgents()-1:
			// The round ends with the last ghost; spend one depth for the
			// whole level, not once per move.
			if !hasDecremented {
				depth--
				hasDecremented = true
			}
			if depth == 0 {
				score = math.Min(score, m.evaluate(successor))
			} else {
				deeper, _ := m.alphaScore(successor, alpha, beta, depth)
				score = math.Min(score, deeper)
			}
		default:
			score = math.Min(score, m.betaScore(successor, alpha, beta, agentID+1, depth))
		}

		if score < alpha {
			return score
		}
		beta = math.Min(beta, score)
	}
	return score
}
