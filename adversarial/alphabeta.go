package adversarial

import (
	"math"

	"pacman/game"
	"pacman/grid"
)

// AlphaBeta searches the same tree as Minimax with pruning and no
// randomness: among equally valued moves the first one found wins.
func AlphaBeta(gs *game.Gamestate, depth int, evaluate game.Evaluate) (float64, grid.Move) {
	ab := &alphabeta{evaluate: evaluate}
	return ab.search(gs, depth, true, math.Inf(-1), math.Inf(1))
}

type alphabeta struct {
	evaluate game.Evaluate
}

func (ab *alphabeta) search(gs *game.Gamestate, depth int, maximizer bool, alpha, beta float64) (float64, grid.Move) {
	if terminal(gs, depth) {
		return ab.evaluate(gs), grid.Stop
	}

	if maximizer {
		best, bestMove := math.Inf(-1), grid.Stop
		for _, move := range gs.LegalMoves(game.PacmanID) {
			score, _ := ab.search(gs.Successor(game.PacmanID, move), depth, false, alpha, beta)
			if score > best {
				best, bestMove = score, move
			}
			alpha = math.Max(best, alpha)
			if beta <= alpha {
				break
			}
		}
		return best, bestMove
	}

	best, bestMove := math.Inf(1), grid.Stop
	for _, move := range gs.LegalMoves(1) {
		score, _ := ab.search(gs.Successor(1, move), depth-1, true, alpha, beta)
		if score < best {
			best, bestMove = score, move
		}
		beta = math.Min(best, beta)
		if beta <= alpha {
			break
		}
	}
	return best, bestMove
}
