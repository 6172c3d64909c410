package agent

import (
	"golang.org/x/exp/rand"

	"pacman/adversarial"
	"pacman/game"
	"pacman/grid"
)

// lookahead carries what every game tree agent needs: how many rounds
// deep to search and how to value the horizon.
type lookahead struct {
	pacman
	depth    int
	evaluate game.Evaluate
}

// Option configures a game tree agent.
type Option func(*lookahead)

// WithDepth sets the number of rounds the agent looks ahead. The default
// is 2.
func WithDepth(depth int) Option {
	return func(l *lookahead) { l.depth = depth }
}

// WithEvaluate sets the evaluation applied at the search horizon. The
// default is the plain game score.
func WithEvaluate(evaluate game.Evaluate) Option {
	return func(l *lookahead) { l.evaluate = evaluate }
}

func newLookahead(options ...Option) lookahead {
	l := lookahead{depth: 2, evaluate: game.ScoreEvaluate}
	for _, option := range options {
		option(&l)
	}
	return l
}

// MinimaxAgent plays the minimax move against the first ghost, breaking
// ties between equally good moves with its rng.
type MinimaxAgent struct {
	lookahead
	rng *rand.Rand
}

func NewMinimax(rng *rand.Rand, options ...Option) *MinimaxAgent {
	return &MinimaxAgent{lookahead: newLookahead(options...), rng: rng}
}

func (a *MinimaxAgent) Move(gs *game.Gamestate) grid.Move {
	_, move := adversarial.Minimax(gs, a.depth, a.evaluate, a.rng)
	return move
}

// AlphaBetaAgent plays the minimax move found with alpha beta pruning.
type AlphaBetaAgent struct{ lookahead }

func NewAlphaBeta(options ...Option) *AlphaBetaAgent {
	return &AlphaBetaAgent{lookahead: newLookahead(options...)}
}

func (a *AlphaBetaAgent) Move(gs *game.Gamestate) grid.Move {
	_, move := adversarial.AlphaBeta(gs, a.depth, a.evaluate)
	return move
}

// MultiAlphaBetaAgent searches the pruned game tree against every ghost
// on the board instead of just the first.
type MultiAlphaBetaAgent struct{ lookahead }

func NewMultiAlphaBeta(options ...Option) *MultiAlphaBetaAgent {
	return &MultiAlphaBetaAgent{lookahead: newLookahead(options...)}
}

func (a *MultiAlphaBetaAgent) Move(gs *game.Gamestate) grid.Move {
	_, move := adversarial.MultiAlphaBeta(gs, a.depth, a.evaluate)
	return move
}
