package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pacman/agent"
	"pacman/game"
)

// Local drives a single game on one authoritative gamestate. Agents only
// ever see copies, so nothing they do can corrupt the game.
type Local struct {
	id     uuid.UUID
	state  *game.Gamestate
	agents []agent.Agent
}

func NewLocal(gs *game.Gamestate, agents []agent.Agent) *Local {
	if len(agents) != gs.NumAgents() {
		panic("number of agents does not match the gamestate")
	}
	return &Local{id: uuid.New(), state: gs.Copy(), agents: agents}
}

// Run plays the game to its end. Every round each agent that may move is
// polled on a private copy and its move applied, then the clock ticks.
// Run returns the final state and the game's stats.
func (l *Local) Run() (*game.Gamestate, GameStats) {
	log.Info().Msgf("game %s starting with %d agents", l.id, len(l.agents))

	for _, a := range l.agents {
		a.Prepare(l.state.Copy())
	}

	moves := 0
	for !l.state.GameOver() {
		for _, a := range l.agents {
			if l.state.GameOver() {
				break
			}
			if !l.state.CanMove(a.ID()) {
				continue
			}
			move := a.Move(l.state.Copy())
			l.state.ApplyMove(a.ID(), move)
			moves++
		}
		l.state.Tick()
	}

	stats := GameStats{
		ID:    l.id,
		Score: l.state.Score,
		Win:   l.state.Win(),
		Ticks: l.state.Ticks(),
		Moves: moves,
	}
	log.Info().Msgf("game %s over after %d ticks: win=%t score=%d", l.id, stats.Ticks, stats.Win, stats.Score)
	return l.state.Copy(), stats
}
