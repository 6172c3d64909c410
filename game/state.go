package game

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"pacman/grid"
)

const (
	// PacmanID is the agent index of pacman. Ghosts use indices 1 and up.
	PacmanID = 0

	// ScaredTime is the number of moves ghosts stay scared after pacman
	// eats a pellet.
	ScaredTime = 40

	ScoreDot         = 10
	ScoreAllDots     = 500
	ScorePellet      = 5
	ScoreGhost       = 200
	ScoreTickPenalty = -1
	ScoreDiePenalty  = -500

	// MaxTicks is the turn limit. When it is reached pacman is destroyed
	// and the game ends.
	MaxTicks = 100
)

// Gamestate holds the full state of one game: the static layout (walls and
// remaining dots and pellets), the agents, their scared timers, the score
// and the turn counter. Agent positions are pointers so that a dead agent
// is a nil entry rather than a sentinel coordinate.
type Gamestate struct {
	statics *grid.Grid[Cell]
	Agents  []*grid.Vector // current agent locations, nil when dead
	Starts  []grid.Vector  // start locations, for ghost respawns
	Facings []grid.Move    // the way each agent is facing
	timers  []int          // scared timers per agent (pacman's is unused)
	Score   int
	ticks   int
}

// NewGamestate builds a fresh game from a layout grid. When agents is nil
// the positions are taken from the pacman and ghost cells of the layout,
// pacman first, then ghosts in column-major scan order. The floor beneath
// each agent is cleared. Panics when no pacman position results.
func NewGamestate(statics *grid.Grid[Cell], agents []grid.Vector) *Gamestate {
	statics = statics.Copy()
	if agents == nil {
		agents = append(agents, statics.List(Pacman)...)
		agents = append(agents, statics.List(Ghost)...)
	}
	if len(agents) == 0 {
		panic("game needs at least a pacman agent")
	}

	positions := make([]*grid.Vector, len(agents))
	for i := range agents {
		pos := agents[i]
		positions[i] = &pos
		statics.Set(pos, Empty)
	}

	facings := make([]grid.Move, len(agents))
	for i := range facings {
		facings[i] = grid.Stop
	}

	return &Gamestate{
		statics: statics,
		Agents:  positions,
		Starts:  slices.Clone(agents),
		Facings: facings,
		timers:  make([]int, len(agents)),
	}
}

// Copy returns an independent deep copy of the gamestate.
func (gs *Gamestate) Copy() *Gamestate {
	agents := make([]*grid.Vector, len(gs.Agents))
	for i, pos := range gs.Agents {
		if pos != nil {
			p := *pos
			agents[i] = &p
		}
	}
	return &Gamestate{
		statics: gs.statics.Copy(),
		Agents:  agents,
		Starts:  slices.Clone(gs.Starts),
		Facings: slices.Clone(gs.Facings),
		timers:  slices.Clone(gs.timers),
		Score:   gs.Score,
		ticks:   gs.ticks,
	}
}

// Shape returns the layout dimensions.
func (gs *Gamestate) Shape() grid.Vector {
	return gs.statics.Shape()
}

// Walls is a boolean view of the wall cells.
func (gs *Gamestate) Walls() grid.Indicator[Cell] {
	return gs.statics.Indicate(Wall)
}

// Dots is a boolean view of the remaining dot cells.
func (gs *Gamestate) Dots() grid.Indicator[Cell] {
	return gs.statics.Indicate(Dot)
}

// Pellets is a boolean view of the remaining pellet cells.
func (gs *Gamestate) Pellets() grid.Indicator[Cell] {
	return gs.statics.Indicate(Pellet)
}

// NumAgents returns the number of agents, dead ones included.
func (gs *Gamestate) NumAgents() int {
	return len(gs.Agents)
}

// Alive reports whether the given agent is still on the board.
func (gs *Gamestate) Alive(agentID int) bool {
	return gs.Agents[agentID] != nil
}

// Position returns the given agent's location. Panics when the agent is
// dead, so check Alive first where that can happen.
func (gs *Gamestate) Position(agentID int) grid.Vector {
	pos := gs.Agents[agentID]
	if pos == nil {
		panic(fmt.Sprintf("agent %d is dead", agentID))
	}
	return *pos
}

// Pacman returns pacman's location, with ok false when pacman is dead.
func (gs *Gamestate) Pacman() (grid.Vector, bool) {
	if gs.Agents[PacmanID] == nil {
		return grid.Vector{}, false
	}
	return *gs.Agents[PacmanID], true
}

// Timer returns the given agent's scared timer.
func (gs *Gamestate) Timer(agentID int) int {
	return gs.timers[agentID]
}

// Ticks returns the current turn number.
func (gs *Gamestate) Ticks() int {
	return gs.ticks
}

// ApplyMove executes one move for one agent, in place. The agent turns and
// steps, its scared timer counts down, pacman pays the per-move penalty,
// and whatever is on the destination cell is dealt with: ghost encounters
// are resolved, dots and pellets are eaten. Moves by dead agents are
// ignored. Walking into a wall breaks the rules and panics, after charging
// pacman the death penalty.
func (gs *Gamestate) ApplyMove(agentID int, move grid.Move) {
	if gs.Agents[agentID] == nil {
		return
	}

	gs.Facings[agentID] = move

	next := gs.Agents[agentID].Add(move.Vector())
	gs.Agents[agentID] = &next

	if gs.timers[agentID] > 0 {
		gs.timers[agentID]--
	}

	if agentID == PacmanID {
		gs.Score += ScoreTickPenalty
	}

	if gs.Walls().At(next) {
		if agentID == PacmanID {
			gs.Score += ScoreDiePenalty
		}
		panic(fmt.Sprintf("agent %d walked into a wall at %v", agentID, next))
	}

	if agentID == PacmanID {
		if ghostID, ok := gs.ghostAt(next); ok {
			gs.resolveEncounter(ghostID)
		}

		if gs.Dots().At(next) {
			gs.statics.Set(next, Empty)
			gs.Score += ScoreDot
			if !gs.Dots().Any() {
				gs.Score += ScoreAllDots
			}
		}

		if gs.Pellets().At(next) {
			gs.statics.Set(next, Empty)
			gs.Score += ScorePellet
			for id := PacmanID + 1; id < len(gs.timers); id++ {
				gs.timers[id] = ScaredTime
			}
		}
	} else if pac, ok := gs.Pacman(); ok && next == pac {
		gs.resolveEncounter(agentID)
	}
}

// ghostAt returns the id of the first living ghost standing at v.
func (gs *Gamestate) ghostAt(v grid.Vector) (int, bool) {
	for id := PacmanID + 1; id < len(gs.Agents); id++ {
		if pos := gs.Agents[id]; pos != nil && *pos == v {
			return id, true
		}
	}
	return 0, false
}

// resolveEncounter settles a collision between pacman and a ghost. A
// scared ghost dies and pacman scores, otherwise pacman dies.
func (gs *Gamestate) resolveEncounter(ghostID int) {
	if gs.timers[ghostID] > 0 {
		gs.Kill(ghostID)
		gs.Score += ScoreGhost
	} else {
		gs.Kill(PacmanID)
		gs.Score += ScoreDiePenalty
	}
}

// CanMove reports whether the given agent may move this turn. The agent
// must be alive and the game still running, and a scared agent only moves
// on even turns, which halves its speed.
func (gs *Gamestate) CanMove(agentID int) bool {
	return gs.Agents[agentID] != nil &&
		(gs.timers[agentID] == 0 || gs.ticks%2 == 0) &&
		!gs.GameOver()
}

// LegalMovesAt returns the moves possible from a location, in the fixed
// order of grid.Moves. Stop is always legal.
func (gs *Gamestate) LegalMovesAt(v grid.Vector) []grid.Move {
	walls := gs.Walls()
	moves := make([]grid.Move, 0, len(grid.Moves))
	for _, move := range grid.Moves {
		if !walls.At(v.Add(move.Vector())) {
			moves = append(moves, move)
		}
	}
	return moves
}

// LegalMoves returns the moves possible for an agent from its current
// location.
func (gs *Gamestate) LegalMoves(agentID int) []grid.Move {
	return gs.LegalMovesAt(gs.Position(agentID))
}

// Win reports whether pacman has won, which is the case when all dots
// have been eaten.
func (gs *Gamestate) Win() bool {
	return !gs.Loss() && !gs.Dots().Any()
}

// Loss reports whether pacman has lost, which is the case when pacman is
// dead.
func (gs *Gamestate) Loss() bool {
	return gs.Agents[PacmanID] == nil
}

// GameOver reports whether the game has ended either way.
func (gs *Gamestate) GameOver() bool {
	return gs.Win() || gs.Loss()
}

// Tick advances the turn counter. Reaching the turn limit destroys pacman
// and ends the game.
func (gs *Gamestate) Tick() {
	gs.ticks++

	if gs.ticks == MaxTicks {
		gs.Destroy(PacmanID)
		log.Warn().Msgf("max number of ticks reached (%d), pacman was destroyed", MaxTicks)
	}
}

// Kill removes pacman from the board, or sends a ghost back to its start
// with its scared timer cleared.
func (gs *Gamestate) Kill(agentID int) {
	if agentID == PacmanID {
		gs.Agents[agentID] = nil
	} else {
		start := gs.Starts[agentID]
		gs.Agents[agentID] = &start
		gs.timers[agentID] = 0
	}
}

// Destroy removes an agent from the board outright. Unlike Kill, ghosts do
// not respawn, and pacman is charged the death penalty.
func (gs *Gamestate) Destroy(agentID int) {
	gs.Agents[agentID] = nil
	if agentID == PacmanID {
		gs.Score += ScoreDiePenalty
	}
}

// Successor returns a copy of the gamestate in which the given agent has
// executed the given move.
func (gs *Gamestate) Successor(agentID int, move grid.Move) *Gamestate {
	successor := gs.Copy()
	successor.ApplyMove(agentID, move)
	return successor
}

// Successors returns the gamestates reachable by the given agent in one
// move.
func (gs *Gamestate) Successors(agentID int) []*Gamestate {
	moves := gs.LegalMoves(agentID)
	successors := make([]*Gamestate, len(moves))
	for i, move := range moves {
		successors[i] = gs.Successor(agentID, move)
	}
	return successors
}

// String renders the board with the agents overlaid, rows on lines and the
// score underneath. Scared ghosts render as S.
func (gs *Gamestate) String() string {
	layout := gs.statics.Copy()
	if pac, ok := gs.Pacman(); ok {
		layout.Set(pac, Pacman)
	}
	for id := PacmanID + 1; id < len(gs.Agents); id++ {
		pos := gs.Agents[id]
		if pos == nil {
			continue
		}
		if gs.timers[id] > 0 {
			layout.Set(*pos, ScaredGhost)
		} else {
			layout.Set(*pos, Ghost)
		}
	}
	return fmt.Sprintf("%v\nScore: %d", layout.Transpose().MirrorHor(), gs.Score)
}
