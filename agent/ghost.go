package agent

import (
	"slices"

	"golang.org/x/exp/rand"

	"pacman/game"
	"pacman/grid"
)

// Distribution is a weighted set of candidate moves for one turn.
type Distribution struct {
	Moves   []grid.Move
	Weights []float64
}

// single wraps one certain move in a distribution.
func single(move grid.Move) Distribution {
	return Distribution{Moves: []grid.Move{move}, Weights: []float64{1}}
}

// uniform returns n equal weights.
func uniform(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}

// keep returns the moves that pass the filter.
func keep(moves []grid.Move, pass func(grid.Move) bool) []grid.Move {
	var kept []grid.Move
	for _, move := range moves {
		if pass(move) {
			kept = append(kept, move)
		}
	}
	return kept
}

// ghost is the base of the ghost agents: an assigned id, a private rng
// and the movement rules all ghosts share.
type ghost struct {
	id  int
	rng *rand.Rand
}

func (g *ghost) ID() int { return g.id }

func (g *ghost) Prepare(*game.Gamestate) {}

// sample draws one move from a distribution. An empty distribution
// stands still.
func (g *ghost) sample(d Distribution) grid.Move {
	if len(d.Moves) == 0 {
		return grid.Stop
	}
	total := 0.0
	for _, weight := range d.Weights {
		total += weight
	}
	target := g.rng.Float64() * total
	for i, weight := range d.Weights {
		if target < weight {
			return d.Moves[i]
		}
		target -= weight
	}
	return d.Moves[len(d.Moves)-1]
}

// validMoves lists the moves a ghost may take: never standing still and
// never reversing, unless a dead end makes reversing the only way out.
func (g *ghost) validMoves(gs *game.Gamestate) []grid.Move {
	moves := keep(gs.LegalMoves(g.id), func(move grid.Move) bool {
		return move != grid.Stop
	})
	if len(moves) == 1 {
		return moves
	}
	facing := gs.Facings[g.id]
	return keep(moves, func(move grid.Move) bool {
		return move != facing.Opposite()
	})
}

// RandomGhost wanders uniformly over its valid moves.
type RandomGhost struct{ ghost }

func NewRandomGhost(id int, rng *rand.Rand) *RandomGhost {
	return &RandomGhost{ghost{id: id, rng: rng}}
}

func (a *RandomGhost) Move(gs *game.Gamestate) grid.Move {
	return a.sample(a.Distribution(gs))
}

func (a *RandomGhost) Distribution(gs *game.Gamestate) Distribution {
	moves := a.validMoves(gs)
	return Distribution{Moves: moves, Weights: uniform(len(moves))}
}

// wanderShare is the probability mass a chasing ghost spreads evenly over
// all its valid moves. The rest goes to the moves that serve the chase.
const wanderShare = 0.2

// ChasingGhost closes in on pacman, or runs away while scared, with a
// slice of pure chance keeping it unpredictable.
type ChasingGhost struct{ ghost }

func NewChasingGhost(id int, rng *rand.Rand) *ChasingGhost {
	return &ChasingGhost{ghost{id: id, rng: rng}}
}

func (a *ChasingGhost) Move(gs *game.Gamestate) grid.Move {
	return a.sample(a.Distribution(gs))
}

// Distribution weighs every valid move by its share of wanderShare and
// splits the rest over the moves that shrink the manhattan distance to
// pacman the most, or stretch it while the ghost is scared.
func (a *ChasingGhost) Distribution(gs *game.Gamestate) Distribution {
	moves := a.validMoves(gs)
	pac, ok := gs.Pacman()
	if len(moves) == 0 || !ok {
		return Distribution{Moves: moves, Weights: uniform(len(moves))}
	}

	weights := make([]float64, len(moves))
	for i := range weights {
		weights[i] = wanderShare / float64(len(moves))
	}

	position := gs.Position(a.id)
	scared := gs.Timer(a.id) > 0
	distances := make([]int, len(moves))
	best := 0
	for i, move := range moves {
		distances[i] = grid.Manhattan(pac, position.Add(move.Vector()))
		if scared && distances[i] > distances[best] || !scared && distances[i] < distances[best] {
			best = i
		}
	}
	count := 0
	for _, distance := range distances {
		if distance == distances[best] {
			count++
		}
	}
	for i, distance := range distances {
		if distance == distances[best] {
			weights[i] += (1 - wanderShare) / float64(count)
		}
	}
	return Distribution{Moves: moves, Weights: weights}
}

// trackLength steers the length of a generated patrol loop. It is an aim,
// not a guarantee.
const trackLength = 10

// TrackGhost patrols a closed loop laid out before the game begins. When
// the planned move is blocked it looks for a way back onto the loop, and
// wanders until one shows up.
type TrackGhost struct {
	ghost
	moves     []grid.Move
	positions []grid.Vector
	index     int
	lost      bool
}

func NewTrackGhost(id int, rng *rand.Rand) *TrackGhost {
	return &TrackGhost{ghost: ghost{id: id, rng: rng}}
}

func (a *TrackGhost) Prepare(gs *game.Gamestate) {
	a.moves, a.positions = a.generateTrack(gs)
	a.index = 0
	a.lost = false
}

func (a *TrackGhost) Move(gs *game.Gamestate) grid.Move {
	return a.sample(a.Distribution(gs))
}

// Distribution returns the planned track move when nothing is in the way,
// and otherwise hunts for a move that rejoins the track. Each call stands
// for one turn: following the track advances the ghost's place on it.
func (a *TrackGhost) Distribution(gs *game.Gamestate) Distribution {
	moves := a.validMoves(gs)

	if !a.lost && slices.Contains(moves, a.moves[a.index]) {
		planned := a.moves[a.index]
		a.index = (a.index + 1) % len(a.moves)
		return single(planned)
	}

	// Rejoin the track wherever a move lands on it with the grain.
	position := gs.Position(a.id)
	var rejoining []grid.Move
	for _, move := range moves {
		landing := slices.Index(a.positions, position.Add(move.Vector()))
		if landing >= 0 && move != a.moves[landing].Opposite() {
			rejoining = append(rejoining, move)
		}
	}
	if len(rejoining) > 0 {
		move := rejoining[a.rng.Intn(len(rejoining))]
		a.lost = false
		a.index = slices.Index(a.positions, position.Add(move.Vector()))
		return single(move)
	}

	if len(moves) == 0 {
		return Distribution{}
	}
	a.lost = true
	return single(moves[a.rng.Intn(len(moves))])
}

// generateTrack walks a random closed loop from the ghost's start. A
// walled-in start yields a track of standing still.
func (a *TrackGhost) generateTrack(gs *game.Gamestate) ([]grid.Move, []grid.Vector) {
	start := gs.Position(a.id)

	var moves []grid.Move
	var positions []grid.Vector
	position, last := start, grid.Stop
	for position != start || len(positions) == 0 {
		options := a.trackOptions(gs, positions, start, position, last)
		if len(options) == 0 {
			return []grid.Move{grid.Stop}, []grid.Vector{start}
		}
		last = options[a.rng.Intn(len(options))]
		positions = append(positions, position)
		moves = append(moves, last)
		position = position.Add(last.Vector())
	}
	return moves, positions
}

// trackOptions narrows the legal moves for the next track step. Early
// steps keep momentum and prefer fresh cells away from the start. Later
// steps steer back towards it, and a loop that overstays is forced onto
// the quickest rejoin.
func (a *TrackGhost) trackOptions(gs *game.Gamestate, positions []grid.Vector, start, position grid.Vector, last grid.Move) []grid.Move {
	options := keep(gs.LegalMovesAt(position), func(move grid.Move) bool {
		return move != grid.Stop
	})
	index := len(positions)

	if len(options) > 1 {
		options = keep(options, func(move grid.Move) bool {
			return move != last.Opposite()
		})
	}

	if len(options) > 1 && index < 2*trackLength {
		if fresh := keep(options, func(move grid.Move) bool {
			return !slices.Contains(positions, position.Add(move.Vector()))
		}); len(fresh) > 0 {
			options = fresh
		}
	}

	// Passing the second track cell again midway is the moment to not
	// slip back into the start early.
	if len(options) > 1 && 2*index > trackLength && index < 4*trackLength && position == positions[1] {
		if onward := keep(options, func(move grid.Move) bool {
			return position.Add(move.Vector()) != start
		}); len(onward) > 0 {
			options = onward
		}
	}

	if len(options) > 1 {
		distance := grid.Manhattan(start, position)
		switch {
		case 2*index < trackLength:
			if further := keep(options, func(move grid.Move) bool {
				return grid.Manhattan(start, position.Add(move.Vector())) >= distance
			}); len(further) > 0 {
				options = further
			}
		case index < 4*trackLength:
			if closer := keep(options, func(move grid.Move) bool {
				return grid.Manhattan(start, position.Add(move.Vector())) <= distance
			}); len(closer) > 0 {
				options = closer
			}
		default:
			best := -1
			var rejoin grid.Move
			for _, move := range options {
				if i := slices.Index(positions, position.Add(move.Vector())); i >= 0 && (best == -1 || i < best) {
					best, rejoin = i, move
				}
			}
			if best >= 0 {
				options = []grid.Move{rejoin}
			}
		}
	}
	return options
}

// Ghosts builds one agent per ghost of a layout, with ids following the
// board order the gamestate assigns. All ghosts share the rng.
func Ghosts(placements []game.GhostPlacement, rng *rand.Rand) []Agent {
	agents := make([]Agent, 0, len(placements))
	for i, placement := range placements {
		id := i + 1
		switch placement.Kind {
		case game.TrackGhost:
			agents = append(agents, NewTrackGhost(id, rng))
		case game.ChasingGhost:
			agents = append(agents, NewChasingGhost(id, rng))
		default:
			agents = append(agents, NewRandomGhost(id, rng))
		}
	}
	return agents
}
