package grid

// Move is one of the five actions an agent can take on a turn. The four
// directions come first, paired so that each even index is followed by its
// opposite, which is what Opposite relies on.
type Move int

const (
	Up Move = iota
	Down
	Right
	Left
	Stop
)

// Moves lists every move, Stop included, in a fixed enumeration order.
var Moves = []Move{Up, Down, Right, Left, Stop}

// Directions lists the four directional moves, excluding Stop.
var Directions = []Move{Up, Down, Right, Left}

var moveVectors = [...]Vector{
	Up:    {0, 1},
	Down:  {0, -1},
	Right: {1, 0},
	Left:  {-1, 0},
	Stop:  {0, 0},
}

var moveNames = [...]string{
	Up:    "up",
	Down:  "down",
	Right: "right",
	Left:  "left",
	Stop:  "stop",
}

// Vector returns the unit displacement of m. Stop maps to the zero vector.
func (m Move) Vector() Vector {
	return moveVectors[m]
}

// Opposite returns the move that undoes m. Stop is its own opposite. The
// pairing of the direction constants makes this a pure index flip.
func (m Move) Opposite() Move {
	if m == Stop {
		return Stop
	}
	return m + 1 - 2*(m%2)
}

func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return "invalid"
	}
	return moveNames[m]
}
