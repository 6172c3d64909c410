// Package game implements the world state and rules: the layout grid,
// agent bookkeeping, scoring, and the turn logic that advances a game.
package game

import "fmt"

// Cell is a single square of the static layout. The constant values double
// as the layout text symbols.
type Cell rune

const (
	Empty       Cell = ' '
	Wall        Cell = '%'
	Pacman      Cell = 'P'
	Ghost       Cell = 'G'
	ScaredGhost Cell = 'S'
	Dot         Cell = '.'
	Pellet      Cell = 'o'
)

func (c Cell) String() string {
	return string(rune(c))
}

// CellFromSymbol converts one character of layout text to a Cell. The
// digits 1 to 3 mark ghosts of a specific kind and read as plain ghost
// cells here; GhostKindFromSymbol recovers the kind.
func CellFromSymbol(symbol rune) (Cell, error) {
	switch symbol {
	case ' ', '%', 'P', 'G', 'S', '.', 'o':
		return Cell(symbol), nil
	case '1', '2', '3':
		return Ghost, nil
	}
	return 0, fmt.Errorf("unknown layout symbol %q", symbol)
}

// GhostKind selects the behavior of a ghost placed by a layout.
type GhostKind int

const (
	NoGhost GhostKind = iota
	TrackGhost
	RandomGhost
	ChasingGhost
)

// GhostKindFromSymbol converts one character of layout text to a GhostKind.
// Characters that do not place a ghost yield NoGhost.
func GhostKindFromSymbol(symbol rune) GhostKind {
	switch symbol {
	case '1':
		return TrackGhost
	case '2', 'G':
		return RandomGhost
	case '3':
		return ChasingGhost
	}
	return NoGhost
}

func (k GhostKind) String() string {
	switch k {
	case TrackGhost:
		return "track"
	case RandomGhost:
		return "random"
	case ChasingGhost:
		return "chasing"
	}
	return "none"
}
