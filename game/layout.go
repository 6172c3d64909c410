package game

import (
	"fmt"
	"slices"

	"pacman/grid"
)

// GhostPlacement records where a layout puts a ghost and which behavior it
// asked for. Placements are ordered by position, matching the agent ids
// that NewGamestate assigns.
type GhostPlacement struct {
	Kind     GhostKind
	Position grid.Vector
}

// Layout is a parsed board: the static cell grid plus the ghost kinds the
// layout text requested.
type Layout struct {
	Grid   *grid.Grid[Cell]
	Ghosts []GhostPlacement
}

// ParseLayout converts layout text to a Layout. Each string is one row as
// read on screen, top row first. The text indexes from the top left while
// the game's origin is the bottom left with y growing upward, so the
// parsed grid is transposed and mirrored to compensate. Rows must be
// non-empty and of equal length, and every symbol must be known.
func ParseLayout(rows []string) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, fmt.Errorf("layout has no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return Layout{}, fmt.Errorf("layout rows are empty")
	}

	byRow := make([][]Cell, len(rows))
	var ghosts []GhostPlacement
	for r, row := range rows {
		if len(row) != width {
			return Layout{}, fmt.Errorf("layout row %d has length %d, want %d", r, len(row), width)
		}
		byRow[r] = make([]Cell, 0, width)
		for c, symbol := range row {
			cell, err := CellFromSymbol(symbol)
			if err != nil {
				return Layout{}, fmt.Errorf("layout row %d column %d: %w", r, c, err)
			}
			byRow[r] = append(byRow[r], cell)

			if kind := GhostKindFromSymbol(symbol); kind != NoGhost {
				ghosts = append(ghosts, GhostPlacement{
					Kind:     kind,
					Position: grid.Vector{X: c, Y: len(rows) - 1 - r},
				})
			}
		}
	}

	// Keep ghost order aligned with the column-major agent scan.
	slices.SortFunc(ghosts, func(a, b GhostPlacement) int {
		if a.Position.X != b.Position.X {
			return a.Position.X - b.Position.X
		}
		return a.Position.Y - b.Position.Y
	})

	return Layout{
		Grid:   grid.NewGrid(byRow).Transpose().MirrorVer(),
		Ghosts: ghosts,
	}, nil
}

// LoadLayout returns one of the built-in layouts by name.
func LoadLayout(name string) (Layout, error) {
	rows, ok := builtinLayouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q", name)
	}
	return ParseLayout(rows)
}

// LayoutNames returns the names of the built-in layouts, sorted.
func LayoutNames() []string {
	names := make([]string, 0, len(builtinLayouts))
	for name := range builtinLayouts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// The built-in boards. The text uses the Cell symbols, plus the digits 1
// to 3 to place track, random and chasing ghosts.
var builtinLayouts = map[string][]string{
	// A single corridor folded over itself; exactly one route to the dot.
	"tinyMaze": {
		"%%%%%%%",
		"%    P%",
		"% %%%%%",
		"%     %",
		"%%%%% %",
		"%.    %",
		"%%%%%%%",
	},
	// A longer fold of the same idea.
	"mediumMaze": {
		"%%%%%%%%%%%%%",
		"%P          %",
		"%%%%%%%%%%% %",
		"%           %",
		"% %%%%%%%%%%%",
		"%           %",
		"%%%%%%%%%%% %",
		"%           %",
		"% %%%%%%%%%%%",
		"%.          %",
		"%%%%%%%%%%%%%",
	},
	// An open room with a dot in each corner.
	"tinyCorners": {
		"%%%%%%%%",
		"%.    .%",
		"%      %",
		"%      %",
		"%      %",
		"%  P   %",
		"%.    .%",
		"%%%%%%%%",
	},
	// A small playable board: two pellets, a random and a chasing ghost.
	"smallClassic": {
		"%%%%%%%%%%%%%%%%%%%%",
		"%o...%........%...o%",
		"%.%%.%.%%%%%%.%.%%.%",
		"%.......2  3.......%",
		"%.%%.%.%%%%%%.%.%%.%",
		"%....%...P....%....%",
		"%%%%%%%%%%%%%%%%%%%%",
	},
	// A taller board with pellets in all four corners, a track ghost and
	// a random ghost.
	"mediumClassic": {
		"%%%%%%%%%%%%%%%%%%%%",
		"%o...%........%...o%",
		"%.%%.%.%%%%%%.%.%%.%",
		"%.%..............%.%",
		"%.%.%%%.1  2.%%%.%.%",
		"%.%..............%.%",
		"%.%%.%.%%%%%%.%.%%.%",
		"%o...%...P....%...o%",
		"%%%%%%%%%%%%%%%%%%%%",
	},
}
