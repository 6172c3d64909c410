package grid

import (
	"fmt"
	"strings"
)

// Grid is a dense rectangular container addressed by Vector, stored in
// column-major order so cells[x][y] reads naturally as (x, y). Lookups of
// every cell holding a given value are cached until the next Set.
type Grid[T comparable] struct {
	cells [][]T
	lists map[T][]Vector
}

// NewGrid builds a grid from column-major cell data. The columns are deep
// copied so the caller keeps ownership of its slices. Panics if the columns
// are not all the same length.
func NewGrid[T comparable](columns [][]T) *Grid[T] {
	if len(columns) == 0 {
		panic("grid needs at least one column")
	}
	height := len(columns[0])
	cells := make([][]T, len(columns))
	for x, column := range columns {
		if len(column) != height {
			panic("grid columns must all have the same length")
		}
		cells[x] = make([]T, height)
		copy(cells[x], column)
	}
	return &Grid[T]{cells: cells, lists: map[T][]Vector{}}
}

// NewGridFill builds a shape.X by shape.Y grid with every cell set to fill.
func NewGridFill[T comparable](shape Vector, fill T) *Grid[T] {
	if shape.X <= 0 || shape.Y <= 0 {
		panic("grid shape must be positive in both dimensions")
	}
	cells := make([][]T, shape.X)
	for x := range cells {
		cells[x] = make([]T, shape.Y)
		for y := range cells[x] {
			cells[x][y] = fill
		}
	}
	return &Grid[T]{cells: cells, lists: map[T][]Vector{}}
}

// Shape returns the grid dimensions as a (width, height) vector.
func (g *Grid[T]) Shape() Vector {
	return Vector{len(g.cells), len(g.cells[0])}
}

// Contains reports whether v addresses a cell inside the grid.
func (g *Grid[T]) Contains(v Vector) bool {
	return v.X >= 0 && v.X < len(g.cells) && v.Y >= 0 && v.Y < len(g.cells[0])
}

// At returns the cell at v. The second result is false when v lies outside
// the grid, in which case the first is the zero value.
func (g *Grid[T]) At(v Vector) (T, bool) {
	if !g.Contains(v) {
		var zero T
		return zero, false
	}
	return g.cells[v.X][v.Y], true
}

// Set writes value into the cell at v and drops every cached listing, since
// any of them may now be stale. Panics if v is outside the grid.
func (g *Grid[T]) Set(v Vector, value T) {
	if !g.Contains(v) {
		panic(fmt.Sprintf("set outside grid: %v", v))
	}
	g.cells[v.X][v.Y] = value
	g.lists = map[T][]Vector{}
}

// List returns the coordinates of every cell holding value, in column-major
// scan order. The result is cached until the grid is next mutated; callers
// must not modify it.
func (g *Grid[T]) List(value T) []Vector {
	if cached, ok := g.lists[value]; ok {
		return cached
	}
	var coords []Vector
	for x, column := range g.cells {
		for y, cell := range column {
			if cell == value {
				coords = append(coords, Vector{x, y})
			}
		}
	}
	g.lists[value] = coords
	return coords
}

// Count returns how many cells hold value.
func (g *Grid[T]) Count(value T) int {
	return len(g.List(value))
}

// Indicate returns a boolean view of the grid that answers "does this cell
// hold value". The view reads through to the grid, so later mutations are
// always reflected.
func (g *Grid[T]) Indicate(value T) Indicator[T] {
	return Indicator[T]{g: g, value: value}
}

// Copy returns an independent grid with the same cells. Caches are not
// carried over.
func (g *Grid[T]) Copy() *Grid[T] {
	return NewGrid(g.cells)
}

// Equal reports whether g and other have identical shape and cells.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g.Shape() != other.Shape() {
		return false
	}
	for x, column := range g.cells {
		for y, cell := range column {
			if cell != other.cells[x][y] {
				return false
			}
		}
	}
	return true
}

// Transpose returns a new grid with x and y swapped.
func (g *Grid[T]) Transpose() *Grid[T] {
	shape := g.Shape()
	cells := make([][]T, shape.Y)
	for y := range cells {
		cells[y] = make([]T, shape.X)
		for x := range cells[y] {
			cells[y][x] = g.cells[x][y]
		}
	}
	return &Grid[T]{cells: cells, lists: map[T][]Vector{}}
}

// MirrorHor returns a new grid flipped along the vertical axis, reversing
// the column order.
func (g *Grid[T]) MirrorHor() *Grid[T] {
	shape := g.Shape()
	cells := make([][]T, shape.X)
	for x := range cells {
		cells[x] = make([]T, shape.Y)
		copy(cells[x], g.cells[shape.X-1-x])
	}
	return &Grid[T]{cells: cells, lists: map[T][]Vector{}}
}

// MirrorVer returns a new grid flipped along the horizontal axis, reversing
// each column.
func (g *Grid[T]) MirrorVer() *Grid[T] {
	shape := g.Shape()
	cells := make([][]T, shape.X)
	for x := range cells {
		cells[x] = make([]T, shape.Y)
		for y := range cells[x] {
			cells[x][y] = g.cells[x][shape.Y-1-y]
		}
	}
	return &Grid[T]{cells: cells, lists: map[T][]Vector{}}
}

// String renders one column per line, cells separated by spaces. Callers
// that want rows on lines (the usual reading orientation) should transpose
// and mirror first.
func (g *Grid[T]) String() string {
	var b strings.Builder
	for x, column := range g.cells {
		if x > 0 {
			b.WriteByte('\n')
		}
		for y, cell := range column {
			if y > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fmt.Sprint(cell))
		}
	}
	return b.String()
}

// Indicator is a read-only boolean projection of a grid onto a single
// value. It holds no cell data of its own.
type Indicator[T comparable] struct {
	g     *Grid[T]
	value T
}

// At reports whether the cell at v holds the indicated value. Coordinates
// outside the grid report false.
func (in Indicator[T]) At(v Vector) bool {
	cell, ok := in.g.At(v)
	return ok && cell == in.value
}

// Contains reports whether v addresses a cell inside the underlying grid.
func (in Indicator[T]) Contains(v Vector) bool {
	return in.g.Contains(v)
}

// List returns the coordinates of every matching cell. The slice is shared
// with the grid's cache and must not be modified.
func (in Indicator[T]) List() []Vector {
	return in.g.List(in.value)
}

// Len returns the number of matching cells.
func (in Indicator[T]) Len() int {
	return in.g.Count(in.value)
}

// Any reports whether at least one cell matches.
func (in Indicator[T]) Any() bool {
	return in.Len() > 0
}

// Shape returns the dimensions of the underlying grid.
func (in Indicator[T]) Shape() Vector {
	return in.g.Shape()
}
