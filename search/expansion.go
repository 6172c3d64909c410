package search

import "pacman/grid"

// Expansion records the order in which a representation's goal test
// visits board positions. Representations embed it and call Record from
// IsGoal; agents read the result back for diagnostics.
type Expansion struct {
	count int
	order *grid.Grid[int]
}

// NewExpansion returns a recorder for a board of the given shape with
// every cell marked -1, never visited.
func NewExpansion(shape grid.Vector) *Expansion {
	return &Expansion{order: grid.NewGridFill(shape, -1)}
}

// Record notes that a position was goal-tested. Positions off the board
// still count but leave no mark.
func (e *Expansion) Record(v grid.Vector) {
	if e.order.Contains(v) {
		e.order.Set(v, e.count)
	}
	e.count++
}

// Count returns the number of goal tests so far.
func (e *Expansion) Count() int {
	return e.count
}

// Order returns the board with each cell holding the index of its latest
// goal test, -1 where never tested.
func (e *Expansion) Order() *grid.Grid[int] {
	return e.order
}
