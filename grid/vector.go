// Package grid provides the spatial primitives for the game: integer
// vectors, the move alphabet, and a dense 2D grid with cached lookups.
package grid

import "math"

// Vector is an integer coordinate pair. It doubles as a position and as a
// displacement, with the origin at the bottom-left corner and y growing
// upward.
type Vector struct {
	X, Y int
}

var (
	// Zero is the origin and the null displacement.
	Zero = Vector{0, 0}
	// Unit is the all-ones vector, handy for inset arithmetic.
	Unit = Vector{1, 1}
)

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// Sub returns the component-wise difference of v and w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

// Scale returns v with both components multiplied by k.
func (v Vector) Scale(k int) Vector {
	return Vector{v.X * k, v.Y * k}
}

// Abs returns v with both components made non-negative.
func (v Vector) Abs() Vector {
	x, y := v.X, v.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return Vector{x, y}
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Vector) int {
	d := a.Sub(b).Abs()
	return d.X + d.Y
}

// Euclidean returns the L2 distance between a and b.
func Euclidean(a, b Vector) float64 {
	d := a.Sub(b)
	return math.Sqrt(float64(d.X*d.X + d.Y*d.Y))
}
