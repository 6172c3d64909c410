package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector{2, 3}
	b := Vector{-1, 5}

	require.Equal(t, Vector{1, 8}, a.Add(b), "addition should be component-wise")
	require.Equal(t, Vector{3, -2}, a.Sub(b), "subtraction should be component-wise")
	require.Equal(t, Vector{4, 6}, a.Scale(2), "scaling should multiply both components")
	require.Equal(t, Vector{1, 5}, b.Abs(), "abs should drop signs")
}

func TestDistances(t *testing.T) {
	a := Vector{0, 0}
	b := Vector{3, 4}

	require.Equal(t, 7, Manhattan(a, b), "manhattan distance of (3,4) should be 7")
	require.Equal(t, 7, Manhattan(b, a), "manhattan distance should be symmetric")
	require.InDelta(t, 5.0, Euclidean(a, b), 1e-9, "euclidean distance of (3,4) should be 5")
	require.Zero(t, Manhattan(a, a), "distance to self should be zero")
}

func TestMoveVectors(t *testing.T) {
	require.Equal(t, Vector{0, 1}, Up.Vector())
	require.Equal(t, Vector{0, -1}, Down.Vector())
	require.Equal(t, Vector{1, 0}, Right.Vector())
	require.Equal(t, Vector{-1, 0}, Left.Vector())
	require.Equal(t, Zero, Stop.Vector(), "stop should not displace")
}

func TestMoveOpposite(t *testing.T) {
	require.Equal(t, Down, Up.Opposite())
	require.Equal(t, Up, Down.Opposite())
	require.Equal(t, Left, Right.Opposite())
	require.Equal(t, Right, Left.Opposite())
	require.Equal(t, Stop, Stop.Opposite(), "stop should be its own opposite")

	for _, m := range Moves {
		require.Equal(t, m, m.Opposite().Opposite(), "opposite of %v should round-trip", m)
	}
}

func TestMoveOppositeCancels(t *testing.T) {
	for _, m := range Moves {
		sum := m.Vector().Add(m.Opposite().Vector())
		require.Equal(t, Zero, sum, "%v and its opposite should cancel out", m)
	}
}
