package game

import (
	"math"
	"slices"

	"golang.org/x/exp/rand"

	"pacman/grid"
)

// Evaluate scores a gamestate from pacman's point of view. Higher is
// better. Adversarial agents maximize this over their prediction of the
// opponents' play.
type Evaluate func(*Gamestate) float64

// ScoreEvaluate simply returns the score of the gamestate.
func ScoreEvaluate(gs *Gamestate) float64 {
	return float64(gs.Score)
}

// BetterEvaluate returns an evaluator that layers chase targets on top of
// the score: certain death is -Inf, a scared ghost is worth hunting, then
// the nearest pellet, then the nearest dot. A little jitter from rng keeps
// pacman from pacing between two equally scored cells forever.
func BetterEvaluate(rng *rand.Rand) Evaluate {
	return func(gs *Gamestate) float64 {
		if gs.Loss() {
			return math.Inf(-1)
		}

		pac, _ := gs.Pacman()
		scared := gs.NumAgents() > 1 && gs.Timer(1) > 0

		// Don't finish the dots while the first ghost can still be
		// hunted for its bounty.
		if gs.Win() && (gs.Pellets().Any() || scared) {
			return 0
		}

		jitter := func() float64 {
			return 1 / float64(rng.Intn(21)+10)
		}

		if scared {
			return 1/grid.Euclidean(pac, gs.Position(1)) + float64(gs.Score) + jitter()
		}

		if gs.Pellets().Any() {
			nearest := math.Inf(1)
			for _, pellet := range gs.Pellets().List() {
				if d := grid.Euclidean(pellet, pac); d < nearest {
					nearest = d
				}
			}
			return 1/nearest + float64(gs.Score) + jitter()
		}

		if gs.Dots().Any() {
			dots := slices.Clone(gs.Dots().List())
			slices.SortFunc(dots, func(a, b grid.Vector) int {
				da, db := grid.Euclidean(a, pac), grid.Euclidean(b, pac)
				switch {
				case da < db:
					return -1
				case da > db:
					return 1
				}
				return 0
			})
			return 1/grid.Euclidean(pac, dots[0]) + float64(gs.Score) + jitter()
		}

		return float64(gs.Score)
	}
}
