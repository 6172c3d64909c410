// Package adversarial picks pacman moves by searching the game tree
// against the ghosts, assuming they play to hurt pacman. Depth counts
// full rounds: one pacman ply plus the answering ghost plies.
package adversarial

import "pacman/game"

// terminal reports whether a node ends the search: no rounds remain or
// the game is decided.
func terminal(gs *game.Gamestate, depth int) bool {
	return depth == 0 || gs.Loss() || gs.Win()
}
