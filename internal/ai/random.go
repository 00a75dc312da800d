package ai

import (
	"math/rand/v2"

	"github.com/mvledder/reversi/internal/reversi"
)

// RandomMove picks a uniformly random valid move for the player to move.
// Callers own the rng, so seeded games replay identically.
func RandomMove(game *reversi.Game, rng *rand.Rand) (reversi.TilePos, error) {
	if game.IsTerminal() {
		return reversi.TilePos{}, reversi.ErrGameOver
	}

	moves := game.ValidMoves(game.CurrentPlayer())
	if len(moves) == 0 {
		return reversi.TilePos{}, ErrNoMoves
	}

	return moves[rng.IntN(len(moves))], nil
}
