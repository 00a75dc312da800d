package ai

import "github.com/mvledder/reversi/internal/reversi"

// Evaluator statically scores a game from the given player's perspective.
// Higher is better for that player. Evaluators must be antisymmetric:
// evaluating for the opponent yields the negated score.
type Evaluator func(game *reversi.Game, player reversi.Piece) int

// DiscDifference scores a position as the raw piece-count differential.
func DiscDifference(game *reversi.Game, player reversi.Piece) int {
	scores := game.Scores()
	return scores[player] - scores[player.Opposite()]
}

const (
	cornerBonus = 4
	edgeBonus   = 2
)

// Weighted scores the disc differential plus bonuses for stable board
// regions. Corners are harder to attack than edges so they count for more;
// corner tiles also collect the edge bonus of both edges they terminate.
func Weighted(game *reversi.Game, player reversi.Piece) int {
	score := DiscDifference(game, player)
	grid := game.Grid()

	addTile := func(pos reversi.TilePos, value int) {
		piece, occupied := grid.Get(pos)
		if !occupied {
			return
		}

		if piece == player {
			score += value
		} else {
			score -= value
		}
	}

	last := reversi.Size - 1

	corners := []reversi.TilePos{
		{Row: 0, Col: 0},
		{Row: 0, Col: last},
		{Row: last, Col: 0},
		{Row: last, Col: last},
	}
	for _, corner := range corners {
		addTile(corner, cornerBonus)
	}

	for i := range reversi.Size {
		addTile(reversi.TilePos{Row: i, Col: 0}, edgeBonus)
		addTile(reversi.TilePos{Row: i, Col: last}, edgeBonus)
		addTile(reversi.TilePos{Row: 0, Col: i}, edgeBonus)
		addTile(reversi.TilePos{Row: last, Col: i}, edgeBonus)
	}

	return score
}
