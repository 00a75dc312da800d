package reversi

import (
	"fmt"
	"slices"
)

// Game is a reversi game: the grid plus whose turn it is.
type Game struct {
	grid Grid
	turn Piece

	// validMoves caches the valid moves for the side to move. ApplyMove and
	// Pass keep it in sync with grid and turn.
	validMoves []TilePos
}

// NewGame creates a game with the four center tiles filled in the standard
// alternating pattern and black to move.
func NewGame() *Game {
	game := &Game{turn: Black}

	game.grid.Set(TilePos{Row: 3, Col: 3}, Black)
	game.grid.Set(TilePos{Row: 3, Col: 4}, White)
	game.grid.Set(TilePos{Row: 4, Col: 3}, White)
	game.grid.Set(TilePos{Row: 4, Col: 4}, Black)

	game.validMoves = game.computeValidMoves(Black)
	return game
}

// Grid returns a copy of the board contents.
func (g *Game) Grid() Grid {
	return g.grid
}

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() Piece {
	return g.turn
}

// Clone returns an independent copy of the game. Mutating the clone never
// affects the original, which lets search explore branches without undo
// logic.
func (g *Game) Clone() *Game {
	clone := *g
	clone.validMoves = slices.Clone(g.validMoves)
	return &clone
}

// ValidMoves returns every position where player can make a capturing move,
// in row-major order.
func (g *Game) ValidMoves(player Piece) []TilePos {
	if player == g.turn {
		return slices.Clone(g.validMoves)
	}

	return g.computeValidMoves(player)
}

// IsValidMove reports whether placing player's piece on pos is legal. It
// agrees exactly with membership in ValidMoves(player).
func (g *Game) IsValidMove(pos TilePos, player Piece) bool {
	if _, occupied := g.grid.Get(pos); occupied {
		return false
	}

	return len(g.flips(pos, player)) > 0
}

// ApplyMove places player's piece on pos and flips every captured run. The
// game is untouched on any failure. After a successful move the turn goes to
// the opponent unless they have no valid move, in which case player moves
// again; if neither side can move the game is terminal.
func (g *Game) ApplyMove(pos TilePos, player Piece) error {
	if g.IsTerminal() {
		return ErrGameOver
	}

	if player != g.turn {
		return fmt.Errorf("%w: %s to move", ErrWrongTurn, g.turn)
	}

	if _, occupied := g.grid.Get(pos); occupied {
		return fmt.Errorf("%w: %s is occupied", ErrInvalidMove, pos.Field())
	}

	flips := g.flips(pos, player)
	if len(flips) == 0 {
		return fmt.Errorf("%w: %s captures nothing", ErrInvalidMove, pos.Field())
	}

	for _, flip := range flips {
		g.grid.Set(flip, player)
	}
	g.grid.Set(pos, player)

	g.advanceTurn()
	return nil
}

// Pass skips the turn when the player to move has no valid moves. It fails
// on terminal games and when a move is still available.
func (g *Game) Pass() error {
	if g.IsTerminal() {
		return ErrGameOver
	}

	if len(g.validMoves) > 0 {
		return fmt.Errorf("%w: %s still has moves", ErrInvalidMove, g.turn)
	}

	g.turn = g.turn.Opposite()
	g.validMoves = g.computeValidMoves(g.turn)
	return nil
}

// Scores returns the piece count for each player.
func (g *Game) Scores() map[Piece]int {
	return map[Piece]int{
		Black: g.grid.Count(Black),
		White: g.grid.Count(White),
	}
}

// IsTerminal reports whether neither player has a valid move. A full grid is
// a special case of this condition.
func (g *Game) IsTerminal() bool {
	if len(g.validMoves) > 0 {
		return false
	}

	return len(g.computeValidMoves(g.turn.Opposite())) == 0
}

// Winner returns the leading player. It returns NoPiece on a tied score, so
// on terminal games NoPiece means a draw.
func (g *Game) Winner() Piece {
	scores := g.Scores()

	switch {
	case scores[Black] > scores[White]:
		return Black
	case scores[White] > scores[Black]:
		return White
	default:
		return NoPiece
	}
}

// advanceTurn hands the turn to the opponent, or keeps it with the same
// player if the opponent cannot move.
func (g *Game) advanceTurn() {
	opponent := g.turn.Opposite()

	if moves := g.computeValidMoves(opponent); len(moves) > 0 {
		g.turn = opponent
		g.validMoves = moves
		return
	}

	g.validMoves = g.computeValidMoves(g.turn)
}

// computeValidMoves finds all empty tiles where placing player's piece flips
// at least one opponent run, in row-major order.
func (g *Game) computeValidMoves(player Piece) []TilePos {
	var moves []TilePos

	for row := range Size {
		for col := range Size {
			pos := TilePos{Row: row, Col: col}

			if _, occupied := g.grid.Get(pos); occupied {
				continue
			}

			if len(g.flips(pos, player)) > 0 {
				moves = append(moves, pos)
			}
		}
	}

	return moves
}

// flips returns the opponent tiles that would flip if player moved on pos,
// which must be empty. An empty result means the move captures nothing and
// is therefore not valid.
//
// Along each direction a capture is a contiguous run of one or more opponent
// pieces anchored by one of player's own pieces. An empty cell or the board
// edge before the anchor discards the run.
func (g *Game) flips(pos TilePos, player Piece) []TilePos {
	opponent := player.Opposite()

	var flips []TilePos
	for _, dir := range Directions {
		var run []TilePos

		for cur, ok := pos.Translate(dir); ok; cur, ok = cur.Translate(dir) {
			piece, occupied := g.grid.Get(cur)
			if !occupied {
				break
			}

			if piece == opponent {
				run = append(run, cur)
				continue
			}

			flips = append(flips, run...)
			break
		}
	}

	return flips
}
