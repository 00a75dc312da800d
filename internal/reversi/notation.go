package reversi

import (
	"fmt"
	"strings"
)

const (
	emptyRune = '.'
	blackRune = 'x'
	whiteRune = 'o'
)

// ParseField converts field notation (e.g. "a1", "h8") to a position.
func ParseField(field string) (TilePos, error) {
	field = strings.ToLower(strings.TrimSpace(field))

	if len(field) != 2 {
		return TilePos{}, fmt.Errorf("invalid field: %q", field)
	}

	if field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return TilePos{}, fmt.Errorf("invalid field: %q", field)
	}

	return TilePos{Row: int(field[1] - '1'), Col: int(field[0] - 'a')}, nil
}

// Key returns a compact encoding of the game: the 64 cells in row-major
// order as '.', 'x' and 'o', followed by "-b" or "-w" for the side to move.
// Keys are used for analysis requests and cache lookups.
func (g *Game) Key() string {
	var sb strings.Builder
	sb.Grow(Size*Size + 2)

	for _, cells := range g.grid.Rows() {
		for _, piece := range cells {
			switch piece {
			case Black:
				sb.WriteByte(blackRune)
			case White:
				sb.WriteByte(whiteRune)
			default:
				sb.WriteByte(emptyRune)
			}
		}
	}

	if g.turn == White {
		sb.WriteString("-w")
	} else {
		sb.WriteString("-b")
	}

	return sb.String()
}

// ParseKey creates a game from a string produced by Key.
func ParseKey(key string) (*Game, error) {
	if len(key) != Size*Size+2 {
		return nil, fmt.Errorf("game key must be %d characters long, got %d", Size*Size+2, len(key))
	}

	game := &Game{}

	// Byte-wise on purpose: rune iteration would let a multibyte rune whose
	// low byte looks like a cell slip through and shift every cell after it.
	for i := range Size * Size {
		pos, err := TilePosFromIndex(i)
		if err != nil {
			return nil, err
		}

		switch key[i] {
		case blackRune:
			game.grid.Set(pos, Black)
		case whiteRune:
			game.grid.Set(pos, White)
		case emptyRune:
		default:
			return nil, fmt.Errorf("invalid cell %q at index %d", key[i], i)
		}
	}

	switch key[Size*Size:] {
	case "-b":
		game.turn = Black
	case "-w":
		game.turn = White
	default:
		return nil, fmt.Errorf("invalid turn suffix: %q", key[Size*Size:])
	}

	game.validMoves = game.computeValidMoves(game.turn)
	return game, nil
}

// NewGameFromMoves replays a list of row-major cell indices from the
// starting position. This is the storage format for persisted games: the
// acting player is implied by the turn, passes happen automatically.
func NewGameFromMoves(moves []int) (*Game, error) {
	game := NewGame()

	for _, move := range moves {
		pos, err := TilePosFromIndex(move)
		if err != nil {
			return nil, fmt.Errorf("replaying move %d: %w", move, err)
		}

		if err := game.ApplyMove(pos, game.CurrentPlayer()); err != nil {
			return nil, fmt.Errorf("replaying move %s: %w", pos.Field(), err)
		}
	}

	return game, nil
}
