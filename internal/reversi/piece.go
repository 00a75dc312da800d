package reversi

import "fmt"

// Piece is a player marker occupying a tile. The zero value NoPiece marks an
// empty cell and is never a valid acting player.
type Piece uint8

const (
	NoPiece Piece = iota
	Black
	White
)

// Opposite returns the other player's piece.
func (p Piece) Opposite() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return NoPiece
	}
}

// String returns the lowercase player name.
func (p Piece) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// ParsePiece parses a player name as produced by String.
func ParsePiece(s string) (Piece, error) {
	switch s {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return NoPiece, fmt.Errorf("invalid piece: %q", s)
	}
}
