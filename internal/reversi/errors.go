package reversi

import "errors"

var (
	// ErrOutOfBounds is returned when coordinates fall outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidMove is returned when a move fails the capture rule.
	ErrInvalidMove = errors.New("invalid move")

	// ErrWrongTurn is returned when the acting player is not the player to move.
	ErrWrongTurn = errors.New("not this player's turn")

	// ErrGameOver is returned when acting on a game where neither player can move.
	ErrGameOver = errors.New("game is over")
)
