package reversi

import "iter"

// Grid is the fixed 8x8 tile storage. Cells hold NoPiece when empty. The
// zero value is an empty grid.
type Grid struct {
	tiles [Size][Size]Piece
}

// Get returns the piece at pos. The second return value is false for empty
// cells.
func (g *Grid) Get(pos TilePos) (Piece, bool) {
	piece := g.tiles[pos.Row][pos.Col]
	return piece, piece != NoPiece
}

// Set places a piece, overwriting whatever was at pos.
func (g *Grid) Set(pos TilePos, piece Piece) {
	g.tiles[pos.Row][pos.Col] = piece
}

// Clear empties the cell at pos.
func (g *Grid) Clear(pos TilePos) {
	g.tiles[pos.Row][pos.Col] = NoPiece
}

// IsFull reports whether every cell is occupied.
func (g *Grid) IsFull() bool {
	for _, row := range g.tiles {
		for _, piece := range row {
			if piece == NoPiece {
				return false
			}
		}
	}

	return true
}

// Count returns the number of cells occupied by piece.
func (g *Grid) Count(piece Piece) int {
	count := 0
	for _, row := range g.tiles {
		for _, occupant := range row {
			if occupant == piece {
				count++
			}
		}
	}

	return count
}

// Rows traverses the grid row by row, yielding the row index and a copy of
// the row's cells. Callers never alias the internal storage and each call
// starts a fresh traversal.
func (g *Grid) Rows() iter.Seq2[int, []Piece] {
	return func(yield func(int, []Piece) bool) {
		for i := range Size {
			cells := make([]Piece, Size)
			copy(cells, g.tiles[i][:])

			if !yield(i, cells) {
				return
			}
		}
	}
}
