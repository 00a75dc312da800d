package reversi

import "fmt"

// Size is the board dimension. The rules assume the standard 8x8 grid.
const Size = 8

// TilePos is a coordinate on the grid.
type TilePos struct {
	Row int
	Col int
}

// NewTilePos builds a position, rejecting coordinates outside [0, Size).
func NewTilePos(row, col int) (TilePos, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return TilePos{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}

	return TilePos{Row: row, Col: col}, nil
}

// Direction is one of the 8 unit vectors between adjacent tiles.
type Direction struct {
	DRow int
	DCol int
}

// Directions enumerates the 8 directions in row-major order. Capture scans
// and neighbor enumeration rely on this fixed order.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Translate moves the position one step in the given direction. The second
// return value is false if that step would leave the board.
func (p TilePos) Translate(d Direction) (TilePos, bool) {
	row := p.Row + d.DRow
	col := p.Col + d.DCol

	if row < 0 || row >= Size || col < 0 || col >= Size {
		return TilePos{}, false
	}

	return TilePos{Row: row, Col: col}, true
}

// Neighbors returns the in-bounds adjacent positions, in row-major direction
// order.
func (p TilePos) Neighbors() []TilePos {
	neighbors := make([]TilePos, 0, len(Directions))
	for _, d := range Directions {
		if neighbor, ok := p.Translate(d); ok {
			neighbors = append(neighbors, neighbor)
		}
	}

	return neighbors
}

// Less orders positions by row, then column.
func (p TilePos) Less(other TilePos) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}

	return p.Col < other.Col
}

// Field returns the position in field notation, e.g. "a1" for the top-left
// corner.
func (p TilePos) Field() string {
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

// Index returns the row-major cell index in [0, 64). Used as the storage
// encoding for move lists.
func (p TilePos) Index() int {
	return p.Row*Size + p.Col
}

// TilePosFromIndex is the inverse of Index.
func TilePosFromIndex(index int) (TilePos, error) {
	if index < 0 || index >= Size*Size {
		return TilePos{}, fmt.Errorf("%w: index %d", ErrOutOfBounds, index)
	}

	return TilePos{Row: index / Size, Col: index % Size}, nil
}
