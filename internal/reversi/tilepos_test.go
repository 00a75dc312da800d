package reversi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTilePos(t *testing.T) {
	tests := []struct {
		name    string
		row     int
		col     int
		wantErr bool
	}{
		{name: "origin", row: 0, col: 0},
		{name: "last cell", row: 7, col: 7},
		{name: "center", row: 3, col: 4},
		{name: "negative row", row: -1, col: 0, wantErr: true},
		{name: "negative col", row: 0, col: -1, wantErr: true},
		{name: "row too large", row: 8, col: 0, wantErr: true},
		{name: "col too large", row: 0, col: 8, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewTilePos(tt.row, tt.col)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrOutOfBounds)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.row, pos.Row)
			require.Equal(t, tt.col, pos.Col)
		})
	}
}

func TestTilePos_Neighbors(t *testing.T) {
	// Center tile has all 8 neighbors, in row-major direction order
	center := TilePos{Row: 3, Col: 3}
	require.Equal(t, []TilePos{
		{Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 2, Col: 4},
		{Row: 3, Col: 2}, {Row: 3, Col: 4},
		{Row: 4, Col: 2}, {Row: 4, Col: 3}, {Row: 4, Col: 4},
	}, center.Neighbors())

	// Corner tile keeps only the in-bounds 3
	corner := TilePos{Row: 0, Col: 0}
	require.Equal(t, []TilePos{
		{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	}, corner.Neighbors())

	// Edge tile keeps 5
	edge := TilePos{Row: 0, Col: 3}
	require.Len(t, edge.Neighbors(), 5)
}

func TestTilePos_Translate(t *testing.T) {
	pos := TilePos{Row: 0, Col: 0}

	moved, ok := pos.Translate(Direction{DRow: 1, DCol: 1})
	require.True(t, ok)
	require.Equal(t, TilePos{Row: 1, Col: 1}, moved)

	_, ok = pos.Translate(Direction{DRow: -1, DCol: 0})
	require.False(t, ok)

	_, ok = pos.Translate(Direction{DRow: 0, DCol: -1})
	require.False(t, ok)
}

func TestTilePos_Less(t *testing.T) {
	require.True(t, TilePos{Row: 0, Col: 7}.Less(TilePos{Row: 1, Col: 0}))
	require.True(t, TilePos{Row: 3, Col: 2}.Less(TilePos{Row: 3, Col: 3}))
	require.False(t, TilePos{Row: 3, Col: 3}.Less(TilePos{Row: 3, Col: 3}))
	require.False(t, TilePos{Row: 4, Col: 0}.Less(TilePos{Row: 3, Col: 7}))
}

func TestTilePos_Field(t *testing.T) {
	require.Equal(t, "a1", TilePos{Row: 0, Col: 0}.Field())
	require.Equal(t, "h8", TilePos{Row: 7, Col: 7}.Field())
	require.Equal(t, "e3", TilePos{Row: 2, Col: 4}.Field())
}

func TestTilePos_Index(t *testing.T) {
	for index := range Size * Size {
		pos, err := TilePosFromIndex(index)
		require.NoError(t, err)
		require.Equal(t, index, pos.Index())
	}

	_, err := TilePosFromIndex(-1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = TilePosFromIndex(64)
	require.ErrorIs(t, err, ErrOutOfBounds)
}
