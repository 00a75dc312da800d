package reversi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		field   string
		want    TilePos
		wantErr bool
	}{
		{field: "a1", want: TilePos{Row: 0, Col: 0}},
		{field: "h8", want: TilePos{Row: 7, Col: 7}},
		{field: "e3", want: TilePos{Row: 2, Col: 4}},
		{field: "E3", want: TilePos{Row: 2, Col: 4}},
		{field: " c4 ", want: TilePos{Row: 3, Col: 2}},
		{field: "i1", wantErr: true},
		{field: "a9", wantErr: true},
		{field: "a", wantErr: true},
		{field: "", wantErr: true},
		{field: "4c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			pos, err := ParseField(tt.field)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, pos)
		})
	}
}

func TestParseField_RoundTripsWithField(t *testing.T) {
	for row := range Size {
		for col := range Size {
			pos := TilePos{Row: row, Col: col}

			parsed, err := ParseField(pos.Field())
			require.NoError(t, err)
			require.Equal(t, pos, parsed)
		}
	}
}

func TestGame_Key(t *testing.T) {
	key := NewGame().Key()

	want := strings.Repeat(emptyRow, 3) + "...xo..." + "...ox..." + strings.Repeat(emptyRow, 3) + "-b"
	require.Equal(t, want, key)
}

func TestParseKey(t *testing.T) {
	game := NewGame()
	require.NoError(t, game.ApplyMove(TilePos{Row: 2, Col: 4}, Black))

	parsed, err := ParseKey(game.Key())
	require.NoError(t, err)

	require.Equal(t, game.Key(), parsed.Key())
	require.Equal(t, game.CurrentPlayer(), parsed.CurrentPlayer())
	require.Equal(t, game.ValidMoves(White), parsed.ValidMoves(White))
}

func TestParseKey_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "too short", key: "xo-b"},
		{name: "bad cell", key: strings.Repeat("?", 64) + "-b"},
		{name: "bad turn", key: strings.Repeat(".", 64) + "-x"},
		{name: "multibyte cell", key: "Ÿ" + strings.Repeat(".", 62) + "-b"},
		{name: "missing turn", key: strings.Repeat(".", 66)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKey(tt.key)
			require.Error(t, err)
		})
	}
}

func TestNewGameFromMoves(t *testing.T) {
	reference := NewGame()
	require.NoError(t, reference.ApplyMove(TilePos{Row: 2, Col: 4}, Black))
	require.NoError(t, reference.ApplyMove(TilePos{Row: 2, Col: 5}, White))

	replayed, err := NewGameFromMoves([]int{
		TilePos{Row: 2, Col: 4}.Index(),
		TilePos{Row: 2, Col: 5}.Index(),
	})
	require.NoError(t, err)
	require.Equal(t, reference.Key(), replayed.Key())

	// Replaying an illegal move fails
	_, err = NewGameFromMoves([]int{0})
	require.ErrorIs(t, err, ErrInvalidMove)

	_, err = NewGameFromMoves([]int{64})
	require.ErrorIs(t, err, ErrOutOfBounds)
}
