package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvledder/reversi/internal/reversi"
)

func TestNewGameStateResponse_FreshGame(t *testing.T) {
	game := reversi.NewGame()
	response := NewGameStateResponse("some-id", game)

	require.Equal(t, "some-id", response.ID)
	require.Equal(t, game.Key(), response.Key)
	require.Equal(t, "black", response.Turn)
	require.Equal(t, []string{"e3", "f4", "c5", "d6"}, response.ValidMoves)
	require.Equal(t, 2, response.BlackScore)
	require.Equal(t, 2, response.WhiteScore)
	require.False(t, response.Finished)
	require.Empty(t, response.Winner)

	require.Len(t, response.Board, reversi.Size)
	for _, row := range response.Board {
		require.Len(t, row, reversi.Size)
	}

	require.Equal(t, "x", response.Board[3][3])
	require.Equal(t, "o", response.Board[3][4])
	require.Equal(t, "o", response.Board[4][3])
	require.Equal(t, "x", response.Board[4][4])
	require.Equal(t, "", response.Board[0][0])
}

func TestNewGameStateResponse_FinishedGame(t *testing.T) {
	game, err := reversi.ParseKey(strings.Repeat("x", 62) + ".." + "-b")
	require.NoError(t, err)

	response := NewGameStateResponse("", game)

	require.True(t, response.Finished)
	require.Equal(t, "black", response.Winner)
	require.Empty(t, response.ValidMoves)
	require.Empty(t, response.ID)
}

func TestNewGameStateResponse_Draw(t *testing.T) {
	// Two equal regions separated by empty columns: nobody can capture.
	game, err := reversi.ParseKey(strings.Repeat("xxx..ooo", 8) + "-b")
	require.NoError(t, err)

	response := NewGameStateResponse("", game)

	require.True(t, response.Finished)
	require.Equal(t, "draw", response.Winner)
}

func TestGameRecord_Game(t *testing.T) {
	record := GameRecord{
		Moves: []int64{
			int64(reversi.TilePos{Row: 2, Col: 4}.Index()),
			int64(reversi.TilePos{Row: 2, Col: 5}.Index()),
		},
	}

	game, err := record.Game()
	require.NoError(t, err)

	reference := reversi.NewGame()
	require.NoError(t, reference.ApplyMove(reversi.TilePos{Row: 2, Col: 4}, reversi.Black))
	require.NoError(t, reference.ApplyMove(reversi.TilePos{Row: 2, Col: 5}, reversi.White))

	require.Equal(t, reference.Key(), game.Key())
}

func TestGameRecord_Game_InvalidMoves(t *testing.T) {
	record := GameRecord{Moves: []int64{0}}

	_, err := record.Game()
	require.ErrorIs(t, err, reversi.ErrInvalidMove)
}
