package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvledder/reversi/internal/models"
	"github.com/mvledder/reversi/internal/reversi"
)

func moveMessage(t *testing.T, id int, request MoveRequest) *Incoming {
	t.Helper()

	data, err := json.Marshal(request)
	require.NoError(t, err)

	return &Incoming{Event: "move", ID: id, Data: data}
}

func TestHandler_HandleMessage_Move(t *testing.T) {
	handler := NewHandler(nil, nil, 4)

	game := reversi.NewGame()
	incoming := moveMessage(t, 7, MoveRequest{
		Key:    game.Key(),
		Field:  "e3",
		Player: "black",
	})

	outgoing, err := handler.handleMessage(incoming)
	require.NoError(t, err)
	require.Equal(t, 7, outgoing.ID)

	state, ok := outgoing.Data.(models.GameStateResponse)
	require.True(t, ok)
	require.Equal(t, "white", state.Turn)
	require.Equal(t, 4, state.BlackScore)
	require.Equal(t, 1, state.WhiteScore)
}

func TestHandler_HandleMessage_InvalidMove(t *testing.T) {
	handler := NewHandler(nil, nil, 4)

	game := reversi.NewGame()

	tests := []struct {
		name    string
		request MoveRequest
	}{
		{name: "no capture", request: MoveRequest{Key: game.Key(), Field: "a1", Player: "black"}},
		{name: "wrong turn", request: MoveRequest{Key: game.Key(), Field: "d3", Player: "white"}},
		{name: "bad field", request: MoveRequest{Key: game.Key(), Field: "z9", Player: "black"}},
		{name: "bad player", request: MoveRequest{Key: game.Key(), Field: "e3", Player: "red"}},
		{name: "bad key", request: MoveRequest{Key: "nonsense", Field: "e3", Player: "black"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outgoing, err := handler.handleMessage(moveMessage(t, 1, tt.request))
			require.NoError(t, err)

			// Rule violations answer the client instead of killing the connection
			_, ok := outgoing.Data.(ErrorResponse)
			require.True(t, ok)
		})
	}
}

func TestHandler_HandleMessage_HintDepthOutOfRange(t *testing.T) {
	handler := NewHandler(nil, nil, 4)

	game := reversi.NewGame()

	for _, depth := range []int{-1, 20, 9} {
		data, err := json.Marshal(HintRequest{Key: game.Key(), Depth: depth})
		require.NoError(t, err)

		outgoing, err := handler.handleMessage(&Incoming{Event: "hint", ID: 3, Data: data})
		require.NoError(t, err)

		// Oversized depths answer the client before any search starts
		errResp, ok := outgoing.Data.(ErrorResponse)
		require.True(t, ok)
		require.Contains(t, errResp.Error, "depth out of range")
	}
}

func TestHandler_HandleMessage_UnknownEvent(t *testing.T) {
	handler := NewHandler(nil, nil, 4)

	_, err := handler.handleMessage(&Incoming{Event: "nonsense"})
	require.Error(t, err)

	_, err = handler.handleMessage(&Incoming{})
	require.Error(t, err)
}
