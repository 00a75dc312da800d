package ws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/websocket"

	"github.com/mvledder/reversi/internal/ai"
	"github.com/mvledder/reversi/internal/models"
	"github.com/mvledder/reversi/internal/repository"
	"github.com/mvledder/reversi/internal/reversi"
	"github.com/mvledder/reversi/internal/services"
)

const hintTimeout = 5 * time.Second

type Handler struct {
	services *services.Services
	ws       *websocket.Conn
	depth    int
}

// NewHandler creates a new Handler. depth is the default search depth for
// hint requests that don't carry one.
func NewHandler(ws *websocket.Conn, services *services.Services, depth int) *Handler {
	return &Handler{services: services, ws: ws, depth: depth}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = sonic.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := sonic.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// handleMessage dispatches one request. Rule violations come back as
// ErrorResponse payloads; a non-nil error means the connection is broken.
func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "move":
		return h.handleMove(req)
	case "hint":
		return h.handleHint(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) errorResponse(req *Incoming, err error) *Outgoing {
	return &Outgoing{ID: req.ID, Data: ErrorResponse{Error: err.Error()}}
}

func (h *Handler) handleMove(req *Incoming) (*Outgoing, error) {
	var reqData MoveRequest
	if err := sonic.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws move request unmarshal error: %w", err)
	}

	game, err := reversi.ParseKey(reqData.Key)
	if err != nil {
		return h.errorResponse(req, err), nil
	}

	pos, err := reversi.ParseField(reqData.Field)
	if err != nil {
		return h.errorResponse(req, err), nil
	}

	player, err := reversi.ParsePiece(reqData.Player)
	if err != nil {
		return h.errorResponse(req, err), nil
	}

	if err = game.ApplyMove(pos, player); err != nil {
		return h.errorResponse(req, err), nil
	}

	return &Outgoing{ID: req.ID, Data: models.NewGameStateResponse("", game)}, nil
}

func (h *Handler) handleHint(req *Incoming) (*Outgoing, error) {
	var reqData HintRequest
	if err := sonic.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws hint request unmarshal error: %w", err)
	}

	game, err := reversi.ParseKey(reqData.Key)
	if err != nil {
		return h.errorResponse(req, err), nil
	}

	depth := reqData.Depth
	if depth == 0 {
		depth = h.depth
	}

	if depth < 1 || depth > ai.MaxDepth {
		return h.errorResponse(req, fmt.Errorf("depth out of range: %d", depth)), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), hintTimeout)
	defer cancel()

	repo := repository.NewAnalysisRepositoryFromServices(h.services)

	response, err := repo.Analyze(ctx, game, depth)
	if errors.Is(err, reversi.ErrGameOver) || errors.Is(err, ai.ErrNoMoves) {
		return h.errorResponse(req, err), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to analyze position: %w", err)
	}

	return &Outgoing{ID: req.ID, Data: response}, nil
}
