package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mvledder/reversi/internal/reversi"
)

const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// GameRecord is a stored game: the replayable move list plus denormalized
// results for reporting. Moves are row-major cell indices in play order;
// passes are implied and never stored.
type GameRecord struct {
	ID         uuid.UUID     `json:"id"          db:"id"`
	Moves      pq.Int64Array `json:"moves"       db:"moves"`
	Status     string        `json:"status"      db:"status"`
	Winner     string        `json:"winner"      db:"winner"`
	BlackScore int           `json:"black_score" db:"black_score"`
	WhiteScore int           `json:"white_score" db:"white_score"`
	CreatedAt  time.Time     `json:"created_at"  db:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"  db:"updated_at"`
}

// Game reconstructs the rules-core game by replaying the stored moves.
func (r *GameRecord) Game() (*reversi.Game, error) {
	moves := make([]int, len(r.Moves))
	for i, move := range r.Moves {
		moves[i] = int(move)
	}

	return reversi.NewGameFromMoves(moves)
}

// MoveRequest is the payload for playing a move in a stored game.
type MoveRequest struct {
	Field  string `json:"field"`
	Player string `json:"player"`
}

// AnalysisRequest asks for the best move in an arbitrary position given by
// its board key.
type AnalysisRequest struct {
	Key   string `json:"key"`
	Depth int    `json:"depth"`
}

// AnalysisResponse is a searched move with its negamax score.
type AnalysisResponse struct {
	Key   string `json:"key"`
	Depth int    `json:"depth"`
	Move  string `json:"move"`
	Score int    `json:"score"`
}

// GameStateResponse is the API view of a game.
type GameStateResponse struct {
	ID         string     `json:"id,omitempty"`
	Key        string     `json:"key"`
	Board      [][]string `json:"board"`
	Turn       string     `json:"turn"`
	ValidMoves []string   `json:"valid_moves"`
	BlackScore int        `json:"black_score"`
	WhiteScore int        `json:"white_score"`
	Finished   bool       `json:"finished"`
	Winner     string     `json:"winner,omitempty"`
}

// NewGameStateResponse renders a game for the API. The board uses "x", "o"
// and "" so display layers never see internal piece values.
func NewGameStateResponse(id string, game *reversi.Game) GameStateResponse {
	grid := game.Grid()

	board := make([][]string, 0, reversi.Size)
	for _, cells := range grid.Rows() {
		row := make([]string, len(cells))
		for i, piece := range cells {
			switch piece {
			case reversi.Black:
				row[i] = "x"
			case reversi.White:
				row[i] = "o"
			default:
				row[i] = ""
			}
		}
		board = append(board, row)
	}

	moves := game.ValidMoves(game.CurrentPlayer())
	fields := make([]string, len(moves))
	for i, move := range moves {
		fields[i] = move.Field()
	}

	scores := game.Scores()

	response := GameStateResponse{
		ID:         id,
		Key:        game.Key(),
		Board:      board,
		Turn:       game.CurrentPlayer().String(),
		ValidMoves: fields,
		BlackScore: scores[reversi.Black],
		WhiteScore: scores[reversi.White],
		Finished:   game.IsTerminal(),
	}

	if response.Finished {
		if winner := game.Winner(); winner != reversi.NoPiece {
			response.Winner = winner.String()
		} else {
			response.Winner = "draw"
		}
	}

	return response
}
