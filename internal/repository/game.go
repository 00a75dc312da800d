package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mvledder/reversi/internal/models"
	"github.com/mvledder/reversi/internal/reversi"
	"github.com/mvledder/reversi/internal/services"
)

// ErrGameNotFound is returned when no stored game has the requested ID.
var ErrGameNotFound = errors.New("game not found")

// GameRepository handles database operations for stored games.
//
// Expected schema:
//
//	CREATE TABLE games (
//	    id uuid PRIMARY KEY,
//	    moves integer[] NOT NULL DEFAULT '{}',
//	    status text NOT NULL,
//	    winner text NOT NULL DEFAULT '',
//	    black_score integer NOT NULL,
//	    white_score integer NOT NULL,
//	    created_at timestamptz NOT NULL DEFAULT now(),
//	    updated_at timestamptz NOT NULL DEFAULT now()
//	);
type GameRepository struct {
	services *services.Services
}

// NewGameRepository creates a new GameRepository from a request context.
func NewGameRepository(c *fiber.Ctx) *GameRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &GameRepository{services: services}
}

func NewGameRepositoryFromServices(services *services.Services) *GameRepository {
	return &GameRepository{services: services}
}

// CreateGame stores a fresh game and returns its record.
func (repo *GameRepository) CreateGame(ctx context.Context) (models.GameRecord, error) {
	record := models.GameRecord{
		ID:         uuid.New(),
		Moves:      pq.Int64Array{},
		Status:     models.StatusInProgress,
		BlackScore: 2,
		WhiteScore: 2,
	}

	query := `
		INSERT INTO games (id, moves, status, winner, black_score, white_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := repo.services.Postgres.QueryRowxContext(ctx, query,
		record.ID, record.Moves, record.Status, record.Winner,
		record.BlackScore, record.WhiteScore,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return models.GameRecord{}, fmt.Errorf("error creating game: %w", err)
	}

	return record, nil
}

// GetGame loads a stored game by ID.
func (repo *GameRepository) GetGame(ctx context.Context, id uuid.UUID) (models.GameRecord, error) {
	var record models.GameRecord

	query := `
		SELECT id, moves, status, winner, black_score, white_score, created_at, updated_at
		FROM games
		WHERE id = $1
	`

	err := repo.services.Postgres.GetContext(ctx, &record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.GameRecord{}, ErrGameNotFound
	}
	if err != nil {
		return models.GameRecord{}, fmt.Errorf("error loading game: %w", err)
	}

	return record, nil
}

// ApplyMove replays a stored game, applies one move for the given player and
// persists the result. Rule violations pass through unchanged so callers can
// tell an illegal move from a storage failure.
func (repo *GameRepository) ApplyMove(
	ctx context.Context,
	id uuid.UUID,
	pos reversi.TilePos,
	player reversi.Piece,
) (models.GameRecord, *reversi.Game, error) {
	record, err := repo.GetGame(ctx, id)
	if err != nil {
		return models.GameRecord{}, nil, err
	}

	game, err := record.Game()
	if err != nil {
		return models.GameRecord{}, nil, fmt.Errorf("error replaying game %s: %w", id, err)
	}

	if err = game.ApplyMove(pos, player); err != nil {
		return models.GameRecord{}, nil, err
	}

	record.Moves = append(record.Moves, int64(pos.Index()))

	scores := game.Scores()
	record.BlackScore = scores[reversi.Black]
	record.WhiteScore = scores[reversi.White]

	if game.IsTerminal() {
		record.Status = models.StatusFinished

		if winner := game.Winner(); winner != reversi.NoPiece {
			record.Winner = winner.String()
		} else {
			record.Winner = "draw"
		}
	}

	query := `
		UPDATE games
		SET moves = $2, status = $3, winner = $4, black_score = $5, white_score = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err = repo.services.Postgres.QueryRowxContext(ctx, query,
		record.ID, record.Moves, record.Status, record.Winner,
		record.BlackScore, record.WhiteScore,
	).Scan(&record.UpdatedAt)
	if err != nil {
		return models.GameRecord{}, nil, fmt.Errorf("error updating game: %w", err)
	}

	return record, game, nil
}
