package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mvledder/reversi/internal/ai"
	"github.com/mvledder/reversi/internal/config"
	"github.com/mvledder/reversi/internal/models"
	"github.com/mvledder/reversi/internal/repository"
	"github.com/mvledder/reversi/internal/reversi"
)

// CreateGame stores a fresh game and returns its initial state.
func CreateGame(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)

	record, err := repo.CreateGame(c.Context())
	if err != nil {
		slog.Error("Failed to create game", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	response := models.NewGameStateResponse(record.ID.String(), reversi.NewGame())
	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetGame returns the current state of a stored game.
func GetGame(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
	}

	repo := repository.NewGameRepository(c)

	record, err := repo.GetGame(c.Context(), id)
	if errors.Is(err, repository.ErrGameNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}
	if err != nil {
		slog.Error("Failed to load game", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	game, err := record.Game()
	if err != nil {
		slog.Error("Failed to replay game", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(models.NewGameStateResponse(record.ID.String(), game))
}

// PostMove applies one move to a stored game.
func PostMove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
	}

	var request models.MoveRequest
	if err = c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	pos, err := reversi.ParseField(request.Field)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	player, err := reversi.ParsePiece(request.Player)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repository.NewGameRepository(c)

	record, game, err := repo.ApplyMove(c.Context(), id, pos, player)

	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	case errors.Is(err, reversi.ErrGameOver):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "game is over"})
	case errors.Is(err, reversi.ErrInvalidMove), errors.Is(err, reversi.ErrWrongTurn):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		slog.Error("Failed to apply move", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(models.NewGameStateResponse(record.ID.String(), game))
}

// GetHint returns the searched best move for the side to move in a stored game.
func GetHint(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
	}

	cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

	depth := c.QueryInt("depth", cfg.SearchDepth)
	if depth < 1 || depth > ai.MaxDepth {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "depth out of range"})
	}

	gameRepo := repository.NewGameRepository(c)

	record, err := gameRepo.GetGame(c.Context(), id)
	if errors.Is(err, repository.ErrGameNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}
	if err != nil {
		slog.Error("Failed to load game", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	game, err := record.Game()
	if err != nil {
		slog.Error("Failed to replay game", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	if game.IsTerminal() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "game is over"})
	}

	analysisRepo := repository.NewAnalysisRepository(c)

	response, err := analysisRepo.Analyze(c.Context(), game, depth)
	if err != nil {
		slog.Error("Failed to analyze game", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(response)
}
