package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/mvledder/reversi/internal/ai"
	"github.com/mvledder/reversi/internal/models"
	"github.com/mvledder/reversi/internal/repository"
	"github.com/mvledder/reversi/internal/reversi"
)

// PostAnalysis searches an arbitrary position given by its board key.
func PostAnalysis(c *fiber.Ctx) error {
	var request models.AnalysisRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	game, err := reversi.ParseKey(request.Key)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if request.Depth < 1 || request.Depth > ai.MaxDepth {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "depth out of range"})
	}

	repo := repository.NewAnalysisRepository(c)

	response, err := repo.Analyze(c.Context(), game, request.Depth)

	switch {
	case errors.Is(err, reversi.ErrGameOver), errors.Is(err, ai.ErrNoMoves):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		slog.Error("Failed to analyze position", "key", request.Key, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(response)
}
