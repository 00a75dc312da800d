package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvledder/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	group := app.Group("/api")

	group.Post("/games", CreateGame)
	group.Get("/games/:id", GetGame)
	group.Post("/games/:id/moves", PostMove)
	group.Get("/games/:id/hint", GetHint)

	group.Post("/analysis", middleware.AuthOrToken(), PostAnalysis)
}
