package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvledder/reversi/internal/routes/api"
	"github.com/mvledder/reversi/internal/routes/version"
	"github.com/mvledder/reversi/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"name": "reversi server"})
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve the live-play websocket
	ws.SetupRoutes(app)

	// Serve version info
	version.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
