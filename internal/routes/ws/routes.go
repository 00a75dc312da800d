package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/mvledder/reversi/internal/config"
	"github.com/mvledder/reversi/internal/services"
	"github.com/mvledder/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	services := c.Locals("services").(*services.Services) //nolint: errcheck
	cfg := c.Locals("config").(*config.ServerConfig)      //nolint: errcheck

	h := ws.NewHandler(c, services, cfg.SearchDepth)
	if err := h.Handle(); err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws", websocket.New(handleWs))
}
