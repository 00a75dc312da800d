package main

import (
	"log"

	"github.com/mvledder/reversi/internal"
	"github.com/mvledder/reversi/internal/config"
)

func main() {
	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
