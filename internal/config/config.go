package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	SearchDepth       int
}

// LoadServerConfig loads configuration from environment variables. A .env
// file in the working directory is read first if present.
func LoadServerConfig() *ServerConfig {
	// Missing .env is fine, the environment may be set up externally.
	_ = godotenv.Load()

	return &ServerConfig{
		ServerHost:        getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:        getEnvMust("REVERSI_SERVER_PORT"),
		RedisURL:          getEnvMust("REVERSI_REDIS_URL"),
		PostgresURL:       getEnvMust("REVERSI_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("REVERSI_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("REVERSI_BASIC_AUTH_PASS"),
		Token:             getEnvMust("REVERSI_TOKEN"),
		SearchDepth:       getEnvIntDefault("REVERSI_SEARCH_DEPTH", 4),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

// getEnvIntDefault returns the integer environment variable, or fallback when unset.
func getEnvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Environment variable is not an integer", "key", key, "value", value)
		os.Exit(1)
	}
	return parsed
}
