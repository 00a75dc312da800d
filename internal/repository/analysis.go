package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mvledder/reversi/internal/ai"
	"github.com/mvledder/reversi/internal/models"
	"github.com/mvledder/reversi/internal/reversi"
	"github.com/mvledder/reversi/internal/services"
)

const (
	analysisKeyPrefix = "analysis:"
	analysisTTL       = time.Hour
)

// AnalysisRepository serves negamax analyses through a Redis cache. Search
// is deterministic, so cached results never go stale before their TTL.
type AnalysisRepository struct {
	services *services.Services
}

// NewAnalysisRepository creates a new AnalysisRepository from a request context.
func NewAnalysisRepository(c *fiber.Ctx) *AnalysisRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &AnalysisRepository{services: services}
}

func NewAnalysisRepositoryFromServices(services *services.Services) *AnalysisRepository {
	return &AnalysisRepository{services: services}
}

type cachedAnalysis struct {
	Move  string `json:"move"`
	Score int    `json:"score"`
}

// Analyze returns the best move for the side to move, searched to depth.
// Cache failures only cost the cached lookup, never the result.
func (repo *AnalysisRepository) Analyze(
	ctx context.Context,
	game *reversi.Game,
	depth int,
) (models.AnalysisResponse, error) {
	cacheKey := fmt.Sprintf("%s%s:%d", analysisKeyPrefix, game.Key(), depth)
	redisConn := repo.services.Redis

	raw, err := redisConn.Get(ctx, cacheKey).Result()
	if err == nil {
		var cached cachedAnalysis
		if err = sonic.UnmarshalString(raw, &cached); err == nil {
			return repo.response(game, depth, cached), nil
		}

		slog.Warn("Dropping malformed analysis cache entry", "key", cacheKey, "error", err)
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("Analysis cache read failed", "key", cacheKey, "error", err)
	}

	searcher := ai.NewSearcher(depth)

	result, err := searcher.BestMove(game)
	if err != nil {
		return models.AnalysisResponse{}, err
	}

	cached := cachedAnalysis{Move: result.Move.Field(), Score: result.Score}

	if raw, err := sonic.MarshalString(cached); err == nil {
		if err = redisConn.Set(ctx, cacheKey, raw, analysisTTL).Err(); err != nil {
			slog.Warn("Analysis cache write failed", "key", cacheKey, "error", err)
		}
	}

	return repo.response(game, depth, cached), nil
}

func (repo *AnalysisRepository) response(
	game *reversi.Game,
	depth int,
	cached cachedAnalysis,
) models.AnalysisResponse {
	return models.AnalysisResponse{
		Key:   game.Key(),
		Depth: depth,
		Move:  cached.Move,
		Score: cached.Score,
	}
}
