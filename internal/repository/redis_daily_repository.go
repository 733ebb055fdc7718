package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"crisis-server/internal/model"
)

// redisDailyCache stores the scenario of the day per user as a JSON blob
// under daily_scenario:{userID}:{day} with a midnight-aligned TTL.
type redisDailyCache struct {
	client *redis.Client
	logger *zap.Logger
}

var _ DailyScenarioCache = (*redisDailyCache)(nil)

// NewRedisDailyCache creates a Redis-backed DailyScenarioCache.
func NewRedisDailyCache(client *redis.Client, logger *zap.Logger) DailyScenarioCache {
	return &redisDailyCache{
		client: client,
		logger: logger.Named("RedisDailyCache"),
	}
}

func dailyKey(userID uuid.UUID, day string) string {
	return fmt.Sprintf("daily_scenario:%s:%s", userID, day)
}

// Get returns the cached daily scenario or model.ErrNotFound on a miss.
func (c *redisDailyCache) Get(ctx context.Context, userID uuid.UUID, day string) (*model.Scenario, error) {
	key := dailyKey(userID, day)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNotFound
		}
		c.logger.Error("Failed to get daily scenario from redis", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("failed to get daily scenario from redis: %w", err)
	}

	var sc model.Scenario
	if err := json.Unmarshal(payload, &sc); err != nil {
		// A corrupted entry is treated as a miss so the day still gets a scenario.
		c.logger.Warn("Corrupted daily scenario cache entry", zap.String("key", key), zap.Error(err))
		return nil, model.ErrNotFound
	}

	c.logger.Debug("Daily scenario cache hit", zap.String("key", key))
	return &sc, nil
}

// Set stores the daily scenario with the given TTL.
func (c *redisDailyCache) Set(ctx context.Context, userID uuid.UUID, day string, scenario *model.Scenario, ttl time.Duration) error {
	key := dailyKey(userID, day)

	payload, err := json.Marshal(scenario)
	if err != nil {
		return fmt.Errorf("failed to marshal daily scenario: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		c.logger.Error("Failed to set daily scenario in redis", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to set daily scenario in redis: %w", err)
	}

	c.logger.Debug("Daily scenario cached", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}
