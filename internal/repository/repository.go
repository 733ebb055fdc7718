// Package repository holds the persistence layer: Postgres repositories for
// scenarios and user progress, and the Redis cache for daily scenarios.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crisis-server/internal/model"
)

// ScenarioRepository persists generated scenarios and answers the dedup
// question "which scenario identities has this user already seen".
type ScenarioRepository interface {
	Save(ctx context.Context, scenario *model.Scenario) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Scenario, error)
	ListUsedKeys(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// ProgressRepository records scored responses and aggregates them into the
// summary that drives adaptive difficulty.
type ProgressRepository interface {
	RecordResponse(ctx context.Context, response *model.ScenarioResponse) error
	GetSummary(ctx context.Context, userID uuid.UUID) (model.ProgressSummary, error)
}

// DailyScenarioCache keeps the scenario of the day per user so repeated
// requests within one day return the same scenario.
type DailyScenarioCache interface {
	Get(ctx context.Context, userID uuid.UUID, day string) (*model.Scenario, error)
	Set(ctx context.Context, userID uuid.UUID, day string, scenario *model.Scenario, ttl time.Duration) error
}
