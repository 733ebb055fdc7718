package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"crisis-server/internal/model"
)

const (
	recordResponseQuery = `
		INSERT INTO user_responses (id, user_id, scenario_id, score, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	getProgressSummaryQuery = `
		SELECT COUNT(*), COALESCE(AVG(score), 0)
		FROM user_responses
		WHERE user_id = $1
	`
)

// PgProgressRepository is the Postgres-backed ProgressRepository.
type PgProgressRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var _ ProgressRepository = (*PgProgressRepository)(nil)

// NewPgProgressRepository creates the repository with its named sub-logger.
func NewPgProgressRepository(pool *pgxpool.Pool, logger *zap.Logger) *PgProgressRepository {
	return &PgProgressRepository{
		pool:   pool,
		logger: logger.Named("PgProgressRepo"),
	}
}

// RecordResponse stores one scored answer.
func (r *PgProgressRepository) RecordResponse(ctx context.Context, response *model.ScenarioResponse) error {
	if response.ID == uuid.Nil {
		response.ID = uuid.New()
	}
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx, recordResponseQuery,
		response.ID, response.UserID, response.ScenarioID, response.Score, response.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to record response",
			zap.String("user_id", response.UserID.String()),
			zap.String("scenario_id", response.ScenarioID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("error recording response: %w", err)
	}

	r.logger.Debug("Response recorded",
		zap.String("user_id", response.UserID.String()),
		zap.Int("score", response.Score))
	return nil
}

// GetSummary aggregates a user's completed count and average score. A user
// with no responses gets a zero summary, not an error.
func (r *PgProgressRepository) GetSummary(ctx context.Context, userID uuid.UUID) (model.ProgressSummary, error) {
	summary := model.ProgressSummary{UserID: userID}

	row := r.pool.QueryRow(ctx, getProgressSummaryQuery, userID)
	if err := row.Scan(&summary.TotalCompleted, &summary.AverageScore); err != nil {
		r.logger.Error("Failed to get progress summary", zap.String("user_id", userID.String()), zap.Error(err))
		return model.ProgressSummary{}, fmt.Errorf("error getting progress summary: %w", err)
	}

	return summary, nil
}
