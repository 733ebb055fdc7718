package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"crisis-server/internal/model"
)

const (
	saveScenarioQuery = `
		INSERT INTO crisis_scenarios (
			id, user_id, scenario_key, category, difficulty, template_id,
			industry, company_size, severity, timeline, stakeholder_type,
			title, description, context, stakeholders, time_pressure,
			expert_solution, assessment_criteria, source, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`
	getScenarioByIDQuery = `
		SELECT
			id, user_id, scenario_key, category, difficulty, template_id,
			industry, company_size, severity, timeline, stakeholder_type,
			title, description, context, stakeholders, time_pressure,
			expert_solution, assessment_criteria, source, created_at
		FROM crisis_scenarios
		WHERE id = $1
	`
	listUsedKeysQuery = `
		SELECT scenario_key FROM crisis_scenarios WHERE user_id = $1
	`
)

// PgScenarioRepository is the Postgres-backed ScenarioRepository.
type PgScenarioRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var _ ScenarioRepository = (*PgScenarioRepository)(nil)

// NewPgScenarioRepository creates the repository with its named sub-logger.
func NewPgScenarioRepository(pool *pgxpool.Pool, logger *zap.Logger) *PgScenarioRepository {
	return &PgScenarioRepository{
		pool:   pool,
		logger: logger.Named("PgScenarioRepo"),
	}
}

// Save inserts a scenario. An ID and CreatedAt are assigned here when the
// generator left them empty.
func (r *PgScenarioRepository) Save(ctx context.Context, scenario *model.Scenario) error {
	if scenario.ID == uuid.Nil {
		scenario.ID = uuid.New()
	}
	if scenario.CreatedAt.IsZero() {
		scenario.CreatedAt = time.Now().UTC()
	}

	criteriaJSON, err := json.Marshal(scenario.AssessmentCriteria)
	if err != nil {
		return fmt.Errorf("error marshaling assessment criteria: %w", err)
	}

	tag, err := r.pool.Exec(ctx, saveScenarioQuery,
		scenario.ID,
		scenario.UserID,
		scenario.ScenarioKey,
		scenario.Category,
		scenario.Difficulty,
		scenario.TemplateID,
		scenario.Industry,
		scenario.CompanySize,
		scenario.Severity,
		scenario.Timeline,
		scenario.StakeholderType,
		scenario.Title,
		scenario.Description,
		scenario.Context,
		scenario.Stakeholders,
		scenario.TimePressure,
		scenario.ExpertSolution,
		criteriaJSON,
		scenario.Source,
		scenario.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save scenario",
			zap.String("scenario_id", scenario.ID.String()),
			zap.String("scenario_key", scenario.ScenarioKey),
			zap.Error(err),
		)
		return fmt.Errorf("error saving scenario: %w", err)
	}

	r.logger.Debug("Scenario saved",
		zap.String("scenario_id", scenario.ID.String()),
		zap.Int64("rows_affected", tag.RowsAffected()))
	return nil
}

// GetByID returns one scenario or model.ErrNotFound.
func (r *PgScenarioRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Scenario, error) {
	row := r.pool.QueryRow(ctx, getScenarioByIDQuery, id)

	var sc model.Scenario
	var criteriaJSON []byte
	err := row.Scan(
		&sc.ID, &sc.UserID, &sc.ScenarioKey, &sc.Category, &sc.Difficulty, &sc.TemplateID,
		&sc.Industry, &sc.CompanySize, &sc.Severity, &sc.Timeline, &sc.StakeholderType,
		&sc.Title, &sc.Description, &sc.Context, &sc.Stakeholders, &sc.TimePressure,
		&sc.ExpertSolution, &criteriaJSON, &sc.Source, &sc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Scenario not found", zap.String("scenario_id", id.String()))
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get scenario", zap.String("scenario_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("error getting scenario by id: %w", err)
	}

	if err := json.Unmarshal(criteriaJSON, &sc.AssessmentCriteria); err != nil {
		return nil, fmt.Errorf("error unmarshaling assessment criteria: %w", err)
	}

	return &sc, nil
}

// ListUsedKeys returns every scenario identity already generated for a user.
func (r *PgScenarioRepository) ListUsedKeys(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var keys []string
	if err := pgxscan.Select(ctx, r.pool, &keys, listUsedKeysQuery, userID); err != nil {
		r.logger.Error("Failed to list used scenario keys", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("error listing used scenario keys: %w", err)
	}
	return keys, nil
}
