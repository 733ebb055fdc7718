package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressSummary aggregates a user's training history. It drives adaptive
// difficulty selection for daily scenarios.
type ProgressSummary struct {
	UserID         uuid.UUID `db:"user_id" json:"userId"`
	TotalCompleted int       `db:"total_completed" json:"totalCompleted"`
	AverageScore   float64   `db:"average_score" json:"averageScore"`
}

// ScenarioResponse is a trainee's scored answer to a scenario, persisted in
// user_responses.
type ScenarioResponse struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"userId"`
	ScenarioID uuid.UUID `db:"scenario_id" json:"scenarioId"`
	Score      int       `db:"score" json:"score"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
