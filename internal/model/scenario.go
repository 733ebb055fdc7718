package model

import (
	"time"

	"github.com/google/uuid"
)

// ScenarioSource describes where the scenario content came from.
type ScenarioSource string

const (
	// ScenarioSourceTemplate means the content was composed from the static catalog.
	ScenarioSourceTemplate ScenarioSource = "template"
	// ScenarioSourceAI means the template skeleton was enhanced by an AI provider.
	ScenarioSourceAI ScenarioSource = "ai"
)

// IsValidScenarioSource checks that the given source is one of the known values.
func IsValidScenarioSource(s ScenarioSource) bool {
	switch s {
	case ScenarioSourceTemplate, ScenarioSourceAI:
		return true
	default:
		return false
	}
}

// AssessmentCriteria holds the keyword lists a trainee response is scored against.
// Stored as a single JSONB column.
type AssessmentCriteria struct {
	StrategyKeywords      []string `json:"strategy_keywords"`
	CommunicationKeywords []string `json:"communication_keywords"`
	LeadershipKeywords    []string `json:"leadership_keywords"`
	ExecutionKeywords     []string `json:"execution_keywords"`
	CategorySpecific      []string `json:"category_specific"`
}

// Scenario is a generated crisis scenario as persisted in crisis_scenarios.
type Scenario struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"userId"`
	ScenarioKey string    `db:"scenario_key" json:"scenarioKey"`

	Category   string `db:"category" json:"category"`
	Difficulty string `db:"difficulty" json:"difficulty"`
	TemplateID string `db:"template_id" json:"templateId"`

	Industry        string `db:"industry" json:"industry"`
	CompanySize     string `db:"company_size" json:"companySize"`
	Severity        string `db:"severity" json:"severity"`
	Timeline        string `db:"timeline" json:"timeline"`
	StakeholderType string `db:"stakeholder_type" json:"stakeholderType"`

	Title          string `db:"title" json:"title"`
	Description    string `db:"description" json:"description"`
	Context        string `db:"context" json:"context"`
	Stakeholders   string `db:"stakeholders" json:"stakeholders"`
	TimePressure   string `db:"time_pressure" json:"timePressure"`
	ExpertSolution string `db:"expert_solution" json:"expertSolution"`

	AssessmentCriteria AssessmentCriteria `db:"assessment_criteria" json:"assessmentCriteria"`

	Source    ScenarioSource `db:"source" json:"source"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}
