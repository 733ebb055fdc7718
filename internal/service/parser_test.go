package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crisis-server/internal/model"
)

const sampleAIResponse = `TITLE: Database Meltdown at FinCore
DESCRIPTION: The primary transaction database of a mid-sized fintech company
has crashed during peak trading hours, leaving thousands of payments
in an unknown state.
CONTEXT: FinCore processes about 2 million transactions daily. The crash
happened right after a routine schema migration.
STAKEHOLDERS: CTO, payments team, compliance officer, affected merchants
TIME_PRESSURE: Regulators expect an incident report within 4 hours.
EXPERT_SOLUTION: Freeze writes, restore from the last consistent snapshot,
reconcile in-flight transactions, then communicate openly with merchants.
ASSESSMENT_CRITERIA: {"strategy_keywords": ["triage", "rollback"], "category_specific": ["data integrity", "incident response"]}`

func TestParseScenarioContent_AllSections(t *testing.T) {
	content := parseScenarioContent(sampleAIResponse)

	assert.Equal(t, "Database Meltdown at FinCore", content.Title)
	// Continuation lines fold into one line with single spaces.
	assert.Contains(t, content.Description, "has crashed during peak trading hours, leaving thousands of payments in an unknown state.")
	assert.Contains(t, content.Context, "2 million transactions daily")
	assert.Equal(t, "CTO, payments team, compliance officer, affected merchants", content.Stakeholders)
	assert.Equal(t, "Regulators expect an incident report within 4 hours.", content.TimePressure)
	assert.Contains(t, content.ExpertSolution, "restore from the last consistent snapshot")

	assert.Equal(t, []string{"triage", "rollback"}, content.AssessmentCriteria.StrategyKeywords)
	assert.Equal(t, []string{"data integrity", "incident response"}, content.AssessmentCriteria.CategorySpecific)
	// Lists the model did not provide keep their defaults.
	assert.Equal(t, defaultAssessmentCriteria().CommunicationKeywords, content.AssessmentCriteria.CommunicationKeywords)
}

func TestParseScenarioContent_MissingSectionsGetDefaults(t *testing.T) {
	content := parseScenarioContent("TITLE: Short Crisis")

	assert.Equal(t, "Short Crisis", content.Title)
	assert.Equal(t, "A critical situation requiring immediate project management intervention.", content.Description)
	assert.Equal(t, "Project team, management, customers", content.Stakeholders)
	assert.Equal(t, defaultAssessmentCriteria(), content.AssessmentCriteria)
}

func TestParseScenarioContent_GarbageInput(t *testing.T) {
	content := parseScenarioContent("the model rambled on without any markers\nand never used the format")

	assert.Equal(t, "Crisis Management Challenge", content.Title)
	assert.Equal(t, defaultAssessmentCriteria(), content.AssessmentCriteria)
}

func TestParseAssessmentCriteria_BrokenJSONKeepsDefaults(t *testing.T) {
	criteria := parseAssessmentCriteria(`{"strategy_keywords": ["unterminated`)
	assert.Equal(t, defaultAssessmentCriteria(), criteria)

	criteria = parseAssessmentCriteria("no json here at all")
	assert.Equal(t, defaultAssessmentCriteria(), criteria)
}

func TestParseAssessmentCriteria_JSONSurroundedByProse(t *testing.T) {
	criteria := parseAssessmentCriteria(`Here are the criteria: {"leadership_keywords": ["calm under pressure"]} hope that helps!`)
	assert.Equal(t, []string{"calm under pressure"}, criteria.LeadershipKeywords)
	assert.Equal(t, defaultAssessmentCriteria().StrategyKeywords, criteria.StrategyKeywords)
}

func TestApplyEnhancedContent_QualityFloors(t *testing.T) {
	scenario := &model.Scenario{
		Category:    "technical",
		Difficulty:  "beginner",
		Industry:    "fintech",
		CompanySize: "startup",
		Severity:    "critical",
		Timeline:    "hours",
	}

	applyEnhancedContent(scenario, ScenarioContent{
		Title:       "short",
		Description: "too short",
	})

	assert.Equal(t, "Technical Crisis at startup fintech Company", scenario.Title)
	assert.Equal(t, "A critical technical crisis has emerged affecting operations. Immediate intervention required within hours.", scenario.Description)
	assert.LessOrEqual(t, len(scenario.AssessmentCriteria.CategorySpecific), maxCategorySpecificKeywords)
	assert.NotEmpty(t, scenario.AssessmentCriteria.CategorySpecific)
}

func TestApplyEnhancedContent_KeepsGoodContent(t *testing.T) {
	scenario := &model.Scenario{Category: "technical"}

	content := ScenarioContent{
		Title:       "A perfectly reasonable crisis title",
		Description: "A description that is comfortably long enough to pass the minimum length check applied here.",
	}
	content.AssessmentCriteria.CategorySpecific = []string{"custom one", "custom two"}

	applyEnhancedContent(scenario, content)

	assert.Equal(t, content.Title, scenario.Title)
	assert.Equal(t, content.Description, scenario.Description)
	assert.Equal(t, "custom one", scenario.AssessmentCriteria.CategorySpecific[0])
	assert.Equal(t, "custom two", scenario.AssessmentCriteria.CategorySpecific[1])
	assert.Contains(t, scenario.AssessmentCriteria.CategorySpecific, "system recovery")
	assert.LessOrEqual(t, len(scenario.AssessmentCriteria.CategorySpecific), maxCategorySpecificKeywords)
}
