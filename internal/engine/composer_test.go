package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTemplate(t *testing.T, cat Category, id string) Template {
	t.Helper()
	for _, tpl := range DefaultCatalog().TemplatesFor(cat) {
		if tpl.ID == id {
			return tpl
		}
	}
	t.Fatalf("template %s not found in %s", id, cat)
	return Template{}
}

func TestCompose_FillsAllPlaceholders(t *testing.T) {
	tpl := sampleTemplate(t, "technical", "TECH_001")
	tuple := VariableTuple{
		Industry:        IndustryTech,
		CompanySize:     SizeStartup,
		Severity:        SeverityCritical,
		Timeline:        TimelineHours,
		StakeholderType: StakeholderInternal,
	}
	rng := rand.New(rand.NewSource(7))

	content := Compose(tpl, tuple, "technical", rng)

	for name, text := range map[string]string{
		"title":       content.Title,
		"description": content.Description,
		"context":     content.Context,
	} {
		assert.NotContains(t, text, "{", "unexpected placeholder left in %s: %q", name, text)
	}
	assert.Contains(t, content.Title, "Critical")
	assert.Contains(t, content.Title, "Startup Tech Company")
}

func TestCompose_UnknownPlaceholderKeptVerbatim(t *testing.T) {
	tpl := Template{
		ID:                  "TST_001",
		TitleTemplate:       "{severity} issue with {mystery_widget}",
		DescriptionTemplate: "Impact on {known_thing} and {mystery_widget}.",
		ContextTemplate:     "Some context.",
		Variables: map[string][]string{
			"known_thing": {"the pipeline"},
		},
	}
	tuple := VariableTuple{
		Industry:        IndustryRetail,
		CompanySize:     SizeMidsize,
		Severity:        SeverityMinor,
		Timeline:        TimelineDays,
		StakeholderType: StakeholderExternal,
	}

	content := Compose(tpl, tuple, "technical", rand.New(rand.NewSource(1)))

	assert.Equal(t, "Minor issue with {mystery_widget}", content.Title)
	assert.Equal(t, "Impact on the pipeline and {mystery_widget}.", content.Description)
}

func TestCompose_EmptyContextTemplateFallsBack(t *testing.T) {
	tpl := Template{ID: "TST_002", TitleTemplate: "t", DescriptionTemplate: "d"}
	tuple := VariableTuple{
		Industry:        IndustryFinance,
		CompanySize:     SizeEnterprise,
		Severity:        SeverityMajor,
		Timeline:        TimelineDays,
		StakeholderType: StakeholderMixed,
	}

	content := Compose(tpl, tuple, "resource", rand.New(rand.NewSource(3)))

	require.NotEmpty(t, content.Context)
	assert.True(t, strings.Contains(strings.ToLower(content.Context), "finance"))
}

func TestStakeholdersFor(t *testing.T) {
	assert.Equal(t, "Engineering team, DevOps, Product Manager, CEO", StakeholdersFor(StakeholderInternal))
	assert.Equal(t, "Compliance team, legal counsel, regulatory bodies, auditors", StakeholdersFor(StakeholderRegulatory))
	// Unknown types get the mixed cast.
	assert.Equal(t, StakeholdersFor(StakeholderMixed), StakeholdersFor(StakeholderType("aliens")))
}

func TestTimePressureFor(t *testing.T) {
	assert.Contains(t, TimePressureFor(TimelineHours), "every hour")
	assert.Contains(t, TimePressureFor(TimelineDays), "2-3 days")
	assert.Contains(t, TimePressureFor(TimelineWeeks), "1-2 weeks")
}

func TestCategoryKeywords_FallbackToBusiness(t *testing.T) {
	assert.Equal(t, CategoryKeywords("business"), CategoryKeywords(Category("unknown")))
	assert.Contains(t, CategoryKeywords("technical"), "system recovery")
}

func TestCompose_AssessmentCriteriaPopulated(t *testing.T) {
	tpl := sampleTemplate(t, "business", "BUS_002")
	tuple := SampleTuple(DifficultyIntermediate, Overrides{}, rand.New(rand.NewSource(11)))

	content := Compose(tpl, tuple, "business", rand.New(rand.NewSource(11)))

	assert.NotEmpty(t, content.AssessmentCriteria.StrategyKeywords)
	assert.NotEmpty(t, content.AssessmentCriteria.CommunicationKeywords)
	assert.NotEmpty(t, content.AssessmentCriteria.LeadershipKeywords)
	assert.NotEmpty(t, content.AssessmentCriteria.ExecutionKeywords)
	assert.Equal(t, CategoryKeywords("business"), content.AssessmentCriteria.CategorySpecific)
}
