package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariableCombinations(t *testing.T) {
	assert.Equal(t, 432, VariableCombinations())
}

func TestTotalPossibleScenarios(t *testing.T) {
	// 13 categories × 8 templates × 432 combinations.
	assert.Equal(t, 44928, TotalPossibleScenarios())
}

func TestYearsOfContent(t *testing.T) {
	assert.Equal(t, 123, YearsOfContent())
}

func TestStats_ReportsFormulaAndRealCoverage(t *testing.T) {
	stats := Stats(DefaultCatalog())

	assert.Equal(t, 44928, stats.TotalScenarios)
	assert.Equal(t, 13, stats.Categories)
	assert.Equal(t, 8, stats.TemplatesPerCategory)
	assert.Equal(t, 5, stats.VariableDimensions)
	assert.Equal(t, 432, stats.CombinationsPerTemplate)
	assert.Equal(t, 8, stats.PopulatedTemplates["technical"])
	assert.Equal(t, 1, stats.PopulatedTemplates["resource"])
}
