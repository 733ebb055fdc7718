package engine

// TemplatesPerCategoryTarget is the design target for catalog population.
// The formula-level scenario count assumes every category will eventually
// carry this many templates; PopulatedStats reports the real coverage.
const TemplatesPerCategoryTarget = 8

// VariableCombinations returns the size of the tuple space (4×3×3×3×4 = 432).
func VariableCombinations() int {
	return len(Industries) * len(CompanySizes) * len(Severities) * len(Timelines) * len(StakeholderTypes)
}

// TotalPossibleScenarios returns the design-level unique scenario count:
// 13 categories × 8 templates × 432 combinations = 44,928.
func TotalPossibleScenarios() int {
	return len(Categories) * TemplatesPerCategoryTarget * VariableCombinations()
}

// YearsOfContent converts the scenario count into whole years of one
// scenario per day.
func YearsOfContent() int {
	return TotalPossibleScenarios() / 365
}

// AlgorithmStats is the generation capacity summary exposed over the API.
type AlgorithmStats struct {
	TotalScenarios          int              `json:"total_scenarios"`
	YearsOfContent          int              `json:"years_of_content"`
	Categories              int              `json:"categories"`
	TemplatesPerCategory    int              `json:"templates_per_category"`
	VariableDimensions      int              `json:"variable_dimensions"`
	CombinationsPerTemplate int              `json:"combinations_per_template"`
	PopulatedTemplates      map[Category]int `json:"populated_templates"`
}

// Stats reports the capacity formula alongside the catalog's actual
// population so callers can see design target versus shipped coverage.
func Stats(catalog *Catalog) AlgorithmStats {
	return AlgorithmStats{
		TotalScenarios:          TotalPossibleScenarios(),
		YearsOfContent:          YearsOfContent(),
		Categories:              len(Categories),
		TemplatesPerCategory:    TemplatesPerCategoryTarget,
		VariableDimensions:      5,
		CombinationsPerTemplate: VariableCombinations(),
		PopulatedTemplates:      catalog.PopulatedStats(),
	}
}
