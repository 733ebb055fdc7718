package engine

import (
	"errors"
	"math/rand"

	"crisis-server/internal/model"
)

// maxDedupAttempts bounds the resampling loop that avoids previously seen
// scenario identities. Past the bound a duplicate is accepted: a repeated
// scenario beats a failed generation.
const maxDedupAttempts = 50

// GenerateRequest carries raw, caller-supplied generation preferences.
// Invalid or empty fields degrade to defaults instead of erroring.
type GenerateRequest struct {
	Category     string
	Difficulty   string
	Industry     string
	CompanySize  string
	UsedScenarios []string
}

// DailyProfile is the user state a daily scenario is derived from.
type DailyProfile struct {
	Categories    []string
	Progress      Progress
	UsedScenarios []string
}

// Generator produces scenarios from an immutable catalog. Safe for
// concurrent use; all mutable state lives in the per-call rng.
type Generator struct {
	catalog *Catalog
}

// NewGenerator creates a generator over the given catalog.
func NewGenerator(catalog *Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Generate builds one scenario. Never fails: malformed categories and
// difficulties fall back to defaults, unpopulated categories borrow the
// baseline category's templates (keeping the requested label), and the dedup
// loop accepts a duplicate after maxDedupAttempts.
func (g *Generator) Generate(req GenerateRequest, rng *rand.Rand) *model.Scenario {
	category, ok := ParseCategory(req.Category)
	if !ok {
		category = pick(rng, Categories)
	}
	difficulty, ok := ParseDifficulty(req.Difficulty)
	if !ok {
		difficulty = DifficultyIntermediate
	}

	var overrides Overrides
	if ind, ok := ParseIndustry(req.Industry); ok {
		overrides.Industry = ind
	}
	if size, ok := ParseCompanySize(req.CompanySize); ok {
		overrides.CompanySize = size
	}

	// The scenario keeps the requested category label even when its
	// templates are borrowed from the baseline category.
	sourceCategory := category
	if _, err := g.catalog.Pick(category, rng); errors.Is(err, ErrCatalogGap) {
		sourceCategory = g.catalog.Baseline()
	}

	seen := make(map[string]struct{}, len(req.UsedScenarios))
	for _, id := range req.UsedScenarios {
		seen[id] = struct{}{}
	}

	var (
		tpl   Template
		tuple VariableTuple
		key   string
	)
	for attempt := 0; attempt < maxDedupAttempts; attempt++ {
		tpl, _ = g.catalog.Pick(sourceCategory, rng)
		tuple = SampleTuple(difficulty, overrides, rng)
		key = DeriveIdentity(category, tpl.ID, tuple)
		if _, dup := seen[key]; !dup {
			break
		}
	}

	content := Compose(tpl, tuple, category, rng)

	return &model.Scenario{
		ScenarioKey:        key,
		Category:           string(category),
		Difficulty:         string(difficulty),
		TemplateID:         tpl.ID,
		Industry:           string(tuple.Industry),
		CompanySize:        string(tuple.CompanySize),
		Severity:           string(tuple.Severity),
		Timeline:           string(tuple.Timeline),
		StakeholderType:    string(tuple.StakeholderType),
		Title:              content.Title,
		Description:        content.Description,
		Context:            content.Context,
		Stakeholders:       content.Stakeholders,
		TimePressure:       content.TimePressure,
		ExpertSolution:     content.ExpertSolution,
		AssessmentCriteria: content.AssessmentCriteria,
		Source:             model.ScenarioSourceTemplate,
	}
}

// GenerateDaily builds the scenario of the day for a user: difficulty adapts
// to accumulated performance and the category is drawn from the user's
// preferred set (all categories when no preference is recorded).
func (g *Generator) GenerateDaily(profile DailyProfile, rng *rand.Rand) *model.Scenario {
	difficulty := AdaptDifficulty(profile.Progress)

	candidates := make([]Category, 0, len(profile.Categories))
	for _, raw := range profile.Categories {
		if cat, ok := ParseCategory(raw); ok {
			candidates = append(candidates, cat)
		}
	}
	if len(candidates) == 0 {
		candidates = Categories
	}
	category := pick(rng, candidates)

	return g.Generate(GenerateRequest{
		Category:      string(category),
		Difficulty:    string(difficulty),
		UsedScenarios: profile.UsedScenarios,
	}, rng)
}
