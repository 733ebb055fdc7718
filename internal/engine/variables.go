// Package engine contains the deterministic crisis scenario generation core:
// variable space sampling, the template catalog, identity derivation, content
// composition and difficulty adaptation. The package does no I/O; randomness
// is injected as *rand.Rand so callers control determinism.
package engine

import "math/rand"

// Industry is the vertical a generated company operates in.
type Industry string

// CompanySize is the scale of the generated company.
type CompanySize string

// Severity is how bad the crisis is.
type Severity string

// Timeline is the window the crisis must be resolved in.
type Timeline string

// StakeholderType describes which groups are affected.
type StakeholderType string

// Category is the crisis domain a scenario belongs to.
type Category string

// Difficulty is the trainee-facing complexity level of a scenario.
type Difficulty string

const (
	IndustryTech       Industry = "tech"
	IndustryHealthcare Industry = "healthcare"
	IndustryFinance    Industry = "finance"
	IndustryRetail     Industry = "retail"

	SizeStartup    CompanySize = "startup"
	SizeMidsize    CompanySize = "midsize"
	SizeEnterprise CompanySize = "enterprise"

	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"

	TimelineHours Timeline = "hours"
	TimelineDays  Timeline = "days"
	TimelineWeeks Timeline = "weeks"

	StakeholderInternal   StakeholderType = "internal"
	StakeholderExternal   StakeholderType = "external"
	StakeholderRegulatory StakeholderType = "regulatory"
	StakeholderMixed      StakeholderType = "mixed"

	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Closed enumerations of the variable space. Order is fixed; identity strings
// and sampling depend on the values, never on the order.
var (
	Industries       = []Industry{IndustryTech, IndustryHealthcare, IndustryFinance, IndustryRetail}
	CompanySizes     = []CompanySize{SizeStartup, SizeMidsize, SizeEnterprise}
	Severities       = []Severity{SeverityMinor, SeverityMajor, SeverityCritical}
	Timelines        = []Timeline{TimelineHours, TimelineDays, TimelineWeeks}
	StakeholderTypes = []StakeholderType{StakeholderInternal, StakeholderExternal, StakeholderRegulatory, StakeholderMixed}
)

// Categories lists all 13 crisis categories, matching the database schema.
var Categories = []Category{
	"technical",
	"business",
	"resource",
	"team",
	"market",
	"regulatory",
	"financial",
	"strategic",
	"operational",
	"communication",
	"quality",
	"international",
	"innovation",
}

// VariableTuple is one point in the 432-combination variable space.
type VariableTuple struct {
	Industry        Industry
	CompanySize     CompanySize
	Severity        Severity
	Timeline        Timeline
	StakeholderType StakeholderType
}

// Overrides pins individual tuple dimensions during sampling. Zero values
// mean "sample randomly".
type Overrides struct {
	Industry    Industry
	CompanySize CompanySize
}

// SampleTuple draws a variable combination. Severity is restricted to the
// subset permitted by the difficulty; industry and company size honor
// overrides when set.
func SampleTuple(difficulty Difficulty, ov Overrides, rng *rand.Rand) VariableTuple {
	industry := ov.Industry
	if industry == "" {
		industry = pick(rng, Industries)
	}
	size := ov.CompanySize
	if size == "" {
		size = pick(rng, CompanySizes)
	}
	return VariableTuple{
		Industry:        industry,
		CompanySize:     size,
		Severity:        pick(rng, AllowedSeverities(difficulty)),
		Timeline:        pick(rng, Timelines),
		StakeholderType: pick(rng, StakeholderTypes),
	}
}

// ParseCategory validates a raw category string against the closed set.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// ParseDifficulty validates a raw difficulty string.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return Difficulty(s), true
	default:
		return "", false
	}
}

// ParseIndustry validates a raw industry string.
func ParseIndustry(s string) (Industry, bool) {
	for _, i := range Industries {
		if string(i) == s {
			return i, true
		}
	}
	return "", false
}

// ParseCompanySize validates a raw company size string.
func ParseCompanySize(s string) (CompanySize, bool) {
	for _, c := range CompanySizes {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
