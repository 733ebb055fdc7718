package engine

// Thresholds for history-based difficulty adaptation. Comparisons are strict,
// so a user sitting exactly on a threshold stays at the lower difficulty.
const (
	advancedScoreThreshold = 85
	advancedCountThreshold = 10

	intermediateScoreThreshold = 70
	intermediateCountThreshold = 5
)

var difficultySeverities = map[Difficulty][]Severity{
	DifficultyBeginner:     {SeverityMinor, SeverityMajor},
	DifficultyIntermediate: {SeverityMajor, SeverityCritical},
	DifficultyAdvanced:     {SeverityCritical},
}

// AllowedSeverities returns the severities a difficulty level may draw from.
// Unknown difficulties fall back to the intermediate subset.
func AllowedSeverities(d Difficulty) []Severity {
	subset, ok := difficultySeverities[d]
	if !ok {
		subset = difficultySeverities[DifficultyIntermediate]
	}
	out := make([]Severity, len(subset))
	copy(out, subset)
	return out
}

// Progress is the slice of a user's history relevant to difficulty adaptation.
type Progress struct {
	TotalCompleted int
	AverageScore   float64
}

// AdaptDifficulty maps accumulated performance onto a difficulty level.
// New users with no history land on beginner.
func AdaptDifficulty(p Progress) Difficulty {
	if p.AverageScore > advancedScoreThreshold && p.TotalCompleted > advancedCountThreshold {
		return DifficultyAdvanced
	}
	if p.AverageScore > intermediateScoreThreshold && p.TotalCompleted > intermediateCountThreshold {
		return DifficultyIntermediate
	}
	return DifficultyBeginner
}
