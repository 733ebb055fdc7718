package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedSeverities(t *testing.T) {
	assert.Equal(t, []Severity{SeverityMinor, SeverityMajor}, AllowedSeverities(DifficultyBeginner))
	assert.Equal(t, []Severity{SeverityMajor, SeverityCritical}, AllowedSeverities(DifficultyIntermediate))
	assert.Equal(t, []Severity{SeverityCritical}, AllowedSeverities(DifficultyAdvanced))
}

func TestAllowedSeverities_UnknownFallsBackToIntermediate(t *testing.T) {
	assert.Equal(t, AllowedSeverities(DifficultyIntermediate), AllowedSeverities(Difficulty("nightmare")))
}

func TestAdaptDifficulty(t *testing.T) {
	cases := []struct {
		name     string
		progress Progress
		want     Difficulty
	}{
		{"new user", Progress{}, DifficultyBeginner},
		{"strong veteran", Progress{TotalCompleted: 11, AverageScore: 86}, DifficultyAdvanced},
		{"solid regular", Progress{TotalCompleted: 6, AverageScore: 71}, DifficultyIntermediate},
		{"high score, thin history", Progress{TotalCompleted: 3, AverageScore: 95}, DifficultyBeginner},
		{"long history, weak score", Progress{TotalCompleted: 40, AverageScore: 60}, DifficultyBeginner},
		// Thresholds are strict: exact values stay at the lower level.
		{"exactly advanced thresholds", Progress{TotalCompleted: 10, AverageScore: 85}, DifficultyBeginner},
		{"exactly intermediate thresholds", Progress{TotalCompleted: 5, AverageScore: 70}, DifficultyBeginner},
		{"advanced score, intermediate count", Progress{TotalCompleted: 7, AverageScore: 90}, DifficultyIntermediate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AdaptDifficulty(tc.progress))
		})
	}
}
