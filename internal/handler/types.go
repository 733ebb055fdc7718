package handler

// generateRequest carries the optional generation preferences. Anything
// missing or unknown falls back to a random or default value downstream.
type generateRequest struct {
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Industry      string   `json:"industry"`
	CompanySize   string   `json:"companySize"`
	UsedScenarios []string `json:"usedScenarios"`
}

// recordResponseRequest carries the score of a completed scenario.
type recordResponseRequest struct {
	Score *int `json:"score" binding:"required"`
}
