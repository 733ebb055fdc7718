package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"crisis-server/internal/model"
)

// ScenarioContent is the parsed result of a sectioned AI response.
type ScenarioContent struct {
	Title              string
	Description        string
	Context            string
	Stakeholders       string
	TimePressure       string
	ExpertSolution     string
	AssessmentCriteria model.AssessmentCriteria
}

var sectionMarkerRe = regexp.MustCompile(`^(TITLE|DESCRIPTION|CONTEXT|STAKEHOLDERS|TIME_PRESSURE|EXPERT_SOLUTION|ASSESSMENT_CRITERIA):\s*(.*)`)

// parseScenarioContent splits a sectioned AI response into scenario fields.
// Missing sections get neutral defaults; the caller decides whether the
// result is good enough to keep.
func parseScenarioContent(raw string) ScenarioContent {
	sections := extractSections(raw)

	return ScenarioContent{
		Title:              sectionOr(sections, "TITLE", "Crisis Management Challenge"),
		Description:        sectionOr(sections, "DESCRIPTION", "A critical situation requiring immediate project management intervention."),
		Context:            sectionOr(sections, "CONTEXT", "Background information not available."),
		Stakeholders:       sectionOr(sections, "STAKEHOLDERS", "Project team, management, customers"),
		TimePressure:       sectionOr(sections, "TIME_PRESSURE", "Immediate action required to prevent escalation."),
		ExpertSolution:     sectionOr(sections, "EXPERT_SOLUTION", "Assess situation, communicate with stakeholders, implement corrective measures."),
		AssessmentCriteria: parseAssessmentCriteria(sections["ASSESSMENT_CRITERIA"]),
	}
}

// extractSections walks the response line by line. A section marker starts a
// new section; continuation lines are folded into the current one with single
// spaces.
func extractSections(raw string) map[string]string {
	sections := make(map[string]string)
	currentSection := ""
	currentContent := ""

	for _, line := range strings.Split(raw, "\n") {
		match := sectionMarkerRe.FindStringSubmatch(line)
		if match != nil {
			if currentSection != "" && strings.TrimSpace(currentContent) != "" {
				sections[currentSection] = strings.TrimSpace(currentContent)
			}
			currentSection = match[1]
			currentContent = match[2]
			continue
		}
		if currentSection != "" && strings.TrimSpace(line) != "" {
			if currentContent != "" {
				currentContent += " "
			}
			currentContent += strings.TrimSpace(line)
		}
	}
	if currentSection != "" && strings.TrimSpace(currentContent) != "" {
		sections[currentSection] = strings.TrimSpace(currentContent)
	}

	return sections
}

func sectionOr(sections map[string]string, key, fallback string) string {
	if v, ok := sections[key]; ok && v != "" {
		return v
	}
	return fallback
}

// parseAssessmentCriteria reads the criteria JSON from the response. Any
// list the model omitted or broke keeps its default.
func parseAssessmentCriteria(criteriaText string) model.AssessmentCriteria {
	criteria := defaultAssessmentCriteria()

	start := strings.Index(criteriaText, "{")
	if start < 0 {
		return criteria
	}
	end := strings.LastIndex(criteriaText, "}")
	if end < start {
		return criteria
	}

	var parsed struct {
		StrategyKeywords      []string `json:"strategy_keywords"`
		CommunicationKeywords []string `json:"communication_keywords"`
		LeadershipKeywords    []string `json:"leadership_keywords"`
		ExecutionKeywords     []string `json:"execution_keywords"`
		CategorySpecific      []string `json:"category_specific"`
	}
	if err := json.Unmarshal([]byte(criteriaText[start:end+1]), &parsed); err != nil {
		return criteria
	}

	if len(parsed.StrategyKeywords) > 0 {
		criteria.StrategyKeywords = parsed.StrategyKeywords
	}
	if len(parsed.CommunicationKeywords) > 0 {
		criteria.CommunicationKeywords = parsed.CommunicationKeywords
	}
	if len(parsed.LeadershipKeywords) > 0 {
		criteria.LeadershipKeywords = parsed.LeadershipKeywords
	}
	if len(parsed.ExecutionKeywords) > 0 {
		criteria.ExecutionKeywords = parsed.ExecutionKeywords
	}
	if len(parsed.CategorySpecific) > 0 {
		criteria.CategorySpecific = parsed.CategorySpecific
	}

	return criteria
}

func defaultAssessmentCriteria() model.AssessmentCriteria {
	return model.AssessmentCriteria{
		StrategyKeywords:      []string{"analysis", "planning", "solution", "prevention", "root cause"},
		CommunicationKeywords: []string{"stakeholders", "transparency", "updates", "messaging", "coordination"},
		LeadershipKeywords:    []string{"decision making", "team management", "accountability", "vision", "execution"},
		ExecutionKeywords:     []string{"immediate action", "timeline", "resources", "monitoring", "follow-up"},
		CategorySpecific:      []string{"crisis management", "problem solving", "risk assessment"},
	}
}
