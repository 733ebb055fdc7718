package service

import (
	"fmt"

	"crisis-server/internal/model"
)

// systemPrompt frames the AI as the scenario author persona.
const systemPrompt = "You are an expert project management consultant with 20+ years of experience in crisis management across various industries."

var categoryDescriptions = map[string]string{
	"technical":     "system failures, security breaches, infrastructure issues, technical debt",
	"business":      "competitor threats, partnerships, market changes, strategic challenges",
	"resource":      "budget cuts, staff departures, vendor issues, capacity constraints",
	"team":          "burnout, conflicts, performance issues, leadership challenges",
	"market":        "customer complaints, regulatory changes, market disruption",
	"regulatory":    "legal issues, compliance violations, audit findings",
	"financial":     "cash flow problems, budget overruns, financial reporting issues",
	"strategic":     "pivot decisions, positioning challenges, growth obstacles",
	"operational":   "supply chain issues, process breakdowns, quality problems",
	"communication": "PR crises, stakeholder management, information flow issues",
	"quality":       "product defects, service failures, reputation damage",
	"international": "cultural issues, global expansion challenges, cross-border problems",
	"innovation":    "R&D failures, technology pivots, competitive disruption",
}

var difficultyGuidance = map[string]string{
	"beginner":     "Clear cause and solution path. Single stakeholder group. Limited scope.",
	"intermediate": "Multiple factors involved. Several stakeholder groups. Moderate complexity.",
	"advanced":     "Complex interdependencies. Multiple competing priorities. High ambiguity.",
}

var sizeDescriptors = map[string]string{
	"startup":    "rapidly growing startup",
	"midsize":    "established mid-size company",
	"enterprise": "large enterprise organization",
}

// buildScenarioPrompt renders the sectioned generation prompt for a scenario
// skeleton. The AI is asked to answer with the exact section markers the
// parser expects.
func buildScenarioPrompt(sc *model.Scenario) string {
	return fmt.Sprintf(`You are an expert project management consultant creating realistic crisis scenarios for training purposes.

SCENARIO REQUIREMENTS:
- Category: %s (%s)
- Industry: %s
- Company Size: %s
- Severity: %s
- Timeline: %s
- Stakeholder Type: %s
- Difficulty: %s (%s)

COMPANY CONTEXT: %s

Generate a professional crisis scenario with these exact sections:

TITLE: [Compelling 8-12 word crisis title that captures urgency and scope]

DESCRIPTION: [2-3 sentences describing what happened, immediate impact, and why it's critical. Be specific about numbers, timeframes, and consequences.]

CONTEXT: [2-3 sentences providing background - what led to this situation, recent changes, or underlying factors that contributed.]

STAKEHOLDERS: [Comma-separated list of 4-6 specific stakeholder roles affected by this crisis]

TIME_PRESSURE: [1-2 sentences explaining why immediate action is needed and what happens if delayed]

EXPERT_SOLUTION: [3-4 sentences outlining a professional PM response with immediate, short-term, and long-term actions]

ASSESSMENT_CRITERIA: [JSON object with arrays of keywords for strategy, communication, leadership, execution, and category-specific skills]

Make it realistic, specific, and professionally challenging. Use actual business language and scenarios that real project managers face.`,
		sc.Category, categoryDescriptions[sc.Category],
		sc.Industry,
		sc.CompanySize,
		sc.Severity,
		sc.Timeline,
		sc.StakeholderType,
		sc.Difficulty, difficultyGuidance[sc.Difficulty],
		companyContext(sc.CompanySize, sc.Industry))
}

func companyContext(companySize, industry string) string {
	desc, ok := sizeDescriptors[companySize]
	if !ok {
		desc = "company"
	}
	return fmt.Sprintf("%s in the %s industry", desc, industry)
}
