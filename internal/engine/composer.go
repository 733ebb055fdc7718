package engine

import (
	"math/rand"
	"regexp"
	"strings"

	"crisis-server/internal/model"
)

// Content is the composed human-readable part of a scenario.
type Content struct {
	Title              string
	Description        string
	Context            string
	Stakeholders       string
	TimePressure       string
	ExpertSolution     string
	AssessmentCriteria model.AssessmentCriteria
}

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Compose fills a template with the sampled tuple and the template's own
// vocabulary, then derives the fixed narrative sections.
//
// Placeholder resolution: {severity} and {company_type} come from the tuple;
// any other name is drawn from the template's variable lists. A placeholder
// with no source stays in the text verbatim rather than erroring, so a
// half-authored template degrades visibly instead of failing generation.
func Compose(tpl Template, tuple VariableTuple, cat Category, rng *rand.Rand) Content {
	return Content{
		Title:          fillPlaceholders(tpl.TitleTemplate, tpl, tuple, rng),
		Description:    fillPlaceholders(tpl.DescriptionTemplate, tpl, tuple, rng),
		Context:        composeContext(tpl, tuple, cat, rng),
		Stakeholders:   StakeholdersFor(tuple.StakeholderType),
		TimePressure:   TimePressureFor(tuple.Timeline),
		ExpertSolution: ExpertSolutionFor(cat),
		AssessmentCriteria: model.AssessmentCriteria{
			StrategyKeywords:      []string{"analysis", "planning", "solution", "prevention", "root cause"},
			CommunicationKeywords: []string{"stakeholders", "transparency", "updates", "messaging", "coordination"},
			LeadershipKeywords:    []string{"decision making", "team management", "accountability", "vision", "execution"},
			ExecutionKeywords:     []string{"immediate action", "timeline", "resources", "monitoring", "follow-up"},
			CategorySpecific:      CategoryKeywords(cat),
		},
	}
}

func fillPlaceholders(text string, tpl Template, tuple VariableTuple, rng *rand.Rand) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1 : len(match)-1]
		switch name {
		case "severity":
			return capitalize(string(tuple.Severity))
		case "company_type":
			return companyType(tuple)
		}
		if values, ok := tpl.Variables[name]; ok && len(values) > 0 {
			return pick(rng, values)
		}
		return match
	})
}

// composeContext fills the template's context text when present, otherwise
// falls back to a category-family context line.
func composeContext(tpl Template, tuple VariableTuple, cat Category, rng *rand.Rand) string {
	if tpl.ContextTemplate != "" {
		return fillPlaceholders(tpl.ContextTemplate, tpl, tuple, rng)
	}
	return fallbackContext(tuple, cat, rng)
}

func fallbackContext(tuple VariableTuple, cat Category, rng *rand.Rand) string {
	industry := string(tuple.Industry)
	size := capitalize(string(tuple.CompanySize))
	var lines []string
	switch cat {
	case "technical":
		lines = []string{
			"Growing " + industry + " platform with recent scaling challenges",
			"Enterprise " + industry + " system with compliance requirements",
			"Consumer-facing " + industry + " application with high availability needs",
		}
	case "resource":
		lines = []string{
			size + " " + industry + " organization with tight budgets",
			capitalize(industry) + " company managing rapid growth",
			"Resource-constrained " + industry + " team with ambitious goals",
		}
	default:
		lines = []string{
			size + " " + industry + " company in competitive market",
			"Established " + industry + " business facing digital transformation",
			"Fast-growing " + industry + " startup with investor pressure",
		}
	}
	return pick(rng, lines)
}

// StakeholdersFor maps a stakeholder type to its concrete cast of roles.
func StakeholdersFor(st StakeholderType) string {
	switch st {
	case StakeholderInternal:
		return "Engineering team, DevOps, Product Manager, CEO"
	case StakeholderExternal:
		return "Key customers, media contacts, industry analysts, partners"
	case StakeholderRegulatory:
		return "Compliance team, legal counsel, regulatory bodies, auditors"
	default:
		return "Internal teams, customers, regulatory bodies, media, investors"
	}
}

// TimePressureFor maps a timeline to its urgency framing.
func TimePressureFor(t Timeline) string {
	switch t {
	case TimelineHours:
		return "Immediate action required - every hour of delay increases impact exponentially"
	case TimelineWeeks:
		return "Strategic response required within 1-2 weeks to maintain competitive position"
	default:
		return "Resolution needed within 2-3 days to prevent escalation to crisis level"
	}
}

// ExpertSolutionFor maps a category family to the reference response framework.
func ExpertSolutionFor(cat Category) string {
	switch cat {
	case "technical":
		return "Immediate: Implement emergency protocols. Short-term: Root cause analysis and fix. Long-term: Prevention and monitoring systems."
	case "resource":
		return "Immediate: Resource reallocation and priority adjustment. Short-term: Alternative solutions and timeline negotiation. Long-term: Resource planning and risk mitigation."
	default:
		return "Immediate: Stakeholder communication and damage control. Short-term: Address core issues. Long-term: Relationship rebuilding and process improvement."
	}
}

var categoryKeywords = map[Category][]string{
	"technical":     {"system recovery", "technical debt", "infrastructure", "monitoring", "scalability"},
	"business":      {"market analysis", "competitive advantage", "revenue impact", "partnerships", "strategy"},
	"resource":      {"budget management", "resource allocation", "vendor management", "capacity planning"},
	"team":          {"team dynamics", "performance management", "motivation", "conflict resolution"},
	"market":        {"customer relations", "market positioning", "brand reputation", "competitive response"},
	"regulatory":    {"compliance", "legal requirements", "audit preparation", "risk management"},
	"financial":     {"financial planning", "cost control", "budget tracking", "financial reporting"},
	"strategic":     {"strategic planning", "vision alignment", "change management", "transformation"},
	"operational":   {"process optimization", "operational efficiency", "supply chain", "quality control"},
	"communication": {"stakeholder engagement", "crisis communication", "change communication"},
	"quality":       {"quality assurance", "defect management", "customer satisfaction", "process improvement"},
	"international": {"cultural awareness", "global coordination", "localization", "cross-border"},
	"innovation":    {"innovation management", "technology adoption", "R&D coordination", "disruption response"},
}

// CategoryKeywords returns the assessment keywords specific to a category,
// falling back to the business set for anything unknown.
func CategoryKeywords(cat Category) []string {
	kw, ok := categoryKeywords[cat]
	if !ok {
		kw = categoryKeywords["business"]
	}
	out := make([]string, len(kw))
	copy(out, kw)
	return out
}

func companyType(t VariableTuple) string {
	return capitalize(string(t.CompanySize)) + " " + capitalize(string(t.Industry)) + " Company"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
