package engine

import "fmt"

// DeriveIdentity builds the byte-stable dedup key of a scenario:
//
//	category_TEMPLATEID_industry-size-severity-timeline-stakeholder
//
// Two scenarios with the same category, template and variable tuple are the
// same scenario for uniqueness purposes, regardless of composed wording.
func DeriveIdentity(cat Category, templateID string, t VariableTuple) string {
	return fmt.Sprintf("%s_%s_%s-%s-%s-%s-%s",
		cat, templateID,
		t.Industry, t.CompanySize, t.Severity, t.Timeline, t.StakeholderType)
}
