package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveIdentity_Format(t *testing.T) {
	tuple := VariableTuple{
		Industry:        IndustryTech,
		CompanySize:     SizeStartup,
		Severity:        SeverityCritical,
		Timeline:        TimelineHours,
		StakeholderType: StakeholderMixed,
	}

	got := DeriveIdentity("technical", "TECH_001", tuple)
	assert.Equal(t, "technical_TECH_001_tech-startup-critical-hours-mixed", got)
}

func TestDeriveIdentity_Stable(t *testing.T) {
	tuple := VariableTuple{
		Industry:        IndustryFinance,
		CompanySize:     SizeEnterprise,
		Severity:        SeverityMajor,
		Timeline:        TimelineWeeks,
		StakeholderType: StakeholderRegulatory,
	}

	assert.Equal(t,
		DeriveIdentity("business", "BUS_003", tuple),
		DeriveIdentity("business", "BUS_003", tuple))
}

func TestDeriveIdentity_DistinguishesTuples(t *testing.T) {
	base := VariableTuple{
		Industry:        IndustryTech,
		CompanySize:     SizeMidsize,
		Severity:        SeverityMajor,
		Timeline:        TimelineDays,
		StakeholderType: StakeholderInternal,
	}
	other := base
	other.Timeline = TimelineWeeks

	assert.NotEqual(t,
		DeriveIdentity("technical", "TECH_004", base),
		DeriveIdentity("technical", "TECH_004", other))
}
