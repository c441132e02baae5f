// Package statstest holds a representative reporting API payload shared by
// tests across packages.
package statstest

import (
	"testing"

	"github.com/godilite/talentbridge-stats/internal/stats"
)

// SummaryJSON mirrors a /summary response for a January 2024 filter.
const SummaryJSON = `{
  "general": {
    "totalParticipants": 200,
    "countBySurveyType": {"Parents": 120, "Teachers": 80}
  },
  "talentDisability": {
    "disabled": {"count": 60, "percentage": 30},
    "talented": {"count": 50, "percentage": 25},
    "dualExceptional": {"count": 20, "percentage": 10},
    "dualExceptionalBySurveyType": {"Parents": 12, "Teachers": 8},
    "disabilityTypesAmongDisabled": {
      "Learning   Disability ": 25,
      "ADHD": 30,
      "Autism Spectrum Disorder": 25,
      "Visual Impairment": 5
    },
    "disabilityTypesAmongDualExceptional": {
      "ADHD": 9,
      "Learning Disability": 7,
      "Hearing Impairment": 4
    },
    "categories": {"disabledOnly": 40, "talentedOnly": 30, "dualExceptional": 20, "neither": 110}
  },
  "demographics": {
    "genderDistribution": {"female": 110, "male": 90},
    "genderDistributionTalented": {"female": 28, "male": 22},
    "genderDistributionDisabled": {"female": 25, "male": 35},
    "ageGroupDistribution": {"6-9": 50, "10-12": 70, "13-15": 60, "16-18": 20},
    "ageGroupDistributionDualExceptional": {"10-12": 12, "13-15": 8}
  },
  "kpis": {
    "percentageDisabled": 30,
    "percentageDualExceptional": 10,
    "averageTalentPercent": 42.456,
    "averageDisabilityPercent": 18.04
  },
  "satisfaction": {
    "averageSatisfaction": 61.27,
    "satisfactionDistribution": {"100.00": 40, "75.00": 10, "50.00": 5, "25.00": 45},
    "satisfactionBySurveyType": {
      "Parents": {"100.00": 30, "25.00": 20},
      "Teachers": {"75.00": 10, "50.00": 5}
    },
    "satisfactionByGender": {
      "female": {"100.00": 25},
      "male": {"25.00": 45}
    },
    "satisfactionByTalentStatus": {
      "Not Talented": {"50.00": 5},
      "Talented": {"100.00": 15}
    },
    "satisfactionByDisabilityStatus": {
      "Disabled": {"25.00": 12},
      "Not Disabled": {"75.00": 10}
    }
  },
  "detailed": {
    "mostCommonDisabilityType": "ADHD",
    "mostCommonDisabilityCount": 30
  },
  "filteredDateRange": "2024-01-01 - 2024-01-31"
}`

// Snapshot decodes SummaryJSON, failing the test on error.
func Snapshot(tb testing.TB) *stats.Snapshot {
	tb.Helper()
	s, err := stats.Decode([]byte(SummaryJSON))
	if err != nil {
		tb.Fatalf("decode fixture: %v", err)
	}
	return s
}
