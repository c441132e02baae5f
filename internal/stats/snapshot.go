package stats

import (
	"encoding/json"
	"fmt"
)

// Snapshot is one immutable statistics payload returned by the reporting API
// for an optional date range.
type Snapshot struct {
	General           General          `json:"general"`
	TalentDisability  TalentDisability `json:"talentDisability"`
	Demographics      Demographics     `json:"demographics"`
	KPIs              KPIs             `json:"kpis"`
	Satisfaction      Satisfaction     `json:"satisfaction"`
	Detailed          Detailed         `json:"detailed"`
	FilteredDateRange *string          `json:"filteredDateRange"`
}

type SurveyTypeCounts struct {
	Parents  int `json:"Parents"`
	Teachers int `json:"Teachers"`
}

type General struct {
	TotalParticipants int              `json:"totalParticipants"`
	CountBySurveyType SurveyTypeCounts `json:"countBySurveyType"`
}

// Share is a headcount together with its upstream-computed percentage.
type Share struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Categories partitions the population into four exclusive buckets.
type Categories struct {
	DisabledOnly    int `json:"disabledOnly"`
	TalentedOnly    int `json:"talentedOnly"`
	DualExceptional int `json:"dualExceptional"`
	Neither         int `json:"neither"`
}

type TalentDisability struct {
	Disabled        Share `json:"disabled"`
	Talented        Share `json:"talented"`
	DualExceptional Share `json:"dualExceptional"`

	// Optional; older upstream versions omit it.
	DualExceptionalBySurveyType *SurveyTypeCounts `json:"dualExceptionalBySurveyType,omitempty"`

	DisabilityTypesAmongDisabled        Counts     `json:"disabilityTypesAmongDisabled"`
	DisabilityTypesAmongDualExceptional Counts     `json:"disabilityTypesAmongDualExceptional"`
	Categories                          Categories `json:"categories"`
}

type GenderCounts struct {
	Female int `json:"female"`
	Male   int `json:"male"`
}

type Demographics struct {
	GenderDistribution         GenderCounts `json:"genderDistribution"`
	GenderDistributionTalented GenderCounts `json:"genderDistributionTalented"`
	GenderDistributionDisabled GenderCounts `json:"genderDistributionDisabled"`

	// Optional.
	GenderDistributionDualExceptional *GenderCounts `json:"genderDistributionDualExceptional,omitempty"`

	AgeGroupDistribution                Counts `json:"ageGroupDistribution"`
	AgeGroupDistributionDualExceptional Counts `json:"ageGroupDistributionDualExceptional"`
}

// KPIs are percentages computed upstream; they are only ever formatted.
type KPIs struct {
	PercentageDisabled        float64 `json:"percentageDisabled"`
	PercentageDualExceptional float64 `json:"percentageDualExceptional"`
	AverageTalentPercent      float64 `json:"averageTalentPercent"`
	AverageDisabilityPercent  float64 `json:"averageDisabilityPercent"`
}

type SurveyTypeSatisfaction struct {
	Parents  Counts `json:"Parents"`
	Teachers Counts `json:"Teachers"`
}

type GenderSatisfaction struct {
	Female Counts `json:"female"`
	Male   Counts `json:"male"`
}

type TalentSatisfaction struct {
	NotTalented Counts `json:"Not Talented"`
	Talented    Counts `json:"Talented"`
}

type DisabilitySatisfaction struct {
	Disabled    Counts `json:"Disabled"`
	NotDisabled Counts `json:"Not Disabled"`
}

// Satisfaction keys its distributions by a stringified score such as "75.00".
type Satisfaction struct {
	AverageSatisfaction            float64                `json:"averageSatisfaction"`
	SatisfactionDistribution       Counts                 `json:"satisfactionDistribution"`
	SatisfactionBySurveyType       SurveyTypeSatisfaction `json:"satisfactionBySurveyType"`
	SatisfactionByGender           GenderSatisfaction     `json:"satisfactionByGender"`
	SatisfactionByTalentStatus     TalentSatisfaction     `json:"satisfactionByTalentStatus"`
	SatisfactionByDisabilityStatus DisabilitySatisfaction `json:"satisfactionByDisabilityStatus"`
}

type Detailed struct {
	MostCommonDisabilityType  string `json:"mostCommonDisabilityType"`
	MostCommonDisabilityCount int    `json:"mostCommonDisabilityCount"`
}

// Decode parses an upstream summary body into a Snapshot.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode statistics snapshot: %w", err)
	}
	return &s, nil
}
