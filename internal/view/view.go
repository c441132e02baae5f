// Package view assembles the presentation-ready dashboard from a snapshot:
// KPI cards, chart series and their localized titles.
package view

import (
	"github.com/godilite/talentbridge-stats/internal/i18n"
	"github.com/godilite/talentbridge-stats/internal/series"
	"github.com/godilite/talentbridge-stats/internal/stats"
)

// Catalog is the localization surface the view needs.
type Catalog interface {
	series.Translator
	T(key string) string
	FormatInt(n int) string
	Locale() i18n.Locale
}

type Card struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Value string `json:"value"`
}

type Chart struct {
	Title  string         `json:"title"`
	Points []series.Point `json:"points"`
}

type SatisfactionChart struct {
	Chart
	AverageLabel string `json:"averageLabel"`
	Average      string `json:"average"`
	// SkippedScores lists distribution keys that were not numeric.
	SkippedScores []string `json:"skippedScores,omitempty"`
}

type GenderChart struct {
	Title string             `json:"title"`
	Rows  []series.GenderRow `json:"rows"`
}

type Highlight struct {
	Title string `json:"title"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type View struct {
	Locale            i18n.Locale   `json:"locale"`
	Direction         string        `json:"direction"`
	Theme             series.Theme  `json:"theme"`
	Colors            series.Colors `json:"colors"`
	Title             string        `json:"title"`
	Subtitle          string        `json:"subtitle"`
	FilteredDateRange *string       `json:"filteredDateRange"`

	KPIs []Card `json:"kpis"`

	SurveyTypes                 Chart             `json:"surveyTypes"`
	Satisfaction                SatisfactionChart `json:"satisfaction"`
	Categories                  Chart             `json:"categories"`
	DisabilityBreakdown         Chart             `json:"disabilityBreakdown"`
	DualExceptionalDisabilities Chart             `json:"dualExceptionalDisabilities"`
	DualExceptionalBySurveyType Chart             `json:"dualExceptionalBySurveyType"`
	GenderComparison            GenderChart       `json:"genderComparison"`
	GenderDistribution          Chart             `json:"genderDistribution"`
	AgeDistribution             Chart             `json:"ageDistribution"`
	AgeDistributionDual         Chart             `json:"ageDistributionDualExceptional"`

	MostCommonDisability *Highlight `json:"mostCommonDisability,omitempty"`
}

// Build derives the full view. It never fails: absent sections read as zero.
func Build(s *stats.Snapshot, cat Catalog, theme series.Theme) *View {
	if s == nil {
		s = &stats.Snapshot{}
	}
	colors := series.ChartColors(theme)
	palette := series.Palette(theme)
	locale := cat.Locale()

	satisfaction, skipped := series.SatisfactionSplit(s.Satisfaction.SatisfactionDistribution, cat, colors)
	ageLabel := func(k string) string { return k }

	v := &View{
		Locale:            locale,
		Direction:         locale.Direction(),
		Theme:             theme,
		Colors:            colors,
		Title:             cat.T("pageTitle"),
		Subtitle:          cat.T("pageSubtitle"),
		FilteredDateRange: s.FilteredDateRange,
		KPIs:              kpiCards(s, cat),

		SurveyTypes: Chart{
			Title:  cat.T("sections.surveyTypes"),
			Points: series.SurveyTypePie(&s.General.CountBySurveyType, cat, colors),
		},
		Satisfaction: SatisfactionChart{
			Chart:         Chart{Title: cat.T("sections.satisfaction"), Points: satisfaction},
			AverageLabel:  cat.T("averageSatisfaction"),
			Average:       series.FormatPercent(s.Satisfaction.AverageSatisfaction),
			SkippedScores: skipped,
		},
		Categories: Chart{
			Title:  cat.T("sections.categoryDistribution"),
			Points: series.Categories(s.TalentDisability.Categories, cat, colors),
		},
		DisabilityBreakdown: Chart{
			Title:  cat.T("sections.disabilityBreakdown"),
			Points: series.DisabilityBreakdown(s.TalentDisability.DisabilityTypesAmongDisabled, cat, palette),
		},
		DualExceptionalDisabilities: Chart{
			Title:  cat.T("sections.dualExceptionalDisabilities"),
			Points: series.DualExceptionalBreakdown(s.TalentDisability.DisabilityTypesAmongDualExceptional, cat, palette),
		},
		DualExceptionalBySurveyType: Chart{
			Title:  cat.T("sections.dualExceptionalBySurveyType"),
			Points: series.SurveyTypePie(s.TalentDisability.DualExceptionalBySurveyType, cat, colors),
		},
		GenderComparison: GenderChart{
			Title: cat.T("sections.demographics"),
			Rows:  series.GenderComparison(s.Demographics, cat),
		},
		GenderDistribution: Chart{
			Title:  cat.T("sections.demographics"),
			Points: series.GenderSplit(s.Demographics.GenderDistribution, cat, colors),
		},
		AgeDistribution: Chart{
			Title:  cat.T("sections.ageDistribution"),
			Points: series.Distribution(s.Demographics.AgeGroupDistribution, ageLabel, palette),
		},
		AgeDistributionDual: Chart{
			Title:  cat.T("sections.ageDistribution"),
			Points: series.Distribution(s.Demographics.AgeGroupDistributionDualExceptional, ageLabel, palette),
		},
	}

	if d := s.Detailed; d.MostCommonDisabilityType != "" {
		v.MostCommonDisability = &Highlight{
			Title: cat.T("mostCommonDisability"),
			Label: series.DisabilityLabel(cat, d.MostCommonDisabilityType),
			Count: d.MostCommonDisabilityCount,
		}
	}

	return v
}

func kpiCards(s *stats.Snapshot, cat Catalog) []Card {
	return []Card{
		{Key: "totalParticipants", Title: cat.T("kpis.totalParticipants"), Value: cat.FormatInt(s.General.TotalParticipants)},
		{Key: "percentageDisabled", Title: cat.T("kpis.percentageDisabled"), Value: series.FormatPercent(s.KPIs.PercentageDisabled)},
		{Key: "percentageDualExceptional", Title: cat.T("kpis.percentageDualExceptional"), Value: series.FormatPercent(s.KPIs.PercentageDualExceptional)},
		{Key: "averageTalent", Title: cat.T("kpis.averageTalent"), Value: series.FormatPercent(s.KPIs.AverageTalentPercent)},
		{Key: "averageDisability", Title: cat.T("kpis.averageDisability"), Value: series.FormatPercent(s.KPIs.AverageDisabilityPercent)},
	}
}
