package series

import "github.com/godilite/talentbridge-stats/internal/stats"

// SurveyTypePie always yields Parents then Teachers; a nil input counts as
// zero for both.
func SurveyTypePie(counts *stats.SurveyTypeCounts, tr Translator, colors Colors) []Point {
	var c stats.SurveyTypeCounts
	if counts != nil {
		c = *counts
	}
	return fixedPoints(
		[]string{"Parents", "Teachers"},
		[]string{text(tr, "surveyTypes.parents"), text(tr, "surveyTypes.teachers")},
		[]int{c.Parents, c.Teachers},
		[]string{colors.Primary, colors.Secondary},
	)
}

// Categories yields the four exclusive population buckets.
func Categories(c stats.Categories, tr Translator, colors Colors) []Point {
	return fixedPoints(
		[]string{"disabledOnly", "talentedOnly", "dualExceptional", "neither"},
		[]string{
			text(tr, "categories.disabledOnly"),
			text(tr, "categories.talentedOnly"),
			text(tr, "categories.dualExceptional"),
			text(tr, "categories.neither"),
		},
		[]int{c.DisabledOnly, c.TalentedOnly, c.DualExceptional, c.Neither},
		[]string{colors.Danger, colors.Success, colors.Primary, colors.Text},
	)
}

// GenderSplit yields male then female shares.
func GenderSplit(g stats.GenderCounts, tr Translator, colors Colors) []Point {
	return fixedPoints(
		[]string{"male", "female"},
		[]string{text(tr, "demographics.male"), text(tr, "demographics.female")},
		[]int{g.Male, g.Female},
		[]string{colors.Primary, colors.Pink},
	)
}

// GenderRow is one group of the gender comparison bar chart.
type GenderRow struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Male   int    `json:"male"`
	Female int    `json:"female"`
}

// GenderComparison compares dual-exceptional, talented and disabled groups.
// A missing dual-exceptional breakdown reads as zero.
func GenderComparison(d stats.Demographics, tr Translator) []GenderRow {
	var dual stats.GenderCounts
	if d.GenderDistributionDualExceptional != nil {
		dual = *d.GenderDistributionDualExceptional
	}
	return []GenderRow{
		{Key: "dualExceptional", Label: text(tr, "categories.dualExceptional"), Male: dual.Male, Female: dual.Female},
		{Key: "talented", Label: text(tr, "demographics.talented"), Male: d.GenderDistributionTalented.Male, Female: d.GenderDistributionTalented.Female},
		{Key: "disabled", Label: text(tr, "demographics.disabled"), Male: d.GenderDistributionDisabled.Male, Female: d.GenderDistributionDisabled.Female},
	}
}
