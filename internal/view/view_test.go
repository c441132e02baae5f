package view

import (
	"encoding/json"
	"testing"

	"github.com/godilite/talentbridge-stats/internal/i18n"
	"github.com/godilite/talentbridge-stats/internal/series"
	"github.com/godilite/talentbridge-stats/internal/stats"
	"github.com/godilite/talentbridge-stats/internal/stats/statstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b, err := i18n.NewBundle()
	require.NoError(t, err)
	return b
}

func TestBuildEnglish(t *testing.T) {
	v := Build(statstest.Snapshot(t), bundle(t).Catalog(i18n.English), series.Light)

	assert.Equal(t, i18n.English, v.Locale)
	assert.Equal(t, "ltr", v.Direction)
	assert.Equal(t, series.ChartColors(series.Light), v.Colors)

	require.Len(t, v.KPIs, 5)
	assert.Equal(t, Card{Key: "totalParticipants", Title: "Total participants", Value: "200"}, v.KPIs[0])
	assert.Equal(t, "30.0%", v.KPIs[1].Value)
	assert.Equal(t, "42.5%", v.KPIs[3].Value)
	assert.Equal(t, "18.0%", v.KPIs[4].Value)

	assert.Equal(t, "61.3%", v.Satisfaction.Average)
	require.Len(t, v.Satisfaction.Points, 2)
	assert.Equal(t, "50.0%", v.Satisfaction.Points[0].Display)

	require.Len(t, v.DisabilityBreakdown.Points, 4)
	assert.Equal(t, "ADHD", v.DisabilityBreakdown.Points[0].Label)
	assert.Equal(t, "Learning disability", v.DisabilityBreakdown.Points[1].Label)
	assert.Equal(t, "Autism spectrum disorder", v.DisabilityBreakdown.Points[2].Label)

	assert.Len(t, v.DualExceptionalDisabilities.Points, 3)
	assert.Equal(t, 12, v.DualExceptionalBySurveyType.Points[0].Value)

	assert.Equal(t, "6-9", v.AgeDistribution.Points[0].Label)
	assert.Equal(t, "25.0%", v.AgeDistribution.Points[0].Display)
	assert.Equal(t, "60.0%", v.AgeDistributionDual.Points[0].Display)

	require.NotNil(t, v.MostCommonDisability)
	assert.Equal(t, 30, v.MostCommonDisability.Count)

	require.NotNil(t, v.FilteredDateRange)
}

func TestBuildArabicDark(t *testing.T) {
	v := Build(statstest.Snapshot(t), bundle(t).Catalog(i18n.Arabic), series.Dark)

	assert.Equal(t, "rtl", v.Direction)
	assert.Equal(t, series.Dark, v.Theme)
	assert.Equal(t, "صعوبات التعلم", v.DisabilityBreakdown.Points[1].Label)
	assert.Equal(t, "أولياء الأمور", v.SurveyTypes.Points[0].Label)
	assert.Equal(t, series.Palette(series.Dark)[0], v.DisabilityBreakdown.Points[0].Color)
}

func TestBuildEmptySnapshotDoesNotPanic(t *testing.T) {
	cat := bundle(t).Catalog(i18n.English)

	for _, s := range []*stats.Snapshot{nil, {}} {
		v := Build(s, cat, series.Light)

		require.Len(t, v.SurveyTypes.Points, 2)
		require.Len(t, v.DualExceptionalBySurveyType.Points, 2)
		assert.Equal(t, 0, v.DualExceptionalBySurveyType.Points[1].Value)
		assert.Empty(t, v.DisabilityBreakdown.Points)
		assert.Nil(t, v.MostCommonDisability)
		assert.Equal(t, "0", v.KPIs[0].Value)
		for _, p := range v.Categories.Points {
			assert.Equal(t, "0.0%", p.Display)
		}
	}
}

func TestViewEncodes(t *testing.T) {
	v := Build(statstest.Snapshot(t), bundle(t).Catalog(i18n.English), series.Light)

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "en", decoded["locale"])
	assert.Contains(t, decoded, "ageDistributionDualExceptional")
}
