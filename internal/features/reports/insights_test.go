package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func emptyBreakdown() map[string]CategoryStats {
	breakdown := make(map[string]CategoryStats, len(Categories()))
	for _, category := range Categories() {
		breakdown[category] = CategoryStats{Percentage: 25}
	}
	return breakdown
}

func TestInsightsNoReports(t *testing.T) {
	insights := Insights(emptyBreakdown())

	require.Len(t, insights, 1)
	require.Equal(t, InsightPositive, insights[0].Severity)
	require.Contains(t, insights[0].Message, "very safe")
}

func TestInsightsMostReportedCategory(t *testing.T) {
	breakdown := emptyBreakdown()
	breakdown[CategoryHarassment] = CategoryStats{Count: 3, AvgSeverity: 2.0, Percentage: 18}

	insights := Insights(breakdown)

	require.Equal(t, InsightWarning, insights[0].Severity)
	require.Contains(t, insights[0].Message, "harassment")
	require.Contains(t, insights[0].Message, "3")
}

func TestInsightsTieBreaksOnCategoryOrder(t *testing.T) {
	breakdown := emptyBreakdown()
	breakdown[CategoryTheft] = CategoryStats{Count: 2, AvgSeverity: 2.0, Percentage: 20}
	breakdown[CategoryRobbery] = CategoryStats{Count: 2, AvgSeverity: 3.0, Percentage: 20}

	insights := Insights(breakdown)

	require.Contains(t, insights[0].Message, "theft")
}

func TestInsightsHighSeverityDanger(t *testing.T) {
	breakdown := emptyBreakdown()
	breakdown[CategoryRobbery] = CategoryStats{Count: 4, AvgSeverity: 4.5, Percentage: 12}

	insights := Insights(breakdown)

	require.Equal(t, InsightWarning, insights[0].Severity)
	require.Equal(t, InsightDanger, insights[1].Severity)
	require.Contains(t, insights[1].Message, "4.5")
}

func TestInsightsNoDangerBelowThreshold(t *testing.T) {
	breakdown := emptyBreakdown()
	breakdown[CategoryRobbery] = CategoryStats{Count: 4, AvgSeverity: 3.9, Percentage: 12}

	for _, insight := range Insights(breakdown) {
		require.NotEqual(t, InsightDanger, insight.Severity)
	}
}

func TestInsightsOverallTiers(t *testing.T) {
	tests := []struct {
		name        string
		percentages [4]float64
		want        string
	}{
		{"positive at 80 and above", [4]float64{10, 25, 25, 25}, InsightPositive},
		{"info between 60 and 79", [4]float64{10, 20, 20, 15}, InsightInfo},
		{"warning between 40 and 59", [4]float64{10, 10, 10, 12}, InsightWarning},
		{"danger below 40", [4]float64{5, 5, 5, 5}, InsightDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := map[string]CategoryStats{
				CategoryTheft:      {Count: 5, AvgSeverity: 3.0, Percentage: tt.percentages[0]},
				CategoryRobbery:    {Percentage: tt.percentages[1]},
				CategoryHarassment: {Percentage: tt.percentages[2]},
				CategoryOther:      {Percentage: tt.percentages[3]},
			}

			insights := Insights(breakdown)

			// Exactly one tier insight is always present, after the most-reported warning.
			require.Equal(t, tt.want, insights[1].Severity)
		})
	}
}

func TestInsightsRecentActivityWarning(t *testing.T) {
	breakdown := emptyBreakdown()
	breakdown[CategoryTheft] = CategoryStats{Count: 10, RecentCount: 7, AvgSeverity: 2.0, Percentage: 15}

	insights := Insights(breakdown)

	last := insights[len(insights)-1]
	require.Equal(t, InsightWarning, last.Severity)
	require.Contains(t, last.Message, "last 30 days")
}

func TestInsightsNoRecentWarningAtThreshold(t *testing.T) {
	// Exactly 60% recent must not trigger the warning (strict inequality).
	breakdown := emptyBreakdown()
	breakdown[CategoryTheft] = CategoryStats{Count: 10, RecentCount: 6, AvgSeverity: 2.0, Percentage: 15}

	for _, insight := range Insights(breakdown) {
		require.NotContains(t, insight.Message, "last 30 days")
	}
}
