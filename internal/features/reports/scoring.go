package reports

import (
	"math"
	"time"
)

const (
	// decayRate controls how fast a category's safety contribution falls off
	// with report volume, severity and recency.
	decayRate = 0.12

	// maxCategoryScore is each category's contribution to a 100-point ceiling
	// when it has no reports.
	maxCategoryScore = 25.0

	// minCategoryScore keeps any single category from implying absolute danger.
	minCategoryScore = 1.0

	// recentWindow is the lookback used for the recent-activity multiplier.
	recentWindow = 30 * 24 * time.Hour
)

// CategoryStats is the per-category slice of a SecurityAssessment.
type CategoryStats struct {
	Count       int     `json:"count"`
	AvgSeverity float64 `json:"avgSeverity"`
	RecentCount int     `json:"recentCount"`
	Percentage  float64 `json:"percentage"`
}

// Insight is a human-readable finding derived from the breakdown.
type Insight struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// SecurityAssessment is computed per query and never persisted.
type SecurityAssessment struct {
	CategoryBreakdown map[string]CategoryStats `json:"categoryBreakdown"`
	OverallSecurity   float64                  `json:"overallSecurity"`
	Insights          []Insight                `json:"insights"`
}

// Score maps a set of geo-filtered reports to per-category and overall safety
// percentages. Pure: safe to call concurrently on the same snapshot.
//
// Each empty category contributes 25 points toward a 100-point ceiling. For a
// non-empty category the contribution decays exponentially with
// sqrt(volume) x normalized severity x recent-activity concentration, so the
// score degrades smoothly and stays bounded no matter how many reports pile up.
// Reports with unrecognized categories are ignored.
func Score(reports []Report, now time.Time) SecurityAssessment {
	breakdown := make(map[string]CategoryStats, len(categories))

	var total float64
	for _, category := range categories {
		stats := scoreCategory(reports, category, now)
		breakdown[category] = stats
		total += stats.Percentage
	}

	return SecurityAssessment{
		CategoryBreakdown: breakdown,
		OverallSecurity:   round1(math.Min(100, total)),
		Insights:          Insights(breakdown),
	}
}

func scoreCategory(reports []Report, category string, now time.Time) CategoryStats {
	cutoff := now.Add(-recentWindow)

	var count, recent, severitySum int
	for _, r := range reports {
		if r.Category != category {
			continue
		}
		count++
		severitySum += r.Severity
		if !r.ReportedAt.Before(cutoff) {
			recent++
		}
	}

	if count == 0 {
		return CategoryStats{Percentage: maxCategoryScore}
	}

	avgSeverity := float64(severitySum) / float64(count)
	severityMultiplier := avgSeverity / 3
	recentActivityMultiplier := 1 + float64(recent)/float64(count)
	combinedDecay := decayRate * math.Sqrt(float64(count)) * severityMultiplier * recentActivityMultiplier

	percentage := round1(maxCategoryScore * math.Exp(-combinedDecay))
	if percentage < minCategoryScore {
		percentage = minCategoryScore
	}

	return CategoryStats{
		Count:       count,
		AvgSeverity: round1(avgSeverity),
		RecentCount: recent,
		Percentage:  percentage,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
