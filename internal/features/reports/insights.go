package reports

import "fmt"

// Insight severity tags
const (
	InsightPositive = "positive"
	InsightInfo     = "info"
	InsightWarning  = "warning"
	InsightDanger   = "danger"
)

const highSeverityThreshold = 4.0

// Insights derives an ordered list of findings from a category breakdown.
// Rules fire in a fixed order; all applicable ones are emitted.
func Insights(breakdown map[string]CategoryStats) []Insight {
	var total, recentTotal int
	var percentageSum float64
	for _, category := range categories {
		stats := breakdown[category]
		total += stats.Count
		recentTotal += stats.RecentCount
		percentageSum += stats.Percentage
	}

	if total == 0 {
		return []Insight{{
			Severity: InsightPositive,
			Message:  "No incidents have been reported in this area. It appears to be very safe.",
		}}
	}

	insights := make([]Insight, 0, 4)

	// Most-reported category; ties resolve to the first category in fixed order.
	var topCategory string
	var topCount int
	for _, category := range categories {
		if stats := breakdown[category]; stats.Count > topCount {
			topCategory = category
			topCount = stats.Count
		}
	}

	if topCount > 0 {
		insights = append(insights, Insight{
			Severity: InsightWarning,
			Message:  fmt.Sprintf("The most reported incident type in this area is %s, with %d report(s).", topCategory, topCount),
		})

		if avg := breakdown[topCategory].AvgSeverity; avg >= highSeverityThreshold {
			insights = append(insights, Insight{
				Severity: InsightDanger,
				Message:  fmt.Sprintf("Reported %s incidents have a high average severity of %.1f out of 5.", topCategory, avg),
			})
		}
	}

	// Overall tier from the pre-clamp percentage sum.
	switch {
	case percentageSum >= 80:
		insights = append(insights, Insight{
			Severity: InsightPositive,
			Message:  "This area has a good overall safety record.",
		})
	case percentageSum >= 60:
		insights = append(insights, Insight{
			Severity: InsightInfo,
			Message:  "This area has a moderate safety record. Stay aware of your surroundings.",
		})
	case percentageSum >= 40:
		insights = append(insights, Insight{
			Severity: InsightWarning,
			Message:  "This area has a below-average safety record. Exercise caution, especially at night.",
		})
	default:
		insights = append(insights, Insight{
			Severity: InsightDanger,
			Message:  "This area has a significant number of reported incidents. Avoid it if possible.",
		})
	}

	if float64(recentTotal) > 0.6*float64(total) {
		insights = append(insights, Insight{
			Severity: InsightWarning,
			Message:  "A large share of incidents here were reported within the last 30 days.",
		})
	}

	return insights
}
