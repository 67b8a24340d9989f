// Package statsdomain computes per-athlete aggregates, trend classification,
// and division averages. Everything here is pure; persistence and eventing
// live in the application layer.
package statsdomain

// Trend labels the direction of an athlete's recent performance.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

const (
	// minShootsForTrend is the minimum history before a trend is not just
	// noise.
	minShootsForTrend = 4

	// trendThreshold is the percentage-point gap between half averages that
	// separates stable from improving or declining.
	trendThreshold = 5.0
)

// ClassifyTrend splits a chronological percentage history into halves and
// compares their means. Fewer than four shoots is always stable. With an odd
// count the middle shoot lands in the second half, weighting recent form.
func ClassifyTrend(percentages []float64) Trend {
	if len(percentages) < minShootsForTrend {
		return TrendStable
	}

	mid := len(percentages) / 2
	firstAvg := mean(percentages[:mid])
	secondAvg := mean(percentages[mid:])

	switch delta := secondAvg - firstAvg; {
	case delta > trendThreshold:
		return TrendImproving
	case delta < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
