// v1
// internal/stats/quality.go
package stats

import (
	"math"
	"sort"
)

// QualityScore is the composite 0-100 data-quality assessment of a series.
// Completeness is worth 40 points, outlier freedom 30, stability 30.
type QualityScore struct {
	Score             float64 `json:"score"`
	CompletenessPts   float64 `json:"completeness_pts"`
	OutlierFreedomPts float64 `json:"outlier_freedom_pts"`
	StabilityPts      float64 `json:"stability_pts"`
	ExpectedPoints    int     `json:"expected_points"`
	ValidPoints       int     `json:"valid_points"`
	OutlierCount      int     `json:"outlier_count"`
}

const (
	completenessWeight = 40.0
	outlierWeight      = 30.0
	stabilityWeight    = 30.0

	// Tukey fence multiplier for outlier detection.
	tukeyK = 3.0
)

// Quality scores a value vector against the number of points the sampling
// schedule should have produced. expected <= 0 means "take the vector
// itself as complete".
func Quality(values []float64, expected int) QualityScore {
	clean := finite(values)
	if expected <= 0 {
		expected = len(values)
	}

	qs := QualityScore{ExpectedPoints: expected, ValidPoints: len(clean)}
	if len(clean) == 0 {
		return qs
	}

	completeness := 1.0
	if expected > 0 {
		completeness = math.Min(1, float64(len(clean))/float64(expected))
	}
	qs.CompletenessPts = completenessWeight * completeness

	qs.OutlierCount = countOutliers(clean)
	outlierRatio := float64(qs.OutlierCount) / float64(len(clean))
	qs.OutlierFreedomPts = outlierWeight * (1 - outlierRatio)

	qs.StabilityPts = stabilityWeight * stabilityTerm(clean)

	qs.Score = clamp(qs.CompletenessPts+qs.OutlierFreedomPts+qs.StabilityPts, 0, 100)
	return qs
}

// stabilityTerm maps the coefficient of variation to [0,1]. A zero mean
// makes CV undefined; with data present that is treated as neutral (full
// credit) rather than as instability.
func stabilityTerm(clean []float64) float64 {
	var sum float64
	for _, v := range clean {
		sum += v
	}
	mean := sum / float64(len(clean))
	if mean == 0 {
		return 1
	}
	var sq float64
	for _, v := range clean {
		d := v - mean
		sq += d * d
	}
	std := 0.0
	if len(clean) > 1 {
		std = math.Sqrt(sq / float64(len(clean)-1))
	}
	cv := math.Abs(std / mean)
	return 1 - math.Min(cv, 1)
}

// countOutliers applies Tukey fences at tukeyK times the IQR beyond Q1/Q3.
func countOutliers(clean []float64) int {
	if len(clean) < 4 {
		return 0
	}
	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)
	q1 := Quantile(sorted, 0.25)
	q3 := Quantile(sorted, 0.75)
	iqr := q3 - q1
	lo := q1 - tukeyK*iqr
	hi := q3 + tukeyK*iqr
	n := 0
	for _, v := range clean {
		if v < lo || v > hi {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
