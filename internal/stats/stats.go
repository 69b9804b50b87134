// v1
// internal/stats/stats.go
// Package stats provides the descriptive statistics and the composite
// data-quality score consumed by every higher evaluation layer.
package stats

import (
	"math"
	"sort"
)

// Summary holds the basic descriptive statistics of a cleaned series.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P05    float64 `json:"p05"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	P95    float64 `json:"p95"`
}

// Describe computes Summary over values. Non-finite entries are skipped.
// An empty input yields the zero Summary.
func Describe(values []float64) Summary {
	clean := finite(values)
	if len(clean) == 0 {
		return Summary{}
	}
	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	var sq float64
	for _, v := range sorted {
		d := v - mean
		sq += d * d
	}
	std := 0.0
	if len(sorted) > 1 {
		std = math.Sqrt(sq / float64(len(sorted)-1))
	}

	return Summary{
		Count:  len(sorted),
		Mean:   mean,
		Median: Quantile(sorted, 0.5),
		Std:    std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P05:    Quantile(sorted, 0.05),
		Q1:     Quantile(sorted, 0.25),
		Q3:     Quantile(sorted, 0.75),
		P95:    Quantile(sorted, 0.95),
	}
}

// Quantile returns the q-th quantile (0..1) of an ascending-sorted slice
// using linear interpolation between closest ranks.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Percentile is Quantile over an unsorted slice, p in 0..100.
func Percentile(values []float64, p float64) float64 {
	clean := finite(values)
	if len(clean) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)
	return Quantile(sorted, p/100)
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}
