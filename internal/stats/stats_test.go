// v1
// internal/stats/stats_test.go
package stats

import (
	"math"
	"testing"
)

func TestDescribeBasics(t *testing.T) {
	s := Describe([]float64{1, 2, 3, 4, 5})
	if s.Count != 5 {
		t.Fatalf("count mismatch: got %d want 5", s.Count)
	}
	if math.Abs(s.Mean-3) > 1e-9 {
		t.Fatalf("mean mismatch: got %.4f want 3", s.Mean)
	}
	if math.Abs(s.Median-3) > 1e-9 {
		t.Fatalf("median mismatch: got %.4f want 3", s.Median)
	}
	if s.Min != 1 || s.Max != 5 {
		t.Fatalf("min/max mismatch: got %.1f %.1f", s.Min, s.Max)
	}
	// Sample std of 1..5 is sqrt(2.5).
	if math.Abs(s.Std-math.Sqrt(2.5)) > 1e-9 {
		t.Fatalf("std mismatch: got %.6f", s.Std)
	}
}

func TestDescribeSkipsNonFinite(t *testing.T) {
	s := Describe([]float64{math.NaN(), 10, math.Inf(1), 20})
	if s.Count != 2 {
		t.Fatalf("expected 2 finite points, got %d", s.Count)
	}
	if math.Abs(s.Mean-15) > 1e-9 {
		t.Fatalf("mean mismatch: got %.4f want 15", s.Mean)
	}
}

func TestDescribeEmpty(t *testing.T) {
	s := Describe(nil)
	if s.Count != 0 {
		t.Fatalf("expected zero summary, got count %d", s.Count)
	}
}

func TestQuantileInterpolates(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	if got := Quantile(sorted, 0.5); math.Abs(got-25) > 1e-9 {
		t.Fatalf("median mismatch: got %.4f want 25", got)
	}
	if got := Quantile(sorted, 0); got != 10 {
		t.Fatalf("q0 mismatch: got %.4f want 10", got)
	}
	if got := Quantile(sorted, 1); got != 40 {
		t.Fatalf("q1 mismatch: got %.4f want 40", got)
	}
}

func TestPercentileUnsorted(t *testing.T) {
	v := []float64{30, 10, 20}
	if got := Percentile(v, 50); math.Abs(got-20) > 1e-9 {
		t.Fatalf("p50 mismatch: got %.4f want 20", got)
	}
	if got := Percentile(nil, 50); !math.IsNaN(got) {
		t.Fatalf("expected NaN for empty input, got %.4f", got)
	}
}

func TestQualityPerfectSeries(t *testing.T) {
	v := make([]float64, 100)
	for i := range v {
		v[i] = 20 // constant, no outliers, zero CV
	}
	q := Quality(v, 100)
	if math.Abs(q.Score-100) > 1e-9 {
		t.Fatalf("expected perfect score, got %.4f", q.Score)
	}
}

func TestQualityCompletenessWeight(t *testing.T) {
	v := make([]float64, 50)
	for i := range v {
		v[i] = 20
	}
	q := Quality(v, 100) // half the expected points
	if math.Abs(q.CompletenessPts-20) > 1e-9 {
		t.Fatalf("expected 20 completeness points for 50%%, got %.4f", q.CompletenessPts)
	}
	if math.Abs(q.Score-80) > 1e-9 {
		t.Fatalf("expected 80 total, got %.4f", q.Score)
	}
}

func TestQualityZeroMeanNeutralCV(t *testing.T) {
	// Symmetric data around zero: CV undefined, stability must get full
	// credit, not zero.
	q := Quality([]float64{-1, 1, -1, 1}, 4)
	if math.Abs(q.StabilityPts-30) > 1e-9 {
		t.Fatalf("expected neutral 30 stability points, got %.4f", q.StabilityPts)
	}
}

func TestQualityEmptyIsZero(t *testing.T) {
	q := Quality(nil, 100)
	if q.Score != 0 {
		t.Fatalf("expected 0 score for no data, got %.4f", q.Score)
	}
}

func TestQualityCountsTukeyOutliers(t *testing.T) {
	v := make([]float64, 0, 101)
	for i := 0; i < 100; i++ {
		v = append(v, 20+float64(i%5)) // 20..24
	}
	v = append(v, 500) // far outside the 3×IQR fence
	q := Quality(v, len(v))
	if q.OutlierCount != 1 {
		t.Fatalf("expected 1 outlier, got %d", q.OutlierCount)
	}
	if q.OutlierFreedomPts >= 30 {
		t.Fatalf("outlier points should be penalized, got %.4f", q.OutlierFreedomPts)
	}
}
