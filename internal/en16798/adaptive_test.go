// v1
// internal/en16798/adaptive_test.go
package en16798

import (
	"math"
	"testing"
	"time"

	"github.com/your-org/ieq-assessment/internal/category"
	"github.com/your-org/ieq-assessment/internal/series"
)

func TestComfortTemperature(t *testing.T) {
	// t_comf = 0.33·t_rm + 18.8
	if got := ComfortTemperature(20); math.Abs(got-25.4) > 1e-9 {
		t.Fatalf("comfort temp mismatch: got %.4f want 25.4", got)
	}
}

func TestAdaptiveBandWidthsNonDecreasing(t *testing.T) {
	trm := 18.0
	prev := -1.0
	for _, cat := range category.All {
		lo, hi := AdaptiveBand(cat, trm)
		width := hi - lo
		if width < prev {
			t.Fatalf("band width decreased at category %s: %.1f < %.1f", cat, width, prev)
		}
		prev = width
	}
	lo, hi := AdaptiveBand(category.CategoryI, trm)
	if math.Abs((hi-lo)-4) > 1e-9 {
		t.Fatalf("category I band must be ±2, got width %.1f", hi-lo)
	}
}

func dailyOutdoor(days int, value func(day int) float64) series.Series {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	var s series.Series
	for d := 0; d < days; d++ {
		for h := 0; h < 4; h++ {
			s = append(s, series.Point{
				Ts:    base.AddDate(0, 0, d).Add(time.Duration(h*6) * time.Hour),
				Value: value(d),
			})
		}
	}
	return s
}

func TestRunningMeanArithmeticFallback(t *testing.T) {
	// Fewer than 7 daily values: plain mean.
	s := dailyOutdoor(3, func(d int) float64 { return float64(10 + d) }) // 10, 11, 12
	if got := RunningMeanOutdoor(s); math.Abs(got-11) > 1e-9 {
		t.Fatalf("fallback mean mismatch: got %.4f want 11", got)
	}
}

func TestRunningMeanWeightsRecentDays(t *testing.T) {
	// 10 days at 10°C then 4 days at 20°C: the exponential weighting must
	// pull the mean well above the plain mean of the early days but below
	// the recent level.
	s := dailyOutdoor(14, func(d int) float64 {
		if d < 10 {
			return 10
		}
		return 20
	})
	got := RunningMeanOutdoor(s)
	if got <= 12 || got >= 20 {
		t.Fatalf("running mean out of expected band: %.4f", got)
	}
	// Recent days dominate: weight of the last 4 days is
	// (1-α)(1+α+α²+α³) ≈ 0.59.
	if got < 15 {
		t.Fatalf("recent days must dominate, got %.4f", got)
	}
}

func TestRunningMeanEmpty(t *testing.T) {
	if got := RunningMeanOutdoor(nil); !math.IsNaN(got) {
		t.Fatalf("expected NaN for no outdoor data, got %.4f", got)
	}
}

func TestRunningMeanWindowCap(t *testing.T) {
	// 40 days: only the most recent 30 participate. Early days at an
	// extreme value must not influence the result at all.
	s := dailyOutdoor(40, func(d int) float64 {
		if d < 10 {
			return -50
		}
		return 15
	})
	if got := RunningMeanOutdoor(s); math.Abs(got-15) > 1e-9 {
		t.Fatalf("window cap not applied: got %.4f want 15", got)
	}
}
