// v1
// internal/series/series_test.go
package series

import (
	"math"
	"strings"
	"testing"
	"time"
)

func pts(start time.Time, values ...float64) Series {
	out := make(Series, len(values))
	for i, v := range values {
		out[i] = Point{Ts: start.Add(time.Duration(i) * time.Hour), Value: v}
	}
	return out
}

func TestCleanDropsNonFinite(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s := pts(base, 1, math.NaN(), 3, math.Inf(1), 5)
	got := s.Clean()
	if len(got) != 3 {
		t.Fatalf("expected 3 finite points, got %d", len(got))
	}
	for _, p := range got {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			t.Fatalf("non-finite value survived cleaning: %v", p.Value)
		}
	}
}

func TestMaskedValues(t *testing.T) {
	vec := []float64{1, 2, math.NaN(), 4}
	got := MaskedValues(vec, []bool{true, false, true, true})
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Fatalf("mask application wrong: %v", got)
	}
	// Short mask truncates rather than panics.
	got = MaskedValues(vec, []bool{true})
	if len(got) != 1 {
		t.Fatalf("short mask must truncate, got %d values", len(got))
	}
}

func TestDailyMeans(t *testing.T) {
	day1 := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 6, 0, 0, 0, time.UTC)
	s := Series{
		{Ts: day1, Value: 10},
		{Ts: day1.Add(6 * time.Hour), Value: 20},
		{Ts: day2, Value: 30},
	}
	got := s.DailyMeans()
	if len(got) != 2 {
		t.Fatalf("expected 2 daily means, got %d", len(got))
	}
	if math.Abs(got[0]-15) > 1e-9 || math.Abs(got[1]-30) > 1e-9 {
		t.Fatalf("daily means wrong: %v", got)
	}
}

func TestReadCSV(t *testing.T) {
	in := strings.Join([]string{
		"timestamp,value",
		"2024-05-01T00:00:00Z,21.5",
		"2024-05-01T01:00:00Z,not-a-number",
		"2024-05-01T02:00:00Z,22.5",
	}, "\n")
	s, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(s) != 2 {
		t.Fatalf("expected 2 rows (header skipped, bad value dropped), got %d", len(s))
	}
	if s[0].Value != 21.5 || s[1].Value != 22.5 {
		t.Fatalf("values wrong: %+v", s)
	}
}

func TestReadCSVBadTimestampMidFile(t *testing.T) {
	in := strings.Join([]string{
		"2024-05-01T00:00:00Z,21.5",
		"yesterday,22.0",
	}, "\n")
	if _, err := ReadCSV(strings.NewReader(in)); err == nil {
		t.Fatalf("bad timestamp past the header must fail")
	}
}

func TestParameterValidity(t *testing.T) {
	if !Temperature.IsValid() || !Mold.IsValid() {
		t.Fatalf("known parameters must validate")
	}
	if Parameter("wifi_signal").IsValid() {
		t.Fatalf("unknown parameter must not validate")
	}
}
