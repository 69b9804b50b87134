// v1
// internal/occupancy/occupancy_test.go
package occupancy

import (
	"testing"
	"time"
)

func officeProfile() Profile {
	open := []Interval{{Start: 8 * 60, End: 18 * 60}}
	return Profile{
		time.Monday:    open,
		time.Tuesday:   open,
		time.Wednesday: open,
		time.Thursday:  open,
		time.Friday:    open,
	}
}

func TestMaskWeekdayHours(t *testing.T) {
	// Monday 2024-01-08.
	ts := []time.Time{
		time.Date(2024, 1, 8, 7, 59, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 18, 0, 0, 0, time.UTC), // inclusive end
		time.Date(2024, 1, 8, 18, 1, 0, 0, time.UTC),
	}
	mask := Mask(ts, officeProfile(), nil)
	want := []bool{false, true, true, true, false}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, mask[i], want[i])
		}
	}
}

func TestMaskWeekendClosed(t *testing.T) {
	// Saturday 2024-01-06.
	ts := []time.Time{time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC)}
	mask := Mask(ts, officeProfile(), nil)
	if mask[0] {
		t.Fatalf("saturday must be unoccupied")
	}
}

func TestMaskHolidayWins(t *testing.T) {
	ts := []time.Time{time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)}
	holidays := map[string]bool{"2024-01-08": true}
	mask := Mask(ts, officeProfile(), holidays)
	if mask[0] {
		t.Fatalf("holiday must override opening hours")
	}
}

func TestParseInterval(t *testing.T) {
	iv, err := ParseInterval("08:30-17:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv.Start != 8*60+30 || iv.End != 17*60+45 {
		t.Fatalf("parsed interval wrong: %+v", iv)
	}
	if _, err := ParseInterval("18:00-08:00"); err == nil {
		t.Fatalf("expected error for inverted interval")
	}
	if _, err := ParseInterval("nonsense"); err == nil {
		t.Fatalf("expected error for malformed interval")
	}
}

func TestInferSeason(t *testing.T) {
	january := []time.Time{
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
	}
	if got := InferSeason(january); got != Heating {
		t.Fatalf("january must infer heating, got %s", got)
	}
	july := []time.Time{
		time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC),
	}
	if got := InferSeason(july); got != NonHeating {
		t.Fatalf("july must infer non-heating, got %s", got)
	}
	if got := InferSeason(nil); got != Heating {
		t.Fatalf("empty input must default to heating, got %s", got)
	}
}
