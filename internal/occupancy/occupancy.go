// v1
// internal/occupancy/occupancy.go
// Package occupancy builds the boolean occupancy mask both standard
// calculators apply before scoring, and infers the season label when the
// caller does not supply one.
package occupancy

import (
	"fmt"
	"time"
)

// Interval is an inclusive open period within a day, in minutes from
// midnight. Start == End marks a degenerate single-minute interval.
type Interval struct {
	Start int `yaml:"start" json:"start"` // minutes from 00:00
	End   int `yaml:"end" json:"end"`
}

// Contains reports whether the clock minute m falls inside the interval,
// bounds inclusive.
func (iv Interval) Contains(m int) bool {
	return m >= iv.Start && m <= iv.End
}

// ParseInterval converts "HH:MM-HH:MM" into an Interval.
func ParseInterval(s string) (Interval, error) {
	var sh, sm, eh, em int
	if _, err := fmt.Sscanf(s, "%d:%d-%d:%d", &sh, &sm, &eh, &em); err != nil {
		return Interval{}, fmt.Errorf("bad interval %q: %w", s, err)
	}
	iv := Interval{Start: sh*60 + sm, End: eh*60 + em}
	if iv.Start < 0 || iv.End > 24*60 || iv.End < iv.Start {
		return Interval{}, fmt.Errorf("bad interval %q: out of range", s)
	}
	return iv, nil
}

// Profile maps each weekday to its open intervals. A weekday with no
// entry is closed all day.
type Profile map[time.Weekday][]Interval

// Mask marks, for every timestamp, whether the space counts as occupied:
// holidays are always unoccupied, otherwise the clock time must fall in
// one of the weekday's open intervals.
func Mask(timestamps []time.Time, profile Profile, holidays map[string]bool) []bool {
	out := make([]bool, len(timestamps))
	for i, ts := range timestamps {
		if holidays[ts.Format("2006-01-02")] {
			continue
		}
		minute := ts.Hour()*60 + ts.Minute()
		for _, iv := range profile[ts.Weekday()] {
			if iv.Contains(minute) {
				out[i] = true
				break
			}
		}
	}
	return out
}

// AlwaysOccupied returns an all-true mask, used when no profile applies
// (e.g. residential spaces assessed around the clock).
func AlwaysOccupied(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}
	return out
}
