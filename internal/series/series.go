// v1
// internal/series/series.go
package series

import (
	"math"
	"time"
)

// Point is a single time-stamped measurement.
type Point struct {
	Ts    time.Time `json:"ts"`
	Value float64   `json:"value"`
}

// Series is an ordered list of measurements for one parameter at one
// location. Callers are responsible for sorting and de-duplicating
// timestamps before handing a series to the engine.
type Series []Point

// Clean returns a copy of s with non-finite values removed.
// The engine never computes on NaN or Inf samples.
func (s Series) Clean() Series {
	out := make(Series, 0, len(s))
	for _, p := range s {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Values returns the raw value vector.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Timestamps returns the timestamp vector.
func (s Series) Timestamps() []time.Time {
	out := make([]time.Time, len(s))
	for i, p := range s {
		out[i] = p.Ts
	}
	return out
}

// MaskedValues keeps the finite samples of vec whose mask entry is true.
// A mask shorter than the vector truncates it; extra mask entries are
// ignored. This is the occupancy filter every calculator applies before
// computing on a raw value vector.
func MaskedValues(vec []float64, mask []bool) []float64 {
	n := len(vec)
	if len(mask) < n {
		n = len(mask)
	}
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if mask[i] && !math.IsNaN(vec[i]) && !math.IsInf(vec[i], 0) {
			out = append(out, vec[i])
		}
	}
	return out
}

// DailyMeans buckets the series by calendar date (UTC) and returns the
// per-day arithmetic means in chronological order. Used by the adaptive
// comfort running-mean calculation.
func (s Series) DailyMeans() []float64 {
	type acc struct {
		sum float64
		n   int
	}
	sums := map[string]*acc{}
	var order []string
	for _, p := range s {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			continue
		}
		day := p.Ts.UTC().Format("2006-01-02")
		a, ok := sums[day]
		if !ok {
			a = &acc{}
			sums[day] = a
			order = append(order, day)
		}
		a.sum += p.Value
		a.n++
	}
	out := make([]float64, 0, len(order))
	for _, day := range order {
		a := sums[day]
		out = append(out, a.sum/float64(a.n))
	}
	return out
}
