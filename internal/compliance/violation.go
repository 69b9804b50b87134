// v1
// internal/compliance/violation.go
package compliance

import (
	"math"
	"time"
)

// Severity grades a violation by how far the measurement sits outside the
// allowed band, relative to the band size.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// Violation records a single non-compliant measurement. Immutable once
// created; the severity is derived from the deviation, never stored
// independently of it.
type Violation struct {
	Ts            time.Time `json:"ts"`
	MeasuredValue float64   `json:"measured_value"`
	ExpectedMin   float64   `json:"expected_min"` // NaN when no lower bound
	ExpectedMax   float64   `json:"expected_max"` // NaN when no upper bound
	Deviation     float64   `json:"deviation"`
	Severity      Severity  `json:"severity"`
}

// newViolation classifies one out-of-band point. The severity ratio is
// deviation over band width for bidirectional thresholds, deviation over
// |value| otherwise.
func newViolation(ts time.Time, value float64, t Threshold) Violation {
	dev := t.DistanceFromCompliance(value)
	return Violation{
		Ts:            ts,
		MeasuredValue: value,
		ExpectedMin:   boundOrNaN(t.HasLower(), t.Lower),
		ExpectedMax:   boundOrNaN(t.HasUpper(), t.Upper),
		Deviation:     dev,
		Severity:      classifySeverity(dev, value, t),
	}
}

func classifySeverity(deviation, value float64, t Threshold) Severity {
	ratio := severityRatio(deviation, value, t)
	switch {
	case ratio > 0.5:
		return SeverityCritical
	case ratio > 0.3:
		return SeverityMajor
	case ratio > 0.1:
		return SeverityModerate
	default:
		return SeverityMinor
	}
}

func severityRatio(deviation, value float64, t Threshold) float64 {
	if rs := t.RangeSize(); !math.IsNaN(rs) && rs > 0 {
		return deviation / rs
	}
	if av := math.Abs(value); av > 0 {
		return deviation / av
	}
	// Zero measured value against a one-sided bound: any deviation is
	// unbounded relative to the value itself.
	if deviation > 0 {
		return math.Inf(1)
	}
	return 0
}

func boundOrNaN(has bool, v float64) float64 {
	if has {
		return v
	}
	return math.NaN()
}
