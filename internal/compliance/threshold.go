// v1
// internal/compliance/threshold.go
// Package compliance implements threshold evaluation, violation
// classification and the exceedance statistics every standard calculator
// builds on.
package compliance

import (
	"errors"
	"fmt"
	"math"
)

// ThresholdType selects which bounds of a Threshold participate in the
// compliance test.
type ThresholdType string

const (
	Bidirectional     ThresholdType = "bidirectional"
	UnidirectionalMin ThresholdType = "unidirectional_min"
	UnidirectionalMax ThresholdType = "unidirectional_max"
)

// ErrNoBounds is returned when a threshold is constructed without any
// usable bound.
var ErrNoBounds = errors.New("threshold requires at least one bound")

// Threshold is an immutable compliance band for one parameter.
// Lower/Upper are NaN when unset.
type Threshold struct {
	Lower float64
	Upper float64
	Type  ThresholdType
	Unit  string
}

// NewThreshold validates and builds a Threshold. Pass NaN for an unset
// bound. The type is derived from the bound set when left empty.
func NewThreshold(lower, upper float64, typ ThresholdType, unit string) (Threshold, error) {
	hasLower := !math.IsNaN(lower)
	hasUpper := !math.IsNaN(upper)
	if !hasLower && !hasUpper {
		return Threshold{}, ErrNoBounds
	}
	if typ == "" {
		switch {
		case hasLower && hasUpper:
			typ = Bidirectional
		case hasLower:
			typ = UnidirectionalMin
		default:
			typ = UnidirectionalMax
		}
	}
	if typ == Bidirectional && hasLower && hasUpper && lower > upper {
		return Threshold{}, fmt.Errorf("threshold bounds inverted: %.4g > %.4g", lower, upper)
	}
	return Threshold{Lower: lower, Upper: upper, Type: typ, Unit: unit}, nil
}

// Range builds a bidirectional threshold.
func Range(lower, upper float64, unit string) (Threshold, error) {
	return NewThreshold(lower, upper, Bidirectional, unit)
}

// Max builds an upper-bound-only threshold.
func Max(upper float64, unit string) Threshold {
	t, _ := NewThreshold(math.NaN(), upper, UnidirectionalMax, unit)
	return t
}

// Min builds a lower-bound-only threshold.
func Min(lower float64, unit string) Threshold {
	t, _ := NewThreshold(lower, math.NaN(), UnidirectionalMin, unit)
	return t
}

// HasLower reports whether the lower bound participates in the test.
func (t Threshold) HasLower() bool {
	return !math.IsNaN(t.Lower) && t.Type != UnidirectionalMax
}

// HasUpper reports whether the upper bound participates in the test.
func (t Threshold) HasUpper() bool {
	return !math.IsNaN(t.Upper) && t.Type != UnidirectionalMin
}

// IsCompliant tests a single value against the active bounds.
func (t Threshold) IsCompliant(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if t.HasLower() && v < t.Lower {
		return false
	}
	if t.HasUpper() && v > t.Upper {
		return false
	}
	return true
}

// DistanceFromCompliance returns how far outside the band a value sits,
// zero for compliant values.
func (t Threshold) DistanceFromCompliance(v float64) float64 {
	if t.HasLower() && v < t.Lower {
		return t.Lower - v
	}
	if t.HasUpper() && v > t.Upper {
		return v - t.Upper
	}
	return 0
}

// RangeSize returns the width of a bidirectional band, NaN otherwise.
func (t Threshold) RangeSize() float64 {
	if t.HasLower() && t.HasUpper() {
		return t.Upper - t.Lower
	}
	return math.NaN()
}
