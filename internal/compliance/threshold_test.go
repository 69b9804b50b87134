// v0
// internal/compliance/threshold_test.go
package compliance

import (
	"errors"
	"math"
	"testing"
)

func TestNewThresholdRequiresBound(t *testing.T) {
	_, err := NewThreshold(math.NaN(), math.NaN(), "", "ppm")
	if !errors.Is(err, ErrNoBounds) {
		t.Fatalf("expected ErrNoBounds, got %v", err)
	}
}

func TestNewThresholdRejectsInvertedBounds(t *testing.T) {
	if _, err := Range(24, 20, "°C"); err == nil {
		t.Fatalf("expected error for inverted bounds")
	}
}

func TestTypeDerivation(t *testing.T) {
	th, err := NewThreshold(10, math.NaN(), "", "dB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Type != UnidirectionalMin {
		t.Fatalf("expected unidirectional_min, got %s", th.Type)
	}
}

func TestIsCompliantBidirectional(t *testing.T) {
	th, _ := Range(20, 24, "°C")
	for _, v := range []float64{20, 22, 24} {
		if !th.IsCompliant(v) {
			t.Fatalf("%.1f should be compliant", v)
		}
	}
	for _, v := range []float64{19.9, 24.1, math.NaN()} {
		if th.IsCompliant(v) {
			t.Fatalf("%.1f should not be compliant", v)
		}
	}
}

func TestDistanceFromCompliance(t *testing.T) {
	th, _ := Range(20, 24, "°C")
	if d := th.DistanceFromCompliance(22); d != 0 {
		t.Fatalf("in-band distance must be 0, got %.2f", d)
	}
	if d := th.DistanceFromCompliance(18); math.Abs(d-2) > 1e-9 {
		t.Fatalf("below-band distance wrong: %.2f", d)
	}
	if d := th.DistanceFromCompliance(27); math.Abs(d-3) > 1e-9 {
		t.Fatalf("above-band distance wrong: %.2f", d)
	}
}

func TestUnidirectionalMax(t *testing.T) {
	th := Max(950, "ppm")
	if !th.IsCompliant(950) || th.IsCompliant(951) {
		t.Fatalf("upper bound must be inclusive")
	}
	if th.HasLower() {
		t.Fatalf("max threshold must not have a lower bound")
	}
}
