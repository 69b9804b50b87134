// v1
// internal/compliance/result.go
package compliance

import (
	"math"

	"github.com/google/uuid"
	"github.com/your-org/ieq-assessment/internal/series"
	"github.com/your-org/ieq-assessment/internal/stats"
)

// Result is the structured outcome of one threshold evaluation.
// Invariants: CompliantPoints + NonCompliantPoints == TotalPoints and
// ComplianceRate == 100*CompliantPoints/TotalPoints (0 when empty).
type Result struct {
	TestID            string           `json:"test_id"`
	Standard          string           `json:"standard"`
	Parameter         series.Parameter `json:"parameter"`
	IsCompliant       bool             `json:"is_compliant"`
	ComplianceRate    float64          `json:"compliance_rate"`
	TotalPoints       int              `json:"total_points"`
	CompliantPoints   int              `json:"compliant_points"`
	NonCompliantPoint int              `json:"non_compliant_points"`
	Violations        []Violation      `json:"violations"`
	Statistics        stats.Summary    `json:"statistics"`
	Exceedance        Exceedance       `json:"exceedance"`
	Runs              RunStats         `json:"runs"`
	Metadata          map[string]any   `json:"metadata,omitempty"`
}

// Exceedance expresses how much exposure the violations represent, with
// each data point counting for one sampling interval.
type Exceedance struct {
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

// RunStats summarizes consecutive-violation runs.
type RunStats struct {
	MaxConsecutive   int     `json:"max_consecutive"`
	AvgConsecutive   float64 `json:"avg_consecutive"`
	ViolationPeriods int     `json:"violation_periods"`
}

// Payload flattens the result into plain nested maps for the reporting
// boundary, so callers never depend on engine types. Unset bounds of
// one-sided thresholds are omitted rather than emitted as NaN, which
// encoding/json cannot represent.
func (r Result) Payload() map[string]any {
	violations := make([]map[string]any, 0, len(r.Violations))
	for _, v := range r.Violations {
		m := map[string]any{
			"ts":             v.Ts,
			"measured_value": v.MeasuredValue,
			"deviation":      v.Deviation,
			"severity":       string(v.Severity),
		}
		if !math.IsNaN(v.ExpectedMin) {
			m["expected_min"] = v.ExpectedMin
		}
		if !math.IsNaN(v.ExpectedMax) {
			m["expected_max"] = v.ExpectedMax
		}
		violations = append(violations, m)
	}
	out := map[string]any{
		"test_id":              r.TestID,
		"standard":             r.Standard,
		"parameter":            r.Parameter.String(),
		"is_compliant":         r.IsCompliant,
		"compliance_rate":      r.ComplianceRate,
		"total_points":         r.TotalPoints,
		"compliant_points":     r.CompliantPoints,
		"non_compliant_points": r.NonCompliantPoint,
		"violations":           violations,
		"statistics": map[string]any{
			"count": r.Statistics.Count, "mean": r.Statistics.Mean,
			"median": r.Statistics.Median, "std": r.Statistics.Std,
			"min": r.Statistics.Min, "max": r.Statistics.Max,
		},
		"exceedance_hours":      r.Exceedance.Hours,
		"exceedance_percentage": r.Exceedance.Percentage,
		"max_consecutive":       r.Runs.MaxConsecutive,
		"avg_consecutive":       r.Runs.AvgConsecutive,
		"violation_periods":     r.Runs.ViolationPeriods,
	}
	if len(r.Metadata) > 0 {
		out["metadata"] = r.Metadata
	}
	return out
}

func newTestID() string { return uuid.NewString() }
