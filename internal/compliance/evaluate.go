// v1
// internal/compliance/evaluate.go
package compliance

import (
	"github.com/your-org/ieq-assessment/internal/series"
	"github.com/your-org/ieq-assessment/internal/stats"
)

// DefaultViolationCap bounds memory per evaluation; counting continues
// past the cap, only the stored violation detail is truncated.
const DefaultViolationCap = 100

// Options tunes a single evaluation.
type Options struct {
	TestID          string  // generated when empty
	Standard        string  // label carried into the result
	ComplianceLevel float64 // required rate, default 95
	ViolationCap    int     // default DefaultViolationCap
	SampleHours     float64 // duration one point represents, default 1h
}

func (o Options) withDefaults() Options {
	if o.TestID == "" {
		o.TestID = newTestID()
	}
	if o.ComplianceLevel == 0 {
		o.ComplianceLevel = 95
	}
	if o.ViolationCap == 0 {
		o.ViolationCap = DefaultViolationCap
	}
	if o.SampleHours == 0 {
		o.SampleHours = 1
	}
	return o
}

// Evaluate tests every point of s against t and assembles the full
// compliance result. Non-finite points are dropped first; a series empty
// after cleaning yields a zero result with Metadata["error"] set rather
// than an error, so callers can render "not evaluable" without
// special-casing control flow.
func Evaluate(s series.Series, t Threshold, param series.Parameter, opts Options) Result {
	opts = opts.withDefaults()
	clean := s.Clean()

	res := Result{
		TestID:    opts.TestID,
		Standard:  opts.Standard,
		Parameter: param,
	}
	if len(clean) == 0 {
		res.Metadata = map[string]any{"error": "no valid data points after cleaning"}
		return res
	}

	res.TotalPoints = len(clean)
	res.Statistics = stats.Describe(clean.Values())

	nonCompliant := make([]bool, len(clean))
	for i, p := range clean {
		if t.IsCompliant(p.Value) {
			res.CompliantPoints++
			continue
		}
		nonCompliant[i] = true
		res.NonCompliantPoint++
		if len(res.Violations) < opts.ViolationCap {
			res.Violations = append(res.Violations, newViolation(p.Ts, p.Value, t))
		}
	}

	res.ComplianceRate = 100 * float64(res.CompliantPoints) / float64(res.TotalPoints)
	res.IsCompliant = res.ComplianceRate >= opts.ComplianceLevel

	totalHours := float64(res.TotalPoints) * opts.SampleHours
	res.Exceedance = Exceedance{
		Hours:      float64(res.NonCompliantPoint) * opts.SampleHours,
		Percentage: 100 * float64(res.NonCompliantPoint) * opts.SampleHours / totalHours,
	}
	res.Runs = runStats(nonCompliant)
	return res
}

// runStats scans the non-compliance vector once, accumulating run
// lengths. Linear, no sorting, no re-scans.
func runStats(nonCompliant []bool) RunStats {
	var rs RunStats
	run := 0
	totalRunLen := 0
	for _, bad := range nonCompliant {
		if bad {
			run++
			continue
		}
		if run > 0 {
			rs.ViolationPeriods++
			totalRunLen += run
			if run > rs.MaxConsecutive {
				rs.MaxConsecutive = run
			}
			run = 0
		}
	}
	if run > 0 {
		rs.ViolationPeriods++
		totalRunLen += run
		if run > rs.MaxConsecutive {
			rs.MaxConsecutive = run
		}
	}
	if rs.ViolationPeriods > 0 {
		rs.AvgConsecutive = float64(totalRunLen) / float64(rs.ViolationPeriods)
	}
	return rs
}
