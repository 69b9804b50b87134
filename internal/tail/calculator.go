// v1
// internal/tail/calculator.go
package tail

import (
	"time"

	"github.com/your-org/ieq-assessment/internal/category"
	"github.com/your-org/ieq-assessment/internal/occupancy"
	"github.com/your-org/ieq-assessment/internal/series"
)

// Standard is the label carried into results and payloads.
const Standard = "tail"

// Status values distinguishing degraded results from real measurements.
const (
	StatusOK               = "ok"
	StatusInsufficientData = "insufficient_data"
)

// Input carries one location's measurements on a shared timestamp grid,
// the same shape the EN16798 calculator consumes.
type Input struct {
	Timestamps []time.Time
	Values     map[series.Parameter][]float64

	Mask     []bool
	Profile  occupancy.Profile
	Holidays map[string]bool

	Season            occupancy.Season // inferred when empty
	MoldObservation   string           // free-text inspection note
	IlluminanceTarget float64          // lux, default 300
}

// ParamResult is one parameter's banding outcome. ComplianceRate is the
// continuous proxy %green + 0.5·%yellow; it never overrides the ordinal
// band.
type ParamResult struct {
	Band           Band              `json:"band"`
	Rating         category.Category `json:"rating"`
	BandCounts     map[Band]int      `json:"band_counts"`
	SampleCount    int               `json:"sample_count"`
	ComplianceRate float64           `json:"compliance_rate"`
}

// Result is the location-level TAIL outcome.
type Result struct {
	Standard   string                           `json:"standard"`
	Overall    Band                             `json:"overall"`
	Rating     category.Category                `json:"rating"`
	Domains    map[Domain]Band                  `json:"domains"`
	Parameters map[series.Parameter]ParamResult `json:"parameters"`
	Status     string                           `json:"status"`
	Reason     string                           `json:"reason,omitempty"`
}

// Calculate bands every present parameter, rolls parameters up to their
// domain by worst case and domains up to the overall rating by worst
// case. A location with no usable parameter yields
// StatusInsufficientData with the red floor, flagged by Reason.
func Calculate(in Input) Result {
	if in.Season == "" {
		in.Season = occupancy.InferSeason(in.Timestamps)
	}

	res := Result{
		Standard:   Standard,
		Overall:    Red,
		Rating:     category.CategoryIV,
		Domains:    map[Domain]Band{},
		Parameters: map[series.Parameter]ParamResult{},
		Status:     StatusOK,
	}

	mask := in.Mask
	if mask == nil {
		if in.Profile != nil {
			mask = occupancy.Mask(in.Timestamps, in.Profile, in.Holidays)
		} else {
			mask = occupancy.AlwaysOccupied(len(in.Timestamps))
		}
	}

	for p, vec := range in.Values {
		ev, ok := evaluatorFor(p, in.Season, in.IlluminanceTarget)
		if !ok {
			continue
		}
		values := series.MaskedValues(vec, mask)
		if len(values) == 0 {
			continue
		}
		counts := ev.evaluate(values)
		if len(counts) == 0 {
			continue
		}
		res.Parameters[p] = paramResult(counts)
	}

	if band, ok := MoldBand(in.MoldObservation); ok {
		res.Parameters[series.Mold] = ParamResult{
			Band:           band,
			Rating:         band.Rating(),
			BandCounts:     map[Band]int{band: 1},
			SampleCount:    1,
			ComplianceRate: proxyRate(map[Band]int{band: 1}, 1),
		}
	}

	if len(res.Parameters) == 0 {
		res.Status = StatusInsufficientData
		res.Reason = "no usable parameters in input"
		return res
	}

	for p, pr := range res.Parameters {
		d, ok := domainOf(p)
		if !ok {
			continue
		}
		cur, seen := res.Domains[d]
		if !seen || pr.Band > cur {
			res.Domains[d] = pr.Band
		}
	}

	res.Overall = Green
	for _, band := range res.Domains {
		res.Overall = Worse(res.Overall, band)
	}
	res.Rating = res.Overall.Rating()
	return res
}

func paramResult(counts map[Band]int) ParamResult {
	total := 0
	worst := Green
	for band, n := range counts {
		if n == 0 {
			continue
		}
		total += n
		worst = Worse(worst, band)
	}
	// The parameter band is the dominant exposure: for per-sample
	// evaluators the band holding the majority of samples would be too
	// lenient for compliance reporting, so the band is the worst band
	// holding at least 5% of samples.
	band := worst
	for _, b := range Bands {
		if float64(counts[b]) >= 0.05*float64(total) {
			band = b
		}
	}
	return ParamResult{
		Band:           band,
		Rating:         band.Rating(),
		BandCounts:     counts,
		SampleCount:    total,
		ComplianceRate: proxyRate(counts, total),
	}
}

// proxyRate is %green + 0.5·%yellow; orange and red contribute nothing.
func proxyRate(counts map[Band]int, total int) float64 {
	if total == 0 {
		return 0
	}
	green := 100 * float64(counts[Green]) / float64(total)
	yellow := 100 * float64(counts[Yellow]) / float64(total)
	return green + 0.5*yellow
}

// Payload flattens the result into nested maps keyed by domain and
// parameter for the reporting boundary.
func (r Result) Payload() map[string]any {
	domains := map[string]any{}
	for d, band := range r.Domains {
		domains[string(d)] = map[string]any{
			"band":   band.String(),
			"rating": band.Rating().String(),
		}
	}
	params := map[string]any{}
	for p, pr := range r.Parameters {
		counts := map[string]int{}
		for band, n := range pr.BandCounts {
			counts[band.String()] = n
		}
		params[p.String()] = map[string]any{
			"band":            pr.Band.String(),
			"rating":          pr.Rating.String(),
			"band_counts":     counts,
			"sample_count":    pr.SampleCount,
			"compliance_rate": pr.ComplianceRate,
		}
	}
	out := map[string]any{
		"standard":   r.Standard,
		"overall":    r.Overall.String(),
		"rating":     r.Rating.String(),
		"domains":    domains,
		"parameters": params,
		"status":     r.Status,
	}
	if r.Reason != "" {
		out["reason"] = r.Reason
	}
	return out
}
