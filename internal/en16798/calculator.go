// v1
// internal/en16798/calculator.go
package en16798

import (
	"math"
	"time"

	"github.com/your-org/ieq-assessment/internal/category"
	"github.com/your-org/ieq-assessment/internal/compliance"
	"github.com/your-org/ieq-assessment/internal/occupancy"
	"github.com/your-org/ieq-assessment/internal/series"
	"github.com/your-org/ieq-assessment/internal/stats"
)

// Standard is the label carried into results and payloads.
const Standard = "en16798-1"

// Status values distinguishing degraded results from real measurements.
const (
	StatusOK               = "ok"
	StatusInsufficientData = "insufficient_data"
)

// supportedParams are the parameters the category tables cover, in
// evaluation order.
var supportedParams = []series.Parameter{series.Temperature, series.CO2, series.Humidity}

// Input carries one location's measurements on a shared timestamp grid.
// Values vectors must align with Timestamps; missing samples are NaN.
type Input struct {
	Timestamps []time.Time
	Values     map[series.Parameter][]float64

	// Mask overrides profile-based occupancy when non-nil.
	Mask     []bool
	Profile  occupancy.Profile
	Holidays map[string]bool

	Season      occupancy.Season // inferred from timestamps when empty
	Ventilation Ventilation      // defaults to mechanical

	OutdoorTemp series.Series // outdoor dry-bulb, for the adaptive model
	OutdoorCO2  float64       // ppm; 0 or NaN → DefaultOutdoorCO2

	ComplianceLevel float64 // required category rate, default 95
	SampleHours     float64 // hours one point represents, default 1
}

// ParamResult is the per-parameter category outcome.
type ParamResult struct {
	PercentInCat1 float64            `json:"percent_in_cat1"`
	PercentInCat2 float64            `json:"percent_in_cat2"`
	PercentInCat3 float64            `json:"percent_in_cat3"`
	Achieved      category.Category  `json:"achieved"`
	DefaultFloor  bool               `json:"default_floor"`
	OccupiedHours float64            `json:"occupied_hours"`
	DataQuality   stats.QualityScore `json:"data_quality"`
}

// Result is the location-level category outcome.
type Result struct {
	Standard           string                           `json:"standard"`
	Season             occupancy.Season                 `json:"season"`
	Ventilation        Ventilation                      `json:"ventilation"`
	AdaptiveUsed       bool                             `json:"adaptive_used"`
	RunningMeanOutdoor float64                          `json:"running_mean_outdoor"`
	Achieved           category.Category                `json:"achieved"`
	DefaultFloor       bool                             `json:"default_floor"`
	CategoryRates      map[category.Category]float64    `json:"category_rates"`
	Parameters         map[series.Parameter]ParamResult `json:"parameters"`
	OccupiedPoints     int                              `json:"occupied_points"`
	TotalOccupiedHours float64                          `json:"total_occupied_hours"`
	Status             string                           `json:"status"`
	Reason             string                           `json:"reason,omitempty"`
}

// Calculate derives per-category bounds, evaluates every occupied point
// and determines the achieved category. Missing data never raises an
// error; it produces a StatusInsufficientData result flagged as the
// category-IV default floor.
func Calculate(in Input) Result {
	if in.ComplianceLevel == 0 {
		in.ComplianceLevel = 95
	}
	if in.SampleHours == 0 {
		in.SampleHours = 1
	}
	if in.Ventilation == "" {
		in.Ventilation = Mechanical
	}
	if in.Season == "" {
		in.Season = occupancy.InferSeason(in.Timestamps)
	}
	outdoorCO2 := in.OutdoorCO2
	if outdoorCO2 == 0 || math.IsNaN(outdoorCO2) {
		outdoorCO2 = DefaultOutdoorCO2
	}

	res := Result{
		Standard:      Standard,
		Season:        in.Season,
		Ventilation:   in.Ventilation,
		Achieved:      category.CategoryIV,
		DefaultFloor:  true,
		CategoryRates: map[category.Category]float64{},
		Parameters:    map[series.Parameter]ParamResult{},
		Status:        StatusOK,
	}

	mask := in.Mask
	if mask == nil {
		if in.Profile != nil {
			mask = occupancy.Mask(in.Timestamps, in.Profile, in.Holidays)
		} else {
			mask = occupancy.AlwaysOccupied(len(in.Timestamps))
		}
	}

	occupied := occupiedIndices(mask, len(in.Timestamps))
	res.OccupiedPoints = len(occupied)
	res.TotalOccupiedHours = float64(len(occupied)) * in.SampleHours
	if len(occupied) == 0 {
		res.Status = StatusInsufficientData
		res.Reason = "no occupied data points"
		return res
	}

	present := presentParams(in.Values)
	if len(present) == 0 {
		res.Status = StatusInsufficientData
		res.Reason = "no supported parameters in input"
		return res
	}

	trm := RunningMeanOutdoor(in.OutdoorTemp)
	res.RunningMeanOutdoor = trm
	res.AdaptiveUsed = adaptiveApplies(in.Ventilation, trm)

	bounds := map[category.Category]map[series.Parameter]compliance.Threshold{}
	for _, cat := range category.All {
		bounds[cat] = Bounds(cat, in.Season, in.Ventilation, trm, outdoorCO2)
	}

	// Combined per-category rates: a point passes a category iff every
	// parameter with a finite value at that point satisfies the bound.
	for _, cat := range category.All {
		res.CategoryRates[cat] = combinedRate(in.Values, present, occupied, bounds[cat])
	}
	for _, cat := range category.Evaluated {
		if res.CategoryRates[cat] >= in.ComplianceLevel {
			res.Achieved = cat
			res.DefaultFloor = false
			break
		}
	}

	for _, p := range present {
		res.Parameters[p] = paramResult(in.Values[p], occupied, p, bounds, in.ComplianceLevel, in.SampleHours)
	}
	return res
}

func occupiedIndices(mask []bool, n int) []int {
	if len(mask) < n {
		n = len(mask)
	}
	var out []int
	for i := 0; i < n; i++ {
		if mask[i] {
			out = append(out, i)
		}
	}
	return out
}

func presentParams(values map[series.Parameter][]float64) []series.Parameter {
	var out []series.Parameter
	for _, p := range supportedParams {
		if len(values[p]) > 0 {
			out = append(out, p)
		}
	}
	return out
}

func combinedRate(values map[series.Parameter][]float64, present []series.Parameter, occupied []int, bounds map[series.Parameter]compliance.Threshold) float64 {
	evaluated := 0
	passed := 0
	for _, idx := range occupied {
		seen := false
		ok := true
		for _, p := range present {
			vec := values[p]
			if idx >= len(vec) || math.IsNaN(vec[idx]) {
				continue
			}
			seen = true
			if !bounds[p].IsCompliant(vec[idx]) {
				ok = false
				break
			}
		}
		if !seen {
			continue
		}
		evaluated++
		if ok {
			passed++
		}
	}
	if evaluated == 0 {
		return 0
	}
	return 100 * float64(passed) / float64(evaluated)
}

func paramResult(vec []float64, occupied []int, p series.Parameter, bounds map[category.Category]map[series.Parameter]compliance.Threshold, level, sampleHours float64) ParamResult {
	var valid []float64
	for _, idx := range occupied {
		if idx < len(vec) && !math.IsNaN(vec[idx]) {
			valid = append(valid, vec[idx])
		}
	}
	pr := ParamResult{
		Achieved:      category.CategoryIV,
		DefaultFloor:  true,
		OccupiedHours: float64(len(valid)) * sampleHours,
		DataQuality:   stats.Quality(valid, len(occupied)),
	}
	if len(valid) == 0 {
		return pr
	}

	rate := func(cat category.Category) float64 {
		n := 0
		for _, v := range valid {
			if bounds[cat][p].IsCompliant(v) {
				n++
			}
		}
		return 100 * float64(n) / float64(len(valid))
	}
	pr.PercentInCat1 = rate(category.CategoryI)
	pr.PercentInCat2 = rate(category.CategoryII)
	pr.PercentInCat3 = rate(category.CategoryIII)

	for _, cat := range category.Evaluated {
		if rate(cat) >= level {
			pr.Achieved = cat
			pr.DefaultFloor = false
			break
		}
	}
	return pr
}
