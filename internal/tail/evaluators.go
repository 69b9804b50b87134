// v1
// internal/tail/evaluators.go
package tail

import (
	"math"
	"strings"

	"github.com/your-org/ieq-assessment/internal/occupancy"
	"github.com/your-org/ieq-assessment/internal/series"
	"github.com/your-org/ieq-assessment/internal/stats"
)

// evaluator bands one parameter's occupied samples. Implementations
// return counts per band; summary-statistic evaluators concentrate all
// weight on the single derived band.
type evaluator interface {
	evaluate(values []float64) map[Band]int
}

// nestedRange bands each sample by the innermost range containing it:
// green ⊂ yellow ⊂ orange, red elsewhere.
type nestedRange struct {
	green, yellow, orange [2]float64
}

func (e nestedRange) evaluate(values []float64) map[Band]int {
	counts := map[Band]int{}
	for _, v := range values {
		switch {
		case v >= e.green[0] && v <= e.green[1]:
			counts[Green]++
		case v >= e.yellow[0] && v <= e.yellow[1]:
			counts[Yellow]++
		case v >= e.orange[0] && v <= e.orange[1]:
			counts[Orange]++
		default:
			counts[Red]++
		}
	}
	return counts
}

// upperCutoffs bands each sample by ascending "no worse than" limits;
// lower values are better.
type upperCutoffs struct {
	green, yellow, orange float64
}

func (e upperCutoffs) evaluate(values []float64) map[Band]int {
	counts := map[Band]int{}
	for _, v := range values {
		counts[e.band(v)]++
	}
	return counts
}

func (e upperCutoffs) band(v float64) Band {
	switch {
	case v <= e.green:
		return Green
	case v <= e.yellow:
		return Yellow
	case v <= e.orange:
		return Orange
	default:
		return Red
	}
}

// lowerCutoffs bands each sample by descending "at least" limits; higher
// values are better.
type lowerCutoffs struct {
	green, yellow, orange float64
}

func (e lowerCutoffs) evaluate(values []float64) map[Band]int {
	counts := map[Band]int{}
	for _, v := range values {
		counts[e.band(v)]++
	}
	return counts
}

func (e lowerCutoffs) band(v float64) Band {
	switch {
	case v >= e.green:
		return Green
	case v >= e.yellow:
		return Yellow
	case v >= e.orange:
		return Orange
	default:
		return Red
	}
}

// percentile reduces the samples to one percentile statistic and bands
// that single value.
type percentile struct {
	p       float64 // 0..100
	cutoffs upperCutoffs
}

func (e percentile) evaluate(values []float64) map[Band]int {
	v := stats.Percentile(values, e.p)
	if math.IsNaN(v) {
		return map[Band]int{}
	}
	return map[Band]int{e.cutoffs.band(v): len(values)}
}

// fractionAbove bands the share of samples reaching a target value, e.g.
// illuminance at or above the target lux level.
type fractionAbove struct {
	target  float64
	cutoffs lowerCutoffs // applied to the fraction in 0..1
}

func (e fractionAbove) evaluate(values []float64) map[Band]int {
	if len(values) == 0 {
		return map[Band]int{}
	}
	n := 0
	for _, v := range values {
		if v >= e.target {
			n++
		}
	}
	frac := float64(n) / float64(len(values))
	return map[Band]int{e.cutoffs.band(frac): len(values)}
}

// MoldBand maps a visual mold inspection note to a band by keyword.
// Unrecognized text is conservatively orange rather than green.
func MoldBand(observation string) (Band, bool) {
	s := strings.ToLower(strings.TrimSpace(observation))
	if s == "" {
		return Green, false
	}
	switch {
	case strings.Contains(s, "no visible mold"), strings.Contains(s, "no mold"), s == "none", s == "clean":
		return Green, true
	case strings.Contains(s, "minor"), strings.Contains(s, "spot"), strings.Contains(s, "trace"):
		return Yellow, true
	case strings.Contains(s, "moderate"), strings.Contains(s, "localized"):
		return Orange, true
	case strings.Contains(s, "extensive"), strings.Contains(s, "severe"), strings.Contains(s, "widespread"):
		return Red, true
	}
	return Orange, true
}

// DefaultIlluminanceTarget is the conventional task-lighting target (lux).
const DefaultIlluminanceTarget = 300

// evaluatorFor selects the banding rule for a parameter. The table is the
// closed variant set of the rating scheme; season only affects the
// thermal ranges.
func evaluatorFor(p series.Parameter, season occupancy.Season, illuminanceTarget float64) (evaluator, bool) {
	switch p {
	case series.Temperature:
		if season == occupancy.NonHeating {
			return nestedRange{green: [2]float64{23.5, 25.5}, yellow: [2]float64{23, 26}, orange: [2]float64{22, 27}}, true
		}
		return nestedRange{green: [2]float64{21, 23}, yellow: [2]float64{20, 24}, orange: [2]float64{19, 25}}, true
	case series.Humidity:
		return nestedRange{green: [2]float64{30, 50}, yellow: [2]float64{25, 60}, orange: [2]float64{20, 70}}, true
	case series.CO2:
		return percentile{p: 95, cutoffs: upperCutoffs{green: 800, yellow: 1000, orange: 1400}}, true
	case series.Noise:
		return percentile{p: 5, cutoffs: upperCutoffs{green: 30, yellow: 35, orange: 40}}, true
	case series.PM25:
		return upperCutoffs{green: 10, yellow: 25, orange: 50}, true
	case series.Formaldehyde:
		return upperCutoffs{green: 30, yellow: 100, orange: 300}, true
	case series.Benzene:
		return upperCutoffs{green: 2, yellow: 5, orange: 10}, true
	case series.Radon:
		return upperCutoffs{green: 100, yellow: 200, orange: 300}, true
	case series.DaylightFactor:
		return lowerCutoffs{green: 5, yellow: 3.3, orange: 2}, true
	case series.VentilationRatio:
		return lowerCutoffs{green: 1.0, yellow: 0.7, orange: 0.5}, true
	case series.Illuminance:
		if illuminanceTarget <= 0 {
			illuminanceTarget = DefaultIlluminanceTarget
		}
		return fractionAbove{target: illuminanceTarget, cutoffs: lowerCutoffs{green: 0.6, yellow: 0.45, orange: 0.3}}, true
	}
	return nil, false
}

// domainOf assigns each supported parameter to its TAIL domain.
func domainOf(p series.Parameter) (Domain, bool) {
	switch p {
	case series.Temperature:
		return Thermal, true
	case series.Noise:
		return Acoustic, true
	case series.CO2, series.Humidity, series.PM25, series.Formaldehyde,
		series.Benzene, series.Radon, series.VentilationRatio, series.Mold:
		return IAQ, true
	case series.Illuminance, series.DaylightFactor:
		return Luminous, true
	}
	return "", false
}
