// v1
// internal/en16798/bands.go
// Package en16798 implements the EN16798-1-style category calculator:
// per-category bound derivation (fixed tables or the adaptive comfort
// model), per-point compliance and achieved-category determination.
package en16798

import (
	"math"

	"github.com/your-org/ieq-assessment/internal/category"
	"github.com/your-org/ieq-assessment/internal/compliance"
	"github.com/your-org/ieq-assessment/internal/occupancy"
	"github.com/your-org/ieq-assessment/internal/series"
)

// Ventilation selects between the fixed-band and adaptive temperature
// models. The adaptive model only applies to naturally or mixed-mode
// ventilated spaces.
type Ventilation string

const (
	Mechanical Ventilation = "mechanical"
	Natural    Ventilation = "natural"
	Mixed      Ventilation = "mixed"
)

// DefaultOutdoorCO2 is the conventional outdoor baseline in ppm.
const DefaultOutdoorCO2 = 400

type tempBand struct{ lower, upper float64 }

// Fixed operative-temperature bands (°C) per category and season.
var heatingBands = map[category.Category]tempBand{
	category.CategoryI:   {21.0, 23.0},
	category.CategoryII:  {20.0, 24.0},
	category.CategoryIII: {19.0, 25.0},
	category.CategoryIV:  {17.0, 27.0},
}

var coolingBands = map[category.Category]tempBand{
	category.CategoryI:   {23.5, 25.5},
	category.CategoryII:  {23.0, 26.0},
	category.CategoryIII: {22.0, 27.0},
	category.CategoryIV:  {21.0, 28.0},
}

// CO₂ allowance above the outdoor baseline (ppm). III and IV share the
// widest allowance.
var co2Delta = map[category.Category]float64{
	category.CategoryI:   550,
	category.CategoryII:  800,
	category.CategoryIII: 1350,
	category.CategoryIV:  1350,
}

// Relative humidity bands (%RH) per category.
var humidityBands = map[category.Category]tempBand{
	category.CategoryI:   {30, 50},
	category.CategoryII:  {25, 60},
	category.CategoryIII: {20, 70},
	category.CategoryIV:  {15, 75},
}

// Bounds resolves the compliance thresholds of one category for the
// supported parameters. The adaptive temperature band is used when the
// ventilation mode allows it and trm carries a valid running-mean outdoor
// temperature; pass NaN to force the fixed tables.
func Bounds(cat category.Category, season occupancy.Season, vent Ventilation, trm, outdoorCO2 float64) map[series.Parameter]compliance.Threshold {
	out := make(map[series.Parameter]compliance.Threshold, 3)

	if adaptiveApplies(vent, trm) {
		lo, hi := AdaptiveBand(cat, trm)
		t, _ := compliance.Range(lo, hi, "°C")
		out[series.Temperature] = t
	} else {
		bands := heatingBands
		if season == occupancy.NonHeating {
			bands = coolingBands
		}
		b := bands[cat]
		t, _ := compliance.Range(b.lower, b.upper, "°C")
		out[series.Temperature] = t
	}

	if math.IsNaN(outdoorCO2) {
		outdoorCO2 = DefaultOutdoorCO2
	}
	out[series.CO2] = compliance.Max(outdoorCO2+co2Delta[cat], "ppm")

	h := humidityBands[cat]
	rh, _ := compliance.Range(h.lower, h.upper, "%RH")
	out[series.Humidity] = rh

	return out
}

func adaptiveApplies(vent Ventilation, trm float64) bool {
	if vent != Natural && vent != Mixed {
		return false
	}
	return !math.IsNaN(trm) && trm >= 10 && trm <= 30
}
