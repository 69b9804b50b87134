// v1
// internal/en16798/adaptive.go
package en16798

import (
	"math"

	"github.com/your-org/ieq-assessment/internal/category"
	"github.com/your-org/ieq-assessment/internal/series"
)

const (
	adaptiveSlope     = 0.33
	adaptiveIntercept = 18.8
	runningMeanAlpha  = 0.8
	runningMeanWindow = 30 // days
	runningMeanMinDay = 7
)

// Band half-widths (°C) around the comfort temperature per category.
// Non-decreasing from I to IV.
var adaptiveHalfWidth = map[category.Category]float64{
	category.CategoryI:   2,
	category.CategoryII:  3,
	category.CategoryIII: 4,
	category.CategoryIV:  5,
}

// ComfortTemperature is the adaptive model's neutral temperature for a
// running-mean outdoor temperature trm.
func ComfortTemperature(trm float64) float64 {
	return adaptiveSlope*trm + adaptiveIntercept
}

// AdaptiveBand returns the [lower, upper] operative-temperature band of a
// category around the comfort temperature.
func AdaptiveBand(cat category.Category, trm float64) (lower, upper float64) {
	tc := ComfortTemperature(trm)
	d := adaptiveHalfWidth[cat]
	return tc - d, tc + d
}

// RunningMeanOutdoor computes the exponentially-weighted running mean of
// the daily outdoor temperature means, most recent day first in the
// weighting: weight_i = (1-α)·αⁱ with α = 0.8, over at most the last 30
// days. With fewer than 7 daily values it falls back to the plain
// arithmetic mean; an empty input yields NaN.
func RunningMeanOutdoor(outdoor series.Series) float64 {
	days := outdoor.DailyMeans()
	if len(days) == 0 {
		return math.NaN()
	}
	if len(days) > runningMeanWindow {
		days = days[len(days)-runningMeanWindow:]
	}
	if len(days) < runningMeanMinDay {
		var sum float64
		for _, v := range days {
			sum += v
		}
		return sum / float64(len(days))
	}

	var weighted, weightSum float64
	w := 1 - runningMeanAlpha
	for i := len(days) - 1; i >= 0; i-- {
		weighted += w * days[i]
		weightSum += w
		w *= runningMeanAlpha
	}
	return weighted / weightSum
}
