// v0
// internal/occupancy/season.go
package occupancy

import "time"

// Season labels the assessment period for the fixed-band temperature
// tables.
type Season string

const (
	Heating    Season = "heating"
	NonHeating Season = "non_heating"
)

// heatingMonths is the conventional October-March heating period.
var heatingMonths = map[time.Month]bool{
	time.October:  true,
	time.November: true,
	time.December: true,
	time.January:  true,
	time.February: true,
	time.March:    true,
}

// InferSeason labels the period by majority vote of its timestamps over
// the conventional heating months. An empty input defaults to heating,
// the conservative choice for European compliance reporting.
func InferSeason(timestamps []time.Time) Season {
	if len(timestamps) == 0 {
		return Heating
	}
	n := 0
	for _, ts := range timestamps {
		if heatingMonths[ts.Month()] {
			n++
		}
	}
	if 2*n >= len(timestamps) {
		return Heating
	}
	return NonHeating
}
