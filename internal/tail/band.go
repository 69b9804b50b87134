// v1
// internal/tail/band.go
// Package tail implements the TAIL-style multi-domain color-banding
// engine: per-parameter band evaluators, domain worst-case roll-up and
// the overall rating.
package tail

import "github.com/your-org/ieq-assessment/internal/category"

// Band is the TAIL qualitative tier, green best.
type Band int

const (
	Green Band = iota
	Yellow
	Orange
	Red
)

// Bands lists the tiers best-first.
var Bands = []Band{Green, Yellow, Orange, Red}

func (b Band) String() string {
	switch b {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case Red:
		return "red"
	}
	return "unknown"
}

// Rating maps a band to the fixed I-IV rating (green=I … red=IV).
func (b Band) Rating() category.Category {
	return category.FromNumeric(int(b) + 1)
}

// Worse returns the worse of two bands.
func Worse(a, b Band) Band {
	if b > a {
		return b
	}
	return a
}

// Domain groups parameters into the four TAIL quality domains.
type Domain string

const (
	Thermal  Domain = "thermal"
	Acoustic Domain = "acoustic"
	IAQ      Domain = "indoor_air_quality"
	Luminous Domain = "luminous"
)

// Domains lists the four domains in the conventional T-A-I-L order.
var Domains = []Domain{Thermal, Acoustic, IAQ, Luminous}
