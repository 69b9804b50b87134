// v1
// internal/tail/calculator_test.go
package tail

import (
	"math"
	"testing"
	"time"

	"github.com/your-org/ieq-assessment/internal/category"
	"github.com/your-org/ieq-assessment/internal/occupancy"
	"github.com/your-org/ieq-assessment/internal/series"
)

func gridInput(values map[series.Parameter][]float64, n int) Input {
	base := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	ts := make([]time.Time, n)
	for i := range ts {
		ts[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return Input{Timestamps: ts, Values: values, Season: occupancy.Heating}
}

func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestCO2P95At750IsGreen(t *testing.T) {
	// 95th percentile 750 ppm sits under the fixed 800 ppm green cut,
	// independent of any above-outdoor delta logic.
	co2 := constant(750, 100)
	res := Calculate(gridInput(map[series.Parameter][]float64{series.CO2: co2}, 100))

	pr, ok := res.Parameters[series.CO2]
	if !ok {
		t.Fatalf("CO2 parameter missing from result")
	}
	if pr.Band != Green {
		t.Fatalf("expected green CO2 band, got %s", pr.Band)
	}
	if pr.Rating != category.CategoryI {
		t.Fatalf("green must map to rating I, got %s", pr.Rating)
	}
	if res.Domains[IAQ] != Green {
		t.Fatalf("IAQ domain must be green, got %s", res.Domains[IAQ])
	}
}

func TestCO2P95Banding(t *testing.T) {
	// 90 samples at 700, 10 at 1500: p95 sits in the 1500 tail, above 800.
	co2 := append(constant(700, 90), constant(1500, 10)...)
	res := Calculate(gridInput(map[series.Parameter][]float64{series.CO2: co2}, 100))
	if res.Parameters[series.CO2].Band == Green {
		t.Fatalf("p95 above 800 must not be green")
	}
}

func TestDomainIsWorstParameter(t *testing.T) {
	values := map[series.Parameter][]float64{
		series.CO2:  constant(700, 50), // green
		series.PM25: constant(100, 50), // red
	}
	res := Calculate(gridInput(values, 50))
	if res.Domains[IAQ] != Red {
		t.Fatalf("IAQ domain must take the worst parameter, got %s", res.Domains[IAQ])
	}
}

func TestOverallIsWorstDomain(t *testing.T) {
	values := map[series.Parameter][]float64{
		series.Temperature: constant(22, 50), // thermal green
		series.Noise:       constant(45, 50), // acoustic red (p05 = 45)
	}
	res := Calculate(gridInput(values, 50))
	if res.Domains[Thermal] != Green {
		t.Fatalf("thermal domain must be green, got %s", res.Domains[Thermal])
	}
	if res.Overall != Red {
		t.Fatalf("overall must be the worst domain, got %s", res.Overall)
	}
	if res.Rating != category.CategoryIV {
		t.Fatalf("red must map to rating IV, got %s", res.Rating)
	}
}

func TestIlluminanceFraction(t *testing.T) {
	// 70% of samples at or above the 300 lux target: green.
	lux := append(constant(500, 70), constant(100, 30)...)
	res := Calculate(gridInput(map[series.Parameter][]float64{series.Illuminance: lux}, 100))
	if res.Parameters[series.Illuminance].Band != Green {
		t.Fatalf("70%% above target must be green, got %s", res.Parameters[series.Illuminance].Band)
	}

	lux = append(constant(500, 35), constant(100, 65)...)
	res = Calculate(gridInput(map[series.Parameter][]float64{series.Illuminance: lux}, 100))
	if res.Parameters[series.Illuminance].Band != Orange {
		t.Fatalf("35%% above target must be orange, got %s", res.Parameters[series.Illuminance].Band)
	}
}

func TestMoldKeywords(t *testing.T) {
	cases := []struct {
		text string
		want Band
	}{
		{"no visible mold", Green},
		{"minor spots near window", Yellow},
		{"moderate growth in corner", Orange},
		{"extensive mold on ceiling", Red},
		{"some unusual discoloration", Orange}, // unrecognized → conservative
	}
	for _, c := range cases {
		got, ok := MoldBand(c.text)
		if !ok {
			t.Fatalf("%q: expected a band", c.text)
		}
		if got != c.want {
			t.Fatalf("%q: got %s want %s", c.text, got, c.want)
		}
	}
	if _, ok := MoldBand(""); ok {
		t.Fatalf("empty observation must not produce a band")
	}
}

func TestProxyComplianceRate(t *testing.T) {
	// 80 green + 20 yellow samples → 80 + 0.5·20 = 90.
	pm := append(constant(5, 80), constant(20, 20)...)
	res := Calculate(gridInput(map[series.Parameter][]float64{series.PM25: pm}, 100))
	pr := res.Parameters[series.PM25]
	if math.Abs(pr.ComplianceRate-90) > 1e-9 {
		t.Fatalf("proxy rate mismatch: got %.2f want 90", pr.ComplianceRate)
	}
}

func TestVentilationRatioBands(t *testing.T) {
	res := Calculate(gridInput(map[series.Parameter][]float64{series.VentilationRatio: constant(1.1, 10)}, 10))
	if res.Parameters[series.VentilationRatio].Band != Green {
		t.Fatalf("ratio above 1.0 must be green")
	}
	res = Calculate(gridInput(map[series.Parameter][]float64{series.VentilationRatio: constant(0.4, 10)}, 10))
	if res.Parameters[series.VentilationRatio].Band != Red {
		t.Fatalf("ratio below 0.5 must be red")
	}
}

func TestInsufficientDataFlagged(t *testing.T) {
	res := Calculate(gridInput(map[series.Parameter][]float64{}, 0))
	if res.Status != StatusInsufficientData {
		t.Fatalf("expected insufficient data status, got %s", res.Status)
	}
	if res.Reason == "" {
		t.Fatalf("degraded result must carry a reason")
	}
	if res.Overall != Red || res.Rating != category.CategoryIV {
		t.Fatalf("degraded result must sit on the red floor")
	}
}

func TestWorstBandAboveNoiseFloorWins(t *testing.T) {
	// 96% green, 4% red: the red sliver is below the 5% exposure floor
	// and must not set the parameter band.
	pm := append(constant(5, 96), constant(100, 4)...)
	res := Calculate(gridInput(map[series.Parameter][]float64{series.PM25: pm}, 100))
	if res.Parameters[series.PM25].Band != Green {
		t.Fatalf("sub-5%% exposure must not set the band, got %s", res.Parameters[series.PM25].Band)
	}

	// 90% green, 10% red: red carries the band.
	pm = append(constant(5, 90), constant(100, 10)...)
	res = Calculate(gridInput(map[series.Parameter][]float64{series.PM25: pm}, 100))
	if res.Parameters[series.PM25].Band != Red {
		t.Fatalf("10%% red exposure must set the band, got %s", res.Parameters[series.PM25].Band)
	}
}
