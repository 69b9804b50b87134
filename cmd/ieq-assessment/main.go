// v1
// cmd/ieq-assessment/main.go
package main

import (
	"encoding/json"
	"flag"
	"math"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/your-org/ieq-assessment/internal/config"
	"github.com/your-org/ieq-assessment/internal/en16798"
	"github.com/your-org/ieq-assessment/internal/engine"
	"github.com/your-org/ieq-assessment/internal/logging"
	"github.com/your-org/ieq-assessment/internal/observability"
	"github.com/your-org/ieq-assessment/internal/occupancy"
	"github.com/your-org/ieq-assessment/internal/series"
)

func main() {
	configPath := flag.String("config", "", "assessment config YAML (default ieq.yaml or $IEQ_CONFIG)")
	portfolioID := flag.String("portfolio", "portfolio", "portfolio identifier for the report")
	flag.Parse()

	lg, err := logging.New()
	if err != nil {
		panic(err)
	}
	defer lg.Close()
	log := lg.Logger

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}
	aggCfg, err := cfg.AggregationConfig()
	if err != nil {
		log.Error("invalid aggregation config", "err", err)
		os.Exit(1)
	}
	profile, err := cfg.Profile()
	if err != nil {
		log.Error("invalid occupancy profile", "err", err)
		os.Exit(1)
	}
	holidays, err := cfg.Holidays()
	if err != nil {
		log.Error("invalid holidays", "err", err)
		os.Exit(1)
	}
	log.Info("config loaded", "strategy", cfg.Strategy, "buildings", len(cfg.Buildings))

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	eng := engine.New(log, metrics, aggCfg, time.Hour)
	if cfg.ComplianceLevel > 0 {
		eng.ComplianceLevel = cfg.ComplianceLevel
	}
	if cfg.SampleHours > 0 {
		eng.SampleHours = cfg.SampleHours
	}
	if cfg.Workers > 0 {
		eng.Workers = cfg.Workers
	}

	spec, err := buildPortfolioSpec(*portfolioID, cfg, profile, holidays)
	if err != nil {
		log.Error("loading series data failed", "err", err)
		os.Exit(1)
	}

	assessment := eng.EvaluatePortfolio(spec, false)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(assessment.Payload()); err != nil {
		log.Error("encoding report failed", "err", err)
		os.Exit(1)
	}
}

// buildPortfolioSpec loads every room's CSV series onto a shared
// timestamp grid and assembles the engine input.
func buildPortfolioSpec(portfolioID string, cfg config.Config, profile occupancy.Profile, holidays map[string]bool) (engine.PortfolioSpec, error) {
	spec := engine.PortfolioSpec{PortfolioID: portfolioID}
	for _, b := range cfg.Buildings {
		bs := engine.BuildingSpec{BuildingID: b.ID}

		var outdoor series.Series
		if b.OutdoorTemp != "" {
			s, err := series.LoadCSV(b.OutdoorTemp)
			if err != nil {
				return engine.PortfolioSpec{}, err
			}
			outdoor = s
		}

		for _, r := range b.Rooms {
			rs, err := buildRoomSpec(r, cfg, profile, holidays, outdoor)
			if err != nil {
				return engine.PortfolioSpec{}, err
			}
			bs.Rooms = append(bs.Rooms, rs)
		}
		spec.Buildings = append(spec.Buildings, bs)
	}
	return spec, nil
}

func buildRoomSpec(r config.RoomConfig, cfg config.Config, profile occupancy.Profile, holidays map[string]bool, outdoor series.Series) (engine.RoomSpec, error) {
	rs := engine.RoomSpec{
		RoomID:            r.ID,
		Profile:           profile,
		Holidays:          holidays,
		Season:            occupancy.Season(r.Season),
		Ventilation:       en16798.Ventilation(r.Ventilation),
		OutdoorTemp:       outdoor,
		OutdoorCO2:        cfg.OutdoorCO2,
		MoldObservation:   r.Mold,
		IlluminanceTarget: cfg.IlluminanceTarget,
		FloorAreaM2:       r.FloorAreaM2,
		Critical:          r.Critical,
		Values:            map[series.Parameter][]float64{},
	}

	// The first loaded series establishes the timestamp grid; remaining
	// series are index-aligned against it (the ingestion layer upstream
	// is responsible for normalizing grids; the CLI assumes matching
	// exports).
	for name, path := range r.Series {
		p := series.Parameter(name)
		s, err := series.LoadCSV(path)
		if err != nil {
			return engine.RoomSpec{}, err
		}
		if rs.Timestamps == nil {
			rs.Timestamps = s.Timestamps()
		}
		vec := make([]float64, len(rs.Timestamps))
		for i := range vec {
			if i < len(s) {
				vec[i] = s[i].Value
			} else {
				vec[i] = math.NaN()
			}
		}
		rs.Values[p] = vec
	}
	return rs, nil
}
