// v1
// internal/engine/engine.go
// Package engine orchestrates the compliance evaluation pipeline: it
// runs both standard calculators per room, combines their parameter
// judgments under the configured aggregation strategy and rolls rooms up
// to building and portfolio scores. All computations are pure; rooms and
// sibling buildings are evaluated concurrently.
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/your-org/ieq-assessment/internal/aggregate"
	"github.com/your-org/ieq-assessment/internal/cache"
	"github.com/your-org/ieq-assessment/internal/compliance"
	"github.com/your-org/ieq-assessment/internal/en16798"
	"github.com/your-org/ieq-assessment/internal/observability"
	"github.com/your-org/ieq-assessment/internal/occupancy"
	"github.com/your-org/ieq-assessment/internal/series"
	"github.com/your-org/ieq-assessment/internal/stats"
	"github.com/your-org/ieq-assessment/internal/tail"
)

// DefaultWorkers bounds concurrent room evaluations per building.
const DefaultWorkers = 4

// ThresholdTest is one explicit threshold check to run for a room in
// addition to the standard calculators.
type ThresholdTest struct {
	TestID    string
	Standard  string
	Parameter series.Parameter
	Threshold compliance.Threshold
	Level     float64
}

// RoomSpec carries one room's raw inputs.
type RoomSpec struct {
	RoomID     string
	Timestamps []time.Time
	Values     map[series.Parameter][]float64

	Mask     []bool // overrides profile-based occupancy when non-nil
	Profile  occupancy.Profile
	Holidays map[string]bool

	Season      occupancy.Season
	Ventilation en16798.Ventilation
	OutdoorTemp series.Series
	OutdoorCO2  float64

	MoldObservation   string
	IlluminanceTarget float64

	FloorAreaM2 float64
	Critical    bool

	Tests []ThresholdTest
}

// BuildingSpec groups room specs under one building.
type BuildingSpec struct {
	BuildingID string
	Rooms      []RoomSpec
}

// PortfolioSpec groups building specs.
type PortfolioSpec struct {
	PortfolioID string
	Buildings   []BuildingSpec
}

// RoomAssessment bundles a room's aggregated judgment with the standard
// payloads it was built from.
type RoomAssessment struct {
	Room    aggregate.RoomResult
	EN16798 en16798.Result
	TAIL    tail.Result
	Tests   []compliance.Result
}

// BuildingAssessment bundles a building's judgment with its rooms.
type BuildingAssessment struct {
	Building aggregate.BuildingResult
	Rooms    []RoomAssessment
}

// PortfolioAssessment is the top-level outcome.
type PortfolioAssessment struct {
	Portfolio aggregate.PortfolioResult
	Buildings []BuildingAssessment
}

// Engine evaluates rooms, buildings and portfolios. Safe for concurrent
// use; the per-entity caches guarantee at-most-one concurrent
// computation per key.
type Engine struct {
	log     *slog.Logger
	metrics *observability.Metrics
	cfg     aggregate.Config

	ComplianceLevel float64 // default 95
	SampleHours     float64 // default 1
	Workers         int     // default DefaultWorkers

	rooms      *cache.Cache[RoomAssessment]
	buildings  *cache.Cache[BuildingAssessment]
	portfolios *cache.Cache[PortfolioAssessment]
}

// New builds an engine. metrics may be nil; log must not be.
func New(log *slog.Logger, metrics *observability.Metrics, cfg aggregate.Config, cacheTTL time.Duration) *Engine {
	return &Engine{
		log:             log,
		metrics:         metrics,
		cfg:             cfg,
		ComplianceLevel: 95,
		SampleHours:     1,
		Workers:         DefaultWorkers,
		rooms:           cache.New[RoomAssessment](cacheTTL, metrics),
		buildings:       cache.New[BuildingAssessment](cacheTTL, metrics),
		portfolios:      cache.New[PortfolioAssessment](cacheTTL, metrics),
	}
}

// EvaluateRoom scores one room, skipping the computation when a live
// cached result exists. force recomputes unconditionally.
func (e *Engine) EvaluateRoom(buildingID string, spec RoomSpec, force bool) RoomAssessment {
	key := cache.RoomKey(buildingID, spec.RoomID, string(e.cfg.Strategy))
	return e.rooms.GetOrCompute(key, force, func() RoomAssessment {
		start := time.Now()
		ra := e.evaluateRoom(spec)
		e.metrics.ObserveDuration("room", time.Since(start))
		e.metrics.RoomAssessed()
		return ra
	})
}

func (e *Engine) evaluateRoom(spec RoomSpec) RoomAssessment {
	mask := spec.Mask
	if mask == nil {
		if spec.Profile != nil {
			mask = occupancy.Mask(spec.Timestamps, spec.Profile, spec.Holidays)
		} else {
			mask = occupancy.AlwaysOccupied(len(spec.Timestamps))
		}
	}

	enRes := en16798.Calculate(en16798.Input{
		Timestamps:      spec.Timestamps,
		Values:          spec.Values,
		Mask:            mask,
		Season:          spec.Season,
		Ventilation:     spec.Ventilation,
		OutdoorTemp:     spec.OutdoorTemp,
		OutdoorCO2:      spec.OutdoorCO2,
		ComplianceLevel: e.ComplianceLevel,
		SampleHours:     e.SampleHours,
	})
	e.metrics.Evaluation(en16798.Standard, enRes.Status != en16798.StatusOK)

	tailRes := tail.Calculate(tail.Input{
		Timestamps:        spec.Timestamps,
		Values:            spec.Values,
		Mask:              mask,
		Season:            spec.Season,
		MoldObservation:   spec.MoldObservation,
		IlluminanceTarget: spec.IlluminanceTarget,
	})
	e.metrics.Evaluation(tail.Standard, tailRes.Status != tail.StatusOK)

	params := e.mergeParameterResults(spec, mask, enRes, tailRes)
	room := aggregate.AggregateRoom(spec.RoomID, params, e.cfg)
	room.FloorAreaM2 = spec.FloorAreaM2
	room.IsCritical = spec.Critical
	if room.OccupiedHours == 0 {
		room.OccupiedHours = enRes.TotalOccupiedHours
	}

	tests := e.runTests(spec)

	if room.Status != aggregate.StatusOK {
		e.log.Warn("room degraded", "room", spec.RoomID, "reason", room.Reason)
	}
	return RoomAssessment{Room: room, EN16798: enRes, TAIL: tailRes, Tests: tests}
}

// mergeParameterResults builds the aggregation inputs. EN16798 covers
// temperature, CO₂ and humidity and wins for those; every other
// parameter comes from the TAIL banding with its proxy compliance rate.
// The two rates are not on the same semantic scale, which is accepted
// for scoring but kept visible through the per-standard payloads.
func (e *Engine) mergeParameterResults(spec RoomSpec, mask []bool, enRes en16798.Result, tailRes tail.Result) map[series.Parameter]aggregate.ParameterResult {
	out := map[series.Parameter]aggregate.ParameterResult{}

	for p, pr := range tailRes.Parameters {
		quality := 0.0
		if vec, ok := spec.Values[p]; ok {
			valid := series.MaskedValues(vec, mask)
			quality = stats.Quality(valid, countTrue(mask)).Score
		}
		out[p] = aggregate.ParameterResult{
			Category:      pr.Rating,
			Score:         pr.ComplianceRate,
			OccupiedHours: float64(pr.SampleCount) * e.SampleHours,
			DataQuality:   quality,
		}
	}

	for p, pr := range enRes.Parameters {
		out[p] = aggregate.ParameterResult{
			Category:      pr.Achieved,
			DefaultFloor:  pr.DefaultFloor,
			Score:         pr.PercentInCat2,
			OccupiedHours: pr.OccupiedHours,
			DataQuality:   pr.DataQuality.Score,
		}
	}
	return out
}

// runTests executes the room's explicit threshold tests. A failing or
// degraded test is recorded and never aborts the rest of the batch.
func (e *Engine) runTests(spec RoomSpec) []compliance.Result {
	if len(spec.Tests) == 0 {
		return nil
	}
	out := make([]compliance.Result, 0, len(spec.Tests))
	for _, t := range spec.Tests {
		level := t.Level
		if level == 0 {
			level = e.ComplianceLevel
		}
		vec, ok := spec.Values[t.Parameter]
		if !ok {
			res := compliance.Result{
				TestID:    t.TestID,
				Standard:  t.Standard,
				Parameter: t.Parameter,
				Metadata:  map[string]any{"error": "parameter not present in input"},
			}
			e.log.Warn("test skipped", "room", spec.RoomID, "test", t.TestID, "parameter", t.Parameter)
			out = append(out, res)
			continue
		}
		s := make(series.Series, 0, len(vec))
		for i, v := range vec {
			if i < len(spec.Timestamps) {
				s = append(s, series.Point{Ts: spec.Timestamps[i], Value: v})
			}
		}
		out = append(out, compliance.Evaluate(s, t.Threshold, t.Parameter, compliance.Options{
			TestID:          t.TestID,
			Standard:        t.Standard,
			ComplianceLevel: level,
			SampleHours:     e.SampleHours,
		}))
	}
	return out
}

// EvaluateBuilding scores all rooms of a building concurrently and
// aggregates them spatially.
func (e *Engine) EvaluateBuilding(spec BuildingSpec, force bool) BuildingAssessment {
	key := cache.BuildingKey(spec.BuildingID, string(e.cfg.Strategy))
	return e.buildings.GetOrCompute(key, force, func() BuildingAssessment {
		start := time.Now()
		ba := e.evaluateBuilding(spec, force)
		e.metrics.ObserveDuration("building", time.Since(start))
		return ba
	})
}

func (e *Engine) evaluateBuilding(spec BuildingSpec, force bool) BuildingAssessment {
	workers := e.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	assessments := make([]RoomAssessment, len(spec.Rooms))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, rs := range spec.Rooms {
		wg.Add(1)
		go func(i int, rs RoomSpec) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			assessments[i] = e.EvaluateRoom(spec.BuildingID, rs, force)
		}(i, rs)
	}
	wg.Wait()

	rooms := make([]aggregate.RoomResult, len(assessments))
	for i, ra := range assessments {
		rooms[i] = ra.Room
	}
	building := aggregate.AggregateBuilding(spec.BuildingID, rooms, e.cfg)
	e.log.Info("building assessed",
		"building", spec.BuildingID,
		"rooms", len(rooms),
		"category", building.Category.String(),
		"score", building.Score,
	)
	return BuildingAssessment{Building: building, Rooms: assessments}
}

// EvaluatePortfolio scores sibling buildings concurrently, then combines
// them, skipping the computation when a live cached result exists. force
// recomputes the whole tree.
func (e *Engine) EvaluatePortfolio(spec PortfolioSpec, force bool) PortfolioAssessment {
	key := cache.PortfolioKey(spec.PortfolioID, string(e.cfg.Strategy))
	return e.portfolios.GetOrCompute(key, force, func() PortfolioAssessment {
		start := time.Now()
		pa := e.evaluatePortfolio(spec, force)
		e.metrics.ObserveDuration("portfolio", time.Since(start))
		return pa
	})
}

// evaluatePortfolio fans out over the buildings. Each building branch is
// internally sequential (its score depends on all its rooms) but
// branches are independent.
func (e *Engine) evaluatePortfolio(spec PortfolioSpec, force bool) PortfolioAssessment {
	assessments := make([]BuildingAssessment, len(spec.Buildings))
	var wg sync.WaitGroup
	for i, bs := range spec.Buildings {
		wg.Add(1)
		go func(i int, bs BuildingSpec) {
			defer wg.Done()
			assessments[i] = e.EvaluateBuilding(bs, force)
		}(i, bs)
	}
	wg.Wait()

	buildings := make([]aggregate.BuildingResult, len(assessments))
	for i, ba := range assessments {
		buildings[i] = ba.Building
	}
	portfolio := aggregate.AggregatePortfolio(spec.PortfolioID, buildings, e.cfg)
	e.log.Info("portfolio assessed",
		"portfolio", spec.PortfolioID,
		"buildings", len(buildings),
		"category", portfolio.Category.String(),
		"score", portfolio.Score,
	)
	return PortfolioAssessment{Portfolio: portfolio, Buildings: assessments}
}

func countTrue(mask []bool) int {
	n := 0
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}
