// v1
// internal/aggregate/config.go
// Package aggregate combines per-parameter results into room judgments
// and rooms into building/portfolio judgments under configurable
// strategies.
package aggregate

import (
	"fmt"
	"math"

	"github.com/your-org/ieq-assessment/internal/category"
	"github.com/your-org/ieq-assessment/internal/series"
)

// ParameterMethod combines multiple parameters into one room judgment.
type ParameterMethod string

const (
	WorstParameter    ParameterMethod = "worst_parameter"
	WeightedAverage   ParameterMethod = "weighted_average"
	UnweightedAverage ParameterMethod = "unweighted_average"
)

// SpatialMethod combines multiple rooms into a building or portfolio
// judgment.
type SpatialMethod string

const (
	WorstSpace         SpatialMethod = "worst_space"
	OccupantWeighted   SpatialMethod = "occupant_weighted"
	AreaWeighted       SpatialMethod = "area_weighted"
	SimpleAverage      SpatialMethod = "simple_average"
	CriticalSpacesOnly SpatialMethod = "critical_spaces_only"
)

// Strategy names a (ParameterMethod, SpatialMethod) pairing.
type Strategy string

const (
	StrictCompliance    Strategy = "strict_compliance"
	BalancedCompliance  Strategy = "balanced_compliance"
	PerformanceTracking Strategy = "performance_tracking"
	QuickAssessment     Strategy = "quick_assessment"
	Custom              Strategy = "custom"
)

var strategyMethods = map[Strategy]struct {
	param   ParameterMethod
	spatial SpatialMethod
}{
	StrictCompliance:    {WorstParameter, WorstSpace},
	BalancedCompliance:  {WeightedAverage, OccupantWeighted},
	PerformanceTracking: {WeightedAverage, AreaWeighted},
	QuickAssessment:     {UnweightedAverage, SimpleAverage},
}

// DefaultParameterWeights is the fixed weight table used by weighted
// parameter aggregation when the config carries none. Passed explicitly,
// never mutated.
var DefaultParameterWeights = map[series.Parameter]float64{
	series.Temperature: 0.35,
	series.CO2:         0.25,
	series.Humidity:    0.10,
	series.Illuminance: 0.15,
	series.Noise:       0.10,
	series.PM25:        0.05,
}

const weightSumTolerance = 0.01

// Config is the immutable aggregation configuration. Build it with
// NewConfig so invalid configurations are rejected before any series is
// touched.
type Config struct {
	Strategy         Strategy
	ParameterMethod  ParameterMethod
	SpatialMethod    SpatialMethod
	Thresholds       category.Thresholds
	ParameterWeights map[series.Parameter]float64 // nil → DefaultParameterWeights
	RoomWeights      map[string]float64           // optional explicit room weights
	ExcludeRooms     map[string]bool
	ExcludeParams    map[series.Parameter]bool
}

// NewConfig resolves a strategy into its method pair (explicit methods
// override for the custom strategy) and validates weights and thresholds
// eagerly.
func NewConfig(strategy Strategy, opts ...Option) (Config, error) {
	cfg := Config{
		Strategy:   strategy,
		Thresholds: category.DefaultThresholds,
	}
	if pair, ok := strategyMethods[strategy]; ok {
		cfg.ParameterMethod = pair.param
		cfg.SpatialMethod = pair.spatial
	} else if strategy != Custom {
		return Config{}, fmt.Errorf("unknown aggregation strategy %q", strategy)
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.ParameterMethod == "" || cfg.SpatialMethod == "" {
		return Config{}, fmt.Errorf("strategy %q requires explicit parameter and spatial methods", strategy)
	}
	if !validParameterMethod(cfg.ParameterMethod) {
		return Config{}, fmt.Errorf("unknown parameter aggregation method %q", cfg.ParameterMethod)
	}
	if !validSpatialMethod(cfg.SpatialMethod) {
		return Config{}, fmt.Errorf("unknown spatial aggregation method %q", cfg.SpatialMethod)
	}
	if !cfg.Thresholds.Valid() {
		return Config{}, fmt.Errorf("category thresholds must descend within 0-100, got %+v", cfg.Thresholds)
	}
	if cfg.ParameterWeights != nil {
		if err := checkWeightSum(sumParamWeights(cfg.ParameterWeights)); err != nil {
			return Config{}, fmt.Errorf("parameter weights: %w", err)
		}
	}
	if cfg.RoomWeights != nil {
		if err := checkWeightSum(sumRoomWeights(cfg.RoomWeights)); err != nil {
			return Config{}, fmt.Errorf("room weights: %w", err)
		}
	}
	return cfg, nil
}

// Option customizes a Config during construction.
type Option func(*Config)

// WithMethods overrides the strategy's method pair; required for Custom.
func WithMethods(pm ParameterMethod, sm SpatialMethod) Option {
	return func(c *Config) {
		c.ParameterMethod = pm
		c.SpatialMethod = sm
	}
}

// WithThresholds overrides the 95/90/85 category cut-offs.
func WithThresholds(t category.Thresholds) Option {
	return func(c *Config) { c.Thresholds = t }
}

// WithParameterWeights supplies an explicit weight table (must sum to
// 1.0 ± 0.01).
func WithParameterWeights(w map[series.Parameter]float64) Option {
	return func(c *Config) { c.ParameterWeights = copyParamMap(w) }
}

// WithRoomWeights supplies explicit room weights (must sum to 1.0 ± 0.01).
func WithRoomWeights(w map[string]float64) Option {
	return func(c *Config) { c.RoomWeights = copyRoomMap(w) }
}

// WithExclusions removes rooms and parameters before any aggregation
// math runs.
func WithExclusions(rooms []string, params []series.Parameter) Option {
	return func(c *Config) {
		if len(rooms) > 0 {
			c.ExcludeRooms = map[string]bool{}
			for _, r := range rooms {
				c.ExcludeRooms[r] = true
			}
		}
		if len(params) > 0 {
			c.ExcludeParams = map[series.Parameter]bool{}
			for _, p := range params {
				c.ExcludeParams[p] = true
			}
		}
	}
}

func (c Config) parameterWeights() map[series.Parameter]float64 {
	if c.ParameterWeights != nil {
		return c.ParameterWeights
	}
	return DefaultParameterWeights
}

func validParameterMethod(m ParameterMethod) bool {
	switch m {
	case WorstParameter, WeightedAverage, UnweightedAverage:
		return true
	}
	return false
}

func validSpatialMethod(m SpatialMethod) bool {
	switch m {
	case WorstSpace, OccupantWeighted, AreaWeighted, SimpleAverage, CriticalSpacesOnly:
		return true
	}
	return false
}

func checkWeightSum(sum float64) error {
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0 ± %.2f, got %.4f", weightSumTolerance, sum)
	}
	return nil
}

func sumParamWeights(w map[series.Parameter]float64) float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

func sumRoomWeights(w map[string]float64) float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

func copyParamMap(w map[series.Parameter]float64) map[series.Parameter]float64 {
	out := make(map[series.Parameter]float64, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

func copyRoomMap(w map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}
