// v1
// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/your-org/ieq-assessment/internal/aggregate"
	"github.com/your-org/ieq-assessment/internal/category"
	"github.com/your-org/ieq-assessment/internal/occupancy"
	"github.com/your-org/ieq-assessment/internal/series"
)

// Config is the YAML assessment configuration. Validation happens
// eagerly in Load, before any series is read.
type Config struct {
	Strategy        string               `yaml:"strategy"`
	ParameterMethod string               `yaml:"parameter_method"`
	SpatialMethod   string               `yaml:"spatial_method"`
	Thresholds      *category.Thresholds `yaml:"thresholds"`

	ParameterWeights map[string]float64 `yaml:"parameter_weights"`
	RoomWeights      map[string]float64 `yaml:"room_weights"`
	ExcludeRooms     []string           `yaml:"exclude_rooms"`
	ExcludeParams    []string           `yaml:"exclude_parameters"`

	ComplianceLevel   float64 `yaml:"compliance_level"`
	SampleHours       float64 `yaml:"sample_hours"`
	OutdoorCO2        float64 `yaml:"outdoor_co2"`
	IlluminanceTarget float64 `yaml:"illuminance_target"`
	Workers           int     `yaml:"workers"`

	Occupancy OccupancyConfig  `yaml:"occupancy"`
	Buildings []BuildingConfig `yaml:"buildings"`
}

// OccupancyConfig holds the weekday open intervals and holiday dates.
type OccupancyConfig struct {
	Profile  map[string][]string `yaml:"profile"`  // weekday name → "HH:MM-HH:MM" list
	Holidays []string            `yaml:"holidays"` // "YYYY-MM-DD"
}

// BuildingConfig describes one building's rooms and data files.
type BuildingConfig struct {
	ID          string       `yaml:"id"`
	OutdoorTemp string       `yaml:"outdoor_temperature"` // CSV path
	Rooms       []RoomConfig `yaml:"rooms"`
}

// RoomConfig describes one room's data files and attributes.
type RoomConfig struct {
	ID          string            `yaml:"id"`
	FloorAreaM2 float64           `yaml:"floor_area_m2"`
	Critical    bool              `yaml:"critical"`
	Ventilation string            `yaml:"ventilation"`
	Season      string            `yaml:"season"`
	Mold        string            `yaml:"mold"`
	Series      map[string]string `yaml:"series"` // parameter → CSV path
}

// Load reads and validates the YAML config. The path defaults to
// ./ieq.yaml and can be overridden via IEQ_CONFIG.
func Load(path string) (Config, error) {
	if path == "" {
		path = "ieq.yaml"
		if envPath := os.Getenv("IEQ_CONFIG"); envPath != "" {
			path = envPath
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Strategy == "" {
		cfg.Strategy = string(aggregate.BalancedCompliance)
	}
	if _, err := cfg.AggregationConfig(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Profile(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Holidays(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// AggregationConfig resolves the aggregation strategy, weights and
// exclusions into an immutable aggregate.Config.
func (c Config) AggregationConfig() (aggregate.Config, error) {
	var opts []aggregate.Option
	if c.ParameterMethod != "" || c.SpatialMethod != "" {
		opts = append(opts, aggregate.WithMethods(
			aggregate.ParameterMethod(c.ParameterMethod),
			aggregate.SpatialMethod(c.SpatialMethod),
		))
	}
	if c.Thresholds != nil {
		opts = append(opts, aggregate.WithThresholds(*c.Thresholds))
	}
	if len(c.ParameterWeights) > 0 {
		w := make(map[series.Parameter]float64, len(c.ParameterWeights))
		for k, v := range c.ParameterWeights {
			p := series.Parameter(k)
			if !p.IsValid() {
				return aggregate.Config{}, fmt.Errorf("unknown parameter %q in parameter_weights", k)
			}
			w[p] = v
		}
		opts = append(opts, aggregate.WithParameterWeights(w))
	}
	if len(c.RoomWeights) > 0 {
		opts = append(opts, aggregate.WithRoomWeights(c.RoomWeights))
	}
	if len(c.ExcludeRooms) > 0 || len(c.ExcludeParams) > 0 {
		params := make([]series.Parameter, 0, len(c.ExcludeParams))
		for _, k := range c.ExcludeParams {
			p := series.Parameter(k)
			if !p.IsValid() {
				return aggregate.Config{}, fmt.Errorf("unknown parameter %q in exclude_parameters", k)
			}
			params = append(params, p)
		}
		opts = append(opts, aggregate.WithExclusions(c.ExcludeRooms, params))
	}
	return aggregate.NewConfig(aggregate.Strategy(c.Strategy), opts...)
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Profile converts the YAML weekday intervals into an occupancy.Profile.
// A nil result means "no profile configured" (always occupied).
func (c Config) Profile() (occupancy.Profile, error) {
	if len(c.Occupancy.Profile) == 0 {
		return nil, nil
	}
	out := occupancy.Profile{}
	for name, specs := range c.Occupancy.Profile {
		wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in occupancy profile", name)
		}
		for _, s := range specs {
			iv, err := occupancy.ParseInterval(s)
			if err != nil {
				return nil, err
			}
			out[wd] = append(out[wd], iv)
		}
	}
	return out, nil
}

// Holidays converts the YAML holiday list into the date set the mask
// generator consumes.
func (c Config) Holidays() (map[string]bool, error) {
	if len(c.Occupancy.Holidays) == 0 {
		return nil, nil
	}
	out := make(map[string]bool, len(c.Occupancy.Holidays))
	for _, d := range c.Occupancy.Holidays {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, fmt.Errorf("bad holiday date %q: %w", d, err)
		}
		out[d] = true
	}
	return out, nil
}
