// v1
// internal/aggregate/spatial.go
package aggregate

import (
	"github.com/your-org/ieq-assessment/internal/category"
)

// BuildingResult combines the judged rooms of one building. It is always
// built from previously computed room results, never re-derived from raw
// series, so the score stays traceable to the exact room numbers.
type BuildingResult struct {
	BuildingID string            `json:"building_id"`
	Rooms      []RoomResult      `json:"rooms"`
	Category   category.Category `json:"category"`
	Score      float64           `json:"score"`
	Method     SpatialMethod     `json:"method"`
	Status     string            `json:"status"`
	Reason     string            `json:"reason,omitempty"`
}

// PortfolioResult combines building results.
type PortfolioResult struct {
	PortfolioID string            `json:"portfolio_id"`
	Buildings   []BuildingResult  `json:"buildings"`
	Category    category.Category `json:"category"`
	Score       float64           `json:"score"`
	Method      SpatialMethod     `json:"method"`
	Status      string            `json:"status"`
	Reason      string            `json:"reason,omitempty"`
}

// spatialChild is the view the spatial combiner needs of a room or
// building.
type spatialChild struct {
	id       string
	score    float64
	cat      category.Category
	occupant float64
	area     float64
	critical bool
}

// AggregateBuilding combines room results under the config's spatial
// method. Excluded rooms are filtered before any math. Zero qualifying
// rooms yields the conservative floor flagged StatusNoData.
func AggregateBuilding(buildingID string, rooms []RoomResult, cfg Config) BuildingResult {
	res := BuildingResult{
		BuildingID: buildingID,
		Category:   category.CategoryIV,
		Method:     cfg.SpatialMethod,
		Status:     StatusOK,
	}
	children := make([]spatialChild, 0, len(rooms))
	for _, r := range rooms {
		if cfg.ExcludeRooms[r.RoomID] {
			continue
		}
		res.Rooms = append(res.Rooms, r)
		children = append(children, spatialChild{
			id:       r.RoomID,
			score:    r.IEQScore,
			cat:      r.OverallCategory,
			occupant: r.OccupiedHours,
			area:     r.FloorAreaM2,
			critical: r.IsCritical,
		})
	}

	score, cat, ok, reason := combine(children, cfg)
	if !ok {
		res.Status = StatusNoData
		res.Reason = reason
		res.Score = 0
		return res
	}
	res.Score = score
	res.Category = cat
	return res
}

// AggregatePortfolio combines building results under the same spatial
// methods; occupant and area weights are the building totals.
func AggregatePortfolio(portfolioID string, buildings []BuildingResult, cfg Config) PortfolioResult {
	res := PortfolioResult{
		PortfolioID: portfolioID,
		Buildings:   buildings,
		Category:    category.CategoryIV,
		Method:      cfg.SpatialMethod,
		Status:      StatusOK,
	}
	children := make([]spatialChild, 0, len(buildings))
	for _, b := range buildings {
		var occupant, area float64
		critical := false
		for _, r := range b.Rooms {
			occupant += r.OccupiedHours
			area += r.FloorAreaM2
			critical = critical || r.IsCritical
		}
		children = append(children, spatialChild{
			id:       b.BuildingID,
			score:    b.Score,
			cat:      b.Category,
			occupant: occupant,
			area:     area,
			critical: critical,
		})
	}

	score, cat, ok, reason := combine(children, cfg)
	if !ok {
		res.Status = StatusNoData
		res.Reason = reason
		res.Score = 0
		return res
	}
	res.Score = score
	res.Category = cat
	return res
}

// combine applies the spatial method to the children. A zero total
// weight falls back to the unweighted average rather than dividing by
// zero; zero children reports failure so callers can flag the
// conservative floor.
func combine(children []spatialChild, cfg Config) (float64, category.Category, bool, string) {
	if len(children) == 0 {
		return 0, category.CategoryIV, false, "no qualifying spaces"
	}

	switch cfg.SpatialMethod {
	case WorstSpace:
		worstCat := children[0].cat
		worstScore := children[0].score
		for _, c := range children[1:] {
			worstCat = category.Worst(worstCat, c.cat)
			if c.score < worstScore {
				worstScore = c.score
			}
		}
		return worstScore, worstCat, true, ""

	case OccupantWeighted:
		return weighted(children, cfg, func(c spatialChild) float64 { return c.occupant })

	case AreaWeighted:
		return weighted(children, cfg, func(c spatialChild) float64 { return c.area })

	case SimpleAverage:
		return simpleAverage(children, cfg)

	case CriticalSpacesOnly:
		var crit []spatialChild
		for _, c := range children {
			if c.critical {
				crit = append(crit, c)
			}
		}
		if len(crit) == 0 {
			return 0, category.CategoryIV, false, "no critical spaces designated"
		}
		return simpleAverage(crit, cfg)
	}
	return 0, category.CategoryIV, false, "unknown spatial method"
}

func weighted(children []spatialChild, cfg Config, weightOf func(spatialChild) float64) (float64, category.Category, bool, string) {
	var sum, wsum float64
	for _, c := range children {
		w := weightOf(c)
		if explicit, ok := cfg.RoomWeights[c.id]; ok {
			w = explicit
		}
		if w <= 0 {
			continue
		}
		sum += w * c.score
		wsum += w
	}
	if wsum == 0 {
		return simpleAverage(children, cfg)
	}
	score := sum / wsum
	return score, category.ScoreToCategory(score, cfg.Thresholds), true, ""
}

func simpleAverage(children []spatialChild, cfg Config) (float64, category.Category, bool, string) {
	var sum float64
	for _, c := range children {
		sum += c.score
	}
	score := sum / float64(len(children))
	return score, category.ScoreToCategory(score, cfg.Thresholds), true, ""
}
