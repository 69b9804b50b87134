// v1
// internal/aggregate/parameter.go
package aggregate

import (
	"github.com/your-org/ieq-assessment/internal/category"
	"github.com/your-org/ieq-assessment/internal/series"
)

// ParameterResult is one parameter's judgment for one room, as produced
// by a standard calculator. Score is on the 0-100 scale.
type ParameterResult struct {
	Category      category.Category `json:"category"`
	DefaultFloor  bool              `json:"default_floor"`
	Score         float64           `json:"score"`
	OccupiedHours float64           `json:"occupied_hours"`
	DataQuality   float64           `json:"data_quality"`
}

// RoomResult is one room's aggregated judgment together with the child
// parameter results it was built from.
type RoomResult struct {
	RoomID          string                               `json:"room_id"`
	Parameters      map[series.Parameter]ParameterResult `json:"parameters"`
	OverallCategory category.Category                    `json:"overall_category"`
	IEQScore        float64                              `json:"ieq_score"`
	OccupiedHours   float64                              `json:"occupied_hours"`
	FloorAreaM2     float64                              `json:"floor_area_m2,omitempty"`
	IsCritical      bool                                 `json:"is_critical_space"`
	Status          string                               `json:"status"`
	Reason          string                               `json:"reason,omitempty"`
}

// Status values for aggregated results.
const (
	StatusOK     = "ok"
	StatusNoData = "no_data"
)

// AggregateRoom combines a room's parameter results into one judgment
// under the config's parameter method. Excluded parameters are dropped
// before any math. With zero qualifying parameters the result is the
// conservative floor (category IV, score 0) flagged StatusNoData.
func AggregateRoom(roomID string, params map[series.Parameter]ParameterResult, cfg Config) RoomResult {
	res := RoomResult{
		RoomID:          roomID,
		Parameters:      map[series.Parameter]ParameterResult{},
		OverallCategory: category.CategoryIV,
		Status:          StatusOK,
	}
	for p, pr := range params {
		if cfg.ExcludeParams[p] {
			continue
		}
		res.Parameters[p] = pr
		res.OccupiedHours = maxFloat(res.OccupiedHours, pr.OccupiedHours)
	}
	if len(res.Parameters) == 0 {
		res.Status = StatusNoData
		res.Reason = "no qualifying parameters"
		return res
	}

	switch cfg.ParameterMethod {
	case WorstParameter:
		worst := category.CategoryI
		score := 100.0
		for _, pr := range res.Parameters {
			worst = category.Worst(worst, pr.Category)
			if pr.Score < score {
				score = pr.Score
			}
		}
		res.OverallCategory = worst
		res.IEQScore = score

	case WeightedAverage:
		weights := cfg.parameterWeights()
		var sum, wsum float64
		for p, pr := range res.Parameters {
			w, ok := weights[p]
			if !ok {
				continue
			}
			sum += w * pr.Score
			wsum += w
		}
		if wsum == 0 {
			// None of the present parameters is weighted: fall back to
			// the unweighted mean rather than dividing by zero.
			res.IEQScore = unweightedMean(res.Parameters)
		} else {
			res.IEQScore = sum / wsum
		}
		res.OverallCategory = category.ScoreToCategory(res.IEQScore, cfg.Thresholds)

	case UnweightedAverage:
		res.IEQScore = unweightedMean(res.Parameters)
		res.OverallCategory = category.ScoreToCategory(res.IEQScore, cfg.Thresholds)
	}
	return res
}

func unweightedMean(params map[series.Parameter]ParameterResult) float64 {
	var sum float64
	for _, pr := range params {
		sum += pr.Score
	}
	return sum / float64(len(params))
}

func maxFloat(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}
