// v0
// internal/en16798/payload.go
package en16798

// Payload flattens the result into nested maps keyed by category and
// parameter, the shape the reporting boundary consumes.
func (r Result) Payload() map[string]any {
	rates := map[string]any{}
	for cat, rate := range r.CategoryRates {
		rates[cat.String()] = rate
	}
	params := map[string]any{}
	for p, pr := range r.Parameters {
		params[p.String()] = map[string]any{
			"percent_in_cat1":    pr.PercentInCat1,
			"percent_in_cat2":    pr.PercentInCat2,
			"percent_in_cat3":    pr.PercentInCat3,
			"category":           pr.Achieved.String(),
			"default_floor":      pr.DefaultFloor,
			"occupied_hours":     pr.OccupiedHours,
			"data_quality_score": pr.DataQuality.Score,
		}
	}
	out := map[string]any{
		"standard":             r.Standard,
		"season":               string(r.Season),
		"ventilation":          string(r.Ventilation),
		"adaptive_used":        r.AdaptiveUsed,
		"achieved_category":    r.Achieved.String(),
		"default_floor":        r.DefaultFloor,
		"category_rates":       rates,
		"parameters":           params,
		"occupied_points":      r.OccupiedPoints,
		"total_occupied_hours": r.TotalOccupiedHours,
		"status":               r.Status,
	}
	if r.Reason != "" {
		out["reason"] = r.Reason
	}
	if r.AdaptiveUsed {
		out["running_mean_outdoor"] = r.RunningMeanOutdoor
	}
	return out
}
