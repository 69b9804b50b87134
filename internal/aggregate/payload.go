// v0
// internal/aggregate/payload.go
package aggregate

// Payload flattens a room result for the reporting boundary.
func (r RoomResult) Payload() map[string]any {
	params := map[string]any{}
	for p, pr := range r.Parameters {
		params[p.String()] = map[string]any{
			"category":       pr.Category.String(),
			"default_floor":  pr.DefaultFloor,
			"score":          pr.Score,
			"occupied_hours": pr.OccupiedHours,
			"data_quality":   pr.DataQuality,
		}
	}
	out := map[string]any{
		"room_id":           r.RoomID,
		"parameters":        params,
		"overall_category":  r.OverallCategory.String(),
		"ieq_score":         r.IEQScore,
		"occupied_hours":    r.OccupiedHours,
		"is_critical_space": r.IsCritical,
		"status":            r.Status,
	}
	if r.FloorAreaM2 > 0 {
		out["floor_area_m2"] = r.FloorAreaM2
	}
	if r.Reason != "" {
		out["reason"] = r.Reason
	}
	return out
}

// Payload flattens a building result for the reporting boundary.
func (b BuildingResult) Payload() map[string]any {
	rooms := make([]map[string]any, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		rooms = append(rooms, r.Payload())
	}
	out := map[string]any{
		"building_id": b.BuildingID,
		"rooms":       rooms,
		"category":    b.Category.String(),
		"score":       b.Score,
		"method":      string(b.Method),
		"status":      b.Status,
	}
	if b.Reason != "" {
		out["reason"] = b.Reason
	}
	return out
}

// Payload flattens a portfolio result for the reporting boundary.
func (p PortfolioResult) Payload() map[string]any {
	buildings := make([]map[string]any, 0, len(p.Buildings))
	for _, b := range p.Buildings {
		buildings = append(buildings, b.Payload())
	}
	out := map[string]any{
		"portfolio_id": p.PortfolioID,
		"buildings":    buildings,
		"category":     p.Category.String(),
		"score":        p.Score,
		"method":       string(p.Method),
		"status":       p.Status,
	}
	if p.Reason != "" {
		out["reason"] = p.Reason
	}
	return out
}
