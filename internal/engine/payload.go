// v0
// internal/engine/payload.go
package engine

// Payload flattens a room assessment, nesting the standard-specific
// payloads under their standard keys.
func (ra RoomAssessment) Payload() map[string]any {
	tests := make([]map[string]any, 0, len(ra.Tests))
	for _, t := range ra.Tests {
		tests = append(tests, t.Payload())
	}
	out := map[string]any{
		"room":    ra.Room.Payload(),
		"en16798": ra.EN16798.Payload(),
		"tail":    ra.TAIL.Payload(),
	}
	if len(tests) > 0 {
		out["tests"] = tests
	}
	return out
}

// Payload flattens a building assessment.
func (ba BuildingAssessment) Payload() map[string]any {
	rooms := make([]map[string]any, 0, len(ba.Rooms))
	for _, ra := range ba.Rooms {
		rooms = append(rooms, ra.Payload())
	}
	return map[string]any{
		"building": ba.Building.Payload(),
		"rooms":    rooms,
	}
}

// Payload flattens the full portfolio assessment.
func (pa PortfolioAssessment) Payload() map[string]any {
	buildings := make([]map[string]any, 0, len(pa.Buildings))
	for _, ba := range pa.Buildings {
		buildings = append(buildings, ba.Payload())
	}
	return map[string]any{
		"portfolio": pa.Portfolio.Payload(),
		"buildings": buildings,
	}
}
