// v1
// internal/cache/keys.go
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// RoomKey builds the cache key for a room evaluation so that equivalent
// (room, strategy) pairs always hash the same.
func RoomKey(buildingID, roomID, strategy string) string {
	return makeKey("room", canonicalID(buildingID), canonicalID(roomID), canonicalID(strategy))
}

// BuildingKey builds the cache key for a building aggregation.
func BuildingKey(buildingID, strategy string) string {
	return makeKey("building", canonicalID(buildingID), canonicalID(strategy))
}

// PortfolioKey builds the cache key for a portfolio aggregation.
func PortfolioKey(portfolioID, strategy string) string {
	return makeKey("portfolio", canonicalID(portfolioID), canonicalID(strategy))
}

func canonicalID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func makeKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	h := sha1.Sum([]byte(joined))
	return hex.EncodeToString(h[:])
}
