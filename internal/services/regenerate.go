package services

import (
	"time"
	"waste-route-service/internal/domain"
)

// RegenerateLevels returns a new collection where every bin gets a fresh level
// from level and a lastUpdate of now. Identifiers and positions are kept and
// the input slice is left untouched.
func RegenerateLevels(bins []domain.BinRecord, level func() int, now time.Time) []domain.BinRecord {
	ts := domain.FormatTimestamp(now)

	out := make([]domain.BinRecord, len(bins))
	for i, b := range bins {
		b.Level = level()
		b.LastUpdate = ts
		out[i] = b
	}
	return out
}
