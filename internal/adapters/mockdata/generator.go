// Package mockdata produces synthetic bin collections for demos and tests.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"time"
	"waste-route-service/internal/domain"
)

const (
	DefaultCount  = 20
	DefaultSpread = 0.02 // degrees, full width of the placement square
)

// Generator scatters bins uniformly in a square of side Spread degrees
// centered on Center, with random fill levels in 0-99.
type Generator struct {
	Center domain.GeoPoint
	Count  int
	Spread float64
	Rand   *rand.Rand
	Now    func() time.Time
}

// Generate returns Count new bins named BIN-001, BIN-002, ...
func (g Generator) Generate() []domain.BinRecord {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	ts := domain.FormatTimestamp(now())

	bins := make([]domain.BinRecord, 0, max(g.Count, 0))
	for i := 1; i <= g.Count; i++ {
		bins = append(bins, domain.BinRecord{
			ID:         BinID(i),
			Lat:        g.Center.Lat + (g.Rand.Float64()-0.5)*g.Spread,
			Lng:        g.Center.Lng + (g.Rand.Float64()-0.5)*g.Spread,
			Level:      RandomLevel(g.Rand),
			LastUpdate: ts,
		})
	}
	return bins
}

// BinID formats the n-th generated identifier, zero padded to three digits.
func BinID(n int) string { return fmt.Sprintf("BIN-%03d", n) }

// RandomLevel draws a fill level in [0, 100).
func RandomLevel(r *rand.Rand) int { return r.IntN(100) }

// NewRand returns a generator seeded from seed, for reproducible datasets.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
