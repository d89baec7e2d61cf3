package services

import (
	"waste-route-service/internal/domain"
	"waste-route-service/internal/ports"
)

// Minimum fill level (percent, inclusive) a bin needs to be picked up on an
// optimized route. Lightly filled bins are skipped entirely.
const CollectionThreshold = 70

// Plan the visiting order of bins for the given mode.
//
// Fixed mode returns every bin in stored order. Optimized mode keeps only bins
// at or above CollectionThreshold and orders them with a greedy
// nearest-neighbor walk from the depot. The result is always a new slice whose
// elements are a subset of bins; bins itself is never modified.
func PlanRoute(
	bins []domain.BinRecord,
	mode domain.RouteMode,
	depot domain.GeoPoint,
	calc ports.DistanceCalculator,
) []domain.BinRecord {
	if mode == domain.RouteModeOptimized {
		return NearestNeighborRoute(FilterCollectable(bins), depot, calc)
	}

	route := make([]domain.BinRecord, len(bins))
	copy(route, bins)
	return route
}

// Return the bins worth collecting, in their original order.
func FilterCollectable(bins []domain.BinRecord) []domain.BinRecord {
	out := make([]domain.BinRecord, 0, len(bins))
	for _, b := range bins {
		if b.Level >= CollectionThreshold {
			out = append(out, b)
		}
	}
	return out
}
