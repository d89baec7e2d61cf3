package services

import (
	"slices"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/ports"
)

// Order candidates using a greedy nearest-neighbor algorithm.
//
// Starting at start, each step moves to the closest remaining candidate.
// It does not attempt global route optimization; the result is deterministic
// for a given input order but not guaranteed to be the shortest tour.
func NearestNeighborRoute(
	candidates []domain.BinRecord,
	start domain.GeoPoint,
	calc ports.DistanceCalculator,
) []domain.BinRecord {
	remaining := slices.Clone(candidates)
	route := make([]domain.BinRecord, 0, len(remaining))
	current := start

	for len(remaining) > 0 {
		bestIdx := 0
		minDistance := calc.Distance(current, remaining[0].Position())

		// Select next stop by minimum distance (greedy step).
		for i := 1; i < len(remaining); i++ {
			d := calc.Distance(current, remaining[i].Position())
			// Strict comparison: on ties the earliest remaining candidate wins.
			if d < minDistance {
				minDistance = d
				bestIdx = i
			}
		}

		next := remaining[bestIdx]
		route = append(route, next)
		remaining = slices.Delete(remaining, bestIdx, bestIdx+1)
		current = next.Position()
	}

	return route
}
