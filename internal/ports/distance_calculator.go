package ports

import "waste-route-service/internal/domain"

// Contract for computing straight-line travel distance between two points.
type DistanceCalculator interface {
	// Return the distance in kilometers from a to b.
	Distance(a, b domain.GeoPoint) float64
}
