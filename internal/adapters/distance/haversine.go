package distance

import (
	"waste-route-service/internal/domain"

	"github.com/golang/geo/s2"
)

// Mean Earth radius used for all great-circle distances.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle surface distance in kilometers between a and b.
//
// Coordinates are not validated; NaN input yields NaN.
func Haversine(a, b domain.GeoPoint) float64 {
	// s2 multiplies the cosine terms in argument order, so operands are put in a
	// canonical order to keep Haversine(a, b) == Haversine(b, a) bit for bit.
	if b.Lat < a.Lat || (b.Lat == a.Lat && b.Lng < a.Lng) {
		a, b = b, a
	}

	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// HaversineCalculator implements DistanceCalculator with the haversine formula.
// The zero value is ready to use and safe for concurrent use.
type HaversineCalculator struct{}

func (HaversineCalculator) Distance(a, b domain.GeoPoint) float64 { return Haversine(a, b) }
