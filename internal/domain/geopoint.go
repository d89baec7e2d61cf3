package domain

// Immutable geographic point in decimal degrees.
// GeoPoint has no identity of its own; it is used for the depot and for
// intermediate positions while walking a route.
type GeoPoint struct {
	Lat float64
	Lng float64
}
