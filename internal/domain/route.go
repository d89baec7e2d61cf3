package domain

import (
	"fmt"
	"strings"
)

// RouteMode selects the route planning strategy.
type RouteMode string

const (
	// Visit every bin in its stored order.
	RouteModeFixed RouteMode = "FIXED"
	// Visit only bins worth collecting, nearest first.
	RouteModeOptimized RouteMode = "OPTIMIZED"
)

// ParseRouteMode accepts a mode name in any letter case.
func ParseRouteMode(s string) (RouteMode, error) {
	switch RouteMode(strings.ToUpper(strings.TrimSpace(s))) {
	case RouteModeFixed:
		return RouteModeFixed, nil
	case RouteModeOptimized:
		return RouteModeOptimized, nil
	}
	return "", fmt.Errorf("parse route mode %q: %w", s, ErrInvalidMode)
}

// Aggregate cost of driving one closed-loop route from the depot.
// RouteMetrics is derived data, computed fresh for every request.
type RouteMetrics struct {
	DistanceKm    float64 // 2 decimal places
	FuelLiters    float64 // 2 decimal places
	TimeMinutes   int
	BinsCollected int
}

// Side-by-side evaluation of the fixed and optimized routes.
// Gains are percentages of the fixed value saved by the optimized route.
type RouteComparison struct {
	Fixed        RouteMetrics
	Optimized    RouteMetrics
	DistanceGain float64
	FuelGain     float64
	TimeGain     float64
}

// Operating constants of a collection vehicle.
type VehicleProfile struct {
	FuelLitersPerKm      float64
	SpeedKmh             float64
	ServiceMinutesPerBin float64
}

// DefaultVehicleProfile models a heavy garbage truck doing ~2.5 km per liter.
var DefaultVehicleProfile = VehicleProfile{
	FuelLitersPerKm:      0.4,
	SpeedKmh:             20,
	ServiceMinutesPerBin: 5,
}
