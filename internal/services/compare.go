package services

import (
	"math"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/ports"
)

// Gain returns the percentage of fixed saved by optimized, rounded to one
// decimal place. A zero fixed value yields 0 instead of dividing by zero.
// Negative gains mean the optimized route costs more.
func Gain(fixed, optimized float64) float64 {
	if fixed == 0 {
		return 0
	}
	return math.Round((fixed-optimized)/fixed*1000) / 10
}

// Evaluate two already planned paths and compute the gains between them.
func ComparePaths(
	fixedPath []domain.BinRecord,
	optimizedPath []domain.BinRecord,
	depot domain.GeoPoint,
	calc ports.DistanceCalculator,
	profile domain.VehicleProfile,
) domain.RouteComparison {
	fixed := EvaluateRoute(fixedPath, depot, calc, profile)
	optimized := EvaluateRoute(optimizedPath, depot, calc, profile)

	return domain.RouteComparison{
		Fixed:        fixed,
		Optimized:    optimized,
		DistanceGain: Gain(fixed.DistanceKm, optimized.DistanceKm),
		FuelGain:     Gain(fixed.FuelLiters, optimized.FuelLiters),
		TimeGain:     Gain(float64(fixed.TimeMinutes), float64(optimized.TimeMinutes)),
	}
}

// Plan both route variants for bins and compare them.
func CompareRoutes(
	bins []domain.BinRecord,
	depot domain.GeoPoint,
	calc ports.DistanceCalculator,
	profile domain.VehicleProfile,
) domain.RouteComparison {
	return ComparePaths(
		PlanRoute(bins, domain.RouteModeFixed, depot, calc),
		PlanRoute(bins, domain.RouteModeOptimized, depot, calc),
		depot, calc, profile,
	)
}
