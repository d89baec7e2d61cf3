package services

import (
	"math"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/ports"
)

// Evaluate the cost of driving path as a closed loop from depot.
//
// Distance covers depot -> path[0] -> ... -> path[n-1] -> depot. The return
// leg is always included even though the depot is not a path element.
// Distance and fuel are rounded to 2 decimal places, time to whole minutes.
func EvaluateRoute(
	path []domain.BinRecord,
	depot domain.GeoPoint,
	calc ports.DistanceCalculator,
	profile domain.VehicleProfile,
) domain.RouteMetrics {
	if len(path) == 0 {
		return domain.RouteMetrics{}
	}

	totalKm := 0.0
	current := depot
	for _, bin := range path {
		next := bin.Position()
		totalKm += calc.Distance(current, next)
		current = next
	}

	// Return leg to depot.
	totalKm += calc.Distance(current, depot)

	fuel := totalKm * profile.FuelLitersPerKm
	driveMinutes := totalKm / profile.SpeedKmh * 60
	collectionMinutes := float64(len(path)) * profile.ServiceMinutesPerBin

	return domain.RouteMetrics{
		DistanceKm:    round2(totalKm),
		FuelLiters:    round2(fuel),
		TimeMinutes:   int(math.Round(driveMinutes + collectionMinutes)),
		BinsCollected: len(path),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
