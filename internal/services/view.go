package services

import (
	"waste-route-service/internal/domain"
	"waste-route-service/internal/ports"
)

// Everything the dashboard renders for one bin collection: both route
// variants, the one selected by mode, and their comparison.
type DashboardView struct {
	Mode          domain.RouteMode
	Depot         domain.GeoPoint
	Bins          []domain.BinRecord
	FixedPath     []domain.BinRecord
	OptimizedPath []domain.BinRecord
	Comparison    domain.RouteComparison
}

// Active returns the path selected by the view's mode.
func (v DashboardView) Active() []domain.BinRecord {
	if v.Mode == domain.RouteModeOptimized {
		return v.OptimizedPath
	}
	return v.FixedPath
}

// Recompute both routes and both metric sets from scratch.
func BuildView(
	bins []domain.BinRecord,
	mode domain.RouteMode,
	depot domain.GeoPoint,
	calc ports.DistanceCalculator,
	profile domain.VehicleProfile,
) DashboardView {
	fixed := PlanRoute(bins, domain.RouteModeFixed, depot, calc)
	optimized := PlanRoute(bins, domain.RouteModeOptimized, depot, calc)

	return DashboardView{
		Mode:          mode,
		Depot:         depot,
		Bins:          bins,
		FixedPath:     fixed,
		OptimizedPath: optimized,
		Comparison:    ComparePaths(fixed, optimized, depot, calc, profile),
	}
}
