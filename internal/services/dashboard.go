package services

import (
	"context"
	"fmt"
	"sync"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/platform/obs"
	"waste-route-service/internal/ports"
)

// Dashboard owns the presentation state: the depot, the active route mode and
// access to the bin collection. Every Snapshot recomputes routes and metrics
// from the current collection; nothing derived is cached.
type Dashboard struct {
	repo    ports.BinRepository
	calc    ports.DistanceCalculator
	depot   domain.GeoPoint
	profile domain.VehicleProfile

	mu   sync.RWMutex
	mode domain.RouteMode
}

func NewDashboard(
	repo ports.BinRepository,
	calc ports.DistanceCalculator,
	depot domain.GeoPoint,
	profile domain.VehicleProfile,
	mode domain.RouteMode,
) *Dashboard {
	if mode == "" {
		mode = domain.RouteModeOptimized
	}
	return &Dashboard{repo: repo, calc: calc, depot: depot, profile: profile, mode: mode}
}

func (d *Dashboard) Depot() domain.GeoPoint { return d.depot }

func (d *Dashboard) Mode() domain.RouteMode {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mode
}

func (d *Dashboard) SetMode(mode domain.RouteMode) error {
	if mode != domain.RouteModeFixed && mode != domain.RouteModeOptimized {
		return fmt.Errorf("set mode %q: %w", mode, domain.ErrInvalidMode)
	}

	d.mu.Lock()
	d.mode = mode
	d.mu.Unlock()
	return nil
}

// Snapshot builds a view of the current collection. An empty mode selects the
// dashboard's active mode.
func (d *Dashboard) Snapshot(ctx context.Context, mode domain.RouteMode) (_ DashboardView, err error) {
	defer obs.Time(ctx, "dashboard.Snapshot")(&err)

	if mode == "" {
		mode = d.Mode()
	}

	bins, err := d.repo.ListBins(ctx)
	if err != nil {
		return DashboardView{}, fmt.Errorf("dashboard snapshot: list bins: %w", err)
	}

	return BuildView(bins, mode, d.depot, d.calc, d.profile), nil
}
