package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"waste-route-service/internal/adapters/mockdata"
	"waste-route-service/internal/domain"
)

// Pitampura, Delhi: the demo zone the mock bins are scattered around.
var DefaultDepot = domain.GeoPoint{Lat: 28.6949, Lng: 77.1350}

// Config holds process-wide settings. It is read once at start-up and never
// mutated afterwards.
type Config struct {
	Port            string
	Depot           domain.GeoPoint
	SeedPath        string
	MockBinCount    int
	MockSpread      float64
	Vehicle         domain.VehicleProfile
	RefreshSchedule string
	DefaultMode     domain.RouteMode
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment. Callers that want .env
// support load it with godotenv before calling Load.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            Get("PORT", "8080"),
		SeedPath:        Get("SEED_PATH", ""),
		RefreshSchedule: Get("REFRESH_SCHEDULE", ""),
	}

	var err error
	if cfg.Depot.Lat, err = getFloat("DEPOT_LAT", DefaultDepot.Lat); err != nil {
		return nil, err
	}
	if cfg.Depot.Lng, err = getFloat("DEPOT_LNG", DefaultDepot.Lng); err != nil {
		return nil, err
	}
	if cfg.Depot.Lat < -90 || cfg.Depot.Lat > 90 || cfg.Depot.Lng < -180 || cfg.Depot.Lng > 180 {
		return nil, fmt.Errorf("load config: depot (%g, %g) is out of range", cfg.Depot.Lat, cfg.Depot.Lng)
	}

	if cfg.MockBinCount, err = getInt("MOCK_BIN_COUNT", mockdata.DefaultCount); err != nil {
		return nil, err
	}
	if cfg.MockBinCount < 0 {
		return nil, fmt.Errorf("load config: MOCK_BIN_COUNT must not be negative, got %d", cfg.MockBinCount)
	}
	if cfg.MockSpread, err = getFloat("MOCK_SPREAD_DEG", mockdata.DefaultSpread); err != nil {
		return nil, err
	}

	def := domain.DefaultVehicleProfile
	if cfg.Vehicle.SpeedKmh, err = getPositiveFloat("TRUCK_SPEED_KMH", def.SpeedKmh); err != nil {
		return nil, err
	}
	if cfg.Vehicle.FuelLitersPerKm, err = getPositiveFloat("FUEL_L_PER_KM", def.FuelLitersPerKm); err != nil {
		return nil, err
	}
	if cfg.Vehicle.ServiceMinutesPerBin, err = getPositiveFloat("SERVICE_MIN_PER_BIN", def.ServiceMinutesPerBin); err != nil {
		return nil, err
	}

	if cfg.DefaultMode, err = domain.ParseRouteMode(Get("DEFAULT_MODE", string(domain.RouteModeOptimized))); err != nil {
		return nil, fmt.Errorf("load config: DEFAULT_MODE: %w", err)
	}

	return cfg, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("load config: %s=%q is not a number: %w", key, raw, err)
	}
	return v, nil
}

func getPositiveFloat(key string, fallback float64) (float64, error) {
	v, err := getFloat(key, fallback)
	if err != nil {
		return 0, err
	}
	if !(v > 0) {
		return 0, fmt.Errorf("load config: %s must be positive, got %g", key, v)
	}
	return v, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("load config: %s=%q is not an integer: %w", key, raw, err)
	}
	return v, nil
}
