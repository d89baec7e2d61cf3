package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"waste-route-service/internal/adapters/binjson"
	"waste-route-service/internal/config"
	"waste-route-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Depot:        config.DefaultDepot,
		MockBinCount: 5,
		MockSpread:   0.02,
		Vehicle:      domain.DefaultVehicleProfile,
	}
}

func TestGenerateThenCompare(t *testing.T) {
	cfg := testConfig()
	path := filepath.Join(t.TempDir(), "bins.json")

	require.NoError(t, runGenerate(cfg, []string{"-out", path, "-count", "8", "-seed", "3"}))

	bins, err := binjson.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, bins, 8)
	assert.Equal(t, "BIN-001", bins[0].ID)

	var out bytes.Buffer
	require.NoError(t, runCompare(cfg, []string{"-in", path}, &out))
	assert.Contains(t, out.String(), "Distance (km)")
	assert.Contains(t, out.String(), "Bins collected")
}

func TestGenerateRejectsNegativeCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bins.json")
	assert.Error(t, runGenerate(testConfig(), []string{"-out", path, "-count", "-1"}))
}

func TestCompareMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runCompare(testConfig(), []string{"-in", filepath.Join(t.TempDir(), "missing.json")}, &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestPrintComparison(t *testing.T) {
	cmp := domain.RouteComparison{
		Fixed:        domain.RouteMetrics{DistanceKm: 10, FuelLiters: 4, TimeMinutes: 45, BinsCollected: 3},
		Optimized:    domain.RouteMetrics{DistanceKm: 5, FuelLiters: 2, TimeMinutes: 25, BinsCollected: 2},
		DistanceGain: 50,
		FuelGain:     50,
		TimeGain:     44.4,
	}

	var out bytes.Buffer
	require.NoError(t, printComparison(&out, cmp))

	s := out.String()
	assert.Contains(t, s, "10.00")
	assert.Contains(t, s, "50.0%")
	assert.Contains(t, s, "44.4%")
}
