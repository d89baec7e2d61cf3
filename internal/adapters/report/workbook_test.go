package report

import (
	"bytes"
	"testing"
	"waste-route-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteComparison(t *testing.T) {
	cmp := domain.RouteComparison{
		Fixed:        domain.RouteMetrics{DistanceKm: 10, FuelLiters: 4, TimeMinutes: 130, BinsCollected: 20},
		Optimized:    domain.RouteMetrics{DistanceKm: 5, FuelLiters: 2, TimeMinutes: 40, BinsCollected: 5},
		DistanceGain: 50,
		FuelGain:     50,
		TimeGain:     69.2,
	}
	path := []domain.BinRecord{
		{ID: "BIN-004", Lat: 28.69, Lng: 77.13, Level: 91},
		{ID: "BIN-011", Lat: 28.70, Lng: 77.14, Level: 75},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, cmp, path))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, RouteSheet}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Metric", cell(SummarySheet, "A1"))
	assert.Equal(t, "Distance (km)", cell(SummarySheet, "A2"))
	assert.Equal(t, "10", cell(SummarySheet, "B2"))
	assert.Equal(t, "5", cell(SummarySheet, "C2"))
	assert.Equal(t, "50", cell(SummarySheet, "D2"))
	assert.Equal(t, "69.2", cell(SummarySheet, "D4"))
	assert.Equal(t, "Bins Picked", cell(SummarySheet, "A5"))
	assert.Equal(t, "-", cell(SummarySheet, "D5"))

	assert.Equal(t, "Stop", cell(RouteSheet, "A1"))
	assert.Equal(t, "1", cell(RouteSheet, "A2"))
	assert.Equal(t, "BIN-004", cell(RouteSheet, "B2"))
	assert.Equal(t, "BIN-011", cell(RouteSheet, "B3"))
	assert.Equal(t, "75", cell(RouteSheet, "E3"))
}

func TestWriteComparisonEmptyRoute(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, domain.RouteComparison{}, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RouteSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
