// Package report renders route comparisons as Excel workbooks.
package report

import (
	"fmt"
	"io"
	"waste-route-service/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Efficiency"
	RouteSheet   = "Optimized Route"
)

// Build a workbook with the fixed-vs-optimized table on the first sheet and
// the optimized visiting order on the second. The caller must Close the file.
func ComparisonWorkbook(cmp domain.RouteComparison, optimized []domain.BinRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("comparison workbook: rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D1FAE5"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("comparison workbook: header style: %w", err)
	}

	summary := [][]any{
		{"Metric", "Fixed", "Optimized", "Gain (%)"},
		{"Distance (km)", cmp.Fixed.DistanceKm, cmp.Optimized.DistanceKm, cmp.DistanceGain},
		{"Fuel (L)", cmp.Fixed.FuelLiters, cmp.Optimized.FuelLiters, cmp.FuelGain},
		{"Time (min)", cmp.Fixed.TimeMinutes, cmp.Optimized.TimeMinutes, cmp.TimeGain},
		{"Bins Picked", cmp.Fixed.BinsCollected, cmp.Optimized.BinsCollected, "-"},
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		f.Close()
		return nil, fmt.Errorf("comparison workbook: %w", err)
	}

	if _, err := f.NewSheet(RouteSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("comparison workbook: create route sheet: %w", err)
	}

	stops := make([][]any, 0, len(optimized)+1)
	stops = append(stops, []any{"Stop", "Bin ID", "Latitude", "Longitude", "Level (%)", "Last Update"})
	for i, b := range optimized {
		stops = append(stops, []any{i + 1, b.ID, b.Lat, b.Lng, b.Level, b.LastUpdate})
	}
	if err := writeRows(f, RouteSheet, stops); err != nil {
		f.Close()
		return nil, fmt.Errorf("comparison workbook: %w", err)
	}

	for _, sheet := range []string{SummarySheet, RouteSheet} {
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("comparison workbook: style %s header: %w", sheet, err)
		}
		if err := f.SetColWidth(sheet, "A", "F", 16); err != nil {
			f.Close()
			return nil, fmt.Errorf("comparison workbook: size %s columns: %w", sheet, err)
		}
	}

	return f, nil
}

// Write the comparison workbook to w in xlsx format.
func WriteComparison(w io.Writer, cmp domain.RouteComparison, optimized []domain.BinRecord) error {
	f, err := ComparisonWorkbook(cmp, optimized)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write comparison workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
