package ports

import (
	"context"
	"waste-route-service/internal/domain"
)

// Port: a boundary for reading and swapping the working bin collection.
// Implementations hand out copies, so callers may keep a returned slice as an
// immutable snapshot.
type BinRepository interface {
	// Retrieve the current bin collection in stored order.
	ListBins(ctx context.Context) ([]domain.BinRecord, error)
	// Replace the whole collection.
	ReplaceBins(ctx context.Context, bins []domain.BinRecord) error
	// Atomically derive a new collection from the current one.
	// If fn returns an error the stored collection is left unchanged.
	UpdateBins(ctx context.Context, fn func(current []domain.BinRecord) ([]domain.BinRecord, error)) ([]domain.BinRecord, error)
}

// Port: append-only log of worker reports.
type ReportLog interface {
	AppendReport(ctx context.Context, report domain.WorkerReport) error
	// Return all reports, oldest first.
	ListReports(ctx context.Context) ([]domain.WorkerReport, error)
}
