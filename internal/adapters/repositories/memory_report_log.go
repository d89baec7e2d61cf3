package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"waste-route-service/internal/domain"
)

// In-memory, append-only implementation of the ReportLog port.
type MemoryReportLog struct {
	mu      sync.RWMutex
	reports []domain.WorkerReport
}

func NewMemoryReportLog() *MemoryReportLog {
	return &MemoryReportLog{}
}

func (l *MemoryReportLog) AppendReport(ctx context.Context, report domain.WorkerReport) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("append report: %w", err)
	}
	if strings.TrimSpace(report.BinID) == "" {
		return fmt.Errorf("append report: bin id must not be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.reports = append(l.reports, report)
	return nil
}

func (l *MemoryReportLog) ListReports(ctx context.Context) ([]domain.WorkerReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.WorkerReport, len(l.reports))
	copy(out, l.reports)
	return out, nil
}
