package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/platform/obs"
	"waste-route-service/internal/ports"
)

// BinService coordinates changes to the bin collection: wholesale replacement,
// simulated sensor refreshes and worker reports.
type BinService struct {
	repo    ports.BinRepository
	reports ports.ReportLog
	now     func() time.Time

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

func NewBinService(repo ports.BinRepository, reports ports.ReportLog, rng *rand.Rand, now func() time.Time) *BinService {
	if now == nil {
		now = time.Now
	}
	return &BinService{repo: repo, reports: reports, rng: rng, now: now}
}

func (s *BinService) List(ctx context.Context) ([]domain.BinRecord, error) {
	bins, err := s.repo.ListBins(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bins: %w", err)
	}
	return bins, nil
}

// Replace swaps in an already validated collection.
func (s *BinService) Replace(ctx context.Context, bins []domain.BinRecord) (err error) {
	defer obs.Time(ctx, "bins.Replace")(&err)

	if err := s.repo.ReplaceBins(ctx, bins); err != nil {
		return fmt.Errorf("replace bins: %w", err)
	}
	return nil
}

// Regenerate re-randomises every fill level (0-99), simulating a sensor sweep.
func (s *BinService) Regenerate(ctx context.Context) (_ []domain.BinRecord, err error) {
	defer obs.Time(ctx, "bins.Regenerate")(&err)

	bins, err := s.repo.UpdateBins(ctx, func(current []domain.BinRecord) ([]domain.BinRecord, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return RegenerateLevels(current, func() int { return s.rng.IntN(100) }, s.now()), nil
	})
	if err != nil {
		return nil, fmt.Errorf("regenerate bins: %w", err)
	}
	return bins, nil
}

// Apply a worker report to the bin it names and record it in the report log.
func (s *BinService) Report(
	ctx context.Context,
	binID string,
	status domain.ReportStatus,
	imageURL string,
) (_ domain.WorkerReport, _ domain.BinRecord, err error) {
	defer obs.Time(ctx, "bins.Report")(&err)

	binID = strings.TrimSpace(binID)
	report := domain.WorkerReport{
		BinID:     binID,
		Status:    status,
		Timestamp: s.now(),
		ImageURL:  imageURL,
	}

	var updated domain.BinRecord
	_, err = s.repo.UpdateBins(ctx, func(current []domain.BinRecord) ([]domain.BinRecord, error) {
		idx := slices.IndexFunc(current, func(b domain.BinRecord) bool { return b.ID == binID })
		if idx < 0 {
			return nil, fmt.Errorf("bin %q: %w", binID, domain.ErrBinNotFound)
		}

		next := slices.Clone(current)
		next[idx] = report.Apply(current[idx])
		updated = next[idx]
		return next, nil
	})
	if err != nil {
		return domain.WorkerReport{}, domain.BinRecord{}, fmt.Errorf("report bin: %w", err)
	}

	if err := s.reports.AppendReport(ctx, report); err != nil {
		return domain.WorkerReport{}, domain.BinRecord{}, fmt.Errorf("report bin: append report: %w", err)
	}

	return report, updated, nil
}

func (s *BinService) Reports(ctx context.Context) ([]domain.WorkerReport, error) {
	reports, err := s.reports.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}
