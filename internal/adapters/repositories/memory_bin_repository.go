package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"waste-route-service/internal/domain"
)

// In-memory implementation of the BinRepository port.
// The collection is swapped as a whole and every read returns a copy, so
// callers always work on an immutable snapshot.
type MemoryBinRepository struct {
	mu   sync.RWMutex
	bins []domain.BinRecord
}

func NewMemoryBinRepository(initial []domain.BinRecord) *MemoryBinRepository {
	return &MemoryBinRepository{bins: cloneBins(initial)}
}

// Return the current collection in stored order.
func (r *MemoryBinRepository) ListBins(ctx context.Context) ([]domain.BinRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list bins: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneBins(r.bins), nil
}

func (r *MemoryBinRepository) ReplaceBins(ctx context.Context, bins []domain.BinRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("replace bins: %w", err)
	}

	next := cloneBins(bins)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bins = next
	return nil
}

// Derive and store a new collection while holding the write lock.
func (r *MemoryBinRepository) UpdateBins(
	ctx context.Context,
	fn func(current []domain.BinRecord) ([]domain.BinRecord, error),
) ([]domain.BinRecord, error) {
	if fn == nil {
		return nil, errors.New("update bins: fn must be non-nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("update bins: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := fn(cloneBins(r.bins))
	if err != nil {
		return nil, err
	}

	r.bins = cloneBins(next)
	return cloneBins(r.bins), nil
}

// cloneBins never returns nil so an empty collection encodes as [].
func cloneBins(bins []domain.BinRecord) []domain.BinRecord {
	out := make([]domain.BinRecord, len(bins))
	copy(out, bins)
	return out
}
