package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/services"

	"github.com/robfig/cron/v3"
)

// Regenerator re-randomises the stored bin levels.
type Regenerator interface {
	Regenerate(ctx context.Context) ([]domain.BinRecord, error)
}

// RefreshJob periodically simulates a sensor sweep by regenerating fill levels.
type RefreshJob struct {
	cron     *cron.Cron
	schedule string
	regen    Regenerator
	timeout  time.Duration
	jobID    cron.EntryID
}

// NewRefreshJob accepts standard 5-field cron specs and descriptors such as
// "@every 30s" or "@hourly".
func NewRefreshJob(schedule string, regen Regenerator) *RefreshJob {
	return &RefreshJob{
		cron:     cron.New(),
		schedule: schedule,
		regen:    regen,
		timeout:  10 * time.Second,
	}
}

func (j *RefreshJob) Start() error {
	var err error
	j.jobID, err = j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return fmt.Errorf("refresh job: schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	log.Printf("refresh job started schedule=%q", j.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (j *RefreshJob) Stop() {
	<-j.cron.Stop().Done()
	log.Printf("refresh job stopped")
}

func (j *RefreshJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	bins, err := j.regen.Regenerate(ctx)
	if err != nil {
		log.Printf("refresh job: regenerate failed: %v", err)
		return
	}

	full := 0
	for _, b := range bins {
		if b.Level >= services.CollectionThreshold {
			full++
		}
	}
	log.Printf("refresh job: regenerated bins=%d above_threshold=%d", len(bins), full)
}
