package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/pkg/metrics"
)

// DutyJobs watches for shifts that were opened and never settled.
type DutyJobs struct {
	dutyRepo   duty.DutyRepository
	staleAfter time.Duration
	interval   time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

func NewDutyJobs(dutyRepo duty.DutyRepository, staleAfter, interval time.Duration, logger *slog.Logger) *DutyJobs {
	if logger == nil {
		logger = slog.Default()
	}
	return &DutyJobs{
		dutyRepo:   dutyRepo,
		staleAfter: staleAfter,
		interval:   interval,
		now:        time.Now,
		logger:     logger,
	}
}

func (j *DutyJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("report_stale_open_duties", j.interval, j.ReportStaleOpenDuties)
}

// ReportStaleOpenDuties logs every duty opened more than staleAfter ago and
// still unsettled, and publishes the count as a gauge. Duties are never closed
// automatically: closing needs the worker's payment figures.
func (j *DutyJobs) ReportStaleOpenDuties(ctx context.Context) error {
	cutoff := j.now().Add(-j.staleAfter)

	stale, err := j.dutyRepo.ListStaleOpened(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale duties: %w", err)
	}

	metrics.StaleOpenDuties.Set(float64(len(stale)))

	for _, d := range stale {
		j.logger.Warn("Duty left open",
			"duty_id", d.ID,
			"station_id", d.StationID,
			"worker_id", d.WorkerID,
			"date", d.Date,
			"open_for", j.now().Sub(d.OpenedAt).Round(time.Minute).String(),
		)
	}
	if len(stale) > 0 {
		j.logger.Info("Cron: stale open duties found", "count", len(stale))
	}
	return nil
}
