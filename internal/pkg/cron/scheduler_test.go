package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler(nil)
	var runs atomic.Int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_RunOnceContinuesAfterFailure(t *testing.T) {
	s := NewScheduler(nil)
	var second bool
	s.AddJob("fails", time.Minute, func(ctx context.Context) error { return errors.New("boom") })
	s.AddJob("ok", time.Minute, func(ctx context.Context) error { second = true; return nil })

	s.RunOnce(context.Background())
	assert.True(t, second)
}

type staleRepo struct {
	duty.DutyRepository
	cutoff time.Time
	duties []duty.Duty
}

func (r *staleRepo) ListStaleOpened(ctx context.Context, openedBefore time.Time) ([]duty.Duty, error) {
	r.cutoff = openedBefore
	return r.duties, nil
}

func TestReportStaleOpenDuties(t *testing.T) {
	now := time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)
	repo := &staleRepo{duties: []duty.Duty{
		{ID: "d1", StationID: "s1", WorkerID: "w1", Date: "2025-03-10", OpenedAt: now.Add(-20 * time.Hour)},
		{ID: "d2", StationID: "s2", WorkerID: "w2", Date: "2025-03-10", OpenedAt: now.Add(-30 * time.Hour)},
	}}

	jobs := NewDutyJobs(repo, 18*time.Hour, time.Hour, nil)
	jobs.now = func() time.Time { return now }

	require.NoError(t, jobs.ReportStaleOpenDuties(context.Background()))
	assert.Equal(t, now.Add(-18*time.Hour), repo.cutoff)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.StaleOpenDuties))
}
