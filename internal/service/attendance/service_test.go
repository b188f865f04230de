package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/clock"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/bunkops/bunk-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (attendance.AttendanceService, context.Context) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	workers := memory.WorkerRepository{Store: store}
	helpers := memory.HelperRepository{Store: store}

	_, err := workers.Create(ctx, worker.Worker{ID: "w1", StationID: "s1", Name: "Ravi", Email: "ravi@bunk.test", Role: worker.RoleWorker, Active: true})
	require.NoError(t, err)
	_, err = workers.Create(ctx, worker.Worker{ID: "w9", StationID: "s2", Name: "Other", Email: "other@bunk.test", Role: worker.RoleWorker, Active: true})
	require.NoError(t, err)
	_, err = helpers.Create(ctx, worker.Helper{ID: "h1", StationID: "s1", Name: "Mani"})
	require.NoError(t, err)

	clk := clock.Fixed(time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC), time.UTC)
	svc := NewAttendanceService(store, memory.AttendanceRepository{Store: store}, workers, helpers, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return svc, jwt.ContextWithClaims(ctx, jwt.Claims{UserID: "a1", StationID: "s1", Role: "admin"})
}

func TestAttendanceService_MarkAutoPresentFirstLoginWins(t *testing.T) {
	svc, ctx := newService(t)

	first := time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)
	require.NoError(t, svc.MarkAutoPresent(ctx, "s1", "w1", first))
	require.NoError(t, svc.MarkAutoPresent(ctx, "s1", "w1", first.Add(5*time.Hour)))

	records, err := svc.List(ctx, attendance.ListFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.SourceAuto, records[0].Source)
	assert.True(t, first.Equal(*records[0].LoginAt))
}

func TestAttendanceService_SaveManualSheetReplacesDay(t *testing.T) {
	svc, ctx := newService(t)
	require.NoError(t, svc.MarkAutoPresent(ctx, "s1", "w1", time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)))

	saved, err := svc.SaveManualSheet(ctx, attendance.SaveSheetRequest{
		Date: "2025-03-10",
		Records: []attendance.SheetEntry{
			{WorkerType: "worker", WorkerID: "w1", Present: false},
			{WorkerType: "helper", WorkerID: "h1", Present: false},
			{WorkerType: "helper", WorkerID: "h1", Present: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, r := range saved {
		assert.Equal(t, attendance.SourceManual, r.Source)
		assert.Equal(t, r.WorkerType == attendance.WorkerTypeHelper, r.Present)
	}

	// An empty sheet clears the day.
	saved, err = svc.SaveManualSheet(ctx, attendance.SaveSheetRequest{Date: "2025-03-10"})
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestAttendanceService_SaveManualSheetUnknownPerson(t *testing.T) {
	svc, ctx := newService(t)
	require.NoError(t, svc.MarkAutoPresent(ctx, "s1", "w1", time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)))

	_, err := svc.SaveManualSheet(ctx, attendance.SaveSheetRequest{
		Date:    "2025-03-10",
		Records: []attendance.SheetEntry{{WorkerType: "worker", WorkerID: "w9", Present: true}},
	})
	assert.ErrorIs(t, err, attendance.ErrUnknownPerson)

	records, err := svc.List(ctx, attendance.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAttendanceService_ListByMonth(t *testing.T) {
	svc, ctx := newService(t)
	require.NoError(t, svc.MarkAutoPresent(ctx, "s1", "w1", time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC)))
	require.NoError(t, svc.MarkAutoPresent(ctx, "s1", "w1", time.Date(2025, 3, 2, 3, 0, 0, 0, time.UTC)))
	require.NoError(t, svc.MarkAutoPresent(ctx, "s1", "w1", time.Date(2025, 4, 1, 3, 0, 0, 0, time.UTC)))

	month := "2025-03"
	records, err := svc.List(ctx, attendance.ListFilter{Month: &month})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
