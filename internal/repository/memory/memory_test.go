package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDutyRepository_CloseOnlyOnce(t *testing.T) {
	ctx := context.Background()
	repo := DutyRepository{NewStore()}
	_, err := repo.Create(ctx, duty.Duty{ID: "d1", StationID: "s1", Status: duty.StatusOpened})
	require.NoError(t, err)

	closed := duty.Duty{ID: "d1", StationID: "s1", Status: duty.StatusClosed}
	require.NoError(t, repo.Close(ctx, closed))
	assert.ErrorIs(t, repo.Close(ctx, closed), duty.ErrDutyNotOpen)
}

func TestStore_InTxRestoresAttendance(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := AttendanceRepository{store}
	rec := attendance.Record{StationID: "s1", Date: "2025-03-10", WorkerType: attendance.WorkerTypeWorker, WorkerID: "w1", Present: true}
	_, err := repo.InsertIfAbsent(ctx, rec)
	require.NoError(t, err)

	err = store.InTx(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.DeleteDay(ctx, "s1", "2025-03-10"))
		return errors.New("insert failed")
	})
	require.Error(t, err)

	records, err := repo.ListByDate(ctx, "s1", "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
