package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/domain/dailysales"
	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/domain/station"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	setup   *TestDatabaseSetup
	station station.Station
	worker  worker.Worker
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	setup := NewTestDatabase(t)
	ctx := context.Background()

	st, err := postgresql.NewStationRepository(setup.DB).Create(ctx, station.Station{
		ID:     uuid.NewString(),
		Name:   "Test Fuels",
		Brand:  "HP",
		Theme:  station.ThemeForBrand("HP", nil),
		Prices: station.Prices{Petrol: decimal.RequireFromString("100"), Diesel: decimal.RequireFromString("90")},
	})
	require.NoError(t, err)

	position := worker.PositionManager
	w, err := postgresql.NewWorkerRepository(setup.DB).Create(ctx, worker.Worker{
		ID:           uuid.NewString(),
		StationID:    st.ID,
		Name:         "Ravi",
		Email:        "ravi@example.com",
		PasswordHash: "x",
		Role:         worker.RoleWorker,
		Position:     &position,
		Active:       true,
	})
	require.NoError(t, err)

	return fixture{setup: setup, station: st, worker: w}
}

func TestStationRepository_UpdatePrices(t *testing.T) {
	f := newFixture(t)
	repo := postgresql.NewStationRepository(f.setup.DB)

	updated, err := repo.UpdatePrices(context.Background(), f.station.ID, station.Prices{
		Petrol: decimal.RequireFromString("101.25"),
		Diesel: decimal.RequireFromString("92"),
	})
	require.NoError(t, err)
	assert.True(t, updated.Prices.Petrol.Equal(decimal.RequireFromString("101.25")))

	_, err = repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, station.ErrStationNotFound)
}

func TestWorkerRepository_DuplicateEmailAndScope(t *testing.T) {
	f := newFixture(t)
	repo := postgresql.NewWorkerRepository(f.setup.DB)
	ctx := context.Background()

	dup := f.worker
	dup.ID = uuid.NewString()
	_, err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, worker.ErrEmailExists)

	_, err = repo.GetByID(ctx, f.worker.ID, uuid.NewString())
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	require.NoError(t, repo.SetActive(ctx, f.worker.ID, f.station.ID, false))
	got, err := repo.GetByID(ctx, f.worker.ID, f.station.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestDutyRepository_CloseOnlyOnce(t *testing.T) {
	f := newFixture(t)
	repo := postgresql.NewDutyRepository(f.setup.DB)
	ctx := context.Background()
	openedAt := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)

	d, err := repo.Create(ctx, duty.Duty{
		ID:         uuid.NewString(),
		StationID:  f.station.ID,
		WorkerID:   f.worker.ID,
		WorkerName: f.worker.Name,
		Date:       "2026-03-01",
		Status:     duty.StatusOpened,
		Prices:     duty.PriceSnapshot{Petrol: f.station.Prices.Petrol, Diesel: f.station.Prices.Diesel},
		Pumps: []duty.PumpReading{{
			PumpNumber: "1",
			FuelType:   duty.FuelPetrol,
			Opening:    decimal.RequireFromString("1000"),
		}},
		OpenedAt: openedAt,
	})
	require.NoError(t, err)
	require.Len(t, d.Pumps, 1)
	assert.Equal(t, "2026-03-01", d.Date)

	submitted := openedAt.Add(8 * time.Hour)
	d.Status = duty.StatusClosed
	d.TotalSales = decimal.RequireFromString("14500")
	d.TotalReceived = decimal.RequireFromString("14400")
	d.Difference = decimal.RequireFromString("-100")
	d.SubmittedAt = &submitted

	require.NoError(t, repo.Close(ctx, d))
	assert.ErrorIs(t, repo.Close(ctx, d), duty.ErrDutyNotOpen)

	closed := duty.StatusClosed
	duties, err := repo.List(ctx, f.station.ID, duty.Filter{Status: &closed})
	require.NoError(t, err)
	require.Len(t, duties, 1)
	assert.True(t, duties[0].Difference.Equal(decimal.RequireFromString("-100")))

	n, err := repo.CountForWorkerOnDate(ctx, f.station.ID, f.worker.ID, "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stale, err := repo.ListStaleOpened(ctx, submitted.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestAttendanceRepository_ReplaceDayInTransaction(t *testing.T) {
	f := newFixture(t)
	repo := postgresql.NewAttendanceRepository(f.setup.DB)
	tx := postgresql.NewTransactor(f.setup.DB)
	ctx := context.Background()
	now := time.Now().UTC()

	rec := attendance.Record{
		StationID:  f.station.ID,
		Date:       "2026-03-01",
		WorkerType: attendance.WorkerTypeWorker,
		WorkerID:   f.worker.ID,
		Present:    true,
		Source:     attendance.SourceAuto,
		LoginAt:    &now,
		UpdatedAt:  now,
	}
	written, err := repo.InsertIfAbsent(ctx, rec)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = repo.InsertIfAbsent(ctx, rec)
	require.NoError(t, err)
	assert.False(t, written)

	// A failing transaction leaves the auto record in place.
	boom := errors.New("boom")
	err = tx.InTx(ctx, func(ctx context.Context) error {
		if err := repo.DeleteDay(ctx, f.station.ID, "2026-03-01"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	records, err := repo.ListByDate(ctx, f.station.ID, "2026-03-01")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Name)
	assert.Equal(t, "Ravi", *records[0].Name)

	manual := rec
	manual.Present = false
	manual.Source = attendance.SourceManual
	manual.LoginAt = nil
	err = tx.InTx(ctx, func(ctx context.Context) error {
		if err := repo.DeleteDay(ctx, f.station.ID, "2026-03-01"); err != nil {
			return err
		}
		return repo.Insert(ctx, []attendance.Record{manual})
	})
	require.NoError(t, err)

	records, err = repo.ListByMonth(ctx, f.station.ID, "2026-03")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.SourceManual, records[0].Source)
	assert.False(t, records[0].Present)
}

func TestDailySalesRepository_ListByManager(t *testing.T) {
	f := newFixture(t)
	repo := postgresql.NewDailySalesRepository(f.setup.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, dailysales.DailySales{
		ID:        uuid.NewString(),
		StationID: f.station.ID,
		ManagerID: f.worker.ID,
		Date:      "2026-03-01",
		Items: []dailysales.Item{{
			Name:     "Engine oil",
			Quantity: decimal.RequireFromString("2"),
			Price:    decimal.RequireFromString("350"),
			Total:    decimal.RequireFromString("700"),
		}},
		Total: decimal.RequireFromString("700"),
	})
	require.NoError(t, err)

	month := "2026-03"
	sales, err := repo.List(ctx, f.station.ID, &f.worker.ID, dailysales.ListFilter{Month: &month})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Ravi", sales[0].ManagerName)
	require.Len(t, sales[0].Items, 1)

	other := uuid.NewString()
	sales, err = repo.List(ctx, f.station.ID, &other, dailysales.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, sales)
}
