package dailysales

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/auth"
	"github.com/bunkops/bunk-backend-go/internal/domain/dailysales"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/clock"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/bunkops/bunk-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimsCtx(id, role string, position *string) context.Context {
	return jwt.ContextWithClaims(context.Background(), jwt.Claims{UserID: id, StationID: "s1", Name: "User " + id, Role: role, Position: position})
}

func TestDailySalesService(t *testing.T) {
	clk := clock.Fixed(time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC), time.UTC)
	store := memory.NewStore()
	workers := memory.WorkerRepository{Store: store}
	for _, id := range []string{"m1", "m2", "m3"} {
		position := worker.PositionManager
		_, err := workers.Create(context.Background(), worker.Worker{
			ID: id, StationID: "s1", Name: "User " + id, Email: id + "@example.com",
			Role: worker.RoleWorker, Position: &position, Active: true,
		})
		require.NoError(t, err)
	}
	require.NoError(t, workers.SetActive(context.Background(), "m3", "s1", false))
	svc := NewDailySalesService(memory.DailySalesRepository{Store: store}, workers, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))

	manager, cashier := "manager", "cashier"
	m1 := claimsCtx("m1", "worker", &manager)
	m2 := claimsCtx("m2", "worker", &manager)

	created, err := svc.Create(m1, dailysales.CreateDailySalesRequest{Items: []dailysales.ItemRequest{
		{Name: "2T oil", Quantity: decimal.NewFromInt(3), Price: decimal.RequireFromString("120.50")},
		{Name: "Coolant", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(250)},
	}})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", created.Date)
	assert.Equal(t, "User m1", created.ManagerName)
	assert.True(t, decimal.RequireFromString("611.5").Equal(created.Total))

	_, err = svc.Create(m2, dailysales.CreateDailySalesRequest{Items: []dailysales.ItemRequest{
		{Name: "Air freshener", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(80)},
	}})
	require.NoError(t, err)

	_, err = svc.Create(claimsCtx("c1", "worker", &cashier), dailysales.CreateDailySalesRequest{})
	assert.ErrorIs(t, err, dailysales.ErrManagerOnly)

	// A deactivated manager still holding a valid token.
	_, err = svc.Create(claimsCtx("m3", "worker", &manager), dailysales.CreateDailySalesRequest{Items: []dailysales.ItemRequest{
		{Name: "Coolant", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(250)},
	}})
	assert.ErrorIs(t, err, auth.ErrAccountDisabled)

	own, err := svc.List(m1, dailysales.ListFilter{})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, created.ID, own[0].ID)

	all, err := svc.List(claimsCtx("a1", "admin", nil), dailysales.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	month := "2025-02"
	none, err := svc.List(claimsCtx("a1", "admin", nil), dailysales.ListFilter{Month: &month})
	require.NoError(t, err)
	assert.Empty(t, none)
}
