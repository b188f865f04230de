package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/domain/auth"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/clock"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/bunkops/bunk-backend-go/internal/repository/memory"
	attendanceservice "github.com/bunkops/bunk-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type authFixture struct {
	svc        auth.AuthService
	workers    memory.WorkerRepository
	attendance memory.AttendanceRepository
	jwt        jwt.Service
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.Fixed(time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC), time.UTC)

	f := authFixture{
		workers:    memory.WorkerRepository{Store: store},
		attendance: memory.AttendanceRepository{Store: store},
		jwt:        jwt.NewJWTService(testSecret, time.Hour),
	}
	attendanceSvc := attendanceservice.NewAttendanceService(store, f.attendance, f.workers, memory.HelperRepository{Store: store}, clk, logger)
	f.svc = NewAuthService(store, memory.StationRepository{Store: store}, f.workers, f.jwt, attendanceSvc, clk, logger)
	return f
}

func registerRequest(email string) auth.RegisterStationRequest {
	return auth.RegisterStationRequest{
		StationName:     "Highway Fuels",
		Brand:           "Indian Oil",
		Address:         "NH 44",
		AdminName:       "Owner",
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestAuthService_RegisterStation(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.svc.RegisterStation(context.Background(), registerRequest("Owner@Bunk.test"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, worker.RoleAdmin, resp.Me.User.Role)
	assert.Equal(t, "owner@bunk.test", resp.Me.User.Email)
	assert.Equal(t, "#003c7e", resp.Me.Station.Theme.PrimaryColor)
	assert.Equal(t, "106.5", resp.Me.Station.Prices.Petrol.String())

	token, err := f.jwt.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	c, ok := jwt.ClaimsFromMap(claims)
	require.True(t, ok)
	assert.Equal(t, resp.Me.Station.ID, c.StationID)

	_, err = f.svc.RegisterStation(context.Background(), registerRequest("owner@bunk.test"))
	assert.ErrorIs(t, err, auth.ErrEmailExists)

	bad := registerRequest("x@bunk.test")
	bad.ConfirmPassword = "different"
	_, err = f.svc.RegisterStation(context.Background(), bad)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func seedWorker(t *testing.T, f authFixture, stationID string, active bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	cashier := worker.PositionCashier
	_, err = f.workers.Create(context.Background(), worker.Worker{
		ID: "w1", StationID: stationID, Name: "Ravi", Email: "ravi@bunk.test",
		PasswordHash: string(hash), Role: worker.RoleWorker, Position: &cashier, Active: active,
	})
	require.NoError(t, err)
}

func TestAuthService_LoginMarksAttendance(t *testing.T) {
	f := newAuthFixture(t)
	reg, err := f.svc.RegisterStation(context.Background(), registerRequest("owner@bunk.test"))
	require.NoError(t, err)
	seedWorker(t, f, reg.Me.Station.ID, true)

	resp, err := f.svc.Login(context.Background(), auth.LoginRequest{Email: " RAVI@bunk.test ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "w1", resp.Me.User.ID)

	records, err := f.attendance.ListByDate(context.Background(), reg.Me.Station.ID, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.SourceAuto, records[0].Source)

	// Admin logins do not create attendance.
	_, err = f.svc.Login(context.Background(), auth.LoginRequest{Email: "owner@bunk.test", Password: "password123"})
	require.NoError(t, err)
	records, err = f.attendance.ListByDate(context.Background(), reg.Me.Station.ID, "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAuthService_LoginFailures(t *testing.T) {
	f := newAuthFixture(t)
	reg, err := f.svc.RegisterStation(context.Background(), registerRequest("owner@bunk.test"))
	require.NoError(t, err)
	seedWorker(t, f, reg.Me.Station.ID, false)

	_, err = f.svc.Login(context.Background(), auth.LoginRequest{Email: "nobody@bunk.test", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = f.svc.Login(context.Background(), auth.LoginRequest{Email: "owner@bunk.test", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = f.svc.Login(context.Background(), auth.LoginRequest{Email: "ravi@bunk.test", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrAccountDisabled)
}

func TestAuthService_Me(t *testing.T) {
	f := newAuthFixture(t)
	reg, err := f.svc.RegisterStation(context.Background(), registerRequest("owner@bunk.test"))
	require.NoError(t, err)

	ctx := jwt.ContextWithClaims(context.Background(), jwt.Claims{
		UserID: reg.Me.User.ID, StationID: reg.Me.Station.ID, Role: "admin",
	})
	me, err := f.svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Highway Fuels", me.Station.Name)

	_, err = f.svc.Me(context.Background())
	assert.Error(t, err)
}
