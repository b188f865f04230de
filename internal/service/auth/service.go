package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/domain/auth"
	"github.com/bunkops/bunk-backend-go/internal/domain/station"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/clock"
	"github.com/bunkops/bunk-backend-go/internal/pkg/database"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/bunkops/bunk-backend-go/internal/pkg/metrics"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	tx database.Transactor
	station.StationRepository
	worker.WorkerRepository
	jwt.Service
	attendanceService attendance.AttendanceService
	clock             clock.Clock
	logger            *slog.Logger
}

func NewAuthService(
	tx database.Transactor,
	stationRepository station.StationRepository,
	workerRepository worker.WorkerRepository,
	jwtService jwt.Service,
	attendanceService attendance.AttendanceService,
	clk clock.Clock,
	logger *slog.Logger,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:                tx,
		StationRepository: stationRepository,
		WorkerRepository:  workerRepository,
		Service:           jwtService,
		attendanceService: attendanceService,
		clock:             clk,
		logger:            logger,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// RegisterStation implements auth.AuthService. The station and its admin are
// created together or not at all.
func (a *AuthServiceImpl) RegisterStation(ctx context.Context, req auth.RegisterStationRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if _, err := a.WorkerRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, auth.ErrEmailExists
	} else if !errors.Is(err, worker.ErrWorkerNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	stationID, err := newID()
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate station id: %w", err)
	}
	adminID, err := newID()
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate admin id: %w", err)
	}

	var (
		st    station.Station
		admin worker.Worker
	)
	err = a.tx.InTx(ctx, func(txCtx context.Context) error {
		var err error
		st, err = a.StationRepository.Create(txCtx, station.Station{
			ID:      stationID,
			Name:    req.StationName,
			Brand:   req.Brand,
			Address: req.Address,
			Theme:   station.ThemeForBrand(req.Brand, req.CustomColor),
			Prices:  station.Prices{Petrol: station.DefaultPetrolPrice, Diesel: station.DefaultDieselPrice},
		})
		if err != nil {
			return fmt.Errorf("failed to create station: %w", err)
		}

		admin, err = a.WorkerRepository.Create(txCtx, worker.Worker{
			ID:           adminID,
			StationID:    st.ID,
			Name:         req.AdminName,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         worker.RoleAdmin,
			Active:       true,
		})
		if err != nil {
			return fmt.Errorf("failed to create station admin: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	a.logger.Info("station registered", slog.String("station_id", st.ID), slog.String("brand", st.Brand))
	return a.issueToken(admin, st)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	w, err := a.WorkerRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			metrics.Logins.WithLabelValues("invalid").Inc()
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get worker by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(w.PasswordHash), []byte(req.Password)); err != nil {
		metrics.Logins.WithLabelValues("invalid").Inc()
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !w.Active {
		metrics.Logins.WithLabelValues("disabled").Inc()
		return auth.TokenResponse{}, auth.ErrAccountDisabled
	}

	st, err := a.StationRepository.GetByID(ctx, w.StationID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get station: %w", err)
	}

	// Attendance is a side effect of logging in; a failure here must not lock
	// the worker out.
	if w.Role == worker.RoleWorker {
		if err := a.attendanceService.MarkAutoPresent(ctx, w.StationID, w.ID, a.clock.Now()); err != nil {
			a.logger.Error("failed to mark attendance on login",
				slog.String("worker_id", w.ID),
				slog.Any("error", err),
			)
		}
	}

	metrics.Logins.WithLabelValues("success").Inc()
	return a.issueToken(w, st)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, err
	}

	w, err := a.WorkerRepository.GetByID(ctx, claims.UserID, claims.StationID)
	if err != nil {
		return auth.MeResponse{}, err
	}
	st, err := a.StationRepository.GetByID(ctx, claims.StationID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.MeResponse{
		User:    worker.NewWorkerResponse(w),
		Station: station.NewStationResponse(st),
	}, nil
}

func (a *AuthServiceImpl) issueToken(w worker.Worker, st station.Station) (auth.TokenResponse, error) {
	var position *string
	if w.Position != nil {
		p := string(*w.Position)
		position = &p
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(jwt.Claims{
		UserID:    w.ID,
		StationID: w.StationID,
		Name:      w.Name,
		Role:      string(w.Role),
		Position:  position,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		Me: auth.MeResponse{
			User:    worker.NewWorkerResponse(w),
			Station: station.NewStationResponse(st),
		},
	}, nil
}
