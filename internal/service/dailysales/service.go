package dailysales

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bunkops/bunk-backend-go/internal/domain/auth"
	"github.com/bunkops/bunk-backend-go/internal/domain/dailysales"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/clock"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
)

type DailySalesServiceImpl struct {
	dailysales.DailySalesRepository
	workerRepo worker.WorkerRepository
	clock      clock.Clock
	logger     *slog.Logger
}

func NewDailySalesService(repo dailysales.DailySalesRepository, workerRepo worker.WorkerRepository, clk clock.Clock, logger *slog.Logger) dailysales.DailySalesService {
	return &DailySalesServiceImpl{
		DailySalesRepository: repo,
		workerRepo:           workerRepo,
		clock:                clk,
		logger:               logger,
	}
}

func isManager(c jwt.Claims) bool {
	return worker.IsManagerClaim(c.Role, c.Position)
}

// Create implements dailysales.DailySalesService.
func (s *DailySalesServiceImpl) Create(ctx context.Context, req dailysales.CreateDailySalesRequest) (dailysales.DailySalesResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return dailysales.DailySalesResponse{}, err
	}
	if !isManager(claims) {
		return dailysales.DailySalesResponse{}, dailysales.ErrManagerOnly
	}

	// The token may outlive a deactivation.
	manager, err := s.workerRepo.GetByID(ctx, claims.UserID, claims.StationID)
	if err != nil {
		return dailysales.DailySalesResponse{}, err
	}
	if !manager.Active {
		return dailysales.DailySalesResponse{}, auth.ErrAccountDisabled
	}

	if err := req.Validate(); err != nil {
		return dailysales.DailySalesResponse{}, err
	}

	date := s.clock.Today()
	if req.Date != nil {
		date = *req.Date
	}

	id, err := uuid.NewV7()
	if err != nil {
		return dailysales.DailySalesResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	items, total := dailysales.PriceItems(req.Items)
	created, err := s.DailySalesRepository.Create(ctx, dailysales.DailySales{
		ID:          id.String(),
		StationID:   claims.StationID,
		ManagerID:   claims.UserID,
		ManagerName: manager.Name,
		Date:        date,
		Items:       items,
		Total:       total,
	})
	if err != nil {
		return dailysales.DailySalesResponse{}, err
	}

	s.logger.Info("daily sales recorded",
		slog.String("station_id", created.StationID),
		slog.String("manager_id", created.ManagerID),
		slog.String("date", created.Date),
	)
	return dailysales.NewDailySalesResponse(created), nil
}

// List implements dailysales.DailySalesService.
func (s *DailySalesServiceImpl) List(ctx context.Context, filter dailysales.ListFilter) ([]dailysales.DailySalesResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var managerID *string
	switch {
	case claims.Role == string(worker.RoleAdmin):
	case isManager(claims):
		managerID = &claims.UserID
	default:
		return nil, dailysales.ErrManagerOnly
	}

	sales, err := s.DailySalesRepository.List(ctx, claims.StationID, managerID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dailysales.DailySalesResponse, len(sales))
	for i, sale := range sales {
		out[i] = dailysales.NewDailySalesResponse(sale)
	}
	return out, nil
}
