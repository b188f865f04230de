package duty

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/domain/settlement"
	"github.com/bunkops/bunk-backend-go/internal/domain/station"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/cache"
	"github.com/bunkops/bunk-backend-go/internal/pkg/clock"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/bunkops/bunk-backend-go/internal/pkg/metrics"
	"github.com/google/uuid"
)

type DutyServiceImpl struct {
	duty.DutyRepository
	stationRepository station.StationRepository
	workerRepository  worker.WorkerRepository
	cache             cache.Cache
	clock             clock.Clock
	logger            *slog.Logger
}

func NewDutyService(
	dutyRepository duty.DutyRepository,
	stationRepository station.StationRepository,
	workerRepository worker.WorkerRepository,
	dashboardCache cache.Cache,
	clk clock.Clock,
	logger *slog.Logger,
) duty.DutyService {
	return &DutyServiceImpl{
		DutyRepository:    dutyRepository,
		stationRepository: stationRepository,
		workerRepository:  workerRepository,
		cache:             dashboardCache,
		clock:             clk,
		logger:            logger,
	}
}

// OpenDuty implements duty.DutyService. The station's current prices are
// copied into the duty so later price changes do not touch it.
func (s *DutyServiceImpl) OpenDuty(ctx context.Context, req duty.OpenDutyRequest) (duty.DutyResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return duty.DutyResponse{}, err
	}
	if claims.Role != string(worker.RoleWorker) {
		return duty.DutyResponse{}, duty.ErrWorkerOnly
	}

	w, err := s.workerRepository.GetByID(ctx, claims.UserID, claims.StationID)
	if err != nil {
		return duty.DutyResponse{}, err
	}
	if !w.Active {
		return duty.DutyResponse{}, worker.ErrWorkerNotFound
	}

	st, err := s.stationRepository.GetByID(ctx, claims.StationID)
	if err != nil {
		return duty.DutyResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return duty.DutyResponse{}, fmt.Errorf("failed to generate duty id: %w", err)
	}

	var dutyType *string
	if w.DutyType != nil {
		dt := string(*w.DutyType)
		dutyType = &dt
	}

	now := s.clock.Now()
	d, err := duty.Open(duty.OpenParams{
		ID:         id.String(),
		StationID:  st.ID,
		WorkerID:   w.ID,
		WorkerName: w.Name,
		DutyType:   dutyType,
		Date:       s.clock.Day(now),
		Prices:     duty.PriceSnapshot{Petrol: st.Prices.Petrol, Diesel: st.Prices.Diesel},
		Pumps:      req.Inputs(),
		Now:        now,
	})
	if err != nil {
		return duty.DutyResponse{}, err
	}

	existing, err := s.DutyRepository.CountForWorkerOnDate(ctx, d.StationID, d.WorkerID, d.Date)
	if err != nil {
		return duty.DutyResponse{}, err
	}
	if existing > 0 {
		s.logger.Warn("worker already has a duty on this day",
			slog.String("station_id", d.StationID),
			slog.String("worker_id", d.WorkerID),
			slog.String("date", d.Date),
			slog.Int("existing", existing),
		)
	}

	created, err := s.DutyRepository.Create(ctx, d)
	if err != nil {
		return duty.DutyResponse{}, err
	}

	metrics.DutiesOpened.Inc()
	s.logger.Info("duty opened",
		slog.String("duty_id", created.ID),
		slog.String("worker_id", created.WorkerID),
		slog.String("total_sales", created.TotalSales.StringFixed(2)),
	)
	return duty.NewDutyResponse(created), nil
}

// CloseDuty implements duty.DutyService. Only the worker who opened the duty
// may settle it.
func (s *DutyServiceImpl) CloseDuty(ctx context.Context, req duty.CloseDutyRequest) (duty.DutyResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return duty.DutyResponse{}, err
	}

	d, err := s.DutyRepository.GetByID(ctx, req.DutyID, claims.StationID)
	if err != nil {
		return duty.DutyResponse{}, err
	}
	if d.WorkerID != claims.UserID {
		return duty.DutyResponse{}, duty.ErrDutyNotFound
	}
	// A settled duty is rejected whatever the payload holds.
	if d.IsClosed() {
		return duty.DutyResponse{}, duty.ErrDutyNotOpen
	}

	payments, err := req.Payments()
	if err != nil {
		return duty.DutyResponse{}, err
	}

	closed, err := duty.Close(d, payments, s.clock.Now())
	if err != nil {
		return duty.DutyResponse{}, err
	}

	if err := s.DutyRepository.Close(ctx, closed); err != nil {
		return duty.DutyResponse{}, err
	}

	s.invalidateDashboards(ctx, closed.StationID, closed.Date)

	metrics.DutiesClosed.WithLabelValues(metrics.Outcome(closed.Difference.Sign())).Inc()
	s.logger.Info("duty closed",
		slog.String("duty_id", closed.ID),
		slog.String("worker_id", closed.WorkerID),
		slog.String("difference", closed.Difference.StringFixed(2)),
	)
	return duty.NewDutyResponse(closed), nil
}

// invalidateDashboards drops cached dashboards that include date. The cache is
// best effort, so failures are only logged.
func (s *DutyServiceImpl) invalidateDashboards(ctx context.Context, stationID, date string) {
	keys, err := settlement.AffectedDashboardKeys(stationID, date)
	if err == nil {
		err = s.cache.Delete(ctx, keys...)
	}
	if err != nil {
		s.logger.Warn("failed to invalidate dashboard cache",
			slog.String("station_id", stationID),
			slog.String("date", date),
			slog.Any("error", err),
		)
	}
}

// GetDuty implements duty.DutyService. Workers can only read their own duties.
func (s *DutyServiceImpl) GetDuty(ctx context.Context, id string) (duty.DutyResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return duty.DutyResponse{}, err
	}

	d, err := s.DutyRepository.GetByID(ctx, id, claims.StationID)
	if err != nil {
		return duty.DutyResponse{}, err
	}
	if claims.Role != string(worker.RoleAdmin) && d.WorkerID != claims.UserID {
		return duty.DutyResponse{}, duty.ErrDutyNotFound
	}
	return duty.NewDutyResponse(d), nil
}

// ListMyDuties implements duty.DutyService.
func (s *DutyServiceImpl) ListMyDuties(ctx context.Context, filter duty.ListDutiesFilter) ([]duty.DutyResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	filter.WorkerID = &claims.UserID
	return s.list(ctx, claims.StationID, filter)
}

// ListDuties implements duty.DutyService.
func (s *DutyServiceImpl) ListDuties(ctx context.Context, filter duty.ListDutiesFilter) ([]duty.DutyResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, claims.StationID, filter)
}

func (s *DutyServiceImpl) list(ctx context.Context, stationID string, filter duty.ListDutiesFilter) ([]duty.DutyResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	f := duty.Filter{
		WorkerID: filter.WorkerID,
		Date:     filter.Date,
		Month:    filter.Month,
	}
	if filter.Status != nil {
		status := duty.Status(*filter.Status)
		f.Status = &status
	}

	duties, err := s.DutyRepository.List(ctx, stationID, f)
	if err != nil {
		return nil, err
	}
	return duty.NewDutyResponses(duties), nil
}
