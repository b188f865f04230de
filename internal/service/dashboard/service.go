package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/domain/settlement"
	"github.com/bunkops/bunk-backend-go/internal/pkg/cache"
	"github.com/bunkops/bunk-backend-go/internal/pkg/clock"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/bunkops/bunk-backend-go/internal/pkg/metrics"
	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
)

type DashboardServiceImpl struct {
	duty.DutyRepository
	cache  cache.Cache
	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger
}

func NewDashboardService(dutyRepository duty.DutyRepository, dashboardCache cache.Cache, ttl time.Duration, clk clock.Clock, logger *slog.Logger) settlement.DashboardService {
	return &DashboardServiceImpl{
		DutyRepository: dutyRepository,
		cache:          dashboardCache,
		ttl:            ttl,
		clock:          clk,
		logger:         logger,
	}
}

// GetDashboard implements settlement.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, date string) (settlement.DashboardResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return settlement.DashboardResponse{}, err
	}

	if date == "" {
		date = s.clock.Today()
	} else if _, ok := validator.IsValidDate(date); !ok {
		var errs validator.ValidationErrors
		return settlement.DashboardResponse{}, errs.Add("date", validator.CodeInvalid, "must be in YYYY-MM-DD format")
	}

	key := settlement.DashboardCacheKey(claims.StationID, date)

	var cached settlement.DashboardResponse
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("dashboard cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if hit {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	from, err := settlement.WindowStart(date)
	if err != nil {
		return settlement.DashboardResponse{}, err
	}

	// One read covers both the day and the trend window.
	closed := duty.StatusClosed
	duties, err := s.DutyRepository.List(ctx, claims.StationID, duty.Filter{
		DateFrom: &from,
		DateTo:   &date,
		Status:   &closed,
	})
	if err != nil {
		return settlement.DashboardResponse{}, fmt.Errorf("failed to load duties for dashboard: %w", err)
	}

	trend, err := settlement.WeeklyTrend(duties, date)
	if err != nil {
		return settlement.DashboardResponse{}, err
	}
	resp := settlement.NewDashboardResponse(settlement.BuildDailyStats(duties, date), trend)

	// A close that lands between the read above and this write is only
	// invalidated when the entry expires, so the TTL is the staleness bound.
	if err := s.cache.Set(ctx, key, resp, s.ttl); err != nil {
		s.logger.Warn("dashboard cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return resp, nil
}
