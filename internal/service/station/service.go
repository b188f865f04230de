package station

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bunkops/bunk-backend-go/internal/domain/station"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
)

type StationServiceImpl struct {
	station.StationRepository
	logger *slog.Logger
}

func NewStationService(stationRepository station.StationRepository, logger *slog.Logger) station.StationService {
	return &StationServiceImpl{
		StationRepository: stationRepository,
		logger:            logger,
	}
}

// GetMyStation implements station.StationService.
func (s *StationServiceImpl) GetMyStation(ctx context.Context) (station.StationResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return station.StationResponse{}, err
	}

	st, err := s.StationRepository.GetByID(ctx, claims.StationID)
	if err != nil {
		return station.StationResponse{}, err
	}
	return station.NewStationResponse(st), nil
}

// UpdatePrices implements station.StationService. Open duties keep the prices
// they were opened with.
func (s *StationServiceImpl) UpdatePrices(ctx context.Context, req station.UpdatePricesRequest) (station.StationResponse, error) {
	if err := req.Validate(); err != nil {
		return station.StationResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return station.StationResponse{}, err
	}

	st, err := s.StationRepository.UpdatePrices(ctx, claims.StationID, station.Prices{Petrol: req.Petrol, Diesel: req.Diesel})
	if err != nil {
		return station.StationResponse{}, fmt.Errorf("failed to update prices: %w", err)
	}

	s.logger.Info("fuel prices updated",
		slog.String("station_id", st.ID),
		slog.String("petrol", st.Prices.Petrol.String()),
		slog.String("diesel", st.Prices.Diesel.String()),
	)
	return station.NewStationResponse(st), nil
}
