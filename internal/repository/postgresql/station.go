package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bunkops/bunk-backend-go/internal/domain/station"
	"github.com/bunkops/bunk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type stationRepositoryImpl struct {
	db *database.DB
}

func NewStationRepository(db *database.DB) station.StationRepository {
	return &stationRepositoryImpl{db: db}
}

const stationColumns = `id, name, brand, address, primary_color, secondary_color,
	petrol_price, diesel_price, created_at, updated_at`

func scanStation(row pgx.Row) (station.Station, error) {
	var s station.Station
	err := row.Scan(
		&s.ID, &s.Name, &s.Brand, &s.Address, &s.Theme.PrimaryColor, &s.Theme.SecondaryColor,
		&s.Prices.Petrol, &s.Prices.Diesel, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements station.StationRepository.
func (r *stationRepositoryImpl) Create(ctx context.Context, s station.Station) (station.Station, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stations (id, name, brand, address, primary_color, secondary_color, petrol_price, diesel_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + stationColumns

	created, err := scanStation(q.QueryRow(ctx, query,
		s.ID, s.Name, s.Brand, s.Address, s.Theme.PrimaryColor, s.Theme.SecondaryColor,
		s.Prices.Petrol, s.Prices.Diesel,
	))
	if err != nil {
		return station.Station{}, fmt.Errorf("failed to create station: %w", err)
	}
	return created, nil
}

// GetByID implements station.StationRepository.
func (r *stationRepositoryImpl) GetByID(ctx context.Context, id string) (station.Station, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanStation(q.QueryRow(ctx, `SELECT `+stationColumns+` FROM stations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return station.Station{}, station.ErrStationNotFound
		}
		return station.Station{}, fmt.Errorf("failed to get station %s: %w", id, err)
	}
	return s, nil
}

// UpdatePrices implements station.StationRepository.
func (r *stationRepositoryImpl) UpdatePrices(ctx context.Context, id string, prices station.Prices) (station.Station, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stations SET petrol_price = $1, diesel_price = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + stationColumns

	s, err := scanStation(q.QueryRow(ctx, query, prices.Petrol, prices.Diesel, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return station.Station{}, station.ErrStationNotFound
		}
		return station.Station{}, fmt.Errorf("failed to update prices for station %s: %w", id, err)
	}
	return s, nil
}
