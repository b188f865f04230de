package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bunkops/bunk-backend-go/internal/domain/dailysales"
	"github.com/bunkops/bunk-backend-go/internal/pkg/database"
)

type dailySalesRepositoryImpl struct {
	db *database.DB
}

func NewDailySalesRepository(db *database.DB) dailysales.DailySalesRepository {
	return &dailySalesRepositoryImpl{db: db}
}

// Create implements dailysales.DailySalesRepository.
func (r *dailySalesRepositoryImpl) Create(ctx context.Context, s dailysales.DailySales) (dailysales.DailySales, error) {
	q := GetQuerier(ctx, r.db)

	items, err := json.Marshal(s.Items)
	if err != nil {
		return dailysales.DailySales{}, fmt.Errorf("encode items: %w", err)
	}

	err = q.QueryRow(ctx, `
		INSERT INTO daily_sales (id, station_id, manager_id, sale_date, items, total)
		VALUES ($1, $2, $3, $4::date, $5, $6)
		RETURNING created_at`,
		s.ID, s.StationID, s.ManagerID, s.Date, items, s.Total,
	).Scan(&s.CreatedAt)
	if err != nil {
		return dailysales.DailySales{}, fmt.Errorf("failed to create daily sales: %w", err)
	}
	return s, nil
}

// List implements dailysales.DailySalesRepository.
func (r *dailySalesRepositoryImpl) List(ctx context.Context, stationID string, managerID *string, filter dailysales.ListFilter) ([]dailysales.DailySales, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"d.station_id = $1"}
	args := []interface{}{stationID}
	if managerID != nil {
		args = append(args, *managerID)
		where = append(where, fmt.Sprintf("d.manager_id = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		where = append(where, fmt.Sprintf("d.sale_date = $%d::date", len(args)))
	}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		where = append(where, fmt.Sprintf("to_char(d.sale_date, 'YYYY-MM') = $%d", len(args)))
	}

	query := `
		SELECT d.id, d.station_id, d.manager_id, w.name, d.sale_date::text, d.items, d.total, d.created_at
		FROM daily_sales d
		JOIN workers w ON w.id = d.manager_id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY d.sale_date DESC, d.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily sales: %w", err)
	}
	defer rows.Close()

	out := []dailysales.DailySales{}
	for rows.Next() {
		var s dailysales.DailySales
		var items []byte
		if err := rows.Scan(&s.ID, &s.StationID, &s.ManagerID, &s.ManagerName, &s.Date, &items, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily sales: %w", err)
		}
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("decode items of daily sales %s: %w", s.ID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
