package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dutyRepositoryImpl struct {
	db *database.DB
}

func NewDutyRepository(db *database.DB) duty.DutyRepository {
	return &dutyRepositoryImpl{db: db}
}

const dutyColumns = `id, station_id, worker_id, worker_name, duty_type, duty_date::text, status,
	petrol_price, diesel_price, pumps, petrol_total, diesel_total, total_sales,
	cash, card, online, credit, testing, total_received, difference, opened_at, submitted_at`

func scanDuty(row pgx.Row) (duty.Duty, error) {
	var d duty.Duty
	var pumps []byte
	err := row.Scan(
		&d.ID, &d.StationID, &d.WorkerID, &d.WorkerName, &d.DutyType, &d.Date, &d.Status,
		&d.Prices.Petrol, &d.Prices.Diesel, &pumps, &d.PetrolTotal, &d.DieselTotal, &d.TotalSales,
		&d.Payments.Cash, &d.Payments.Card, &d.Payments.Online, &d.Payments.Credit, &d.Payments.Testing,
		&d.TotalReceived, &d.Difference, &d.OpenedAt, &d.SubmittedAt,
	)
	if err != nil {
		return duty.Duty{}, err
	}
	if err := json.Unmarshal(pumps, &d.Pumps); err != nil {
		return duty.Duty{}, fmt.Errorf("decode pumps of duty %s: %w", d.ID, err)
	}
	return d, nil
}

func collectDuties(rows pgx.Rows) ([]duty.Duty, error) {
	defer rows.Close()

	duties := []duty.Duty{}
	for rows.Next() {
		d, err := scanDuty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan duty: %w", err)
		}
		duties = append(duties, d)
	}
	return duties, rows.Err()
}

// Create implements duty.DutyRepository.
func (r *dutyRepositoryImpl) Create(ctx context.Context, d duty.Duty) (duty.Duty, error) {
	q := GetQuerier(ctx, r.db)

	pumps, err := json.Marshal(d.Pumps)
	if err != nil {
		return duty.Duty{}, fmt.Errorf("encode pumps: %w", err)
	}

	query := `
		INSERT INTO duties (
			id, station_id, worker_id, worker_name, duty_type, duty_date, status,
			petrol_price, diesel_price, pumps, petrol_total, diesel_total, total_sales, opened_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + dutyColumns

	created, err := scanDuty(q.QueryRow(ctx, query,
		d.ID, d.StationID, d.WorkerID, d.WorkerName, d.DutyType, d.Date, d.Status,
		d.Prices.Petrol, d.Prices.Diesel, pumps, d.PetrolTotal, d.DieselTotal, d.TotalSales, d.OpenedAt,
	))
	if err != nil {
		return duty.Duty{}, fmt.Errorf("failed to create duty: %w", err)
	}
	return created, nil
}

// GetByID implements duty.DutyRepository.
func (r *dutyRepositoryImpl) GetByID(ctx context.Context, id string, stationID string) (duty.Duty, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dutyColumns + ` FROM duties WHERE id = $1 AND station_id = $2`
	d, err := scanDuty(q.QueryRow(ctx, query, id, stationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.Duty{}, duty.ErrDutyNotFound
		}
		return duty.Duty{}, fmt.Errorf("failed to get duty %s: %w", id, err)
	}
	return d, nil
}

// Close implements duty.DutyRepository.
func (r *dutyRepositoryImpl) Close(ctx context.Context, d duty.Duty) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE duties SET
			status = $1,
			petrol_total = $2, diesel_total = $3, total_sales = $4,
			cash = $5, card = $6, online = $7, credit = $8, testing = $9,
			total_received = $10, difference = $11, submitted_at = $12
		WHERE id = $13 AND station_id = $14 AND status = 'opened'`

	tag, err := q.Exec(ctx, query,
		d.Status,
		d.PetrolTotal, d.DieselTotal, d.TotalSales,
		d.Payments.Cash, d.Payments.Card, d.Payments.Online, d.Payments.Credit, d.Payments.Testing,
		d.TotalReceived, d.Difference, d.SubmittedAt,
		d.ID, d.StationID,
	)
	if err != nil {
		return fmt.Errorf("failed to close duty %s: %w", d.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return duty.ErrDutyNotOpen
	}
	return nil
}

// List implements duty.DutyRepository.
func (r *dutyRepositoryImpl) List(ctx context.Context, stationID string, filter duty.Filter) ([]duty.Duty, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"station_id = $1"}
	args := []interface{}{stationID}
	add := func(cond string, v interface{}) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if filter.WorkerID != nil {
		add("worker_id = $%d", *filter.WorkerID)
	}
	if filter.Date != nil {
		add("duty_date = $%d::date", *filter.Date)
	}
	if filter.DateFrom != nil {
		add("duty_date >= $%d::date", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("duty_date <= $%d::date", *filter.DateTo)
	}
	if filter.Month != nil {
		add("to_char(duty_date, 'YYYY-MM') = $%d", *filter.Month)
	}
	if filter.Status != nil {
		add("status = $%d", string(*filter.Status))
	}

	query := `SELECT ` + dutyColumns + ` FROM duties WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY submitted_at DESC NULLS LAST, opened_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list duties: %w", err)
	}
	return collectDuties(rows)
}

// CountForWorkerOnDate implements duty.DutyRepository.
func (r *dutyRepositoryImpl) CountForWorkerOnDate(ctx context.Context, stationID, workerID, date string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var n int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM duties WHERE station_id = $1 AND worker_id = $2 AND duty_date = $3::date`,
		stationID, workerID, date,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count duties: %w", err)
	}
	return n, nil
}

// ListStaleOpened implements duty.DutyRepository.
func (r *dutyRepositoryImpl) ListStaleOpened(ctx context.Context, openedBefore time.Time) ([]duty.Duty, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dutyColumns + ` FROM duties
		WHERE status = 'opened' AND opened_at < $1
		ORDER BY opened_at ASC`

	rows, err := q.Query(ctx, query, openedBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale duties: %w", err)
	}
	return collectDuties(rows)
}
