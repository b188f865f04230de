package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

const workerColumns = `id, station_id, name, email, password_hash, role, position, duty_type,
	base_salary, active, created_at, updated_at`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID, &w.StationID, &w.Name, &w.Email, &w.PasswordHash, &w.Role, &w.Position, &w.DutyType,
		&w.BaseSalary, &w.Active, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, station_id, name, email, password_hash, role, position, duty_type, base_salary, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + workerColumns

	created, err := scanWorker(q.QueryRow(ctx, query,
		w.ID, w.StationID, w.Name, w.Email, w.PasswordHash, w.Role, w.Position, w.DutyType, w.BaseSalary, w.Active,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return worker.Worker{}, worker.ErrEmailExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}
	return created, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string, stationID string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1 AND station_id = $2`
	w, err := scanWorker(q.QueryRow(ctx, query, id, stationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker %s: %w", id, err)
	}
	return w, nil
}

// GetByEmail implements worker.WorkerRepository. It is the only unscoped
// lookup: login happens before the station is known.
func (r *workerRepositoryImpl) GetByEmail(ctx context.Context, email string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE email = $1`
	w, err := scanWorker(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by email: %w", err)
	}
	return w, nil
}

// ListByStation implements worker.WorkerRepository.
func (r *workerRepositoryImpl) ListByStation(ctx context.Context, stationID string, role *worker.Role) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE station_id = $1`
	args := []interface{}{stationID}
	if role != nil {
		query += ` AND role = $2`
		args = append(args, *role)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	workers := []worker.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

// SetActive implements worker.WorkerRepository.
func (r *workerRepositoryImpl) SetActive(ctx context.Context, id string, stationID string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE workers SET active = $1, updated_at = NOW() WHERE id = $2 AND station_id = $3 AND role = 'worker'`,
		active, id, stationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

type helperRepositoryImpl struct {
	db *database.DB
}

func NewHelperRepository(db *database.DB) worker.HelperRepository {
	return &helperRepositoryImpl{db: db}
}

// Create implements worker.HelperRepository.
func (r *helperRepositoryImpl) Create(ctx context.Context, h worker.Helper) (worker.Helper, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO helpers (id, station_id, name, phone_number, monthly_salary, duty_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	if err := q.QueryRow(ctx, query,
		h.ID, h.StationID, h.Name, h.PhoneNumber, h.MonthlySalary, h.DutyType,
	).Scan(&h.CreatedAt); err != nil {
		return worker.Helper{}, fmt.Errorf("failed to create helper: %w", err)
	}
	return h, nil
}

// ListByStation implements worker.HelperRepository.
func (r *helperRepositoryImpl) ListByStation(ctx context.Context, stationID string) ([]worker.Helper, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, station_id, name, phone_number, monthly_salary, duty_type, created_at
		FROM helpers WHERE station_id = $1
		ORDER BY created_at ASC`, stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list helpers: %w", err)
	}
	defer rows.Close()

	helpers := []worker.Helper{}
	for rows.Next() {
		var h worker.Helper
		if err := rows.Scan(&h.ID, &h.StationID, &h.Name, &h.PhoneNumber, &h.MonthlySalary, &h.DutyType, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan helper: %w", err)
		}
		helpers = append(helpers, h)
	}
	return helpers, rows.Err()
}

// Delete implements worker.HelperRepository.
func (r *helperRepositoryImpl) Delete(ctx context.Context, id string, stationID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM helpers WHERE id = $1 AND station_id = $2`, id, stationID)
	if err != nil {
		return fmt.Errorf("failed to delete helper %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrHelperNotFound
	}
	return nil
}
