package postgresql

import (
	"context"
	"fmt"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// InsertIfAbsent implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) InsertIfAbsent(ctx context.Context, rec attendance.Record) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (station_id, att_date, worker_type, worker_id, present, source, login_at, updated_at)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (station_id, att_date, worker_type, worker_id) DO NOTHING`

	tag, err := q.Exec(ctx, query,
		rec.StationID, rec.Date, rec.WorkerType, rec.WorkerID, rec.Present, rec.Source, rec.LoginAt, rec.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert attendance: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteDay(ctx context.Context, stationID, date string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance WHERE station_id = $1 AND att_date = $2::date`, stationID, date); err != nil {
		return fmt.Errorf("failed to clear attendance for %s: %w", date, err)
	}
	return nil
}

// Insert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Insert(ctx context.Context, records []attendance.Record) error {
	if len(records) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`
			INSERT INTO attendance (station_id, att_date, worker_type, worker_id, present, source, login_at, updated_at)
			VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8)`,
			rec.StationID, rec.Date, rec.WorkerType, rec.WorkerID, rec.Present, rec.Source, rec.LoginAt, rec.UpdatedAt,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()
	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert attendance: %w", err)
		}
	}
	return nil
}

const attendanceSelect = `
	SELECT a.station_id, a.att_date::text, a.worker_type, a.worker_id, a.present, a.source,
		a.login_at, a.updated_at, COALESCE(w.name, h.name)
	FROM attendance a
	LEFT JOIN workers w ON a.worker_type = 'worker' AND w.id = a.worker_id
	LEFT JOIN helpers h ON a.worker_type = 'helper' AND h.id = a.worker_id`

func (r *attendanceRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, attendanceSelect+" WHERE "+where+" ORDER BY a.att_date, a.worker_type DESC, 9", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.StationID, &rec.Date, &rec.WorkerType, &rec.WorkerID, &rec.Present, &rec.Source,
			&rec.LoginAt, &rec.UpdatedAt, &rec.Name,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, stationID, date string) ([]attendance.Record, error) {
	return r.list(ctx, "a.station_id = $1 AND a.att_date = $2::date", stationID, date)
}

// ListByMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByMonth(ctx context.Context, stationID, month string) ([]attendance.Record, error) {
	return r.list(ctx, "a.station_id = $1 AND to_char(a.att_date, 'YYYY-MM') = $2", stationID, month)
}
