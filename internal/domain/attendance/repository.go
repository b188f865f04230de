package attendance

import (
	"context"
)

// AttendanceRepository stores at most one record per Key.
type AttendanceRepository interface {
	// InsertIfAbsent stores r unless a record with the same key exists.
	// It reports whether a row was written.
	InsertIfAbsent(ctx context.Context, r Record) (bool, error)

	// DeleteDay removes every record of a station day. Callers pair it with
	// Insert inside one transaction.
	DeleteDay(ctx context.Context, stationID, date string) error
	Insert(ctx context.Context, records []Record) error

	ListByDate(ctx context.Context, stationID, date string) ([]Record, error)
	ListByMonth(ctx context.Context, stationID, month string) ([]Record, error)
}
