package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// MarkAutoPresent records a worker present on their first login of the
	// day. Later calls for the same day leave the record untouched.
	MarkAutoPresent(ctx context.Context, stationID, workerID string, at time.Time) error

	// SaveManualSheet replaces the whole day with the submitted sheet.
	SaveManualSheet(ctx context.Context, req SaveSheetRequest) ([]RecordResponse, error)

	List(ctx context.Context, filter ListFilter) ([]RecordResponse, error)
}
