package duty

import (
	"context"
	"time"
)

// Filter narrows a station's duties. Nil fields are ignored.
type Filter struct {
	WorkerID *string
	Date     *string
	DateFrom *string // inclusive
	DateTo   *string // inclusive
	Month    *string
	Status   *Status
}

// DutyRepository stores duties. Every read is scoped by stationID.
type DutyRepository interface {
	Create(ctx context.Context, d Duty) (Duty, error)
	GetByID(ctx context.Context, id string, stationID string) (Duty, error)

	// Close persists a settled duty only if it is still opened.
	// Zero affected rows means a concurrent close and returns ErrDutyNotOpen.
	Close(ctx context.Context, d Duty) error

	// List returns duties ordered by submitted_at desc, opened_at desc.
	List(ctx context.Context, stationID string, filter Filter) ([]Duty, error)
	CountForWorkerOnDate(ctx context.Context, stationID, workerID, date string) (int, error)

	// ListStaleOpened spans all stations and is used by the background sweeper.
	ListStaleOpened(ctx context.Context, openedBefore time.Time) ([]Duty, error)
}
