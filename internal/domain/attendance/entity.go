package attendance

import (
	"time"
)

type WorkerType string

const (
	WorkerTypeWorker WorkerType = "worker"
	WorkerTypeHelper WorkerType = "helper"
)

type Source string

const (
	SourceAuto   Source = "auto"   // first login of the day
	SourceManual Source = "manual" // admin sheet
)

// Key identifies at most one record per person per station day.
type Key struct {
	StationID  string
	Date       string
	WorkerType WorkerType
	WorkerID   string
}

type Record struct {
	StationID  string
	Date       string // YYYY-MM-DD in the station time zone
	WorkerType WorkerType
	WorkerID   string
	Present    bool
	Source     Source
	LoginAt    *time.Time
	UpdatedAt  time.Time

	// Joined for listings
	Name *string
}

func (r Record) Key() Key {
	return Key{StationID: r.StationID, Date: r.Date, WorkerType: r.WorkerType, WorkerID: r.WorkerID}
}
