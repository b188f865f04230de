package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
)

// SheetEntry is one row of a manually submitted attendance sheet.
type SheetEntry struct {
	WorkerType string `json:"worker_type"`
	WorkerID   string `json:"worker_id"`
	Present    bool   `json:"present"`
}

// NormalizeSheet turns a submitted sheet into records for one station day.
// Rows repeating a person are merged: the last row's value wins, the first
// row's position is kept.
func NormalizeSheet(stationID, date string, entries []SheetEntry, now time.Time) ([]Record, error) {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(date); !ok {
		errs = errs.Add("date", validator.CodeInvalid, "must be in YYYY-MM-DD format")
	}

	records := make([]Record, 0, len(entries))
	seen := make(map[Key]int, len(entries))

	for i, e := range entries {
		wt := WorkerType(strings.ToLower(strings.TrimSpace(e.WorkerType)))
		if wt != WorkerTypeWorker && wt != WorkerTypeHelper {
			errs = errs.Add(fmt.Sprintf("records[%d].worker_type", i), validator.CodeInvalid, "must be 'worker' or 'helper'")
			continue
		}
		id := strings.TrimSpace(e.WorkerID)
		if id == "" {
			errs = errs.Add(fmt.Sprintf("records[%d].worker_id", i), validator.CodeRequired, "is required")
			continue
		}

		rec := Record{
			StationID:  stationID,
			Date:       date,
			WorkerType: wt,
			WorkerID:   id,
			Present:    e.Present,
			Source:     SourceManual,
			UpdatedAt:  now,
		}
		if j, dup := seen[rec.Key()]; dup {
			records[j] = rec
			continue
		}
		seen[rec.Key()] = len(records)
		records = append(records, rec)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return records, nil
}

// DaysPresent counts present days per worker ID.
func DaysPresent(records []Record, workerType WorkerType) map[string]int {
	out := make(map[string]int)
	for _, r := range records {
		if r.WorkerType == workerType && r.Present {
			out[r.WorkerID]++
		}
	}
	return out
}
