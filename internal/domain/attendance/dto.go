package attendance

import (
	"time"

	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
)

type SaveSheetRequest struct {
	Date    string       `json:"date"`
	Records []SheetEntry `json:"records"`
}

func (r *SaveSheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = errs.Add("date", validator.CodeInvalid, "must be in YYYY-MM-DD format")
	}

	return errs.OrNil()
}

// ListFilter selects one day or one month. Exactly one must be set.
type ListFilter struct {
	Date  *string
	Month *string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case f.Date != nil && f.Month != nil:
		errs = errs.Add("date", validator.CodeInvalid, "use either date or month, not both")
	case f.Date != nil:
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = errs.Add("date", validator.CodeInvalid, "must be in YYYY-MM-DD format")
		}
	case f.Month != nil:
		if _, ok := validator.IsValidMonth(*f.Month); !ok {
			errs = errs.Add("month", validator.CodeInvalid, "must be in YYYY-MM format")
		}
	}

	return errs.OrNil()
}

type RecordResponse struct {
	Date       string     `json:"date"`
	WorkerType WorkerType `json:"worker_type"`
	WorkerID   string     `json:"worker_id"`
	Name       *string    `json:"name,omitempty"`
	Present    bool       `json:"present"`
	Source     Source     `json:"source"`
	LoginAt    *time.Time `json:"login_at,omitempty"`
}

func NewRecordResponses(records []Record) []RecordResponse {
	out := make([]RecordResponse, len(records))
	for i, r := range records {
		out[i] = RecordResponse{
			Date:       r.Date,
			WorkerType: r.WorkerType,
			WorkerID:   r.WorkerID,
			Name:       r.Name,
			Present:    r.Present,
			Source:     r.Source,
			LoginAt:    r.LoginAt,
		}
	}
	return out
}
