package salary

import (
	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ReportRequest struct {
	Month string
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = errs.Add("month", validator.CodeRequired, "is required")
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = errs.Add("month", validator.CodeInvalid, "must be in YYYY-MM format")
	}

	return errs.OrNil()
}

type RecordResponse struct {
	WorkerID      string          `json:"worker_id"`
	WorkerName    string          `json:"worker_name"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	DutiesCount   int             `json:"duties_count"`
	TotalShortage decimal.Decimal `json:"total_shortage"`
	TotalExcess   decimal.Decimal `json:"total_excess"`
	FinalSalary   decimal.Decimal `json:"final_salary"`
}

type HelperRecordResponse struct {
	HelperID      string          `json:"helper_id"`
	Name          string          `json:"name"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	DaysPresent   int             `json:"days_present"`
}

type TotalsResponse struct {
	BaseSalary    decimal.Decimal `json:"base_salary"`
	TotalShortage decimal.Decimal `json:"total_shortage"`
	TotalExcess   decimal.Decimal `json:"total_excess"`
	FinalSalary   decimal.Decimal `json:"final_salary"`
	HelperSalary  decimal.Decimal `json:"helper_salary"`
}

type ReportResponse struct {
	Month   string                 `json:"month"`
	Workers []RecordResponse       `json:"workers"`
	Helpers []HelperRecordResponse `json:"helpers"`
	Totals  TotalsResponse         `json:"totals"`
}

func NewReportResponse(r Report) ReportResponse {
	workers := make([]RecordResponse, len(r.Workers))
	for i, w := range r.Workers {
		workers[i] = RecordResponse{
			WorkerID:      w.WorkerID,
			WorkerName:    w.WorkerName,
			BaseSalary:    w.BaseSalary.Round(2),
			DutiesCount:   w.DutiesCount,
			TotalShortage: w.TotalShortage.Round(2),
			TotalExcess:   w.TotalExcess.Round(2),
			FinalSalary:   w.FinalSalary.Round(2),
		}
	}
	helpers := make([]HelperRecordResponse, len(r.Helpers))
	for i, h := range r.Helpers {
		helpers[i] = HelperRecordResponse{
			HelperID:      h.HelperID,
			Name:          h.Name,
			MonthlySalary: h.MonthlySalary.Round(2),
			DaysPresent:   h.DaysPresent,
		}
	}

	return ReportResponse{
		Month:   r.Month,
		Workers: workers,
		Helpers: helpers,
		Totals: TotalsResponse{
			BaseSalary:    r.Totals.BaseSalary.Round(2),
			TotalShortage: r.Totals.TotalShortage.Round(2),
			TotalExcess:   r.Totals.TotalExcess.Round(2),
			FinalSalary:   r.Totals.FinalSalary.Round(2),
			HelperSalary:  r.Totals.HelperSalary.Round(2),
		},
	}
}
