package salary

import (
	"strings"

	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/shopspring/decimal"
)

// Record is a worker's month-end salary derived from closed duties.
// FinalSalary = BaseSalary - TotalShortage + TotalExcess.
type Record struct {
	WorkerID      string
	WorkerName    string
	BaseSalary    decimal.Decimal
	DutiesCount   int
	TotalShortage decimal.Decimal
	TotalExcess   decimal.Decimal
	FinalSalary   decimal.Decimal
}

// HelperRecord lists a helper's fixed monthly salary beside the worker rows.
type HelperRecord struct {
	HelperID      string
	Name          string
	MonthlySalary decimal.Decimal
	DaysPresent   int
}

type WorkerInput struct {
	ID         string
	Name       string
	BaseSalary decimal.Decimal
}

type HelperInput struct {
	ID            string
	Name          string
	MonthlySalary decimal.Decimal
	DaysPresent   int
}

type Totals struct {
	BaseSalary    decimal.Decimal
	TotalShortage decimal.Decimal
	TotalExcess   decimal.Decimal
	FinalSalary   decimal.Decimal
	HelperSalary  decimal.Decimal
}

type Report struct {
	Month   string
	Workers []Record
	Helpers []HelperRecord
	Totals  Totals
}

// MonthlySalary folds the worker's closed duties whose date falls in month
// (YYYY-MM). A negative base counts as zero. The second result is false when
// the worker had no duties and no base salary, in which case the row is
// left out of reports.
func MonthlySalary(workerID, workerName string, baseSalary decimal.Decimal, duties []duty.Duty, month string) (Record, bool) {
	if baseSalary.IsNegative() {
		baseSalary = decimal.Zero
	}

	rec := Record{
		WorkerID:      workerID,
		WorkerName:    workerName,
		BaseSalary:    baseSalary,
		TotalShortage: decimal.Zero,
		TotalExcess:   decimal.Zero,
	}

	prefix := month + "-"
	for _, d := range duties {
		if d.WorkerID != workerID || !d.IsClosed() || !strings.HasPrefix(d.Date, prefix) {
			continue
		}
		rec.DutiesCount++
		rec.TotalShortage = rec.TotalShortage.Add(d.Shortage())
		rec.TotalExcess = rec.TotalExcess.Add(d.Excess())
	}

	rec.FinalSalary = rec.BaseSalary.Sub(rec.TotalShortage).Add(rec.TotalExcess)

	if rec.DutiesCount == 0 && rec.BaseSalary.IsZero() {
		return rec, false
	}
	return rec, true
}

// BuildReport computes every worker's row and the station totals. Totals are
// summed from unrounded values.
func BuildReport(workers []WorkerInput, helpers []HelperInput, duties []duty.Duty, month string) Report {
	report := Report{
		Month:   month,
		Workers: []Record{},
		Helpers: []HelperRecord{},
		Totals: Totals{
			BaseSalary:    decimal.Zero,
			TotalShortage: decimal.Zero,
			TotalExcess:   decimal.Zero,
			FinalSalary:   decimal.Zero,
			HelperSalary:  decimal.Zero,
		},
	}

	for _, w := range workers {
		rec, include := MonthlySalary(w.ID, w.Name, w.BaseSalary, duties, month)
		if !include {
			continue
		}
		report.Workers = append(report.Workers, rec)
		report.Totals.BaseSalary = report.Totals.BaseSalary.Add(rec.BaseSalary)
		report.Totals.TotalShortage = report.Totals.TotalShortage.Add(rec.TotalShortage)
		report.Totals.TotalExcess = report.Totals.TotalExcess.Add(rec.TotalExcess)
		report.Totals.FinalSalary = report.Totals.FinalSalary.Add(rec.FinalSalary)
	}

	for _, h := range helpers {
		salary := h.MonthlySalary
		if salary.IsNegative() {
			salary = decimal.Zero
		}
		report.Helpers = append(report.Helpers, HelperRecord{
			HelperID:      h.ID,
			Name:          h.Name,
			MonthlySalary: salary,
			DaysPresent:   h.DaysPresent,
		})
		report.Totals.HelperSalary = report.Totals.HelperSalary.Add(salary)
	}

	return report
}
