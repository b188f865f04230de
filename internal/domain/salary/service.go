package salary

import "context"

type SalaryService interface {
	GetReport(ctx context.Context, req ReportRequest) (ReportResponse, error)
}
