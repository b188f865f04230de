package http

import (
	"net/http"

	"github.com/bunkops/bunk-backend-go/internal/domain/salary"
	"github.com/bunkops/bunk-backend-go/internal/domain/settlement"
	"github.com/bunkops/bunk-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the day's settlement stats and the weekly trend
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetSalaryReport returns the month-end salary report
	GetSalaryReport(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService settlement.DashboardService
	salaryService    salary.SalaryService
}

func NewDashboardHandler(dashboardService settlement.DashboardService, salaryService salary.SalaryService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService, salaryService: salaryService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date") // format: YYYY-MM-DD, default: today

	result, err := h.dashboardService.GetDashboard(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSalaryReport handles GET /salary/report
func (h *dashboardHandlerImpl) GetSalaryReport(w http.ResponseWriter, r *http.Request) {
	req := salary.ReportRequest{Month: r.URL.Query().Get("month")}

	result, err := h.salaryService.GetReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
