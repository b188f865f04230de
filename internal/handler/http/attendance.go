package http

import (
	"net/http"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	SaveSheet(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// List handles GET /attendance?date= or ?month=
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		Date:  queryPtr(r, "date"),
		Month: queryPtr(r, "month"),
	}

	resp, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SaveSheet handles PUT /attendance/sheet
func (h *attendanceHandlerImpl) SaveSheet(w http.ResponseWriter, r *http.Request) {
	var req attendance.SaveSheetRequest
	if !decodeJSON(w, r, &req, "SaveSheet") {
		return
	}

	resp, err := h.attendanceService.SaveManualSheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", resp)
}
