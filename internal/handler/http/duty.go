package http

import (
	"net/http"

	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DutyHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type dutyHandlerImpl struct {
	dutyService duty.DutyService
}

func NewDutyHandler(dutyService duty.DutyService) DutyHandler {
	return &dutyHandlerImpl{dutyService: dutyService}
}

func dutyFilter(r *http.Request) duty.ListDutiesFilter {
	return duty.ListDutiesFilter{
		Date:     queryPtr(r, "date"),
		Month:    queryPtr(r, "month"),
		WorkerID: queryPtr(r, "worker_id"),
		Status:   queryPtr(r, "status"),
	}
}

// Open handles POST /duties/open
func (h *dutyHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
	var req duty.OpenDutyRequest
	if !decodeJSON(w, r, &req, "OpenDuty") {
		return
	}

	resp, err := h.dutyService.OpenDuty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Duty opened", resp)
}

// Close handles POST /duties/{id}/close
func (h *dutyHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	var req duty.CloseDutyRequest
	if !decodeJSON(w, r, &req, "CloseDuty") {
		return
	}
	req.DutyID = chi.URLParam(r, "id")

	resp, err := h.dutyService.CloseDuty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Duty closed", resp)
}

// Get handles GET /duties/{id}
func (h *dutyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dutyService.GetDuty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListMine handles GET /duties/my
func (h *dutyHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	filter := dutyFilter(r)
	filter.WorkerID = nil

	resp, err := h.dutyService.ListMyDuties(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List handles GET /duties
func (h *dutyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dutyService.ListDuties(r.Context(), dutyFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
