package http

import (
	"net/http"

	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	CreateWorker(w http.ResponseWriter, r *http.Request)
	ListWorkers(w http.ResponseWriter, r *http.Request)
	ToggleWorker(w http.ResponseWriter, r *http.Request)

	CreateHelper(w http.ResponseWriter, r *http.Request)
	ListHelpers(w http.ResponseWriter, r *http.Request)
	DeleteHelper(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &workerHandlerImpl{workerService: workerService}
}

// CreateWorker handles POST /workers
func (h *workerHandlerImpl) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest
	if !decodeJSON(w, r, &req, "CreateWorker") {
		return
	}

	resp, err := h.workerService.CreateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created", resp)
}

// ListWorkers handles GET /workers
func (h *workerHandlerImpl) ListWorkers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.workerService.ListWorkers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ToggleWorker handles PATCH /workers/{id}/toggle
func (h *workerHandlerImpl) ToggleWorker(w http.ResponseWriter, r *http.Request) {
	resp, err := h.workerService.ToggleWorker(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// CreateHelper handles POST /helpers
func (h *workerHandlerImpl) CreateHelper(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateHelperRequest
	if !decodeJSON(w, r, &req, "CreateHelper") {
		return
	}

	resp, err := h.workerService.CreateHelper(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Helper created", resp)
}

// ListHelpers handles GET /helpers
func (h *workerHandlerImpl) ListHelpers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.workerService.ListHelpers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DeleteHelper handles DELETE /helpers/{id}
func (h *workerHandlerImpl) DeleteHelper(w http.ResponseWriter, r *http.Request) {
	if err := h.workerService.DeleteHelper(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Helper deleted", nil)
}
