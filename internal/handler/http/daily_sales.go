package http

import (
	"net/http"

	"github.com/bunkops/bunk-backend-go/internal/domain/dailysales"
	"github.com/bunkops/bunk-backend-go/internal/handler/http/response"
)

type DailySalesHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type dailySalesHandlerImpl struct {
	dailySalesService dailysales.DailySalesService
}

func NewDailySalesHandler(dailySalesService dailysales.DailySalesService) DailySalesHandler {
	return &dailySalesHandlerImpl{dailySalesService: dailySalesService}
}

// Create handles POST /daily-sales
func (h *dailySalesHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req dailysales.CreateDailySalesRequest
	if !decodeJSON(w, r, &req, "CreateDailySales") {
		return
	}

	resp, err := h.dailySalesService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Daily sales recorded", resp)
}

// List handles GET /daily-sales
func (h *dailySalesHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := dailysales.ListFilter{
		Date:  queryPtr(r, "date"),
		Month: queryPtr(r, "month"),
	}

	resp, err := h.dailySalesService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
