package http

import (
	"net/http"

	"github.com/bunkops/bunk-backend-go/internal/domain/station"
	"github.com/bunkops/bunk-backend-go/internal/handler/http/response"
)

type StationHandler interface {
	GetMy(w http.ResponseWriter, r *http.Request)
	UpdatePrices(w http.ResponseWriter, r *http.Request)
}

type stationHandlerImpl struct {
	stationService station.StationService
}

func NewStationHandler(stationService station.StationService) StationHandler {
	return &stationHandlerImpl{stationService: stationService}
}

// GetMy handles GET /stations/my
func (h *stationHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	resp, err := h.stationService.GetMyStation(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdatePrices handles PUT /stations/my/prices
func (h *stationHandlerImpl) UpdatePrices(w http.ResponseWriter, r *http.Request) {
	var req station.UpdatePricesRequest
	if !decodeJSON(w, r, &req, "UpdatePrices") {
		return
	}

	resp, err := h.stationService.UpdatePrices(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Prices updated", resp)
}
