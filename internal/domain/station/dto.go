package station

import (
	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdatePricesRequest struct {
	Petrol decimal.Decimal `json:"petrol"`
	Diesel decimal.Decimal `json:"diesel"`
}

func (r *UpdatePricesRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Petrol.IsPositive() {
		errs = errs.Add("petrol", validator.CodeInvalidAmount, "must be greater than zero")
	}
	if !r.Diesel.IsPositive() {
		errs = errs.Add("diesel", validator.CodeInvalidAmount, "must be greater than zero")
	}

	return errs.OrNil()
}

type StationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Brand   string `json:"brand"`
	Address string `json:"address"`
	Theme   Theme  `json:"theme"`
	Prices  Prices `json:"prices"`
}

func NewStationResponse(s Station) StationResponse {
	return StationResponse{
		ID:      s.ID,
		Name:    s.Name,
		Brand:   s.Brand,
		Address: s.Address,
		Theme:   s.Theme,
		Prices:  s.Prices,
	}
}
