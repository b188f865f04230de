package station

import "context"

type StationService interface {
	GetMyStation(ctx context.Context) (StationResponse, error)
	UpdatePrices(ctx context.Context, req UpdatePricesRequest) (StationResponse, error)
}
