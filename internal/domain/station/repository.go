package station

import (
	"context"
)

type StationRepository interface {
	Create(ctx context.Context, station Station) (Station, error)
	GetByID(ctx context.Context, id string) (Station, error)
	UpdatePrices(ctx context.Context, id string, prices Prices) (Station, error)
}
