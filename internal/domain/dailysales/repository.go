package dailysales

import "context"

type DailySalesRepository interface {
	Create(ctx context.Context, s DailySales) (DailySales, error)
	// List returns newest first. managerID narrows to one manager when set.
	List(ctx context.Context, stationID string, managerID *string, filter ListFilter) ([]DailySales, error)
}
