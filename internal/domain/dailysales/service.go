package dailysales

import "context"

type DailySalesService interface {
	Create(ctx context.Context, req CreateDailySalesRequest) (DailySalesResponse, error)
	// List returns the caller's own sheets for a manager, every sheet for an admin.
	List(ctx context.Context, filter ListFilter) ([]DailySalesResponse, error)
}
