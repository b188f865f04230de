package settlement

import "context"

type DashboardService interface {
	// GetDashboard returns the day's settlement stats and the trend window
	// ending on date. An empty date means today in the station time zone.
	GetDashboard(ctx context.Context, date string) (DashboardResponse, error)
}
