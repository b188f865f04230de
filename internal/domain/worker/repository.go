package worker

import "context"

// WorkerRepository is station-scoped: every lookup takes the station ID so one
// tenant can never read another tenant's staff.
type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string, stationID string) (Worker, error)
	GetByEmail(ctx context.Context, email string) (Worker, error)
	ListByStation(ctx context.Context, stationID string, role *Role) ([]Worker, error)
	SetActive(ctx context.Context, id string, stationID string, active bool) error
}

type HelperRepository interface {
	Create(ctx context.Context, h Helper) (Helper, error)
	ListByStation(ctx context.Context, stationID string) ([]Helper, error)
	Delete(ctx context.Context, id string, stationID string) error
}
