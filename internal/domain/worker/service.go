package worker

import "context"

type WorkerService interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	ListWorkers(ctx context.Context) ([]WorkerResponse, error)
	ToggleWorker(ctx context.Context, id string) (WorkerResponse, error)

	CreateHelper(ctx context.Context, req CreateHelperRequest) (HelperResponse, error)
	ListHelpers(ctx context.Context) ([]HelperResponse, error)
	DeleteHelper(ctx context.Context, id string) error
}
