package duty

import "context"

type DutyService interface {
	OpenDuty(ctx context.Context, req OpenDutyRequest) (DutyResponse, error)
	CloseDuty(ctx context.Context, req CloseDutyRequest) (DutyResponse, error)
	GetDuty(ctx context.Context, id string) (DutyResponse, error)
	ListMyDuties(ctx context.Context, filter ListDutiesFilter) ([]DutyResponse, error)
	ListDuties(ctx context.Context, filter ListDutiesFilter) ([]DutyResponse, error)
}
