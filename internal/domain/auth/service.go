package auth

import (
	"context"
)

type AuthService interface {
	RegisterStation(ctx context.Context, req RegisterStationRequest) (TokenResponse, error)
	// Login checks credentials and, for workers, marks the day's attendance.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context) (MeResponse, error)
}
