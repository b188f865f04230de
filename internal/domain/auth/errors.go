package auth

import (
	"errors"

	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrEmailExists        = worker.ErrEmailExists
)
