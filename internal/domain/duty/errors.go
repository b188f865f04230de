package duty

import "errors"

var (
	ErrDutyNotFound = errors.New("duty not found")
	// ErrDutyNotOpen is the lifecycle error: the duty is already closed, or a
	// concurrent close won the race.
	ErrDutyNotOpen = errors.New("duty is not open")
	ErrWorkerOnly  = errors.New("only workers can submit duties")
)
