package worker

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrHelperNotFound = errors.New("helper not found")
	ErrEmailExists    = errors.New("email already registered")
)
