package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/domain/auth"
	"github.com/bunkops/bunk-backend-go/internal/domain/dailysales"
	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/domain/station"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs)
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, jwt.ErrMissingClaims):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Duty
	case errors.Is(err, duty.ErrDutyNotFound):
		NotFound(w, "Duty not found")
	case errors.Is(err, duty.ErrDutyNotOpen):
		Conflict(w, "Duty is already closed")
	case errors.Is(err, duty.ErrWorkerOnly):
		Forbidden(w, err.Error())

	// Station and staff
	case errors.Is(err, station.ErrStationNotFound):
		NotFound(w, "Station not found")
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrHelperNotFound):
		NotFound(w, "Helper not found")

	case errors.Is(err, attendance.ErrUnknownPerson):
		writeJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: err.Error(),
			},
		})
	case errors.Is(err, dailysales.ErrManagerOnly):
		Forbidden(w, err.Error())

	default:
		slog.Error("unhandled error", slog.Any("error", err))
		InternalServerError(w, "An unexpected error occurred")
	}
}
