package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/domain/auth"
	"github.com/bunkops/bunk-backend-go/internal/domain/dailysales"
	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{duty.ErrDutyNotFound, http.StatusNotFound},
		{fmt.Errorf("close: %w", duty.ErrDutyNotOpen), http.StatusConflict},
		{duty.ErrWorkerOnly, http.StatusForbidden},
		{worker.ErrWorkerNotFound, http.StatusNotFound},
		{worker.ErrHelperNotFound, http.StatusNotFound},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrAccountDisabled, http.StatusForbidden},
		{auth.ErrEmailExists, http.StatusConflict},
		{fmt.Errorf("%w: worker w9", attendance.ErrUnknownPerson), http.StatusUnprocessableEntity},
		{dailysales.ErrManagerOnly, http.StatusForbidden},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, c.err)
		assert.Equal(t, c.want, rec.Code, c.err.Error())
	}
}

func TestHandleError_ValidationCarriesCodes(t *testing.T) {
	var errs validator.ValidationErrors
	errs = errs.Add("pumps[0].closing", validator.CodeInvalidRange, "pump 1: closing reading cannot be less than opening")
	errs = errs.Add("payments", validator.CodeNoPayment, "at least one payment is required")

	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("open duty: %w", errs))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	require.Len(t, body.Error.Fields, 2)
	assert.Equal(t, validator.CodeInvalidRange, body.Error.Fields[0].Code)
	assert.Equal(t, "pumps[0].closing", body.Error.Fields[0].Field)
	assert.Contains(t, body.Error.Details, "payments")
}
