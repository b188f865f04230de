package auth

import (
	"testing"

	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStationRequest_Validate(t *testing.T) {
	valid := RegisterStationRequest{
		StationName:     " Highway Fuels ",
		Brand:           "HP",
		AdminName:       "Anil",
		Email:           " Owner@Example.com ",
		Password:        "password1",
		ConfirmPassword: "password1",
	}
	require.NoError(t, valid.Validate())
	assert.Equal(t, "Highway Fuels", valid.StationName)
	assert.Equal(t, "owner@example.com", valid.Email)

	bad := "blue"
	invalid := RegisterStationRequest{Email: "nope", Password: "short", ConfirmPassword: "other", CustomColor: &bad}
	var errs validator.ValidationErrors
	require.ErrorAs(t, invalid.Validate(), &errs)
	m := errs.ToMap()
	for _, field := range []string{"station_name", "brand", "admin_name", "email", "password", "confirm_password", "custom_color"} {
		assert.Contains(t, m, field)
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "a@b.cd", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "a@b.cd"}).Validate())
}
