package auth

import (
	"strings"

	"github.com/bunkops/bunk-backend-go/internal/domain/station"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
)

// RegisterStationRequest creates a station together with its admin account.
type RegisterStationRequest struct {
	StationName     string  `json:"station_name"`
	Brand           string  `json:"brand"`
	Address         string  `json:"address"`
	CustomColor     *string `json:"custom_color,omitempty"`
	AdminName       string  `json:"admin_name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
}

func (r *RegisterStationRequest) Validate() error {
	var errs validator.ValidationErrors

	r.StationName = strings.TrimSpace(r.StationName)
	r.Brand = strings.TrimSpace(r.Brand)
	r.AdminName = strings.TrimSpace(r.AdminName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if validator.IsEmpty(r.StationName) {
		errs = errs.Add("station_name", validator.CodeRequired, "is required")
	}
	if len(r.StationName) > 255 {
		errs = errs.Add("station_name", validator.CodeInvalid, "must not exceed 255 characters")
	}
	if validator.IsEmpty(r.Brand) {
		errs = errs.Add("brand", validator.CodeRequired, "is required")
	}
	if r.CustomColor != nil && *r.CustomColor != "" && !validator.IsValidHexColor(*r.CustomColor) {
		errs = errs.Add("custom_color", validator.CodeInvalid, "must be a hex colour like #1e40af")
	}
	if validator.IsEmpty(r.AdminName) {
		errs = errs.Add("admin_name", validator.CodeRequired, "is required")
	}
	if !validator.IsValidEmail(r.Email) {
		errs = errs.Add("email", validator.CodeInvalid, "must be a valid email address")
	}
	if len(r.Password) < 8 {
		errs = errs.Add("password", validator.CodeInvalid, "must be at least 8 characters")
	}
	if r.Password != r.ConfirmPassword {
		errs = errs.Add("confirm_password", validator.CodeInvalid, "does not match password")
	}

	return errs.OrNil()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if validator.IsEmpty(r.Email) {
		errs = errs.Add("email", validator.CodeRequired, "is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs = errs.Add("email", validator.CodeInvalid, "must be a valid email address")
	}
	if r.Password == "" {
		errs = errs.Add("password", validator.CodeRequired, "is required")
	}

	return errs.OrNil()
}

type MeResponse struct {
	User    worker.WorkerResponse   `json:"user"`
	Station station.StationResponse `json:"station"`
}

type TokenResponse struct {
	AccessToken          string     `json:"access_token"`
	AccessTokenExpiresIn int64      `json:"access_token_expires_in"`
	Me                   MeResponse `json:"me"`
}
