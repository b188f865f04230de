package worker

import (
	"strings"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	Position   string          `json:"position"`
	DutyType   *string         `json:"duty_type,omitempty"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if validator.IsEmpty(r.Name) {
		errs = errs.Add("name", validator.CodeRequired, "is required")
	}
	if !validator.IsValidEmail(r.Email) {
		errs = errs.Add("email", validator.CodeInvalid, "must be a valid email address")
	}
	if len(r.Password) < 8 {
		errs = errs.Add("password", validator.CodeInvalid, "must be at least 8 characters")
	}
	if !validator.IsInSlice(r.Position, []string{string(PositionCashier), string(PositionManager), string(PositionHelper)}) {
		errs = errs.Add("position", validator.CodeInvalid, "must be 'cashier', 'manager' or 'helper'")
	}
	if r.DutyType != nil && !isDutyType(*r.DutyType) {
		errs = errs.Add("duty_type", validator.CodeInvalid, "must be 'Day' or 'Night'")
	}
	if r.BaseSalary.IsNegative() {
		errs = errs.Add("base_salary", validator.CodeInvalidAmount, "must be non-negative")
	}

	return errs.OrNil()
}

type CreateHelperRequest struct {
	Name          string          `json:"name"`
	PhoneNumber   string          `json:"phone_number"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	DutyType      *string         `json:"duty_type,omitempty"`
}

func (r *CreateHelperRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if validator.IsEmpty(r.Name) {
		errs = errs.Add("name", validator.CodeRequired, "is required")
	}
	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = errs.Add("phone_number", validator.CodeInvalid, "must be a valid phone number")
	}
	if r.MonthlySalary.IsNegative() {
		errs = errs.Add("monthly_salary", validator.CodeInvalidAmount, "must be non-negative")
	}
	if r.DutyType != nil && !isDutyType(*r.DutyType) {
		errs = errs.Add("duty_type", validator.CodeInvalid, "must be 'Day' or 'Night'")
	}

	return errs.OrNil()
}

func isDutyType(s string) bool {
	return s == string(DutyTypeDay) || s == string(DutyTypeNight)
}

type WorkerResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       Role            `json:"role"`
	Position   *Position       `json:"position,omitempty"`
	DutyType   *DutyType       `json:"duty_type,omitempty"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:         w.ID,
		Name:       w.Name,
		Email:      w.Email,
		Role:       w.Role,
		Position:   w.Position,
		DutyType:   w.DutyType,
		BaseSalary: w.BaseSalary,
		Active:     w.Active,
		CreatedAt:  w.CreatedAt,
	}
}

type HelperResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PhoneNumber   string          `json:"phone_number"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	DutyType      *DutyType       `json:"duty_type,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func NewHelperResponse(h Helper) HelperResponse {
	return HelperResponse{
		ID:            h.ID,
		Name:          h.Name,
		PhoneNumber:   h.PhoneNumber,
		MonthlySalary: h.MonthlySalary,
		DutyType:      h.DutyType,
		CreatedAt:     h.CreatedAt,
	}
}
