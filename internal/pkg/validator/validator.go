package validator

import (
	"regexp"
	"strings"
	"time"
)

// Error codes shared by request DTOs and the settlement engine.
const (
	CodeRequired        = "required"
	CodeInvalid         = "invalid"
	CodeMissingReading  = "missing_reading"
	CodeInvalidRange    = "invalid_range"
	CodeInvalidFuelType = "invalid_fuel_type"
	CodeNoPayment       = "no_payment"
	CodeInvalidAmount   = "invalid_amount"
)

type ValidationError struct {
	Field   string
	Code    string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToMap flattens errors by field. A field reported twice keeps both messages.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		if prev, ok := result[err.Field]; ok {
			result[err.Field] = prev + "; " + err.Message
			continue
		}
		result[err.Field] = err.Message
	}
	return result
}

// HasCode reports whether any error carries code.
func (v ValidationErrors) HasCode(code string) bool {
	for _, err := range v {
		if err.Code == code {
			return true
		}
	}
	return false
}

// Add appends an error and returns the extended slice.
func (v ValidationErrors) Add(field, code, message string) ValidationErrors {
	return append(v, ValidationError{Field: field, Code: code, Message: message})
}

// OrNil returns nil for an empty slice so callers can `return errs.OrNil()`.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidMonth accepts a calendar month key in "YYYY-MM" format.
func IsValidMonth(month string) (time.Time, bool) {
	m, err := time.Parse("2006-01", month)
	return m, err == nil
}

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,13}$`)

// Phone number validation. Spaces and dashes are ignored.
func IsValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phoneRegex.MatchString(phone)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}
