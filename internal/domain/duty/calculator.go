package duty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PumpReadingInput is a pump reading after boundary normalization but before
// numeric validation. Readings stay strings so a missing or non-numeric value
// can be reported instead of silently becoming zero.
type PumpReadingInput struct {
	PumpNumber string
	FuelType   string
	Opening    string
	Closing    string
}

// ValidatePumpReading checks one meter pair and prices it with the snapshot.
// index is used only to name the offending fields.
func ValidatePumpReading(index int, in PumpReadingInput, prices PriceSnapshot) (PumpReading, validator.ValidationErrors) {
	var errs validator.ValidationErrors
	prefix := fmt.Sprintf("pumps[%d]", index)

	pumpNumber := strings.TrimSpace(in.PumpNumber)
	if pumpNumber == "" {
		pumpNumber = strconv.Itoa(index + 1)
	}

	fuel, ok := ParseFuelType(in.FuelType)
	if !ok {
		errs = errs.Add(prefix+".fuel_type", validator.CodeInvalidFuelType, "must be 'Petrol' or 'Diesel'")
	}

	opening, openErr := parseReading(in.Opening)
	if openErr != "" {
		errs = errs.Add(prefix+".opening", codeFor(openErr), fmt.Sprintf("pump %s: opening reading %s", pumpNumber, openErr))
	}
	closing, closeErr := parseReading(in.Closing)
	if closeErr != "" {
		errs = errs.Add(prefix+".closing", codeFor(closeErr), fmt.Sprintf("pump %s: closing reading %s", pumpNumber, closeErr))
	}

	if openErr == "" && closeErr == "" && closing.LessThan(opening) {
		errs = errs.Add(prefix+".closing", validator.CodeInvalidRange,
			fmt.Sprintf("pump %s: closing reading cannot be less than opening", pumpNumber))
	}

	if len(errs) > 0 {
		return PumpReading{}, errs
	}

	liters := closing.Sub(opening)
	return PumpReading{
		PumpNumber: pumpNumber,
		FuelType:   fuel,
		Opening:    opening,
		Closing:    closing,
		Liters:     liters,
		Amount:     liters.Mul(prices.For(fuel)),
	}, nil
}

const (
	readingMissing  = "is required"
	readingNegative = "must be non-negative"
)

func parseReading(s string) (decimal.Decimal, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, readingMissing
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, readingMissing
	}
	if d.IsNegative() {
		return decimal.Zero, readingNegative
	}
	return d, ""
}

func codeFor(readingErr string) string {
	if readingErr == readingNegative {
		return validator.CodeInvalidRange
	}
	return validator.CodeMissingReading
}

type OpenParams struct {
	ID         string
	StationID  string
	WorkerID   string
	WorkerName string
	DutyType   *string
	Date       string
	Prices     PriceSnapshot
	Pumps      []PumpReadingInput
	Now        time.Time
}

// Open validates every pump of a shift submission and returns the duty in the
// opened state. All invalid pumps are reported together.
func Open(p OpenParams) (Duty, error) {
	var errs validator.ValidationErrors

	if !p.Prices.Petrol.IsPositive() {
		errs = errs.Add("prices.petrol", validator.CodeInvalidAmount, "station petrol price must be greater than zero")
	}
	if !p.Prices.Diesel.IsPositive() {
		errs = errs.Add("prices.diesel", validator.CodeInvalidAmount, "station diesel price must be greater than zero")
	}
	if len(p.Pumps) == 0 {
		errs = errs.Add("pumps", validator.CodeRequired, "at least one pump reading is required")
	}
	if len(errs) > 0 {
		return Duty{}, errs
	}

	pumps := make([]PumpReading, 0, len(p.Pumps))
	for i, in := range p.Pumps {
		reading, pumpErrs := ValidatePumpReading(i, in, p.Prices)
		if len(pumpErrs) > 0 {
			errs = append(errs, pumpErrs...)
			continue
		}
		pumps = append(pumps, reading)
	}
	if len(errs) > 0 {
		return Duty{}, errs
	}

	petrol, diesel := SalesByFuel(pumps)

	return Duty{
		ID:          p.ID,
		StationID:   p.StationID,
		WorkerID:    p.WorkerID,
		WorkerName:  p.WorkerName,
		DutyType:    p.DutyType,
		Date:        p.Date,
		Status:      StatusOpened,
		Prices:      p.Prices,
		Pumps:       pumps,
		PetrolTotal: petrol,
		DieselTotal: diesel,
		TotalSales:  petrol.Add(diesel),
		OpenedAt:    p.Now,
	}, nil
}

// SalesByFuel sums pump amounts per fuel type.
func SalesByFuel(pumps []PumpReading) (petrol, diesel decimal.Decimal) {
	petrol, diesel = decimal.Zero, decimal.Zero
	for _, pump := range pumps {
		switch pump.FuelType {
		case FuelPetrol:
			petrol = petrol.Add(pump.Amount)
		case FuelDiesel:
			diesel = diesel.Add(pump.Amount)
		}
	}
	return petrol, diesel
}

// Close settles an opened duty against the collected payments. Closing is
// terminal; a closed duty always yields ErrDutyNotOpen.
func Close(d Duty, payments Payments, now time.Time) (Duty, error) {
	if d.Status != StatusOpened {
		return Duty{}, ErrDutyNotOpen
	}

	var errs validator.ValidationErrors
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"payments.cash", payments.Cash},
		{"payments.card", payments.Card},
		{"payments.online", payments.Online},
		{"payments.credit", payments.Credit},
		{"payments.testing", payments.Testing},
	} {
		if f.value.IsNegative() {
			errs = errs.Add(f.name, validator.CodeInvalidAmount, "must be non-negative")
		}
	}
	if len(errs) > 0 {
		return Duty{}, errs
	}
	if payments.Revenue().IsZero() {
		return Duty{}, validator.ValidationErrors{{
			Field:   "payments",
			Code:    validator.CodeNoPayment,
			Message: "at least one of cash, card, online or credit must be entered",
		}}
	}

	// Recompute from the pumps so the settlement never trusts stale totals.
	petrol, diesel := SalesByFuel(d.Pumps)
	d.PetrolTotal = petrol
	d.DieselTotal = diesel
	d.TotalSales = petrol.Add(diesel)

	d.Payments = payments
	d.TotalReceived = payments.Revenue().Sub(payments.Testing)
	d.Difference = d.TotalReceived.Sub(d.TotalSales)
	d.Status = StatusClosed
	submitted := now
	d.SubmittedAt = &submitted

	return d, nil
}
