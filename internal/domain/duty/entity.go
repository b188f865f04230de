package duty

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type FuelType string

const (
	FuelPetrol FuelType = "Petrol"
	FuelDiesel FuelType = "Diesel"
)

// ParseFuelType accepts any casing of "petrol" or "diesel".
func ParseFuelType(s string) (FuelType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "petrol":
		return FuelPetrol, true
	case "diesel":
		return FuelDiesel, true
	}
	return "", false
}

// Status is the explicit lifecycle tag of a duty: opened -> closed, closed is terminal.
type Status string

const (
	StatusOpened Status = "opened"
	StatusClosed Status = "closed"
)

// PriceSnapshot is the station price list captured when the duty was opened.
type PriceSnapshot struct {
	Petrol decimal.Decimal `json:"petrol"`
	Diesel decimal.Decimal `json:"diesel"`
}

func (p PriceSnapshot) For(f FuelType) decimal.Decimal {
	if f == FuelDiesel {
		return p.Diesel
	}
	return p.Petrol
}

// PumpReading is one validated meter pair. Liters and Amount are kept
// unrounded; rounding happens only when rendering a response.
type PumpReading struct {
	PumpNumber string          `json:"pump_number"`
	FuelType   FuelType        `json:"fuel_type"`
	Opening    decimal.Decimal `json:"opening"`
	Closing    decimal.Decimal `json:"closing"`
	Liters     decimal.Decimal `json:"liters"`
	Amount     decimal.Decimal `json:"amount"`
}

// Payments collected during a shift. Testing is the value of fuel dispensed for
// mandatory quality tests and is deducted from revenue.
type Payments struct {
	Cash    decimal.Decimal `json:"cash"`
	Card    decimal.Decimal `json:"card"`
	Online  decimal.Decimal `json:"online"`
	Credit  decimal.Decimal `json:"credit"`
	Testing decimal.Decimal `json:"testing"`
}

// Revenue is the sum of the four customer payment channels.
func (p Payments) Revenue() decimal.Decimal {
	return p.Cash.Add(p.Card).Add(p.Online).Add(p.Credit)
}

// Duty is one worker shift and its settlement.
type Duty struct {
	ID            string
	StationID     string
	WorkerID      string
	WorkerName    string
	DutyType      *string
	Date          string // YYYY-MM-DD in the station time zone
	Status        Status
	Prices        PriceSnapshot
	Pumps         []PumpReading
	PetrolTotal   decimal.Decimal
	DieselTotal   decimal.Decimal
	TotalSales    decimal.Decimal
	Payments      Payments
	TotalReceived decimal.Decimal
	Difference    decimal.Decimal
	OpenedAt      time.Time
	SubmittedAt   *time.Time
}

func (d Duty) IsClosed() bool {
	return d.Status == StatusClosed
}

// Shortage is |Difference| when the worker collected less than sold, else zero.
func (d Duty) Shortage() decimal.Decimal {
	if d.Difference.IsNegative() {
		return d.Difference.Abs()
	}
	return decimal.Zero
}

// Excess is Difference when the worker collected more than sold, else zero.
func (d Duty) Excess() decimal.Decimal {
	if d.Difference.IsPositive() {
		return d.Difference
	}
	return decimal.Zero
}
