package duty

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// rawFields decodes a JSON object into its raw members.
type rawFields map[string]json.RawMessage

// pick returns the first present alias as text. Strings are unquoted, numbers
// are kept verbatim, null yields "". Anything else is returned raw so numeric
// parsing rejects it later.
func (f rawFields) pick(keys ...string) string {
	for _, k := range keys {
		raw, ok := f[k]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || string(raw) == "null" {
			return ""
		}
		if raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				return s
			}
		}
		return string(raw)
	}
	return ""
}

// PumpReadingRequest accepts the field spellings older clients send.
type PumpReadingRequest struct {
	PumpReadingInput
}

func (p *PumpReadingRequest) UnmarshalJSON(data []byte) error {
	var f rawFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	p.PumpReadingInput = PumpReadingInput{
		PumpNumber: f.pick("pumpNumber", "pump_number", "pumpNo", "pump"),
		FuelType:   f.pick("fuelType", "fuel_type", "fuel"),
		Opening:    f.pick("opening", "openingReading", "opening_reading"),
		Closing:    f.pick("closing", "closingReading", "closing_reading"),
	}
	return nil
}

type OpenDutyRequest struct {
	Pumps []PumpReadingRequest
}

func (r *OpenDutyRequest) UnmarshalJSON(data []byte) error {
	var f rawFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	for _, k := range []string{"pumps", "pumpReadings", "pump_readings"} {
		if raw, ok := f[k]; ok && string(bytes.TrimSpace(raw)) != "null" {
			return json.Unmarshal(raw, &r.Pumps)
		}
	}
	return nil
}

func (r OpenDutyRequest) Inputs() []PumpReadingInput {
	inputs := make([]PumpReadingInput, len(r.Pumps))
	for i, p := range r.Pumps {
		inputs[i] = p.PumpReadingInput
	}
	return inputs
}

// CloseDutyRequest carries payment amounts as text until Payments parses them.
type CloseDutyRequest struct {
	DutyID  string `json:"-"`
	Cash    string
	Card    string
	Online  string
	Credit  string
	Testing string
}

func (r *CloseDutyRequest) UnmarshalJSON(data []byte) error {
	var f rawFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	// Payments may be nested under "payments" or sent flat.
	if raw, ok := f["payments"]; ok && len(raw) > 0 && raw[0] == '{' {
		var nested rawFields
		if err := json.Unmarshal(raw, &nested); err != nil {
			return err
		}
		f = nested
	}
	r.Cash = f.pick("cash", "cashAmount", "cash_amount")
	r.Card = f.pick("card", "cardAmount", "card_amount")
	r.Online = f.pick("online", "onlineAmount", "online_amount", "upi")
	r.Credit = f.pick("credit", "creditAmount", "credit_amount")
	r.Testing = f.pick("testing", "testingAmount", "testing_amount")
	return nil
}

// Payments parses the amounts. Blank means zero; non-numeric is invalid_amount.
func (r CloseDutyRequest) Payments() (Payments, error) {
	var errs validator.ValidationErrors
	parse := func(field, s string) decimal.Decimal {
		s = strings.TrimSpace(s)
		if s == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			errs = errs.Add("payments."+field, validator.CodeInvalidAmount, "must be a number")
			return decimal.Zero
		}
		return d
	}
	p := Payments{
		Cash:    parse("cash", r.Cash),
		Card:    parse("card", r.Card),
		Online:  parse("online", r.Online),
		Credit:  parse("credit", r.Credit),
		Testing: parse("testing", r.Testing),
	}
	return p, errs.OrNil()
}

type ListDutiesFilter struct {
	Date     *string
	Month    *string
	WorkerID *string
	Status   *string
}

func (f *ListDutiesFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = errs.Add("date", validator.CodeInvalid, "must be in YYYY-MM-DD format")
		}
	}
	if f.Month != nil {
		if _, ok := validator.IsValidMonth(*f.Month); !ok {
			errs = errs.Add("month", validator.CodeInvalid, "must be in YYYY-MM format")
		}
	}
	if f.WorkerID != nil && !validator.IsValidUUID(*f.WorkerID) {
		errs = errs.Add("worker_id", validator.CodeInvalid, "must be a valid worker ID")
	}
	if f.Status != nil && *f.Status != string(StatusOpened) && *f.Status != string(StatusClosed) {
		errs = errs.Add("status", validator.CodeInvalid, "must be 'opened' or 'closed'")
	}

	return errs.OrNil()
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

type PumpReadingResponse struct {
	PumpNumber string          `json:"pump_number"`
	FuelType   FuelType        `json:"fuel_type"`
	Opening    decimal.Decimal `json:"opening"`
	Closing    decimal.Decimal `json:"closing"`
	Liters     decimal.Decimal `json:"liters"`
	Amount     decimal.Decimal `json:"amount"`
}

type PaymentsResponse struct {
	Cash    decimal.Decimal `json:"cash"`
	Card    decimal.Decimal `json:"card"`
	Online  decimal.Decimal `json:"online"`
	Credit  decimal.Decimal `json:"credit"`
	Testing decimal.Decimal `json:"testing"`
}

type DutyResponse struct {
	ID            string                `json:"id"`
	WorkerID      string                `json:"worker_id"`
	WorkerName    string                `json:"worker_name"`
	DutyType      *string               `json:"duty_type,omitempty"`
	Date          string                `json:"date"`
	Status        Status                `json:"status"`
	Prices        PriceSnapshot         `json:"prices"`
	Pumps         []PumpReadingResponse `json:"pumps"`
	PetrolTotal   decimal.Decimal       `json:"petrol_total"`
	DieselTotal   decimal.Decimal       `json:"diesel_total"`
	TotalSales    decimal.Decimal       `json:"total_sales"`
	Payments      *PaymentsResponse     `json:"payments,omitempty"`
	TotalReceived *decimal.Decimal      `json:"total_received,omitempty"`
	Difference    *decimal.Decimal      `json:"difference,omitempty"`
	OpenedAt      time.Time             `json:"opened_at"`
	SubmittedAt   *time.Time            `json:"submitted_at,omitempty"`
}

// NewDutyResponse renders a duty with money and liters rounded to 2 places.
// Settlement fields are only present once the duty is closed.
func NewDutyResponse(d Duty) DutyResponse {
	pumps := make([]PumpReadingResponse, len(d.Pumps))
	for i, p := range d.Pumps {
		pumps[i] = PumpReadingResponse{
			PumpNumber: p.PumpNumber,
			FuelType:   p.FuelType,
			Opening:    p.Opening,
			Closing:    p.Closing,
			Liters:     round2(p.Liters),
			Amount:     round2(p.Amount),
		}
	}

	resp := DutyResponse{
		ID:          d.ID,
		WorkerID:    d.WorkerID,
		WorkerName:  d.WorkerName,
		DutyType:    d.DutyType,
		Date:        d.Date,
		Status:      d.Status,
		Prices:      d.Prices,
		Pumps:       pumps,
		PetrolTotal: round2(d.PetrolTotal),
		DieselTotal: round2(d.DieselTotal),
		TotalSales:  round2(d.TotalSales),
		OpenedAt:    d.OpenedAt,
		SubmittedAt: d.SubmittedAt,
	}

	if d.IsClosed() {
		received := round2(d.TotalReceived)
		difference := round2(d.Difference)
		resp.TotalReceived = &received
		resp.Difference = &difference
		resp.Payments = &PaymentsResponse{
			Cash:    round2(d.Payments.Cash),
			Card:    round2(d.Payments.Card),
			Online:  round2(d.Payments.Online),
			Credit:  round2(d.Payments.Credit),
			Testing: round2(d.Payments.Testing),
		}
	}

	return resp
}

func NewDutyResponses(duties []Duty) []DutyResponse {
	out := make([]DutyResponse, len(duties))
	for i, d := range duties {
		out[i] = NewDutyResponse(d)
	}
	return out
}
