package duty

import (
	"testing"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPrices = PriceSnapshot{
	Petrol: decimal.NewFromInt(100),
	Diesel: decimal.NewFromFloat(94.8),
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func openDuty(t *testing.T, pumps ...PumpReadingInput) Duty {
	t.Helper()
	d, err := Open(OpenParams{
		ID:         "duty-1",
		StationID:  "station-1",
		WorkerID:   "worker-1",
		WorkerName: "Ravi",
		Date:       "2025-03-10",
		Prices:     testPrices,
		Pumps:      pumps,
		Now:        time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return d
}

func TestValidatePumpReading(t *testing.T) {
	cases := []struct {
		name     string
		in       PumpReadingInput
		wantCode string
		liters   string
		amount   string
	}{
		{"petrol", PumpReadingInput{"1", "Petrol", "1000", "1050"}, "", "50", "5000"},
		{"diesel lowercase", PumpReadingInput{"2", "diesel", "200.5", "210.5"}, "", "10", "948"},
		{"equal readings", PumpReadingInput{"1", "PETROL", "10", "10"}, "", "0", "0"},
		{"missing opening", PumpReadingInput{"1", "Petrol", "", "10"}, validator.CodeMissingReading, "", ""},
		{"non numeric closing", PumpReadingInput{"1", "Petrol", "10", "abc"}, validator.CodeMissingReading, "", ""},
		{"negative opening", PumpReadingInput{"1", "Petrol", "-1", "10"}, validator.CodeInvalidRange, "", ""},
		{"closing below opening", PumpReadingInput{"1", "Petrol", "100", "99.99"}, validator.CodeInvalidRange, "", ""},
		{"unknown fuel", PumpReadingInput{"1", "kerosene", "1", "2"}, validator.CodeInvalidFuelType, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, errs := ValidatePumpReading(0, tc.in, testPrices)
			if tc.wantCode != "" {
				require.NotEmpty(t, errs)
				assert.True(t, errs.HasCode(tc.wantCode), "errors: %v", errs)
				return
			}
			require.Empty(t, errs)
			assert.True(t, got.Liters.Equal(dec(tc.liters)), "liters = %s", got.Liters)
			assert.True(t, got.Amount.Equal(dec(tc.amount)), "amount = %s", got.Amount)
		})
	}
}

func TestValidatePumpReading_DefaultsPumpNumber(t *testing.T) {
	got, errs := ValidatePumpReading(2, PumpReadingInput{FuelType: "Petrol", Opening: "1", Closing: "2"}, testPrices)
	require.Empty(t, errs)
	assert.Equal(t, "3", got.PumpNumber)
}

func TestOpen_ComputesTotals(t *testing.T) {
	d := openDuty(t,
		PumpReadingInput{"1", "Petrol", "1000", "1050"},
		PumpReadingInput{"2", "Diesel", "500", "510"},
	)

	assert.Equal(t, StatusOpened, d.Status)
	assert.True(t, d.PetrolTotal.Equal(dec("5000")))
	assert.True(t, d.DieselTotal.Equal(dec("948")))
	assert.True(t, d.TotalSales.Equal(d.PetrolTotal.Add(d.DieselTotal)))
	assert.Nil(t, d.SubmittedAt)
}

func TestOpen_ReportsEveryInvalidPump(t *testing.T) {
	_, err := Open(OpenParams{
		Prices: testPrices,
		Pumps: []PumpReadingInput{
			{"1", "Petrol", "100", "90"},
			{"2", "Petrol", "100", "110"},
			{"3", "Diesel", "50", "40"},
		},
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	assert.Equal(t, "pumps[0].closing", errs[0].Field)
	assert.Equal(t, "pumps[2].closing", errs[1].Field)
}

func TestOpen_RequiresPumpsAndPrices(t *testing.T) {
	_, err := Open(OpenParams{Prices: PriceSnapshot{Petrol: decimal.Zero, Diesel: decimal.NewFromInt(90)}})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "prices.petrol")
	assert.Contains(t, m, "pumps")
}

func TestClose_Excess(t *testing.T) {
	d := openDuty(t, PumpReadingInput{"1", "Petrol", "1000", "1050"})
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	closed, err := Close(d, Payments{Cash: dec("5200")}, now)
	require.NoError(t, err)

	assert.Equal(t, StatusClosed, closed.Status)
	assert.True(t, closed.Pumps[0].Liters.Equal(dec("50")))
	assert.True(t, closed.TotalSales.Equal(dec("5000")))
	assert.True(t, closed.TotalReceived.Equal(dec("5200")))
	assert.True(t, closed.Difference.Equal(dec("200")))
	assert.True(t, closed.Excess().Equal(dec("200")))
	assert.True(t, closed.Shortage().IsZero())
	require.NotNil(t, closed.SubmittedAt)
	assert.Equal(t, now, *closed.SubmittedAt)
}

func TestClose_Shortage(t *testing.T) {
	d := openDuty(t, PumpReadingInput{"1", "Petrol", "1000", "1050"})

	closed, err := Close(d, Payments{Cash: dec("4800")}, time.Now())
	require.NoError(t, err)

	assert.True(t, closed.Difference.Equal(dec("-200")))
	assert.True(t, closed.Shortage().Equal(dec("200")))
}

func TestClose_TestingDeducted(t *testing.T) {
	d := openDuty(t, PumpReadingInput{"1", "Petrol", "0", "10.005"})

	closed, err := Close(d, Payments{
		Cash:    dec("500.10"),
		Card:    dec("300"),
		Online:  dec("150.25"),
		Credit:  dec("50"),
		Testing: dec("100"),
	}, time.Now())
	require.NoError(t, err)

	assert.True(t, closed.TotalSales.Equal(dec("1000.5")))
	assert.True(t, closed.TotalReceived.Equal(dec("900.35")))
	assert.True(t, closed.Difference.Equal(closed.TotalReceived.Sub(closed.TotalSales)))
	assert.True(t, closed.Difference.Equal(dec("-100.15")))
}

func TestClose_AlreadyClosed(t *testing.T) {
	d := openDuty(t, PumpReadingInput{"1", "Petrol", "1000", "1050"})
	closed, err := Close(d, Payments{Cash: dec("5000")}, time.Now())
	require.NoError(t, err)

	for _, p := range []Payments{{Cash: dec("5000")}, {}, {Cash: dec("-1")}} {
		_, err = Close(closed, p, time.Now())
		assert.ErrorIs(t, err, ErrDutyNotOpen)
	}
}

func TestClose_PaymentValidation(t *testing.T) {
	d := openDuty(t, PumpReadingInput{"1", "Petrol", "1000", "1050"})

	cases := []struct {
		name     string
		payments Payments
		wantCode string
	}{
		{"no payment", Payments{}, validator.CodeNoPayment},
		{"only testing", Payments{Testing: dec("100")}, validator.CodeNoPayment},
		{"negative card", Payments{Cash: dec("10"), Card: dec("-5")}, validator.CodeInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Close(d, tc.payments, time.Now())
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.True(t, errs.HasCode(tc.wantCode))
		})
	}
}

func TestClose_ZeroSalesShift(t *testing.T) {
	d := openDuty(t, PumpReadingInput{"1", "Diesel", "10", "10"})

	closed, err := Close(d, Payments{Online: dec("25")}, time.Now())
	require.NoError(t, err)
	assert.True(t, closed.TotalSales.IsZero())
	assert.True(t, closed.Difference.Equal(dec("25")))
}
