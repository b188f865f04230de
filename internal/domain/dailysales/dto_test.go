package dailysales

import (
	"testing"

	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceItems(t *testing.T) {
	items, total := PriceItems([]ItemRequest{
		{Name: "Engine oil 1L", Quantity: decimal.NewFromInt(3), Price: decimal.RequireFromString("349.50")},
		{Name: "Coolant", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(220)},
	})

	require.Len(t, items, 2)
	assert.True(t, items[0].Total.Equal(decimal.RequireFromString("1048.5")))
	assert.True(t, total.Equal(decimal.RequireFromString("1268.5")))
}

func TestCreateDailySalesRequest_Validate(t *testing.T) {
	req := CreateDailySalesRequest{Items: []ItemRequest{
		{Name: " ", Quantity: decimal.Zero, Price: decimal.NewFromInt(-1)},
	}}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "items[0].name")
	assert.Contains(t, m, "items[0].quantity")
	assert.Contains(t, m, "items[0].price")

	assert.Error(t, (&CreateDailySalesRequest{}).Validate())
}
