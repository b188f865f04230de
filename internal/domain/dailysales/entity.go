package dailysales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a non-fuel product line (oil cans, coolant, air fresheners).
type Item struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

type DailySales struct {
	ID          string
	StationID   string
	ManagerID   string
	ManagerName string
	Date        string
	Items       []Item
	Total       decimal.Decimal
	CreatedAt   time.Time
}
