package dailysales

import (
	"fmt"
	"strings"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ItemRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type CreateDailySalesRequest struct {
	Date  *string       `json:"date,omitempty"`
	Items []ItemRequest `json:"items"`
}

func (r *CreateDailySalesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = errs.Add("date", validator.CodeInvalid, "must be in YYYY-MM-DD format")
		}
	}
	if len(r.Items) == 0 {
		errs = errs.Add("items", validator.CodeRequired, "at least one item is required")
	}
	for i := range r.Items {
		item := &r.Items[i]
		item.Name = strings.TrimSpace(item.Name)
		prefix := fmt.Sprintf("items[%d]", i)
		if item.Name == "" {
			errs = errs.Add(prefix+".name", validator.CodeRequired, "is required")
		}
		if !item.Quantity.IsPositive() {
			errs = errs.Add(prefix+".quantity", validator.CodeInvalidAmount, "must be greater than zero")
		}
		if item.Price.IsNegative() {
			errs = errs.Add(prefix+".price", validator.CodeInvalidAmount, "must be non-negative")
		}
	}

	return errs.OrNil()
}

// PriceItems computes each line total and the sheet total.
func PriceItems(in []ItemRequest) ([]Item, decimal.Decimal) {
	items := make([]Item, len(in))
	total := decimal.Zero
	for i, it := range in {
		line := it.Quantity.Mul(it.Price)
		items[i] = Item{Name: it.Name, Quantity: it.Quantity, Price: it.Price, Total: line}
		total = total.Add(line)
	}
	return items, total
}

type ListFilter struct {
	Date  *string
	Month *string
}

func (f *ListFilter) Validate() error {
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

	return errs.OrNil()
}

type DailySalesResponse struct {
	ID          string          `json:"id"`
	ManagerID   string          `json:"manager_id"`
	ManagerName string          `json:"manager_name,omitempty"`
	Date        string          `json:"date"`
	Items       []Item          `json:"items"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewDailySalesResponse(s DailySales) DailySalesResponse {
	items := make([]Item, len(s.Items))
	for i, it := range s.Items {
		it.Total = it.Total.Round(2)
		items[i] = it
	}
	return DailySalesResponse{
		ID:          s.ID,
		ManagerID:   s.ManagerID,
		ManagerName: s.ManagerName,
		Date:        s.Date,
		Items:       items,
		Total:       s.Total.Round(2),
		CreatedAt:   s.CreatedAt,
	}
}
