package station

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default fuel prices for a newly registered station (per liter).
var (
	DefaultPetrolPrice = decimal.RequireFromString("106.50")
	DefaultDieselPrice = decimal.RequireFromString("94.80")
)

type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// Prices is the per-liter price list. A duty keeps its own copy taken when it
// was opened, so later changes here never reach past settlements.
type Prices struct {
	Petrol decimal.Decimal `json:"petrol"`
	Diesel decimal.Decimal `json:"diesel"`
}

type Station struct {
	ID        string
	Name      string
	Brand     string
	Address   string
	Theme     Theme
	Prices    Prices
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ThemeForBrand returns the brand colours, falling back to custom (or the
// default blue) for brands without a house style.
func ThemeForBrand(brand string, custom *string) Theme {
	switch brand {
	case "Indian Oil":
		return Theme{PrimaryColor: "#003c7e", SecondaryColor: "#ff6600"}
	case "HP":
		return Theme{PrimaryColor: "#0066cc", SecondaryColor: "#e31e24"}
	case "BP":
		return Theme{PrimaryColor: "#00923f", SecondaryColor: "#ffed00"}
	}
	primary := "#1e40af"
	if custom != nil && *custom != "" {
		primary = *custom
	}
	return Theme{PrimaryColor: primary, SecondaryColor: "#f59e0b"}
}
