package settlement

import (
	"github.com/shopspring/decimal"
)

// ========== DASHBOARD ==========

// DashboardResponse is what the admin dashboard renders for one day.
// It is also the value cached per station and date.
type DashboardResponse struct {
	Daily  DailyStatsResponse `json:"daily"`
	Weekly []DayTrendResponse `json:"weekly_trend"`
}

type PaymentBreakdownResponse struct {
	Cash   decimal.Decimal `json:"cash"`
	Card   decimal.Decimal `json:"card"`
	Online decimal.Decimal `json:"online"`
	Credit decimal.Decimal `json:"credit"`
}

type WorkerStatResponse struct {
	WorkerID string          `json:"worker_id"`
	Name     string          `json:"name"`
	Sales    decimal.Decimal `json:"sales"`
	Shortage decimal.Decimal `json:"shortage"`
	Excess   decimal.Decimal `json:"excess"`
	Duties   int             `json:"duties"`
}

type DailyStatsResponse struct {
	Date             string                   `json:"date"`
	TotalSales       decimal.Decimal          `json:"total_sales"`
	PetrolSales      decimal.Decimal          `json:"petrol_sales"`
	DieselSales      decimal.Decimal          `json:"diesel_sales"`
	TotalShortage    decimal.Decimal          `json:"total_shortage"`
	TotalExcess      decimal.Decimal          `json:"total_excess"`
	DutiesCount      int                      `json:"duties_count"`
	PaymentBreakdown PaymentBreakdownResponse `json:"payment_breakdown"`
	WorkerStats      []WorkerStatResponse     `json:"worker_stats"`
}

// ========== TREND ==========

type DayTrendResponse struct {
	Date   string          `json:"date"`
	Day    string          `json:"day"`
	Petrol decimal.Decimal `json:"petrol"`
	Diesel decimal.Decimal `json:"diesel"`
}

func NewDashboardResponse(daily DailyStats, trend []DayTrend) DashboardResponse {
	workers := make([]WorkerStatResponse, len(daily.WorkerStats))
	for i, w := range daily.WorkerStats {
		workers[i] = WorkerStatResponse{
			WorkerID: w.WorkerID,
			Name:     w.Name,
			Sales:    w.Sales.Round(2),
			Shortage: w.Shortage.Round(2),
			Excess:   w.Excess.Round(2),
			Duties:   w.Duties,
		}
	}

	weekly := make([]DayTrendResponse, len(trend))
	for i, d := range trend {
		weekly[i] = DayTrendResponse{
			Date:   d.Date,
			Day:    d.Day,
			Petrol: d.Petrol.Round(2),
			Diesel: d.Diesel.Round(2),
		}
	}

	pb := daily.PaymentBreakdown
	return DashboardResponse{
		Daily: DailyStatsResponse{
			Date:          daily.Date,
			TotalSales:    daily.TotalSales.Round(2),
			PetrolSales:   daily.PetrolSales.Round(2),
			DieselSales:   daily.DieselSales.Round(2),
			TotalShortage: daily.TotalShortage.Round(2),
			TotalExcess:   daily.TotalExcess.Round(2),
			DutiesCount:   daily.DutiesCount,
			PaymentBreakdown: PaymentBreakdownResponse{
				Cash:   pb.Cash.Round(2),
				Card:   pb.Card.Round(2),
				Online: pb.Online.Round(2),
				Credit: pb.Credit.Round(2),
			},
			WorkerStats: workers,
		},
		Weekly: weekly,
	}
}
