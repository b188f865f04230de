package settlement

import (
	"fmt"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// TrendDays is the length of the sales trend window ending on the requested day.
const TrendDays = 7

type PaymentBreakdown struct {
	Cash   decimal.Decimal
	Card   decimal.Decimal
	Online decimal.Decimal
	Credit decimal.Decimal
}

type WorkerStat struct {
	WorkerID string
	Name     string
	Sales    decimal.Decimal
	Shortage decimal.Decimal
	Excess   decimal.Decimal
	Duties   int
}

type DailyStats struct {
	Date             string
	TotalSales       decimal.Decimal
	PetrolSales      decimal.Decimal
	DieselSales      decimal.Decimal
	TotalShortage    decimal.Decimal
	TotalExcess      decimal.Decimal
	DutiesCount      int
	PaymentBreakdown PaymentBreakdown
	WorkerStats      []WorkerStat
}

type DayTrend struct {
	Date   string
	Day    string // Mon, Tue, ...
	Petrol decimal.Decimal
	Diesel decimal.Decimal
}

// BuildDailyStats folds the closed duties of one calendar day. Open duties have no
// settlement yet and are skipped. A worker with several duties gets one
// summed WorkerStat, positioned where the worker first appears in duties.
func BuildDailyStats(duties []duty.Duty, date string) DailyStats {
	stats := DailyStats{
		Date:          date,
		TotalSales:    decimal.Zero,
		PetrolSales:   decimal.Zero,
		DieselSales:   decimal.Zero,
		TotalShortage: decimal.Zero,
		TotalExcess:   decimal.Zero,
		PaymentBreakdown: PaymentBreakdown{
			Cash:   decimal.Zero,
			Card:   decimal.Zero,
			Online: decimal.Zero,
			Credit: decimal.Zero,
		},
		WorkerStats: []WorkerStat{},
	}
	index := make(map[string]int)

	for _, d := range duties {
		if d.Date != date || !d.IsClosed() {
			continue
		}

		stats.DutiesCount++
		stats.TotalSales = stats.TotalSales.Add(d.TotalSales)
		stats.PetrolSales = stats.PetrolSales.Add(d.PetrolTotal)
		stats.DieselSales = stats.DieselSales.Add(d.DieselTotal)
		stats.TotalShortage = stats.TotalShortage.Add(d.Shortage())
		stats.TotalExcess = stats.TotalExcess.Add(d.Excess())

		pb := &stats.PaymentBreakdown
		pb.Cash = pb.Cash.Add(d.Payments.Cash)
		pb.Card = pb.Card.Add(d.Payments.Card)
		pb.Online = pb.Online.Add(d.Payments.Online)
		pb.Credit = pb.Credit.Add(d.Payments.Credit)

		i, ok := index[d.WorkerID]
		if !ok {
			i = len(stats.WorkerStats)
			index[d.WorkerID] = i
			stats.WorkerStats = append(stats.WorkerStats, WorkerStat{
				WorkerID: d.WorkerID,
				Name:     d.WorkerName,
				Sales:    decimal.Zero,
				Shortage: decimal.Zero,
				Excess:   decimal.Zero,
			})
		}
		ws := &stats.WorkerStats[i]
		ws.Sales = ws.Sales.Add(d.TotalSales)
		ws.Shortage = ws.Shortage.Add(d.Shortage())
		ws.Excess = ws.Excess.Add(d.Excess())
		ws.Duties++
	}

	return stats
}

// WindowStart returns the first day of the trend window ending on endDate.
func WindowStart(endDate string) (string, error) {
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return "", fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	return end.AddDate(0, 0, -(TrendDays - 1)).Format(dateLayout), nil
}

// WeeklyTrend returns exactly TrendDays entries, oldest first, ending on
// endDate. Days without closed duties are zero.
func WeeklyTrend(duties []duty.Duty, endDate string) ([]DayTrend, error) {
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	trend := make([]DayTrend, TrendDays)
	index := make(map[string]int, TrendDays)
	for i := range TrendDays {
		day := end.AddDate(0, 0, i-(TrendDays-1))
		key := day.Format(dateLayout)
		trend[i] = DayTrend{
			Date:   key,
			Day:    day.Weekday().String()[:3],
			Petrol: decimal.Zero,
			Diesel: decimal.Zero,
		}
		index[key] = i
	}

	for _, d := range duties {
		if !d.IsClosed() {
			continue
		}
		i, ok := index[d.Date]
		if !ok {
			continue
		}
		trend[i].Petrol = trend[i].Petrol.Add(d.PetrolTotal)
		trend[i].Diesel = trend[i].Diesel.Add(d.DieselTotal)
	}

	return trend, nil
}
