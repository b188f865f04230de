package settlement

import (
	"fmt"
	"time"
)

// DashboardCacheKey names the cached dashboard of one station day.
func DashboardCacheKey(stationID, date string) string {
	return fmt.Sprintf("dashboard:%s:%s", stationID, date)
}

// AffectedDashboardKeys lists every cached dashboard whose daily stats or trend
// window includes a duty dated date.
func AffectedDashboardKeys(stationID, date string) ([]string, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	keys := make([]string, TrendDays)
	for i := range TrendDays {
		keys[i] = DashboardCacheKey(stationID, day.AddDate(0, 0, i).Format(dateLayout))
	}
	return keys, nil
}
