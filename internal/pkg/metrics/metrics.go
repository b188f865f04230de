package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Technical metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	ResponseTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_time_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
	}, []string{"method", "path"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_cache_lookups_total",
		Help: "Dashboard cache lookups by result",
	}, []string{"result"})

	// Business metrics
	DutiesOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duties_opened_total",
		Help: "Total number of duties opened",
	})

	DutiesClosed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "duties_closed_total",
		Help: "Total number of duties settled, by outcome",
	}, []string{"outcome"})

	StaleOpenDuties = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "duties_stale_open",
		Help: "Duties still opened past the configured stale threshold",
	})

	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Login attempts by result",
	}, []string{"result"})
)

// Outcome labels a settled difference.
func Outcome(sign int) string {
	switch {
	case sign < 0:
		return "shortage"
	case sign > 0:
		return "excess"
	}
	return "balanced"
}
