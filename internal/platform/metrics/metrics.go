package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's prometheus collectors.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	LatestRateRequestsTotal prometheus.Counter
	HistoricalRequestsTotal prometheus.Counter
	ConversionRequestsTotal prometheus.Counter
}

// NewMetrics registers and returns the service's collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		LatestRateRequestsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "latest_rate_requests_total",
				Help: "Total number of latest exchange rate requests",
			},
		),

		HistoricalRequestsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "historical_rate_requests_total",
				Help: "Total number of historical exchange rate requests",
			},
		),

		ConversionRequestsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "conversion_requests_total",
				Help: "Total number of currency conversion requests",
			},
		),
	}
}
