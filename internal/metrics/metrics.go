package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wms_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wms_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// StockMutationsTotal counts stock mutations by mode and outcome ("applied", "rejected", "failed").
	StockMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wms_stock_mutations_total",
			Help: "Stock mutations submitted, by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)
)
