package courier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courier_request_duration_seconds",
			Help:    "Duration of courier provider calls including retries",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "method", "result"},
	)

	ProviderRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courier_retries_total",
			Help: "Total number of retried courier provider calls",
		},
		[]string{"provider", "method"},
	)

	ProviderInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "courier_requests_in_flight",
			Help: "Courier provider calls currently holding a concurrency slot",
		},
		[]string{"provider"},
	)
)
