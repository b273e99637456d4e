package background

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	taskRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "background_task_runs_total",
			Help: "Total number of background task runs by result",
		},
		[]string{"task", "result"},
	)

	taskRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "background_task_run_duration_seconds",
			Help:    "Duration of background task runs",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"task"},
	)
)
