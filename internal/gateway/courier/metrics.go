package courier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UnmappedStatusTotal считает сырые статусы, которых нет в таблице провайдера.
var UnmappedStatusTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "courier_unmapped_status_total",
		Help: "Total number of provider statuses mapped to unknown",
	},
	[]string{"provider", "raw_status"},
)
