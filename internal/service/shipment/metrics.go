package shipment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsBookedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipments_booked_total",
			Help: "Total number of shipments booked with a courier",
		},
		[]string{"provider", "service_type"},
	)

	BookingsDiscardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_bookings_discarded_total",
			Help: "Courier bookings that could not be persisted, by outcome of the courier-side cancel",
		},
		[]string{"provider", "outcome"},
	)

	ShipmentTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_transitions_total",
			Help: "Total number of shipment status transitions",
		},
		[]string{"from", "to", "source"},
	)
)
