package parcelnet

import "fulfillment/internal/entities"

var statusTable = map[string]entities.ShipmentStatus{
	"parcel-created":          entities.ShipmentBooked,
	"pickup-pending":          entities.ShipmentBooked,
	"pickup-completed":        entities.ShipmentPickedUp,
	"sorting":                 entities.ShipmentInTransit,
	"in-transit":              entities.ShipmentInTransit,
	"received-at-destination": entities.ShipmentInTransit,
	"delivery-in-progress":    entities.ShipmentOutForDelivery,
	"delivered":               entities.ShipmentDelivered,
	"delivery-failed":         entities.ShipmentFailedAttempt,
	"rescheduled":             entities.ShipmentFailedAttempt,
	"return-in-progress":      entities.ShipmentInTransit,
	"returned":                entities.ShipmentReturned,
	"cancelled":               entities.ShipmentCancelled,
}
