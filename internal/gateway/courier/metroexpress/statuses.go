package metroexpress

import "fulfillment/internal/entities"

var statusTable = map[string]entities.ShipmentStatus{
	"Pending":                  entities.ShipmentBooked,
	"Order Created":            entities.ShipmentBooked,
	"Pickup Requested":         entities.ShipmentBooked,
	"Assigned for Pickup":      entities.ShipmentBooked,
	"Picked":                   entities.ShipmentPickedUp,
	"At the Sorting HUB":       entities.ShipmentInTransit,
	"In Transit":               entities.ShipmentInTransit,
	"Received at Last Mile":    entities.ShipmentInTransit,
	"Assigned for Delivery":    entities.ShipmentOutForDelivery,
	"Out for Delivery":         entities.ShipmentOutForDelivery,
	"Delivered":                entities.ShipmentDelivered,
	"Partial Delivery":         entities.ShipmentDelivered,
	"Delivery Failed":          entities.ShipmentFailedAttempt,
	"On Hold":                  entities.ShipmentFailedAttempt,
	"Return":                   entities.ShipmentReturned,
	"Returned to Merchant":     entities.ShipmentReturned,
	"Pickup Cancelled":         entities.ShipmentCancelled,
	"Cancelled by Merchant":    entities.ShipmentCancelled,
	"Cancelled by MetroXpress": entities.ShipmentCancelled,
}
