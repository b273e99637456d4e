package rapidpost

import "fulfillment/internal/entities"

// statusTable - все известные статусы RapidPost. Остальное считается unknown.
var statusTable = map[string]entities.ShipmentStatus{
	"in_review":             entities.ShipmentBooked,
	"pending":               entities.ShipmentBooked,
	"approval_pending":      entities.ShipmentBooked,
	"picked":                entities.ShipmentPickedUp,
	"in_transit":            entities.ShipmentInTransit,
	"at_hub":                entities.ShipmentInTransit,
	"out_for_delivery":      entities.ShipmentOutForDelivery,
	"delivered":             entities.ShipmentDelivered,
	"partial_delivered":     entities.ShipmentDelivered,
	"delivery_failed":       entities.ShipmentFailedAttempt,
	"customer_unreachable":  entities.ShipmentFailedAttempt,
	"returned":              entities.ShipmentReturned,
	"returned_to_merchant":  entities.ShipmentReturned,
	"cancelled":             entities.ShipmentCancelled,
	"cancelled_by_merchant": entities.ShipmentCancelled,
}
