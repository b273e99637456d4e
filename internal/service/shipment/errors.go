package shipment

import "errors"

var (
	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrShipmentExists     = errors.New("shipment for order already exists")
	ErrNoCourierAvailable = errors.New("no courier covers destination for requested service")
	ErrNotBooked          = errors.New("shipment is not booked with a courier yet")
	ErrAlreadyBooked      = errors.New("shipment is already booked")
	ErrCancelRejected     = errors.New("courier refused to cancel shipment")
	ErrBookingInProgress  = errors.New("shipment booking is already in progress")
)
