package shipment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShipmentDB struct {
	ID                uuid.UUID
	OrderID           string
	StoreID           string
	OrderAmount       decimal.Decimal
	CourierID         string
	TrackingNumber    *string
	ServiceType       string
	Status            string
	OriginCity        string
	DeliveryAddress   []byte
	Package           []byte
	FailedAttempts    int
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ShipmentModifyDB struct {
	ID             *uuid.UUID
	Status         *string
	FailedAttempts *int
	UpdatedAt      *time.Time
}
