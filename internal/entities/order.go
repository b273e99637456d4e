package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string
	StoreID         string
	Status          OrderStatusType
	Amount          decimal.Decimal
	ServiceType     ServiceType
	OriginCity      string
	DeliveryAddress Address
	Package         Package
	CreatedAt       time.Time
}

type OrderStatusType string

const (
	OrderReadyToShip OrderStatusType = "ready_to_ship"
	OrderCancelled   OrderStatusType = "cancelled"
	OrderCompleted   OrderStatusType = "completed"
	OrderRefunded    OrderStatusType = "refunded"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID        *string
	Status    *OrderStatusType
	CreatedAt *time.Time
}
