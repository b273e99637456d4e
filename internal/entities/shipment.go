package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShipmentStatus string

const (
	ShipmentPending        ShipmentStatus = "pending"
	ShipmentBooked         ShipmentStatus = "booked"
	ShipmentPickedUp       ShipmentStatus = "picked_up"
	ShipmentInTransit      ShipmentStatus = "in_transit"
	ShipmentOutForDelivery ShipmentStatus = "out_for_delivery"
	ShipmentFailedAttempt  ShipmentStatus = "failed_attempt"
	ShipmentDelivered      ShipmentStatus = "delivered"
	ShipmentReturned       ShipmentStatus = "returned"
	ShipmentCancelled      ShipmentStatus = "cancelled"

	// ShipmentUnknown: статус провайдера, которого нет в таблице маппинга.
	// Сохраняется в истории, но никогда не двигает shipment.
	ShipmentUnknown ShipmentStatus = "unknown"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

func (s ShipmentStatus) IsTerminal() bool {
	switch s {
	case ShipmentDelivered, ShipmentReturned, ShipmentCancelled:
		return true
	default:
		return false
	}
}

// IsCanonical сообщает, что статус входит в каноничный словарь (unknown не входит).
func (s ShipmentStatus) IsCanonical() bool {
	switch s {
	case ShipmentPending, ShipmentBooked, ShipmentPickedUp, ShipmentInTransit,
		ShipmentOutForDelivery, ShipmentFailedAttempt, ShipmentDelivered,
		ShipmentReturned, ShipmentCancelled:
		return true
	default:
		return false
	}
}

// ActiveShipmentStatuses: статусы, по которым ещё опрашивается трекинг.
var ActiveShipmentStatuses = []ShipmentStatus{
	ShipmentBooked,
	ShipmentPickedUp,
	ShipmentInTransit,
	ShipmentOutForDelivery,
	ShipmentFailedAttempt,
}

type ServiceType string

const (
	ServiceStandard ServiceType = "standard"
	ServiceExpress  ServiceType = "express"
	ServiceSameDay  ServiceType = "same_day"
)

const DefaultServiceType = ServiceStandard

func (t ServiceType) String() string {
	return string(t)
}

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceStandard, ServiceExpress, ServiceSameDay:
		return true
	default:
		return false
	}
}

type ProviderID string

func (p ProviderID) String() string {
	return string(p)
}

type Address struct {
	Name       string `json:"name" validate:"required,max=128"`
	Phone      string `json:"phone" validate:"required,min=6,max=32"`
	Street     string `json:"street" validate:"required,max=256"`
	City       string `json:"city" validate:"required,max=64"`
	Region     string `json:"region" validate:"required,max=64"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=16"`
	Country    string `json:"country" validate:"required,len=2"`
}

type Package struct {
	WeightKg      float64         `json:"weight_kg" validate:"gt=0,lte=100"`
	LengthCm      float64         `json:"length_cm" validate:"gte=0,lte=300"`
	WidthCm       float64         `json:"width_cm" validate:"gte=0,lte=300"`
	HeightCm      float64         `json:"height_cm" validate:"gte=0,lte=300"`
	DeclaredValue decimal.Decimal `json:"declared_value" validate:"-"`
	Description   string          `json:"description" validate:"max=512"`
}

type Shipment struct {
	ID                uuid.UUID
	OrderID           string
	StoreID           string
	OrderAmount       decimal.Decimal
	CourierID         ProviderID
	TrackingNumber    string
	ServiceType       ServiceType
	Status            ShipmentStatus
	OriginCity        string
	DeliveryAddress   Address
	Package           Package
	TrackingEvents    []TrackingEvent
	FailedAttempts    int
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ShipmentModify struct {
	ID             *uuid.UUID
	Status         *ShipmentStatus
	FailedAttempts *int
	UpdatedAt      *time.Time
}

// ShipmentCreate: данные заказа, которые отдаёт order-subsystem при создании отправки.
type ShipmentCreate struct {
	OrderID         string          `json:"order_id" validate:"required,max=64"`
	StoreID         string          `json:"store_id" validate:"required,max=64"`
	OrderAmount     decimal.Decimal `json:"order_amount" validate:"-"`
	ServiceType     ServiceType     `json:"service_type" validate:"required,oneof=standard express same_day"`
	OriginCity      string          `json:"origin_city" validate:"required,max=64"`
	CourierID       ProviderID      `json:"courier_id" validate:"omitempty,max=32"`
	DeliveryAddress Address         `json:"delivery_address"`
	Package         Package         `json:"package"`
}

type TrackingEvent struct {
	Seq         int64
	ShipmentID  uuid.UUID
	Timestamp   time.Time
	Status      ShipmentStatus
	RawStatus   string
	Location    string
	Description string
	Agent       string
	Remarks     string
	ReceivedAt  time.Time
}

// EventKey: идентичность события для дедупликации при повторном опросе.
type EventKey struct {
	Timestamp int64
	RawStatus string
	Location  string
}

func (e TrackingEvent) Key() EventKey {
	return EventKey{
		Timestamp: e.Timestamp.UTC().UnixMicro(),
		RawStatus: e.RawStatus,
		Location:  e.Location,
	}
}

// ShipmentRequest: каноничный запрос на бронирование у провайдера.
type ShipmentRequest struct {
	OrderID         string
	ServiceType     ServiceType
	OriginCity      string
	DeliveryAddress Address
	Package         Package
	CashOnDelivery  decimal.Decimal
}

type ProviderBooking struct {
	TrackingNumber string
	ProviderRef    string
	Status         ShipmentStatus
	Fee            decimal.Decimal
}

type RateQuote struct {
	ProviderID  ProviderID
	ServiceType ServiceType
	DistanceKm  float64
	Rate        decimal.Decimal
}

type ProviderInfo struct {
	ID                  ProviderID
	Coverage            []string
	Services            []ServiceType
	SupportsBalance     bool
	MaxDeliveryAttempts int
}

// IngestResult: итог применения пачки событий трекинга к shipment.
type IngestResult struct {
	Shipment *Shipment
	Appended int64
	Previous ShipmentStatus
	Current  ShipmentStatus
}

func (r IngestResult) Changed() bool {
	return r.Previous != r.Current
}

// PollSummary: итог одного прохода фонового опроса активных shipment.
type PollSummary struct {
	Polled  int64
	Failed  int64
	Changed int64
}
