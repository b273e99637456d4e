//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, shipment entities.Shipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Shipment, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Shipment, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Shipment, error)
	ClaimBooking(ctx context.Context, id uuid.UUID, claimedAt time.Time, staleBefore time.Time) error
	ReleaseBooking(ctx context.Context, id uuid.UUID) error
	SetBooked(ctx context.Context, id uuid.UUID, trackingNumber string, estimatedDelivery time.Time, updatedAt time.Time) error
	Update(ctx context.Context, shipmentModify entities.ShipmentModify) error
	ListActive(ctx context.Context, statuses []entities.ShipmentStatus) ([]entities.Shipment, error)
}

type EventRepository interface {
	ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]entities.TrackingEvent, error)
	Append(ctx context.Context, shipmentID uuid.UUID, events []entities.TrackingEvent) (int64, error)
}

type OperatorQueue interface {
	Enqueue(ctx context.Context, task entities.OperatorTask) error
}

type CourierRouter interface {
	SelectProviders(origin string, destination entities.Address, pkg entities.Package, service entities.ServiceType) []entities.ProviderID
	Supports(providerID entities.ProviderID, region string, service entities.ServiceType) bool
	CreateShipment(ctx context.Context, providerID entities.ProviderID, req entities.ShipmentRequest) (*entities.ProviderBooking, error)
	TrackShipment(ctx context.Context, providerID entities.ProviderID, trackingNumber string) ([]entities.TrackingEvent, error)
	Cancel(ctx context.Context, providerID entities.ProviderID, trackingNumber string) (bool, error)
	MaxDeliveryAttempts(providerID entities.ProviderID) int
}

type Ledger interface {
	SettleOrder(ctx context.Context, orderID string, storeID string, amount decimal.Decimal) error
	ReverseOrder(ctx context.Context, orderID string, reason string) error
}

type DeliveryETAFactory interface {
	EstimateDelivery(serviceType entities.ServiceType, bookedAt time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
