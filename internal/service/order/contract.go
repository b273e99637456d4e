//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"fulfillment/internal/entities"
	"github.com/google/uuid"
)

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type ShipmentService interface {
	CreateShipment(ctx context.Context, in entities.ShipmentCreate) (*entities.Shipment, error)
	GetShipmentByOrderID(ctx context.Context, orderID string) (*entities.Shipment, error)
	CancelShipment(ctx context.Context, id uuid.UUID, reason string) (*entities.Shipment, error)
}

type Ledger interface {
	ConfirmTransaction(ctx context.Context, orderID string) (*entities.CommissionTransaction, error)
	ReverseOrder(ctx context.Context, orderID string, reason string) error
}

type (
	ExecuteFn      func(ctx context.Context, order entities.Order) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
