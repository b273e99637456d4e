package order_handle

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/ledger"
	"fulfillment/internal/service/order"
	"fulfillment/internal/service/shipment"
)

const (
	cancelReason = "order cancelled"
	refundReason = "order refunded"
)

type StatusHandlerFactory struct {
	shipmentService order.ShipmentService
	ledger          order.Ledger
}

func NewStatusHandlerFactory(shipmentService order.ShipmentService, ledger order.Ledger) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		shipmentService: shipmentService,
		ledger:          ledger,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderReadyToShip:
		return f.readyToShipHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderCompleted:
		return f.completedHandler, nil
	case entities.OrderRefunded:
		return f.refundedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

// readyToShipHandler создаёт отправку. Повтор события по уже созданной отправке ничего не делает.
func (f *StatusHandlerFactory) readyToShipHandler(ctx context.Context, o entities.Order) error {
	serviceType := o.ServiceType
	if serviceType == "" {
		serviceType = entities.DefaultServiceType
	}

	_, err := f.shipmentService.CreateShipment(ctx, entities.ShipmentCreate{
		OrderID:         o.ID,
		StoreID:         o.StoreID,
		OrderAmount:     o.Amount,
		ServiceType:     serviceType,
		OriginCity:      o.OriginCity,
		DeliveryAddress: o.DeliveryAddress,
		Package:         o.Package,
	})
	// повтор события: отгрузка уже есть или её прямо сейчас бронирует другой вызов
	if err != nil && !errors.Is(err, shipment.ErrShipmentExists) && !errors.Is(err, shipment.ErrBookingInProgress) {
		return fmt.Errorf("create shipment for order %s: %w", o.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, o entities.Order) error {
	existing, err := f.shipmentService.GetShipmentByOrderID(ctx, o.ID)
	switch {
	case errors.Is(err, shipment.ErrShipmentNotFound):
	case err != nil:
		return fmt.Errorf("get shipment for cancelled order %s: %w", o.ID, err)
	case !existing.Status.IsTerminal():
		_, err = f.shipmentService.CancelShipment(ctx, existing.ID, cancelReason)
		if err != nil && !errors.Is(err, entities.ErrInvalidTransition) {
			return fmt.Errorf("cancel shipment for order %s: %w", o.ID, err)
		}
	}

	if err := f.ledger.ReverseOrder(ctx, o.ID, cancelReason); err != nil {
		return fmt.Errorf("reverse commission for cancelled order %s: %w", o.ID, err)
	}
	return nil
}

// completedHandler подтверждает предварительную комиссию. Если заказ ещё не доставлен
// или уже сторнирован, подтверждать нечего.
func (f *StatusHandlerFactory) completedHandler(ctx context.Context, o entities.Order) error {
	_, err := f.ledger.ConfirmTransaction(ctx, o.ID)
	if errors.Is(err, ledger.ErrTransactionNotFound) || errors.Is(err, ledger.ErrTransactionReversed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("confirm commission for completed order %s: %w", o.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) refundedHandler(ctx context.Context, o entities.Order) error {
	if err := f.ledger.ReverseOrder(ctx, o.ID, refundReason); err != nil {
		return fmt.Errorf("reverse commission for refunded order %s: %w", o.ID, err)
	}
	return nil
}
