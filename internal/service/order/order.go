package order

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
)

// Service принимает события смены статуса заказа и раздаёт их обработчикам.
type Service struct {
	orderGateway  OrderGateway
	statusFactory HandlerFactory
}

func New(orderGateway OrderGateway, statusFactory HandlerFactory) *Service {
	return &Service{
		orderGateway:  orderGateway,
		statusFactory: statusFactory,
	}
}

// ProcessOrderStatusChange сверяет заказ с order-service и выполняет обработчик
// для его текущего статуса. Статус из события считается подсказкой: источник истины order-service.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order id and status are required")
	}

	order, err := s.orderGateway.GetOrderByID(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get order from order-service: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// статусы без обработчика пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, *order); err != nil {
		return nil, err
	}

	return order, nil
}
