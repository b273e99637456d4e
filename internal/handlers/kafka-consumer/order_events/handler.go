package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/entities"
	orderservice "fulfillment/internal/service/order"
	"fulfillment/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order.events"))

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if h.messageProcessing(sess, message) {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение. true означает, что ConsumeClaim нужно
// прервать без коммита offset: сообщение будет перечитано.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event orderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil || event.OrderID == "" {
		if err == nil {
			err = errors.New("order_id is empty")
		}
		h.log.With(
			logger.NewField("error", err.Error()),
			logger.NewField("offset", message.Offset),
		).Error("order.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("event_status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	status := entities.OrderStatusType(event.Status)
	order, err := h.orderService.ProcessOrderStatusChange(ctx, entities.OrderModify{
		ID:     &event.OrderID,
		Status: &status,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err.Error()),
			).Warn("order.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err.Error()),
			).Warn("order.events handler order not found in order-service")

		default:
			msgLog.With(
				logger.NewField("error", err.Error()),
			).Error("order.events handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("current_status", order.Status.String()),
	).Info("order.events: processed")

	sess.MarkMessage(message, "")
	return false
}
