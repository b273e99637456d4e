package order_events

import "time"

// orderEvent: сообщение order-service о смене статуса заказа.
type orderEvent struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}
