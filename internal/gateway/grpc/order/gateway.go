package order

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	orderservice "fulfillment/internal/service/order"
	retrierconfig "fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName = "order-service"

	getOrderMethod = "/orders.OrdersService/GetOrderById"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type OrderGateway struct {
	client  client
	retrier retrier
}

func New(client client) *OrderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &OrderGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// GetOrderByID возвращает заказ вместе с магазином, суммой и адресом доставки.
func (o *OrderGateway) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	req, err := structpb.NewStruct(map[string]any{"id": orderID})
	if err != nil {
		return nil, fmt.Errorf("gateway order, build request: %w", err)
	}

	resp := &structpb.Struct{}

	err = o.executeWithMetrics(ctx, "GetOrderById", func(ctx context.Context) error {
		resp.Reset()
		return o.client.Invoke(ctx, getOrderMethod, req, resp)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, orderservice.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, err)
	}

	protoOrder := structField(resp, "order")
	if protoOrder == nil {
		return nil, fmt.Errorf("gateway order, get order: %s: %w", orderID, orderservice.ErrOrderNotFound)
	}

	order, err := toDomain(protoOrder)
	if err != nil {
		return nil, fmt.Errorf("gateway order, decode order %s: %w", orderID, err)
	}
	return order, nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// latency metric -> attempts metric -> retrier -> gateway
func (o *OrderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
