//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_return_post_test
package shipment_return_post

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"github.com/google/uuid"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkReturned(ctx context.Context, id uuid.UUID, reason string) (*entities.Shipment, error)
}
