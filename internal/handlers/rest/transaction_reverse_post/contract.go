//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transaction_reverse_post_test
package transaction_reverse_post

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
	ReverseTransaction(ctx context.Context, id uuid.UUID, reason string) (*entities.CommissionTransaction, error)
}
