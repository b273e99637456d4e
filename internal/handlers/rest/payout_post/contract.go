//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payout_post_test
package payout_post

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"github.com/shopspring/decimal"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RequestPayout(ctx context.Context, storeID string, amount decimal.Decimal) (*entities.PayoutRequest, error)
}
