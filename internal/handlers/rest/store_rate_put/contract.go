//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=store_rate_put_test
package store_rate_put

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
	SetStoreRate(ctx context.Context, storeID string, rate decimal.Decimal) (*entities.StoreCommissionRate, error)
}
