//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_balance_get_test
package courier_balance_get

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
	Balance(ctx context.Context, providerID entities.ProviderID) (decimal.Decimal, error)
}
