//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rates_get_test
package rates_get

import (
	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetRates(origin string, destination entities.Address, pkg entities.Package, service entities.ServiceType) []entities.RateQuote
}
