//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_daily_get_test
package report_daily_get

import (
	"context"
	"time"

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
	DailySeries(ctx context.Context, start, end time.Time) entities.DailySeries
	LastDays(n int) (time.Time, time.Time)
}
