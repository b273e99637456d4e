//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_dashboard_get_test
package report_dashboard_get

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
	Dashboard(ctx context.Context, start, end time.Time) entities.Dashboard
	LastDays(n int) (time.Time, time.Time)
}
