//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"github.com/shopspring/decimal"
)

type Repository interface {
	PeriodTotals(ctx context.Context, start time.Time, end time.Time) (*entities.PeriodTotals, error)
	TopStores(ctx context.Context, start time.Time, end time.Time, limit uint64) ([]entities.StorePerformance, error)
	RateDistribution(ctx context.Context, start time.Time, end time.Time) ([]entities.RateBucket, error)
	DailyTotals(ctx context.Context, start time.Time, end time.Time) ([]entities.DailyBucket, error)
	PayoutTotals(ctx context.Context) ([]entities.PayoutStatusTotal, error)
	ShipmentCounts(ctx context.Context, start time.Time, end time.Time) ([]entities.ShipmentStatusCount, error)
	DeliveredUnsettled(ctx context.Context) (int64, error)
}

type Ledger interface {
	PendingPayoutTotal(ctx context.Context) (decimal.Decimal, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
