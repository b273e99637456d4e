//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/lock"
	"fulfillment/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, transaction entities.CommissionTransaction) (*entities.CommissionTransaction, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CommissionTransaction, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.CommissionTransaction, error)
	Update(ctx context.Context, transactionModify entities.TransactionModify) (*entities.CommissionTransaction, error)
	SumNetEarnings(ctx context.Context, storeID string, since time.Time) (decimal.Decimal, error)
	PendingPayoutTotal(ctx context.Context) (decimal.Decimal, error)
}

type RateRepository interface {
	GetRate(ctx context.Context, storeID string) (*entities.StoreCommissionRate, error)
	UpsertRate(ctx context.Context, rate entities.StoreCommissionRate) (*entities.StoreCommissionRate, error)
}

type PayoutTotals interface {
	StoreTotals(ctx context.Context, storeID string) (paid decimal.Decimal, reserved decimal.Decimal, err error)
}

type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (lock.Lease, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
