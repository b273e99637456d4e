//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payout_test
package payout

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, payout entities.PayoutRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error)
	ListByStatus(ctx context.Context, status entities.PayoutStatus, limit uint64) ([]entities.PayoutRequest, error)
	Update(ctx context.Context, payoutModify entities.PayoutModify) (*entities.PayoutRequest, error)
}

type Ledger interface {
	StoreBalance(ctx context.Context, storeID string) (*entities.StoreBalance, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
