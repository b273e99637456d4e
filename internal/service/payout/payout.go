package payout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const processBatchSize = 100

type Orchestrator struct {
	repository Repository
	ledger     Ledger
	txManager  TxManager
	log        handlerLogger
	now        func() time.Time
}

func New(repository Repository, ledger Ledger, txManager TxManager, log handlerLogger, now func() time.Time) *Orchestrator {
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		repository: repository,
		ledger:     ledger,
		txManager:  txManager,
		log:        log,
		now:        now,
	}
}

func (o *Orchestrator) RequestPayout(ctx context.Context, storeID string, amount decimal.Decimal) (*entities.PayoutRequest, error) {
	if strings.TrimSpace(storeID) == "" {
		return nil, entities.NewValidationError("store_id", "is required")
	}
	if !amount.IsPositive() {
		return nil, entities.NewValidationError("amount", "must be positive")
	}
	if !entities.FitsMoneyScale(amount) {
		return nil, entities.NewValidationError("amount", "must have at most 2 decimal places")
	}

	payout := entities.PayoutRequest{
		ID:             uuid.New(),
		StoreID:        storeID,
		Amount:         amount,
		ApprovedAmount: decimal.Zero,
		Status:         entities.PayoutPending,
		CreatedAt:      o.now().UTC(),
	}
	if err := o.repository.Create(ctx, payout); err != nil {
		return nil, fmt.Errorf("create payout request: %w", err)
	}
	return &payout, nil
}

// ProcessPending одобряет ожидающие заявки в пределах доступного баланса магазина.
// Каждая заявка обрабатывается в своей транзакции, так что одобренная сумма
// сразу попадает в резерв для следующей заявки того же магазина.
func (o *Orchestrator) ProcessPending(ctx context.Context) (int, error) {
	pending, err := o.repository.ListByStatus(ctx, entities.PayoutPending, processBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending payouts: %w", err)
	}

	processed := 0
	for _, request := range pending {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}

		if err := o.processOne(ctx, request.ID); err != nil {
			o.log.Error("process payout request",
				logger.NewField("payout_id", request.ID.String()),
				logger.NewField("store_id", request.StoreID),
				logger.NewField("error", err.Error()),
			)
			continue
		}
		processed++
	}

	return processed, nil
}

func (o *Orchestrator) processOne(ctx context.Context, id uuid.UUID) error {
	return o.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := o.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock payout request: %w", err)
		}
		// заявку уже забрал другой обработчик
		if request.Status != entities.PayoutPending {
			return nil
		}

		balance, err := o.ledger.StoreBalance(ctx, request.StoreID)
		if err != nil {
			return fmt.Errorf("store balance: %w", err)
		}

		now := o.now().UTC()
		if !balance.Available.IsPositive() {
			status := entities.PayoutFailed
			reason := ErrInsufficientBalance.Error()
			_, err = o.repository.Update(ctx, entities.PayoutModify{
				ID:            &request.ID,
				Status:        &status,
				FailureReason: &reason,
				ProcessedAt:   &now,
			})
			if err != nil {
				return fmt.Errorf("fail payout request: %w", err)
			}
			o.log.Warn("payout rejected",
				logger.NewField("payout_id", id.String()),
				logger.NewField("store_id", request.StoreID),
				logger.NewField("reason", reason),
			)
			return nil
		}

		approved := decimal.Min(request.Amount, balance.Available)
		status := entities.PayoutProcessing
		_, err = o.repository.Update(ctx, entities.PayoutModify{
			ID:             &request.ID,
			Status:         &status,
			ApprovedAmount: &approved,
		})
		if err != nil {
			return fmt.Errorf("approve payout request: %w", err)
		}

		o.log.Info("payout approved",
			logger.NewField("payout_id", id.String()),
			logger.NewField("store_id", request.StoreID),
			logger.NewField("requested", request.Amount.String()),
			logger.NewField("approved", approved.String()),
		)
		return nil
	})
}

// Complete фиксирует успешное перечисление одобренной суммы.
func (o *Orchestrator) Complete(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error) {
	return o.finish(ctx, id, entities.PayoutCompleted, "", entities.PayoutProcessing)
}

// Fail закрывает заявку с причиной. Резерв по ней освобождается.
func (o *Orchestrator) Fail(ctx context.Context, id uuid.UUID, reason string) (*entities.PayoutRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, entities.NewValidationError("reason", "is required")
	}
	return o.finish(ctx, id, entities.PayoutFailed, reason, entities.PayoutPending, entities.PayoutProcessing)
}

func (o *Orchestrator) finish(
	ctx context.Context,
	id uuid.UUID,
	to entities.PayoutStatus,
	reason string,
	allowedFrom ...entities.PayoutStatus,
) (*entities.PayoutRequest, error) {
	var updated *entities.PayoutRequest

	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := o.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock payout request: %w", err)
		}

		if !statusIn(request.Status, allowedFrom) {
			return fmt.Errorf("payout %s is %s: %w", id, request.Status, ErrInvalidPayoutStatus)
		}

		now := o.now().UTC()
		modify := entities.PayoutModify{
			ID:          &request.ID,
			Status:      &to,
			ProcessedAt: &now,
		}
		if reason != "" {
			modify.FailureReason = &reason
		}

		updated, err = o.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update payout request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (o *Orchestrator) GetPayout(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error) {
	return o.repository.GetByID(ctx, id)
}

func statusIn(status entities.PayoutStatus, allowed []entities.PayoutStatus) bool {
	for _, candidate := range allowed {
		if candidate == status {
			return true
		}
	}
	return false
}
