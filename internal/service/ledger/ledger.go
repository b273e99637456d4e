package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/lock"
	"fulfillment/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultLockTTL = 30 * time.Second
	lockKeyPrefix  = "settlement:"
	feeScale       = 2
)

var hundred = decimal.NewFromInt(100)

type Config struct {
	DefaultRate         decimal.Decimal
	RequireConfirmation bool
	LockTTL             time.Duration
	Now                 func() time.Time
}

// Ledger единственный писатель комиссионных транзакций.
type Ledger struct {
	repository Repository
	rates      RateRepository
	payouts    PayoutTotals
	locker     Locker
	txManager  TxManager
	log        handlerLogger

	defaultRate         decimal.Decimal
	requireConfirmation bool
	lockTTL             time.Duration
	now                 func() time.Time
}

func New(
	repository Repository,
	rates RateRepository,
	payouts PayoutTotals,
	locker Locker,
	txManager TxManager,
	log handlerLogger,
	cfg Config,
) *Ledger {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = defaultLockTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Ledger{
		repository:          repository,
		rates:               rates,
		payouts:             payouts,
		locker:              locker,
		txManager:           txManager,
		log:                 log,
		defaultRate:         cfg.DefaultRate,
		requireConfirmation: cfg.RequireConfirmation,
		lockTTL:             cfg.LockTTL,
		now:                 cfg.Now,
	}
}

// Split делит сумму заказа на комиссию платформы и доход магазина.
// Комиссия округляется до копеек половиной от нуля, доход получается вычитанием,
// так что net + fee всегда равно amount.
func Split(amount, rate decimal.Decimal) (fee decimal.Decimal, net decimal.Decimal) {
	fee = amount.Mul(rate).Div(hundred).Round(feeScale)
	return fee, amount.Sub(fee)
}

// RecordTransaction записывает комиссию по заказу ровно один раз.
// Повторный вызов возвращает уже существующую транзакцию.
func (l *Ledger) RecordTransaction(ctx context.Context, in entities.TransactionCreate) (*entities.CommissionTransaction, error) {
	if err := validateTransactionCreate(in); err != nil {
		return nil, err
	}

	existing, err := l.repository.GetByOrderID(ctx, in.OrderID)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, ErrTransactionNotFound):
		return nil, fmt.Errorf("get transaction by order id: %w", err)
	}

	lease, err := l.locker.Acquire(ctx, lockKeyPrefix+in.OrderID, l.lockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, fmt.Errorf("order %s: %w", in.OrderID, entities.ErrIdempotencyConflict)
		}
		return nil, fmt.Errorf("acquire settlement lock: %w", err)
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			l.log.Warn("release settlement lock",
				logger.NewField("order_id", in.OrderID),
				logger.NewField("error", err.Error()),
			)
		}
	}()

	fee, net := Split(in.Amount, in.CommissionRate)
	status := entities.TransactionCompleted
	if in.Provisional {
		status = entities.TransactionPending
	}

	now := l.now().UTC()
	transaction := entities.CommissionTransaction{
		ID:             uuid.New(),
		OrderID:        in.OrderID,
		StoreID:        in.StoreID,
		Amount:         in.Amount,
		PlatformFee:    fee,
		NetAmount:      net,
		CommissionRate: in.CommissionRate,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, inserted, err := l.repository.Create(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	if !inserted {
		// строку успел вставить писатель, который держал блокировку до нас
		existing, err := l.repository.GetByOrderID(ctx, in.OrderID)
		if err != nil {
			return nil, fmt.Errorf("get transaction by order id: %w", err)
		}
		return existing, nil
	}

	l.log.Info("commission recorded",
		logger.NewField("order_id", created.OrderID),
		logger.NewField("store_id", created.StoreID),
		logger.NewField("amount", created.Amount.String()),
		logger.NewField("platform_fee", created.PlatformFee.String()),
		logger.NewField("status", created.Status.String()),
	)
	return created, nil
}

// SettleOrder записывает комиссию по текущей ставке магазина.
func (l *Ledger) SettleOrder(ctx context.Context, orderID string, storeID string, amount decimal.Decimal) error {
	rate, err := l.rateFor(ctx, storeID)
	if err != nil {
		return err
	}

	_, err = l.RecordTransaction(ctx, entities.TransactionCreate{
		OrderID:        orderID,
		StoreID:        storeID,
		Amount:         amount,
		CommissionRate: rate,
		Provisional:    l.requireConfirmation,
	})
	return err
}

// ConfirmTransaction переводит предварительную транзакцию в completed после подтверждения покупателем.
func (l *Ledger) ConfirmTransaction(ctx context.Context, orderID string) (*entities.CommissionTransaction, error) {
	var confirmed *entities.CommissionTransaction

	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		transaction, err := l.repository.GetByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get transaction by order id: %w", err)
		}

		switch transaction.Status {
		case entities.TransactionCompleted:
			confirmed = transaction
			return nil
		case entities.TransactionFailed:
			return fmt.Errorf("order %s: %w", orderID, ErrTransactionReversed)
		}

		status := entities.TransactionCompleted
		confirmed, err = l.repository.Update(ctx, entities.TransactionModify{
			ID:     &transaction.ID,
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("confirm transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

// ReverseTransaction помечает транзакцию failed. Суммы не меняются, повторный вызов ничего не делает.
func (l *Ledger) ReverseTransaction(ctx context.Context, id uuid.UUID, reason string) (*entities.CommissionTransaction, error) {
	var reversed *entities.CommissionTransaction

	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		transaction, err := l.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get transaction: %w", err)
		}

		if transaction.Status == entities.TransactionFailed {
			reversed = transaction
			return nil
		}

		status := entities.TransactionFailed
		reversedAt := l.now().UTC()
		reversed, err = l.repository.Update(ctx, entities.TransactionModify{
			ID:             &transaction.ID,
			Status:         &status,
			ReversalReason: &reason,
			ReversedAt:     &reversedAt,
		})
		if err != nil {
			return fmt.Errorf("reverse transaction: %w", err)
		}

		l.log.Info("commission reversed",
			logger.NewField("transaction_id", id.String()),
			logger.NewField("order_id", transaction.OrderID),
			logger.NewField("reason", reason),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reversed, nil
}

// ReverseOrder сторнирует транзакцию заказа, если она есть.
func (l *Ledger) ReverseOrder(ctx context.Context, orderID string, reason string) error {
	transaction, err := l.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			return nil
		}
		return fmt.Errorf("get transaction by order id: %w", err)
	}

	_, err = l.ReverseTransaction(ctx, transaction.ID, reason)
	return err
}

func (l *Ledger) GetTransaction(ctx context.Context, id uuid.UUID) (*entities.CommissionTransaction, error) {
	return l.repository.GetByID(ctx, id)
}

func (l *Ledger) SumNetEarnings(ctx context.Context, storeID string, since time.Time) (decimal.Decimal, error) {
	total, err := l.repository.SumNetEarnings(ctx, storeID, since)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum net earnings: %w", err)
	}
	return total, nil
}

func (l *Ledger) PendingPayoutTotal(ctx context.Context) (decimal.Decimal, error) {
	total, err := l.repository.PendingPayoutTotal(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pending payout total: %w", err)
	}
	return total, nil
}

// StoreBalance считает, сколько магазину можно выплатить прямо сейчас.
func (l *Ledger) StoreBalance(ctx context.Context, storeID string) (*entities.StoreBalance, error) {
	earned, err := l.repository.SumNetEarnings(ctx, storeID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("sum net earnings: %w", err)
	}

	paid, reserved, err := l.payouts.StoreTotals(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("payout totals: %w", err)
	}

	available := earned.Sub(paid).Sub(reserved)
	if available.IsNegative() {
		available = decimal.Zero
	}

	return &entities.StoreBalance{
		StoreID:   storeID,
		Earned:    earned,
		Paid:      paid,
		Reserved:  reserved,
		Available: available,
	}, nil
}

// SetStoreRate меняет ставку магазина. Уже записанные транзакции не пересчитываются.
func (l *Ledger) SetStoreRate(ctx context.Context, storeID string, rate decimal.Decimal) (*entities.StoreCommissionRate, error) {
	if storeID == "" {
		return nil, entities.NewValidationError("store_id", "is required")
	}
	if err := validateRate(rate); err != nil {
		return nil, err
	}

	updated, err := l.rates.UpsertRate(ctx, entities.StoreCommissionRate{
		StoreID:   storeID,
		Rate:      rate,
		UpdatedAt: l.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert store rate: %w", err)
	}
	return updated, nil
}

func (l *Ledger) rateFor(ctx context.Context, storeID string) (decimal.Decimal, error) {
	rate, err := l.rates.GetRate(ctx, storeID)
	if err != nil {
		if errors.Is(err, ErrRateNotFound) {
			return l.defaultRate, nil
		}
		return decimal.Zero, fmt.Errorf("get store rate: %w", err)
	}
	return rate.Rate, nil
}
