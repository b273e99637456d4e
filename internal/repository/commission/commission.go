package commission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/ledger"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const transactionColumns = `id, seq, order_id, store_id, amount, platform_fee, net_amount, commission_rate,
	status, reversal_reason, reversed_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет транзакцию, если по заказу её ещё нет. inserted = false означает,
// что строка уже существовала и ничего не записано.
func (r *Repository) Create(ctx context.Context, transaction entities.CommissionTransaction) (*entities.CommissionTransaction, bool, error) {
	transactionModel := FromDomain(&transaction)
	query := `INSERT INTO commission_transactions
		(id, order_id, store_id, amount, platform_fee, net_amount, commission_rate, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (order_id) DO NOTHING
		RETURNING ` + transactionColumns

	var created TransactionDB
	err := scanTransaction(r.querier.QueryRow(
		ctx,
		query,
		transactionModel.ID,
		transactionModel.OrderID,
		transactionModel.StoreID,
		transactionModel.Amount,
		transactionModel.PlatformFee,
		transactionModel.NetAmount,
		transactionModel.CommissionRate,
		transactionModel.Status,
		transactionModel.CreatedAt,
		transactionModel.UpdatedAt,
	), &created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, false, entities.NewValidationError("transaction", "violates "+repository.ConstraintName(err))
		}
		return nil, false, fmt.Errorf("unexpected commission repository create error: %w", err)
	}

	return ToDomain(&created), true, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CommissionTransaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM commission_transactions
		WHERE id = $1`

	return r.getOne(ctx, "getbyid", query, id)
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.CommissionTransaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM commission_transactions
		WHERE order_id = $1`

	return r.getOne(ctx, "getbyorderid", query, orderID)
}

// Update меняет только статус и данные реверса, суммы не трогаются.
func (r *Repository) Update(ctx context.Context, transactionModify entities.TransactionModify) (*entities.CommissionTransaction, error) {
	transactionModifyModel := FromDomainModify(&transactionModify)

	builder := qb.
		Update("commission_transactions")

	if transactionModifyModel.Status != nil {
		builder = builder.Set("status", transactionModifyModel.Status)
	}
	if transactionModifyModel.ReversalReason != nil {
		builder = builder.Set("reversal_reason", transactionModifyModel.ReversalReason)
	}
	if transactionModifyModel.ReversedAt != nil {
		builder = builder.Set("reversed_at", transactionModifyModel.ReversedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	query, args, err := builder.
		Where(sq.Eq{"id": transactionModifyModel.ID}).
		Suffix("RETURNING " + transactionColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected commission repository update error: %w", err)
	}

	var transactionModel TransactionDB
	err = scanTransaction(r.querier.QueryRow(ctx, query, args...), &transactionModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("unexpected commission repository update error: %w", err)
	}

	return ToDomain(&transactionModel), nil
}

// SumNetEarnings суммирует доход магазина по completed транзакциям начиная с since.
func (r *Repository) SumNetEarnings(ctx context.Context, storeID string, since time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(net_amount), 0)
		FROM commission_transactions
		WHERE store_id = $1
		  AND status = $2
		  AND created_at >= $3`

	var total decimal.Decimal
	err := r.querier.QueryRow(ctx, query, storeID, entities.TransactionCompleted.String(), since).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unexpected commission repository sumnetearnings error: %w", err)
	}

	return total, nil
}

// PendingPayoutTotal считает, сколько платформа должна магазинам: по каждому магазину
// completed доход за вычетом выплаченного и зарезервированного, не меньше нуля.
func (r *Repository) PendingPayoutTotal(ctx context.Context) (decimal.Decimal, error) {
	query := `WITH earned AS (
			SELECT store_id, SUM(net_amount) AS total
			FROM commission_transactions
			WHERE status = $1
			GROUP BY store_id
		), paid AS (
			SELECT store_id, SUM(approved_amount) AS total
			FROM payout_requests
			WHERE status IN ($2, $3)
			GROUP BY store_id
		)
		SELECT COALESCE(SUM(GREATEST(earned.total - COALESCE(paid.total, 0), 0)), 0)
		FROM earned
		LEFT JOIN paid ON paid.store_id = earned.store_id`

	var total decimal.Decimal
	err := r.querier.QueryRow(
		ctx,
		query,
		entities.TransactionCompleted.String(),
		entities.PayoutCompleted.String(),
		entities.PayoutProcessing.String(),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unexpected commission repository pendingpayouttotal error: %w", err)
	}

	return total, nil
}

func (r *Repository) getOne(ctx context.Context, op string, query string, args ...interface{}) (*entities.CommissionTransaction, error) {
	var transactionModel TransactionDB
	err := scanTransaction(r.querier.QueryRow(ctx, query, args...), &transactionModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("unexpected commission repository %s error: %w", op, err)
	}

	return ToDomain(&transactionModel), nil
}

func scanTransaction(row pgx.Row, t *TransactionDB) error {
	return row.Scan(
		&t.ID,
		&t.Seq,
		&t.OrderID,
		&t.StoreID,
		&t.Amount,
		&t.PlatformFee,
		&t.NetAmount,
		&t.CommissionRate,
		&t.Status,
		&t.ReversalReason,
		&t.ReversedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}
