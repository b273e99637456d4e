package payout

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/payout"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const payoutColumns = `id, store_id, amount, approved_amount, status, failure_reason, created_at, processed_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, request entities.PayoutRequest) error {
	query := `INSERT INTO payout_requests (id, store_id, amount, approved_amount, status, failure_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.querier.Exec(
		ctx,
		query,
		request.ID,
		request.StoreID,
		request.Amount,
		request.ApprovedAmount,
		request.Status.String(),
		request.FailureReason,
		request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected payout repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error) {
	query := `SELECT ` + payoutColumns + `
		FROM payout_requests
		WHERE id = $1`

	return r.getOne(ctx, "getbyid", query, id)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.PayoutRequest, error) {
	query := `SELECT ` + payoutColumns + `
		FROM payout_requests
		WHERE id = $1
		FOR UPDATE`

	return r.getOne(ctx, "getbyidforupdate", query, id)
}

// ListByStatus возвращает заявки в порядке поступления.
func (r *Repository) ListByStatus(ctx context.Context, status entities.PayoutStatus, limit uint64) ([]entities.PayoutRequest, error) {
	query, args, err := qb.
		Select(payoutColumns).
		From("payout_requests").
		Where(sq.Eq{"status": status.String()}).
		OrderBy("created_at", "id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payout repository listbystatus error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected payout repository listbystatus error: %w", err)
	}
	defer rows.Close()

	payoutModels := make([]PayoutDB, 0, limit)
	for rows.Next() {
		var payoutModel PayoutDB
		if err := scanPayout(rows, &payoutModel); err != nil {
			return nil, fmt.Errorf("unexpected payout repository listbystatus error: %w", err)
		}
		payoutModels = append(payoutModels, payoutModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected payout repository listbystatus error: %w", err)
	}

	return ToDomainList(payoutModels), nil
}

func (r *Repository) Update(ctx context.Context, payoutModify entities.PayoutModify) (*entities.PayoutRequest, error) {
	payoutModifyModel := FromDomainModify(&payoutModify)

	builder := qb.
		Update("payout_requests")

	if payoutModifyModel.Status != nil {
		builder = builder.Set("status", payoutModifyModel.Status)
	}
	if payoutModifyModel.ApprovedAmount != nil {
		builder = builder.Set("approved_amount", payoutModifyModel.ApprovedAmount)
	}
	if payoutModifyModel.FailureReason != nil {
		builder = builder.Set("failure_reason", payoutModifyModel.FailureReason)
	}
	if payoutModifyModel.ProcessedAt != nil {
		builder = builder.Set("processed_at", payoutModifyModel.ProcessedAt)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": payoutModifyModel.ID}).
		Suffix("RETURNING " + payoutColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payout repository update error: %w", err)
	}

	var payoutModel PayoutDB
	err = scanPayout(r.querier.QueryRow(ctx, query, args...), &payoutModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payout.ErrPayoutNotFound
		}
		return nil, fmt.Errorf("unexpected payout repository update error: %w", err)
	}

	return ToDomain(&payoutModel), nil
}

// StoreTotals возвращает paid (завершённые выплаты) и reserved (одобренные, но ещё не перечисленные).
func (r *Repository) StoreTotals(ctx context.Context, storeID string) (paid decimal.Decimal, reserved decimal.Decimal, err error) {
	query := `SELECT
			COALESCE(SUM(approved_amount) FILTER (WHERE status = $2), 0),
			COALESCE(SUM(approved_amount) FILTER (WHERE status = $3), 0)
		FROM payout_requests
		WHERE store_id = $1`

	err = r.querier.QueryRow(
		ctx,
		query,
		storeID,
		entities.PayoutCompleted.String(),
		entities.PayoutProcessing.String(),
	).Scan(&paid, &reserved)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("unexpected payout repository storetotals error: %w", err)
	}

	return paid, reserved, nil
}

func (r *Repository) getOne(ctx context.Context, op string, query string, args ...interface{}) (*entities.PayoutRequest, error) {
	var payoutModel PayoutDB
	err := scanPayout(r.querier.QueryRow(ctx, query, args...), &payoutModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payout.ErrPayoutNotFound
		}
		return nil, fmt.Errorf("unexpected payout repository %s error: %w", op, err)
	}

	return ToDomain(&payoutModel), nil
}

func scanPayout(row pgx.Row, p *PayoutDB) error {
	return row.Scan(
		&p.ID,
		&p.StoreID,
		&p.Amount,
		&p.ApprovedAmount,
		&p.Status,
		&p.FailureReason,
		&p.CreatedAt,
		&p.ProcessedAt,
	)
}
