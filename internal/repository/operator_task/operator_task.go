package operator_task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/operator"
	"fulfillment/internal/service/shipment"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Enqueue(ctx context.Context, task entities.OperatorTask) error {
	query := `INSERT INTO operator_tasks (shipment_id, order_id, reason, details, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(ctx, query, task.ShipmentID, task.OrderID, task.Reason.String(), task.Details, task.CreatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return shipment.ErrShipmentNotFound
		}
		return fmt.Errorf("unexpected operator task repository enqueue error: %w", err)
	}

	return nil
}

func (r *Repository) List(ctx context.Context, openOnly bool, limit uint64) ([]entities.OperatorTask, error) {
	builder := qb.
		Select("id", "shipment_id", "order_id", "reason", "details", "created_at", "resolved_at").
		From("operator_tasks")

	if openOnly {
		builder = builder.Where(sq.Eq{"resolved_at": nil})
	}

	query, args, err := builder.
		OrderBy("created_at", "id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected operator task repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected operator task repository list error: %w", err)
	}
	defer rows.Close()

	taskModels := make([]OperatorTaskDB, 0, 16)
	for rows.Next() {
		var taskModel OperatorTaskDB
		err := rows.Scan(
			&taskModel.ID,
			&taskModel.ShipmentID,
			&taskModel.OrderID,
			&taskModel.Reason,
			&taskModel.Details,
			&taskModel.CreatedAt,
			&taskModel.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected operator task repository list error: %w", err)
		}
		taskModels = append(taskModels, taskModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected operator task repository list error: %w", err)
	}

	return ToDomainList(taskModels), nil
}

func (r *Repository) Resolve(ctx context.Context, id int64, resolvedAt time.Time) (*entities.OperatorTask, error) {
	query := `UPDATE operator_tasks
		SET resolved_at = $2
		WHERE id = $1
		  AND resolved_at IS NULL
		RETURNING id, shipment_id, order_id, reason, details, created_at, resolved_at`

	var taskModel OperatorTaskDB
	err := r.querier.QueryRow(ctx, query, id, resolvedAt).Scan(
		&taskModel.ID,
		&taskModel.ShipmentID,
		&taskModel.OrderID,
		&taskModel.Reason,
		&taskModel.Details,
		&taskModel.CreatedAt,
		&taskModel.ResolvedAt,
	)
	if err == nil {
		return ToDomain(&taskModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected operator task repository resolve error: %w", err)
	}

	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM operator_tasks WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("unexpected operator task repository resolve error: %w", err)
	}
	if !exists {
		return nil, operator.ErrTaskNotFound
	}
	return nil, operator.ErrTaskResolved
}
