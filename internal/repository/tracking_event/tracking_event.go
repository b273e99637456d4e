package tracking_event

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/shipment"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListByShipment возвращает историю в порядке получения.
func (r *Repository) ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]entities.TrackingEvent, error) {
	query := `SELECT seq, shipment_id, occurred_at, status, raw_status, location, description, agent, remarks, received_at
		FROM tracking_events
		WHERE shipment_id = $1
		ORDER BY seq`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking event repository list error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.TrackingEvent, 0, 8)
	for rows.Next() {
		var eventModel TrackingEventDB
		err := rows.Scan(
			&eventModel.Seq,
			&eventModel.ShipmentID,
			&eventModel.OccurredAt,
			&eventModel.Status,
			&eventModel.RawStatus,
			&eventModel.Location,
			&eventModel.Description,
			&eventModel.Agent,
			&eventModel.Remarks,
			&eventModel.ReceivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking event repository list error: %w", err)
		}
		events = append(events, ToDomain(&eventModel))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking event repository list error: %w", err)
	}

	return events, nil
}

// Append дописывает события одним батчем. Уже сохранённые события
// (та же отправка, время, сырой статус и место) пропускаются уникальным индексом.
func (r *Repository) Append(ctx context.Context, shipmentID uuid.UUID, events []entities.TrackingEvent) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}

	query := `INSERT INTO tracking_events
		(shipment_id, occurred_at, status, raw_status, location, description, agent, remarks, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (shipment_id, occurred_at, raw_status, location) DO NOTHING`

	batch := &pgx.Batch{}
	for _, event := range events {
		eventModel := FromDomain(event)
		batch.Queue(
			query,
			shipmentID,
			eventModel.OccurredAt,
			eventModel.Status,
			eventModel.RawStatus,
			eventModel.Location,
			eventModel.Description,
			eventModel.Agent,
			eventModel.Remarks,
			eventModel.ReceivedAt,
		)
	}

	results := r.querier.SendBatch(ctx, batch)

	var appended int64
	for range events {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
				return 0, shipment.ErrShipmentNotFound
			}
			return 0, fmt.Errorf("unexpected tracking event repository append error: %w", err)
		}
		appended += tag.RowsAffected()
	}

	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("unexpected tracking event repository append error: %w", err)
	}

	return appended, nil
}
