package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/shipment"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, order_id, store_id, order_amount, courier_id, tracking_number, service_type, status,
	origin_city, delivery_address, package, failed_attempts, estimated_delivery, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentEntity entities.Shipment) error {
	shipmentModel, err := FromDomain(&shipmentEntity)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	query := `INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.querier.Exec(
		ctx,
		query,
		shipmentModel.ID,
		shipmentModel.OrderID,
		shipmentModel.StoreID,
		shipmentModel.OrderAmount,
		shipmentModel.CourierID,
		shipmentModel.TrackingNumber,
		shipmentModel.ServiceType,
		shipmentModel.Status,
		shipmentModel.OriginCity,
		shipmentModel.DeliveryAddress,
		shipmentModel.Package,
		shipmentModel.FailedAttempts,
		shipmentModel.EstimatedDelivery,
		shipmentModel.CreatedAt,
		shipmentModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return shipment.ErrShipmentExists
		}
		return fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1`

	return r.getOne(ctx, "getbyid", query, id)
}

// GetByIDForUpdate блокирует строку до конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1
		FOR UPDATE`

	return r.getOne(ctx, "getbyidforupdate", query, id)
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE order_id = $1`

	return r.getOne(ctx, "getbyorderid", query, orderID)
}

// ClaimBooking помечает pending отправку как бронируемую. Чужая метка старше staleBefore считается брошенной.
func (r *Repository) ClaimBooking(ctx context.Context, id uuid.UUID, claimedAt time.Time, staleBefore time.Time) error {
	query := `UPDATE shipments
		SET booking_claimed_at = $2
		WHERE id = $1
		  AND status = $3
		  AND tracking_number IS NULL
		  AND (booking_claimed_at IS NULL OR booking_claimed_at < $4)`

	result, err := r.querier.Exec(ctx, query, id, claimedAt, entities.ShipmentPending.String(), staleBefore)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository claimbooking error: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status != entities.ShipmentPending {
		return shipment.ErrAlreadyBooked
	}
	return shipment.ErrBookingInProgress
}

// ReleaseBooking снимает метку бронирования, если отправка так и осталась pending.
func (r *Repository) ReleaseBooking(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE shipments
		SET booking_claimed_at = NULL
		WHERE id = $1
		  AND status = $2`

	if _, err := r.querier.Exec(ctx, query, id, entities.ShipmentPending.String()); err != nil {
		return fmt.Errorf("unexpected shipment repository releasebooking error: %w", err)
	}
	return nil
}

// SetBooked записывает трек-номер ровно один раз и только для pending отправки.
func (r *Repository) SetBooked(
	ctx context.Context,
	id uuid.UUID,
	trackingNumber string,
	estimatedDelivery time.Time,
	updatedAt time.Time,
) error {
	query := `UPDATE shipments
		SET tracking_number = $2,
			estimated_delivery = $3,
			status = $4,
			updated_at = $5,
			booking_claimed_at = NULL
		WHERE id = $1
		  AND status = $6
		  AND tracking_number IS NULL`

	result, err := r.querier.Exec(ctx, query, id, trackingNumber, estimatedDelivery,
		entities.ShipmentBooked.String(), updatedAt, entities.ShipmentPending.String())
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return shipment.ErrAlreadyBooked
		}
		return fmt.Errorf("unexpected shipment repository setbooked error: %w", err)
	}

	if result.RowsAffected() == 0 {
		var exists bool
		err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shipments WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("unexpected shipment repository setbooked error: %w", err)
		}
		if !exists {
			return shipment.ErrShipmentNotFound
		}
		return shipment.ErrAlreadyBooked
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) error {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	builder := qb.
		Update("shipments")

	if shipmentModifyModel.Status != nil {
		builder = builder.Set("status", shipmentModifyModel.Status)
	}
	if shipmentModifyModel.FailedAttempts != nil {
		builder = builder.Set("failed_attempts", shipmentModifyModel.FailedAttempts)
	}
	if shipmentModifyModel.UpdatedAt != nil {
		builder = builder.Set("updated_at", shipmentModifyModel.UpdatedAt)
	} else {
		builder = builder.Set("updated_at", sq.Expr("NOW()"))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": shipmentModifyModel.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

// ListActive возвращает забронированные отправки в указанных статусах, старые первыми.
func (r *Repository) ListActive(ctx context.Context, statuses []entities.ShipmentStatus) ([]entities.Shipment, error) {
	statusValues := make([]string, len(statuses))
	for i, status := range statuses {
		statusValues[i] = status.String()
	}

	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE status = ANY($1)
		  AND tracking_number IS NOT NULL
		ORDER BY updated_at, id`

	rows, err := r.querier.Query(ctx, query, statusValues)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository listactive error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 64)
	for rows.Next() {
		var shipmentModel ShipmentDB
		if err := scanShipment(rows, &shipmentModel); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository listactive error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository listactive error: %w", err)
	}

	return ToDomainList(shipmentModels)
}

func (r *Repository) getOne(ctx context.Context, op string, query string, args ...interface{}) (*entities.Shipment, error) {
	var shipmentModel ShipmentDB
	err := scanShipment(r.querier.QueryRow(ctx, query, args...), &shipmentModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}

	return ToDomain(&shipmentModel)
}

func scanShipment(row pgx.Row, s *ShipmentDB) error {
	return row.Scan(
		&s.ID,
		&s.OrderID,
		&s.StoreID,
		&s.OrderAmount,
		&s.CourierID,
		&s.TrackingNumber,
		&s.ServiceType,
		&s.Status,
		&s.OriginCity,
		&s.DeliveryAddress,
		&s.Package,
		&s.FailedAttempts,
		&s.EstimatedDelivery,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}
