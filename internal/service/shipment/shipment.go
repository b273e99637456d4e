package shipment

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultAttemptCeiling  = 3
	defaultPollConcurrency = 4
	defaultBookingClaimTTL = 2 * time.Minute

	operatorRawCancelled = "operator_cancelled"
	operatorRawReturned  = "operator_returned"
	bookedRawStatus      = "booked"
)

type Config struct {
	AttemptCeiling  int
	PollConcurrency int
	BookingClaimTTL time.Duration
	Now             func() time.Time
}

type Service struct {
	repository    Repository
	events        EventRepository
	operatorQueue OperatorQueue
	router        CourierRouter
	ledger        Ledger
	etaFactory    DeliveryETAFactory
	txManager     TxManager
	log           handlerLogger

	attemptCeiling  int
	pollConcurrency int
	bookingClaimTTL time.Duration
	now             func() time.Time
}

func New(
	repository Repository,
	events EventRepository,
	operatorQueue OperatorQueue,
	router CourierRouter,
	ledger Ledger,
	etaFactory DeliveryETAFactory,
	txManager TxManager,
	log handlerLogger,
	cfg Config,
) *Service {
	if cfg.AttemptCeiling <= 0 {
		cfg.AttemptCeiling = defaultAttemptCeiling
	}
	if cfg.PollConcurrency <= 0 {
		cfg.PollConcurrency = defaultPollConcurrency
	}
	if cfg.BookingClaimTTL <= 0 {
		cfg.BookingClaimTTL = defaultBookingClaimTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		repository:      repository,
		events:          events,
		operatorQueue:   operatorQueue,
		router:          router,
		ledger:          ledger,
		etaFactory:      etaFactory,
		txManager:       txManager,
		log:             log,
		attemptCeiling:  cfg.AttemptCeiling,
		pollConcurrency: cfg.PollConcurrency,
		bookingClaimTTL: cfg.BookingClaimTTL,
		now:             cfg.Now,
	}
}

func (s *Service) CreateShipment(ctx context.Context, in entities.ShipmentCreate) (*entities.Shipment, error) {
	if err := validateShipmentCreate(in); err != nil {
		return nil, err
	}

	existing, err := s.repository.GetByOrderID(ctx, in.OrderID)
	switch {
	case err == nil:
		// повторный вызов для незабронированного shipment просто повторяет бронирование
		if existing.Status != entities.ShipmentPending {
			return nil, fmt.Errorf("order %s: %w", in.OrderID, ErrShipmentExists)
		}
		return s.book(ctx, existing)
	case !errors.Is(err, ErrShipmentNotFound):
		return nil, fmt.Errorf("get shipment by order id: %w", err)
	}

	courierID, err := s.chooseCourier(in)
	if err != nil {
		return nil, err
	}

	createdAt := s.now().UTC()
	shipment := entities.Shipment{
		ID:              uuid.New(),
		OrderID:         in.OrderID,
		StoreID:         in.StoreID,
		OrderAmount:     in.OrderAmount,
		CourierID:       courierID,
		ServiceType:     in.ServiceType,
		Status:          entities.ShipmentPending,
		OriginCity:      in.OriginCity,
		DeliveryAddress: in.DeliveryAddress,
		Package:         in.Package,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}

	if err := s.repository.Create(ctx, shipment); err != nil {
		if errors.Is(err, ErrShipmentExists) {
			return nil, fmt.Errorf("order %s: %w", in.OrderID, err)
		}
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	return s.book(ctx, &shipment)
}

func (s *Service) chooseCourier(in entities.ShipmentCreate) (entities.ProviderID, error) {
	if in.CourierID != "" {
		if !s.router.Supports(in.CourierID, in.DeliveryAddress.Region, in.ServiceType) {
			return "", fmt.Errorf("courier %s, region %s: %w", in.CourierID, in.DeliveryAddress.Region, ErrNoCourierAvailable)
		}
		return in.CourierID, nil
	}

	candidates := s.router.SelectProviders(in.OriginCity, in.DeliveryAddress, in.Package, in.ServiceType)
	if len(candidates) == 0 {
		return "", fmt.Errorf("region %s, service %s: %w", in.DeliveryAddress.Region, in.ServiceType, ErrNoCourierAvailable)
	}
	return candidates[0], nil
}

// book бронирует shipment у выбранного курьера. При ошибке shipment остаётся pending.
// К курьеру идём только под меткой claim: параллельный вызов получает ErrBookingInProgress.
func (s *Service) book(ctx context.Context, shipment *entities.Shipment) (*entities.Shipment, error) {
	log := []logger.Field{
		logger.NewField("shipment_id", shipment.ID.String()),
		logger.NewField("order_id", shipment.OrderID),
		logger.NewField("courier", shipment.CourierID.String()),
	}

	if err := s.claimBooking(ctx, shipment.ID); err != nil {
		return nil, err
	}

	booking, err := s.router.CreateShipment(ctx, shipment.CourierID, entities.ShipmentRequest{
		OrderID:         shipment.OrderID,
		ServiceType:     shipment.ServiceType,
		OriginCity:      shipment.OriginCity,
		DeliveryAddress: shipment.DeliveryAddress,
		Package:         shipment.Package,
		CashOnDelivery:  shipment.OrderAmount,
	})
	if err != nil {
		s.log.Warn("courier booking failed", append(log, logger.NewField("error", err.Error()))...)
		s.releaseBooking(ctx, shipment)

		// ретраи исчерпаны: дальше только руками
		if entities.IsRetryableProviderError(err) {
			s.enqueueTask(ctx, shipment, entities.OperatorRetriesExhausted, err.Error())
		}
		return nil, fmt.Errorf("book shipment with %s: %w", shipment.CourierID, err)
	}

	bookedAt := s.now().UTC()
	eta := s.etaFactory.EstimateDelivery(shipment.ServiceType, bookedAt)
	bookedEvent := entities.TrackingEvent{
		ShipmentID:  shipment.ID,
		Timestamp:   bookedAt,
		Status:      entities.ShipmentBooked,
		RawStatus:   bookedRawStatus,
		Location:    shipment.OriginCity,
		Description: fmt.Sprintf("booked with %s, ref %s", shipment.CourierID, booking.ProviderRef),
		ReceivedAt:  bookedAt,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, shipment.ID)
		if err != nil {
			return fmt.Errorf("lock shipment: %w", err)
		}
		// пока шли в курьера, shipment могли отменить
		if err := Transition(current.Status, entities.ShipmentBooked); err != nil {
			return err
		}
		if err := s.repository.SetBooked(ctx, shipment.ID, booking.TrackingNumber, eta, bookedAt); err != nil {
			return fmt.Errorf("set booked: %w", err)
		}
		if _, err := s.events.Append(ctx, shipment.ID, []entities.TrackingEvent{bookedEvent}); err != nil {
			return fmt.Errorf("append booked event: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.Error("booking accepted by courier but not persisted",
			append(log,
				logger.NewField("tracking_number", booking.TrackingNumber),
				logger.NewField("error", err.Error()),
			)...)
		s.discardBooking(ctx, shipment, booking.TrackingNumber, err)
		return nil, err
	}

	shipment.TrackingNumber = booking.TrackingNumber
	shipment.Status = entities.ShipmentBooked
	shipment.EstimatedDelivery = &eta
	shipment.UpdatedAt = bookedAt
	shipment.TrackingEvents = []entities.TrackingEvent{bookedEvent}

	ShipmentsBookedTotal.WithLabelValues(shipment.CourierID.String(), string(shipment.ServiceType)).Inc()
	s.log.Info("shipment booked", append(log, logger.NewField("tracking_number", booking.TrackingNumber))...)
	return shipment, nil
}

// claimBooking под блокировкой строки проверяет, что shipment всё ещё pending, и ставит метку бронирования.
func (s *Service) claimBooking(ctx context.Context, id uuid.UUID) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock shipment: %w", err)
		}
		if current.TrackingNumber != "" {
			return fmt.Errorf("shipment %s: %w", id, ErrAlreadyBooked)
		}
		if err := Transition(current.Status, entities.ShipmentBooked); err != nil {
			return err
		}

		now := s.now().UTC()
		if err := s.repository.ClaimBooking(ctx, id, now, now.Add(-s.bookingClaimTTL)); err != nil {
			return fmt.Errorf("claim booking: %w", err)
		}
		return nil
	})
}

func (s *Service) releaseBooking(ctx context.Context, shipment *entities.Shipment) {
	if err := s.repository.ReleaseBooking(ctx, shipment.ID); err != nil {
		s.log.Warn("release booking claim",
			logger.NewField("shipment_id", shipment.ID.String()),
			logger.NewField("error", err.Error()),
		)
	}
}

// discardBooking отменяет у курьера бронирование, которое не удалось сохранить.
// Если курьер отмену не принял, бронирование остаётся висеть у него и уходит оператору.
func (s *Service) discardBooking(ctx context.Context, shipment *entities.Shipment, trackingNumber string, cause error) {
	s.releaseBooking(ctx, shipment)

	ok, err := s.router.Cancel(ctx, shipment.CourierID, trackingNumber)
	if err == nil && ok {
		BookingsDiscardedTotal.WithLabelValues(shipment.CourierID.String(), "cancelled").Inc()
		s.log.Warn("unpersisted booking cancelled at courier",
			logger.NewField("shipment_id", shipment.ID.String()),
			logger.NewField("tracking_number", trackingNumber),
		)
		return
	}

	BookingsDiscardedTotal.WithLabelValues(shipment.CourierID.String(), "orphaned").Inc()
	details := fmt.Sprintf("courier %s booking %s not persisted (%v)", shipment.CourierID, trackingNumber, cause)
	if err != nil {
		details += fmt.Sprintf(", cancel failed: %v", err)
	} else {
		details += ", courier refused to cancel"
	}
	s.enqueueTask(ctx, shipment, entities.OperatorOrphanedBooking, details)
}

// IngestEvents применяет события курьера к shipment под блокировкой строки.
// Повторная доставка тех же событий ничего не меняет.
func (s *Service) IngestEvents(ctx context.Context, shipmentID uuid.UUID, incoming []entities.TrackingEvent) (*entities.IngestResult, error) {
	if !isValidShipmentID(shipmentID) {
		return nil, entities.NewValidationError("shipment_id", "is required")
	}

	var result entities.IngestResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByIDForUpdate(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("lock shipment: %w", err)
		}

		history, err := s.events.ListByShipment(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("list tracking events: %w", err)
		}

		receivedAt := s.now().UTC()
		fresh := freshEvents(history, incoming, shipmentID, receivedAt)

		var appended int64
		if len(fresh) > 0 {
			appended, err = s.events.Append(ctx, shipmentID, fresh)
			if err != nil {
				return fmt.Errorf("append tracking events: %w", err)
			}
		}

		all := make([]entities.TrackingEvent, 0, len(history)+len(fresh))
		all = append(all, history...)
		all = append(all, fresh...)

		ceiling := s.ceilingFor(shipment.CourierID)
		failedBefore := countFailedAttempts(history)
		failedAfter := countFailedAttempts(all)
		derived, _ := DeriveStatus(all)

		previous := shipment.Status
		d := decide(previous, derived, failedAfter, ceiling)

		dirty := d.changed(previous) || failedAfter != shipment.FailedAttempts
		if dirty {
			err = s.repository.Update(ctx, entities.ShipmentModify{
				ID:             &shipment.ID,
				Status:         &d.next,
				FailedAttempts: &failedAfter,
				UpdatedAt:      &receivedAt,
			})
			if err != nil {
				return fmt.Errorf("update shipment status: %w", err)
			}
		}

		if len(fresh) > 0 {
			if err := s.raiseOperatorTasks(ctx, shipment, d, fresh, failedBefore, failedAfter, ceiling); err != nil {
				return err
			}
		}

		if d.changed(previous) {
			if err := s.applyLedger(ctx, shipment, d.next); err != nil {
				return err
			}
		}

		shipment.Status = d.next
		shipment.FailedAttempts = failedAfter
		shipment.TrackingEvents = all
		if dirty {
			shipment.UpdatedAt = receivedAt
		}

		result = entities.IngestResult{
			Shipment: shipment,
			Appended: appended,
			Previous: previous,
			Current:  d.next,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Changed() {
		ShipmentTransitionsTotal.WithLabelValues(result.Previous.String(), result.Current.String(), "courier").Inc()
		s.log.Info("shipment status changed",
			logger.NewField("shipment_id", shipmentID.String()),
			logger.NewField("from", result.Previous.String()),
			logger.NewField("to", result.Current.String()),
		)
	}
	return &result, nil
}

func (s *Service) raiseOperatorTasks(
	ctx context.Context,
	shipment *entities.Shipment,
	d decision,
	fresh []entities.TrackingEvent,
	failedBefore, failedAfter, ceiling int,
) error {
	if d.reason == entities.OperatorProviderCancelled && containsStatus(fresh, entities.ShipmentCancelled) {
		err := s.operatorQueue.Enqueue(ctx, newTask(shipment, entities.OperatorProviderCancelled,
			"courier reported cancellation, shipment status kept as "+shipment.Status.String(), s.now()))
		if err != nil {
			return fmt.Errorf("enqueue operator task: %w", err)
		}
	}

	if failedBefore < ceiling && failedAfter >= ceiling {
		err := s.operatorQueue.Enqueue(ctx, newTask(shipment, entities.OperatorAttemptsExhausted,
			fmt.Sprintf("%d failed delivery attempts, ceiling %d", failedAfter, ceiling), s.now()))
		if err != nil {
			return fmt.Errorf("enqueue operator task: %w", err)
		}
	}

	if d.reason == entities.OperatorAttemptsExhausted {
		s.log.Warn("courier keeps delivering after attempt ceiling",
			logger.NewField("shipment_id", shipment.ID.String()),
			logger.NewField("failed_attempts", failedAfter),
		)
	}
	return nil
}

func (s *Service) applyLedger(ctx context.Context, shipment *entities.Shipment, status entities.ShipmentStatus) error {
	switch status {
	case entities.ShipmentDelivered:
		err := s.ledger.SettleOrder(ctx, shipment.OrderID, shipment.StoreID, shipment.OrderAmount)
		if err != nil {
			// параллельный расчётчик уже пишет эту транзакцию
			if errors.Is(err, entities.ErrIdempotencyConflict) {
				s.log.Warn("settlement already in progress", logger.NewField("order_id", shipment.OrderID))
				return nil
			}
			return fmt.Errorf("settle order %s: %w", shipment.OrderID, err)
		}
	case entities.ShipmentReturned:
		if err := s.ledger.ReverseOrder(ctx, shipment.OrderID, "shipment returned"); err != nil {
			return fmt.Errorf("reverse order %s: %w", shipment.OrderID, err)
		}
	}
	return nil
}

// TrackShipment опрашивает курьера прямо сейчас и применяет полученные события.
func (s *Service) TrackShipment(ctx context.Context, id uuid.UUID) (*entities.IngestResult, error) {
	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s.track(ctx, shipment)
}

func (s *Service) track(ctx context.Context, shipment *entities.Shipment) (*entities.IngestResult, error) {
	if shipment.Status.IsTerminal() {
		return &entities.IngestResult{
			Shipment: shipment,
			Previous: shipment.Status,
			Current:  shipment.Status,
		}, nil
	}
	if shipment.TrackingNumber == "" {
		return nil, fmt.Errorf("shipment %s: %w", shipment.ID, ErrNotBooked)
	}

	events, err := s.router.TrackShipment(ctx, shipment.CourierID, shipment.TrackingNumber)
	if err != nil {
		return nil, fmt.Errorf("track shipment %s: %w", shipment.ID, err)
	}

	return s.IngestEvents(ctx, shipment.ID, events)
}

// PollActiveShipments опрашивает все незавершённые shipment.
// У каждого курьера свой пул, чтобы медленный курьер не задерживал остальных.
func (s *Service) PollActiveShipments(ctx context.Context) (entities.PollSummary, error) {
	shipments, err := s.repository.ListActive(ctx, entities.ActiveShipmentStatuses)
	if err != nil {
		return entities.PollSummary{}, fmt.Errorf("list active shipments: %w", err)
	}

	byCourier := make(map[entities.ProviderID][]entities.Shipment)
	for _, shipment := range shipments {
		byCourier[shipment.CourierID] = append(byCourier[shipment.CourierID], shipment)
	}

	var polled, failed, changed atomic.Int64

	var couriers errgroup.Group
	for courierID, list := range byCourier {
		couriers.Go(func() error {
			var pool errgroup.Group
			pool.SetLimit(s.pollConcurrency)

			for i := range list {
				shipment := list[i]
				pool.Go(func() error {
					if ctx.Err() != nil {
						return nil
					}

					result, err := s.track(ctx, &shipment)
					if err != nil {
						failed.Add(1)
						s.log.Warn("tracking poll failed",
							logger.NewField("shipment_id", shipment.ID.String()),
							logger.NewField("courier", courierID.String()),
							logger.NewField("error", err.Error()),
						)
						return nil
					}

					polled.Add(1)
					if result.Changed() {
						changed.Add(1)
					}
					return nil
				})
			}
			return pool.Wait()
		})
	}
	_ = couriers.Wait()

	return entities.PollSummary{
		Polled:  polled.Load(),
		Failed:  failed.Load(),
		Changed: changed.Load(),
	}, ctx.Err()
}

// CancelShipment отменяет shipment по решению оператора.
// Забронированные shipment сначала отменяются у курьера.
func (s *Service) CancelShipment(ctx context.Context, id uuid.UUID, reason string) (*entities.Shipment, error) {
	var shipment *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock shipment: %w", err)
		}
		shipment = current
		return Transition(current.Status, entities.ShipmentCancelled)
	})
	if err != nil {
		return nil, err
	}

	if shipment.TrackingNumber == "" {
		return s.operatorTransition(ctx, id, entities.ShipmentCancelled, operatorRawCancelled, reason, nil)
	}

	ok, err := s.router.Cancel(ctx, shipment.CourierID, shipment.TrackingNumber)
	if err != nil {
		return nil, fmt.Errorf("cancel at courier %s: %w", shipment.CourierID, err)
	}
	if !ok {
		return nil, fmt.Errorf("courier %s: %w", shipment.CourierID, ErrCancelRejected)
	}

	updated, err := s.operatorTransition(ctx, id, entities.ShipmentCancelled, operatorRawCancelled, reason, nil)
	if err != nil {
		// курьер уже отменил, а локально статус ушёл дальше
		s.enqueueTask(ctx, shipment, entities.OperatorCancelConflict,
			fmt.Sprintf("courier %s accepted cancellation of %s, local transition failed: %v",
				shipment.CourierID, shipment.TrackingNumber, err))
		return nil, err
	}
	return updated, nil
}

// MarkReturned фиксирует возврат по решению оператора и сторнирует комиссию заказа.
func (s *Service) MarkReturned(ctx context.Context, id uuid.UUID, reason string) (*entities.Shipment, error) {
	return s.operatorTransition(ctx, id, entities.ShipmentReturned, operatorRawReturned, reason,
		func(ctx context.Context, shipment *entities.Shipment) error {
			return s.applyLedger(ctx, shipment, entities.ShipmentReturned)
		})
}

func (s *Service) operatorTransition(
	ctx context.Context,
	id uuid.UUID,
	to entities.ShipmentStatus,
	rawStatus, reason string,
	after func(ctx context.Context, shipment *entities.Shipment) error,
) (*entities.Shipment, error) {
	var (
		updated *entities.Shipment
		from    entities.ShipmentStatus
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock shipment: %w", err)
		}
		from = shipment.Status

		// статус мог измениться, пока шли в курьера
		if err := Transition(shipment.Status, to); err != nil {
			return err
		}

		now := s.now().UTC()
		event := entities.TrackingEvent{
			ShipmentID:  id,
			Timestamp:   now,
			Status:      to,
			RawStatus:   rawStatus,
			Description: reason,
			Agent:       "operator",
			ReceivedAt:  now,
		}
		if _, err := s.events.Append(ctx, id, []entities.TrackingEvent{event}); err != nil {
			return fmt.Errorf("append operator event: %w", err)
		}

		err = s.repository.Update(ctx, entities.ShipmentModify{
			ID:        &id,
			Status:    &to,
			UpdatedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		if after != nil {
			if err := after(ctx, shipment); err != nil {
				return err
			}
		}

		shipment.Status = to
		shipment.UpdatedAt = now
		updated = shipment
		return nil
	})
	if err != nil {
		return nil, err
	}

	ShipmentTransitionsTotal.WithLabelValues(from.String(), to.String(), "operator").Inc()
	s.log.Info("shipment status set by operator",
		logger.NewField("shipment_id", id.String()),
		logger.NewField("status", to.String()),
		logger.NewField("reason", reason),
	)
	return updated, nil
}

func (s *Service) GetShipment(ctx context.Context, id uuid.UUID) (*entities.Shipment, error) {
	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s.withEvents(ctx, shipment)
}

func (s *Service) GetShipmentByOrderID(ctx context.Context, orderID string) (*entities.Shipment, error) {
	shipment, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get shipment by order id: %w", err)
	}
	return s.withEvents(ctx, shipment)
}

func (s *Service) withEvents(ctx context.Context, shipment *entities.Shipment) (*entities.Shipment, error) {
	events, err := s.events.ListByShipment(ctx, shipment.ID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	shipment.TrackingEvents = events
	return shipment, nil
}

func (s *Service) ceilingFor(courierID entities.ProviderID) int {
	if attempts := s.router.MaxDeliveryAttempts(courierID); attempts > 0 {
		return attempts
	}
	return s.attemptCeiling
}

func (s *Service) enqueueTask(ctx context.Context, shipment *entities.Shipment, reason entities.OperatorReason, details string) {
	if err := s.operatorQueue.Enqueue(ctx, newTask(shipment, reason, details, s.now())); err != nil {
		s.log.Error("enqueue operator task",
			logger.NewField("shipment_id", shipment.ID.String()),
			logger.NewField("reason", reason.String()),
			logger.NewField("error", err.Error()),
		)
	}
}

func newTask(shipment *entities.Shipment, reason entities.OperatorReason, details string, now time.Time) entities.OperatorTask {
	return entities.OperatorTask{
		ShipmentID: shipment.ID,
		OrderID:    shipment.OrderID,
		Reason:     reason,
		Details:    details,
		CreatedAt:  now.UTC(),
	}
}

// freshEvents отбрасывает уже известные события и дубли внутри пачки, сохраняя порядок получения.
func freshEvents(history, incoming []entities.TrackingEvent, shipmentID uuid.UUID, receivedAt time.Time) []entities.TrackingEvent {
	known := make(map[entities.EventKey]struct{}, len(history)+len(incoming))
	for _, event := range history {
		known[event.Key()] = struct{}{}
	}

	fresh := make([]entities.TrackingEvent, 0, len(incoming))
	for _, event := range incoming {
		key := event.Key()
		if _, ok := known[key]; ok {
			continue
		}
		known[key] = struct{}{}

		event.ShipmentID = shipmentID
		event.Timestamp = event.Timestamp.UTC()
		if event.Status == "" {
			event.Status = entities.ShipmentUnknown
		}
		if event.ReceivedAt.IsZero() {
			event.ReceivedAt = receivedAt
		}
		fresh = append(fresh, event)
	}
	return fresh
}

func containsStatus(events []entities.TrackingEvent, status entities.ShipmentStatus) bool {
	for _, event := range events {
		if event.Status == status {
			return true
		}
	}
	return false
}
