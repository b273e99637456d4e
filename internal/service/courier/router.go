package courier

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
)

const defaultCallTimeout = 15 * time.Second

// Registration - провайдер и лимиты, под которыми Router его вызывает.
type Registration struct {
	Provider            Provider
	Coverage            []string
	Services            []entities.ServiceType
	MaxDeliveryAttempts int
	MaxConcurrency      int64
	Limiter             Limiter
	Retry               retrier.Config
	CallTimeout         time.Duration
}

type route struct {
	provider    Provider
	services    []entities.ServiceType
	attempts    int
	sem         *semaphore.Weighted
	limiter     Limiter
	retrier     retrier.Retrier
	callTimeout time.Duration

	mu       sync.RWMutex
	coverage map[string]struct{}
}

func (r *route) covers(region string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.coverage[normalizeRegion(region)]
	return ok
}

func (r *route) setCoverage(regions []string) {
	coverage := make(map[string]struct{}, len(regions))
	for _, region := range regions {
		coverage[normalizeRegion(region)] = struct{}{}
	}

	r.mu.Lock()
	r.coverage = coverage
	r.mu.Unlock()
}

func (r *route) coverageList() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.coverage))
	for region := range r.coverage {
		out = append(out, region)
	}
	sort.Strings(out)
	return out
}

// Router выбирает курьера и вызывает его под семафором, лимитером, таймаутом и ретраями.
// При ошибке не переключается на другого курьера.
type Router struct {
	log       handlerLogger
	distances DistanceTable
	routes    map[entities.ProviderID]*route
	order     []entities.ProviderID
}

func New(log handlerLogger, distances DistanceTable, registrations []Registration) (*Router, error) {
	r := &Router{
		log:       log,
		distances: distances,
		routes:    make(map[entities.ProviderID]*route, len(registrations)),
	}

	for _, reg := range registrations {
		id := reg.Provider.ID()
		if _, ok := r.routes[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProvider, id)
		}

		maxConcurrency := reg.MaxConcurrency
		if maxConcurrency <= 0 {
			maxConcurrency = 1
		}
		callTimeout := reg.CallTimeout
		if callTimeout <= 0 {
			callTimeout = defaultCallTimeout
		}

		retryConfig := reg.Retry
		retryConfig.ShouldRetry = entities.IsRetryableProviderError

		rt := &route{
			provider:    reg.Provider,
			services:    reg.Services,
			attempts:    reg.MaxDeliveryAttempts,
			sem:         semaphore.NewWeighted(maxConcurrency),
			limiter:     reg.Limiter,
			retrier:     backoff_adapter.New(retryConfig),
			callTimeout: callTimeout,
		}
		rt.setCoverage(reg.Coverage)

		r.routes[id] = rt
		r.order = append(r.order, id)
	}

	sort.Slice(r.order, func(i, j int) bool { return r.order[i] < r.order[j] })

	return r, nil
}

// GetRates возвращает котировки всех подходящих курьеров, от дешевой к дорогой.
// При равной цене порядок по id провайдера.
func (r *Router) GetRates(origin string, destination entities.Address, pkg entities.Package, service entities.ServiceType) []entities.RateQuote {
	distance := r.distances.Distance(origin, destination.City)

	quotes := make([]entities.RateQuote, 0, len(r.order))
	for _, id := range r.order {
		rt := r.routes[id]
		if !rt.covers(destination.Region) || !supportsService(rt.services, service) {
			continue
		}

		quotes = append(quotes, entities.RateQuote{
			ProviderID:  id,
			ServiceType: service,
			DistanceKm:  distance,
			Rate:        rt.provider.QuoteRate(distance, pkg, service),
		})
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		if !quotes[i].Rate.Equal(quotes[j].Rate) {
			return quotes[i].Rate.LessThan(quotes[j].Rate)
		}
		return quotes[i].ProviderID < quotes[j].ProviderID
	})

	return quotes
}

// SelectProviders - id подходящих курьеров в порядке предпочтения.
func (r *Router) SelectProviders(origin string, destination entities.Address, pkg entities.Package, service entities.ServiceType) []entities.ProviderID {
	quotes := r.GetRates(origin, destination, pkg, service)

	ids := make([]entities.ProviderID, 0, len(quotes))
	for _, q := range quotes {
		ids = append(ids, q.ProviderID)
	}
	return ids
}

// Supports сообщает, может ли конкретный курьер доставить в регион данным сервисом.
func (r *Router) Supports(providerID entities.ProviderID, region string, service entities.ServiceType) bool {
	rt, ok := r.routes[providerID]
	if !ok {
		return false
	}
	return rt.covers(region) && supportsService(rt.services, service)
}

func (r *Router) CreateShipment(ctx context.Context, providerID entities.ProviderID, req entities.ShipmentRequest) (*entities.ProviderBooking, error) {
	var booking *entities.ProviderBooking

	err := r.call(ctx, providerID, "CreateShipment", func(ctx context.Context, p Provider) error {
		var err error
		booking, err = p.CreateShipment(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *Router) TrackShipment(ctx context.Context, providerID entities.ProviderID, trackingNumber string) ([]entities.TrackingEvent, error) {
	var events []entities.TrackingEvent

	err := r.call(ctx, providerID, "TrackShipment", func(ctx context.Context, p Provider) error {
		var err error
		events, err = p.TrackShipment(ctx, trackingNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *Router) Cancel(ctx context.Context, providerID entities.ProviderID, trackingNumber string) (bool, error) {
	var cancelled bool

	err := r.call(ctx, providerID, "Cancel", func(ctx context.Context, p Provider) error {
		var err error
		cancelled, err = p.Cancel(ctx, trackingNumber)
		return err
	})
	return cancelled, err
}

func (r *Router) Balance(ctx context.Context, providerID entities.ProviderID) (decimal.Decimal, error) {
	rt, ok := r.routes[providerID]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownProvider, providerID)
	}
	bp, ok := rt.provider.(BalanceProvider)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s balance", ErrCapabilityNotSupported, providerID)
	}

	var balance decimal.Decimal
	err := r.call(ctx, providerID, "GetBalance", func(ctx context.Context, _ Provider) error {
		var err error
		balance, err = bp.GetBalance(ctx)
		return err
	})
	return balance, err
}

// MaxDeliveryAttempts - потолок неудачных попыток доставки для курьера.
func (r *Router) MaxDeliveryAttempts(providerID entities.ProviderID) int {
	if rt, ok := r.routes[providerID]; ok {
		return rt.attempts
	}
	return 0
}

func (r *Router) Providers() []entities.ProviderInfo {
	infos := make([]entities.ProviderInfo, 0, len(r.order))
	for _, id := range r.order {
		rt := r.routes[id]
		_, balance := rt.provider.(BalanceProvider)

		infos = append(infos, entities.ProviderInfo{
			ID:                  id,
			Coverage:            rt.coverageList(),
			Services:            rt.services,
			SupportsBalance:     balance,
			MaxDeliveryAttempts: rt.attempts,
		})
	}
	return infos
}

// RefreshCoverage обновляет покрытие у курьеров, которые умеют его отдавать.
// Ошибка одного курьера не мешает остальным, старое покрытие сохраняется.
func (r *Router) RefreshCoverage(ctx context.Context) {
	for _, id := range r.order {
		rt := r.routes[id]
		cp, ok := rt.provider.(CoverageProvider)
		if !ok {
			continue
		}

		var regions []string
		err := r.call(ctx, id, "Coverage", func(ctx context.Context, _ Provider) error {
			var err error
			regions, err = cp.Coverage(ctx)
			return err
		})
		if err != nil {
			r.log.Warn("refresh courier coverage",
				logger.NewField("provider", id),
				logger.NewField("error", err),
			)
			continue
		}
		if len(regions) == 0 {
			continue
		}

		rt.setCoverage(regions)
		r.log.Info("courier coverage refreshed",
			logger.NewField("provider", id),
			logger.NewField("regions", len(regions)),
		)
	}
}

func (r *Router) call(ctx context.Context, providerID entities.ProviderID, method string, fn func(context.Context, Provider) error) error {
	rt, ok := r.routes[providerID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, providerID)
	}

	var attempt uint64
	start := time.Now()

	err := rt.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		if err := rt.sem.Acquire(ctx, 1); err != nil {
			return err
		}
		defer rt.sem.Release(1)

		ProviderInFlight.WithLabelValues(providerID.String()).Inc()
		defer ProviderInFlight.WithLabelValues(providerID.String()).Dec()

		if rt.limiter != nil {
			if err := rt.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, rt.callTimeout)
		defer cancel()

		return fn(callCtx, rt.provider)
	})

	ProviderRequestDuration.WithLabelValues(providerID.String(), method, resultLabel(err)).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		ProviderRetriesTotal.WithLabelValues(providerID.String(), method).Inc()
	}

	if err != nil && entities.IsRetryableProviderError(err) {
		r.log.Warn("courier retries exhausted",
			logger.NewField("provider", providerID),
			logger.NewField("method", method),
			logger.NewField("attempts", attempt),
			logger.NewField("error", err),
		)
		return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempt, err)
	}
	return err
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var providerErr *entities.ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Code
	}
	return "error"
}
