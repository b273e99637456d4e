//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"github.com/shopspring/decimal"
)

// Provider - адаптер одного курьерского API.
type Provider interface {
	ID() entities.ProviderID
	CreateShipment(ctx context.Context, req entities.ShipmentRequest) (*entities.ProviderBooking, error)
	TrackShipment(ctx context.Context, trackingNumber string) ([]entities.TrackingEvent, error)
	Cancel(ctx context.Context, trackingNumber string) (bool, error)
	QuoteRate(distanceKm float64, pkg entities.Package, service entities.ServiceType) decimal.Decimal
}

// BalanceProvider - опциональная возможность адаптера.
type BalanceProvider interface {
	GetBalance(ctx context.Context) (decimal.Decimal, error)
}

// CoverageProvider - опциональная возможность узнать актуальное покрытие у провайдера.
type CoverageProvider interface {
	Coverage(ctx context.Context) ([]string, error)
}

type DistanceTable interface {
	Distance(from, to string) float64
}

type Limiter interface {
	Wait(ctx context.Context) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
