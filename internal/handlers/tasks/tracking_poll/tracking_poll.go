package tracking_poll

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type Service interface {
	PollActiveShipments(ctx context.Context) (entities.PollSummary, error)
}

// TrackingPoll опрашивает курьеров по всем активным отправкам.
type TrackingPoll struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTrackingPoll(log logger.Logger, service Service, interval time.Duration) *TrackingPoll {
	return &TrackingPoll{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *TrackingPoll) TTL() time.Duration {
	return p.interval
}

func (p *TrackingPoll) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	summary, err := p.service.PollActiveShipments(ctxWithTimeout)

	if summary.Polled > 0 {
		p.log.With(
			logger.NewField("polled", summary.Polled),
			logger.NewField("changed", summary.Changed),
			logger.NewField("failed", summary.Failed),
		).Info("tracking poll")
	}

	return err
}

func (p *TrackingPoll) Info() string {
	return "tracking poll"
}
