package payout_processing

import (
	"context"
	"time"

	"fulfillment/pkg/logger"
)

type Service interface {
	ProcessPending(ctx context.Context) (int, error)
}

type PayoutProcessing struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPayoutProcessing(log logger.Logger, service Service, interval time.Duration) *PayoutProcessing {
	return &PayoutProcessing{
		log:      log,
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (p *PayoutProcessing) TTL() time.Duration {
	return p.interval
}

// Do одобряет накопившиеся заявки на выплату.
func (p *PayoutProcessing) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	processed, err := p.service.ProcessPending(ctxWithTimeout)
	if processed > 0 {
		p.log.With(
			logger.NewField("processed", processed),
		).Info("payout processing")
	}

	return err
}

func (p *PayoutProcessing) Info() string {
	return "payout processing"
}
