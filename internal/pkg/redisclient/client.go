package redisclient

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/pkg/config"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"
	"github.com/redis/go-redis/v9"
)

const (
	initialInterval = time.Second
	maxInterval     = 10 * time.Second
	maxElapsedTime  = time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// New подключается к Redis. При пустом адресе возвращает nil:
// блокировки расчётов тогда берутся из памяти процесса.
func New(ctx context.Context, log logger.Logger, cfg *config.Redis) (redis.UniversalClient, error) {
	if cfg.Addr == "" {
		log.Warn("redis address is empty, settlement locks are process-local")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	redisLog := log.With(logger.NewField("addr", cfg.Addr), logger.NewField("db", cfg.DB))

	var attempt uint64
	err := backoff_adapter.New(retrier.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	}).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return client.Ping(ctx).Err()
	})
	if err != nil {
		redisLog.Error("redis connection failed after retries",
			logger.NewField("error", err.Error()),
			logger.NewField("attempts", attempt),
		)
		if closeErr := client.Close(); closeErr != nil {
			return nil, fmt.Errorf("redis ping: %w (close: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	redisLog.Info("redis connection established", logger.NewField("attempts", attempt))
	return client, nil
}
