package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultDeliveryAttemptCeiling = 3
	defaultSettlementLockTTL      = 30 * time.Second
	defaultPollConcurrency        = 4
	defaultBookingClaimTTL        = 2 * time.Minute
)

type (
	Tasks struct {
		TrackingPollInterval    time.Duration
		TrackingPollConcurrency int // одновременных опросов на одного курьера
		PayoutProcessInterval   time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int32
	}

	// Redis опционален: без адреса блокировки расчетов живут в памяти процесса.
	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Couriers struct {
		RegistryPath           string
		RefreshCoverage        bool
		DeliveryAttemptCeiling int
		BookingClaimTTL        time.Duration // после этого срока брошенное бронирование можно повторить
	}

	Ledger struct {
		DefaultCommissionRate decimal.Decimal
		RequireConfirmation   bool
		SettlementLockTTL     time.Duration
	}

	OrderService struct {
		GRPCHost string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderEvents OrderEvents
	}

	OrderEvents struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		LogLevel     string
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Redis        Redis
		Couriers     Couriers
		Ledger       Ledger
		OrderService OrderService
		Kafka        Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	pollInterval, err := osGetEnvDuration("BACKGROUND_TRACKING_POLL_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pollConcurrency, err := osGetInt("BACKGROUND_TRACKING_POLL_CONCURRENCY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if pollConcurrency == 0 {
		pollConcurrency = defaultPollConcurrency
	}

	payoutInterval, err := osGetEnvDuration("BACKGROUND_PAYOUT_PROCESS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderEventsTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_EVENTS_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbMaxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	refreshCoverage, err := osGetBool("COURIER_REFRESH_COVERAGE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	attemptCeiling, err := osGetInt("DELIVERY_ATTEMPT_CEILING")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if attemptCeiling == 0 {
		attemptCeiling = defaultDeliveryAttemptCeiling
	}

	bookingClaimTTL, err := osGetEnvDuration("COURIER_BOOKING_CLAIM_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if bookingClaimTTL == 0 {
		bookingClaimTTL = defaultBookingClaimTTL
	}

	defaultRate, err := osGetDecimal("COMMISSION_DEFAULT_RATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requireConfirmation, err := osGetBool("SETTLEMENT_REQUIRE_CONFIRMATION")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	lockTTL, err := osGetEnvDuration("SETTLEMENT_LOCK_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if lockTTL == 0 {
		lockTTL = defaultSettlementLockTTL
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			TrackingPollInterval:    pollInterval,
			TrackingPollConcurrency: pollConcurrency,
			PayoutProcessInterval:   payoutInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			MaxConns: int32(dbMaxConns),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Couriers: Couriers{
			RegistryPath:           os.Getenv("COURIER_REGISTRY_PATH"),
			RefreshCoverage:        refreshCoverage,
			DeliveryAttemptCeiling: attemptCeiling,
			BookingClaimTTL:        bookingClaimTTL,
		},
		Ledger: Ledger{
			DefaultCommissionRate: defaultRate,
			RequireConfirmation:   requireConfirmation,
			SettlementLockTTL:     lockTTL,
		},
		OrderService: OrderService{
			GRPCHost: os.Getenv("ORDER_SERVICE_GRPC_HOST"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderEvents: OrderEvents{
					ProcessTimeout: orderEventsTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.TrackingPollInterval == time.Duration(0) {
		return errors.New("BACKGROUND_TRACKING_POLL_INTERVAL is required")
	}
	if cfg.Tasks.PayoutProcessInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PAYOUT_PROCESS_INTERVAL is required")
	}
	if cfg.Tasks.TrackingPollConcurrency < 0 {
		return errors.New("BACKGROUND_TRACKING_POLL_CONCURRENCY must be positive")
	}

	if cfg.Couriers.RegistryPath == "" {
		return errors.New("COURIER_REGISTRY_PATH is required")
	}
	if cfg.Couriers.DeliveryAttemptCeiling < 1 {
		return errors.New("DELIVERY_ATTEMPT_CEILING must be at least 1")
	}

	rate := cfg.Ledger.DefaultCommissionRate
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("COMMISSION_DEFAULT_RATE must be within [0, 100]")
	}

	if cfg.OrderService.GRPCHost == "" {
		return errors.New("ORDER_SERVICE_GRPC_HOST is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderEvents.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_EVENTS_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetDecimal(s string) (decimal.Decimal, error) {
	val := os.Getenv(s)
	if val == "" {
		return decimal.Zero, nil
	}

	res, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
