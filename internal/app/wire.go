//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"fmt"
	"time"

	orderGateway "fulfillment/internal/gateway/grpc/order"
	"fulfillment/internal/handlers/rest/courier_balance_get"
	"fulfillment/internal/handlers/rest/couriers_get"
	"fulfillment/internal/handlers/rest/operator_task_resolve_post"
	"fulfillment/internal/handlers/rest/operator_tasks_get"
	"fulfillment/internal/handlers/rest/payout_complete_post"
	"fulfillment/internal/handlers/rest/payout_fail_post"
	"fulfillment/internal/handlers/rest/payout_post"
	"fulfillment/internal/handlers/rest/rates_get"
	"fulfillment/internal/handlers/rest/report_daily_get"
	"fulfillment/internal/handlers/rest/report_dashboard_get"
	"fulfillment/internal/handlers/rest/report_top_stores_get"
	"fulfillment/internal/handlers/rest/shipment_cancel_post"
	"fulfillment/internal/handlers/rest/shipment_get"
	"fulfillment/internal/handlers/rest/shipment_post"
	"fulfillment/internal/handlers/rest/shipment_return_post"
	"fulfillment/internal/handlers/rest/shipment_track_post"
	"fulfillment/internal/handlers/rest/store_balance_get"
	"fulfillment/internal/handlers/rest/store_rate_put"
	"fulfillment/internal/handlers/rest/transaction_reverse_post"
	"fulfillment/internal/handlers/tasks/payout_processing"
	"fulfillment/internal/handlers/tasks/tracking_poll"
	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/factory/courier_provider"
	"fulfillment/internal/pkg/factory/delivery_eta"
	"fulfillment/internal/pkg/factory/order_handle"
	"fulfillment/internal/pkg/registry"
	commissionRepo "fulfillment/internal/repository/commission"
	operatorTaskRepo "fulfillment/internal/repository/operator_task"
	payoutRepo "fulfillment/internal/repository/payout"
	reportRepo "fulfillment/internal/repository/report"
	shipmentRepo "fulfillment/internal/repository/shipment"
	trackingEventRepo "fulfillment/internal/repository/tracking_event"
	courierService "fulfillment/internal/service/courier"
	ledgerService "fulfillment/internal/service/ledger"
	operatorService "fulfillment/internal/service/operator"
	orderService "fulfillment/internal/service/order"
	payoutService "fulfillment/internal/service/payout"
	reportService "fulfillment/internal/service/report"
	shipmentService "fulfillment/internal/service/shipment"
	"fulfillment/pkg/background"
	"fulfillment/pkg/lock/memory_adapter"
	"fulfillment/pkg/lock/redis_adapter"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/querier"
	"fulfillment/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
)

const settlementLockPrefix = "fulfillment:settle:"

type Application struct {
	Shipments         ServiceShipment
	Couriers          ServiceCouriers
	Ledger            ServiceLedger
	Payouts           ServicePayout
	Reports           ServiceReport
	Operator          ServiceOperator
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipment_track_post.Service
	shipment_cancel_post.Service
	shipment_return_post.Service
}

type ServiceCouriers interface {
	couriers_get.Service
	courier_balance_get.Service
	rates_get.Service
}

type ServiceLedger interface {
	store_balance_get.Service
	store_rate_put.Service
	transaction_reverse_post.Service
}

type ServicePayout interface {
	payout_post.Service
	payout_complete_post.Service
	payout_fail_post.Service
}

type ServiceReport interface {
	report_dashboard_get.Service
	report_daily_get.Service
	report_top_stores_get.Service
}

type ServiceOperator interface {
	operator_tasks_get.Service
	operator_task_resolve_post.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient redis.UniversalClient,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		coreSet,

		provideOperatorService,
		provideReportService,
		providePayoutService,

		provideTrackingPollTask,
		providePayoutProcessingTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Service)),
		wire.Bind(new(ServiceCouriers), new(*courierService.Router)),
		wire.Bind(new(ServiceLedger), new(*ledgerService.Ledger)),
		wire.Bind(new(ServicePayout), new(*payoutService.Orchestrator)),
		wire.Bind(new(ServiceReport), new(*reportService.Reporter)),
		wire.Bind(new(ServiceOperator), new(*operatorService.Queue)),

		wire.Bind(new(operatorService.Repository), new(*operatorTaskRepo.Repository)),
		wire.Bind(new(reportService.Repository), new(*reportRepo.Repository)),
		wire.Bind(new(reportService.Ledger), new(*ledgerService.Ledger)),
		wire.Bind(new(payoutService.Repository), new(*payoutRepo.Repository)),
		wire.Bind(new(payoutService.Ledger), new(*ledgerService.Ledger)),
		wire.Bind(new(payoutService.TxManager), new(*tx.Manager)),

		wire.Bind(new(tracking_poll.Service), new(*shipmentService.Service)),
		wire.Bind(new(payout_processing.Service), new(*payoutService.Orchestrator)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient redis.UniversalClient,
	conn *grpc.ClientConn,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		coreSet,

		provideOrderGateway,
		provideStatusHandlerFactory,
		provideOrderService,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(orderService.OrderGateway), new(*orderGateway.OrderGateway)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),
		wire.Bind(new(orderService.ShipmentService), new(*shipmentService.Service)),
		wire.Bind(new(orderService.Ledger), new(*ledgerService.Ledger)),
	)
	return nil, nil
}

// coreSet: репозитории, роутер курьеров, журнал комиссий и машина состояний отправок.
var coreSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideShipmentRepository,
	provideTrackingEventRepository,
	provideOperatorTaskRepository,
	provideCommissionRepository,
	provideRateRepository,
	providePayoutRepository,
	provideReportRepository,

	provideRegistry,
	courier_provider.New,
	provideRegistrations,
	provideRouter,
	provideLocker,
	provideLedger,
	delivery_eta.New,
	provideShipmentService,

	wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
	wire.Bind(new(shipmentService.EventRepository), new(*trackingEventRepo.Repository)),
	wire.Bind(new(shipmentService.OperatorQueue), new(*operatorTaskRepo.Repository)),
	wire.Bind(new(shipmentService.CourierRouter), new(*courierService.Router)),
	wire.Bind(new(shipmentService.Ledger), new(*ledgerService.Ledger)),
	wire.Bind(new(shipmentService.DeliveryETAFactory), new(*delivery_eta.DeliveryETAFactory)),
	wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
	wire.Bind(new(ledgerService.Repository), new(*commissionRepo.Repository)),
	wire.Bind(new(ledgerService.RateRepository), new(*commissionRepo.RateRepository)),
	wire.Bind(new(ledgerService.PayoutTotals), new(*payoutRepo.Repository)),
	wire.Bind(new(ledgerService.TxManager), new(*tx.Manager)),
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideTrackingEventRepository(querier *querier.Querier) *trackingEventRepo.Repository {
	return trackingEventRepo.New(querier)
}

func provideOperatorTaskRepository(querier *querier.Querier) *operatorTaskRepo.Repository {
	return operatorTaskRepo.New(querier)
}

func provideCommissionRepository(querier *querier.Querier) *commissionRepo.Repository {
	return commissionRepo.New(querier)
}

func provideRateRepository(querier *querier.Querier) *commissionRepo.RateRepository {
	return commissionRepo.NewRateRepository(querier)
}

func providePayoutRepository(querier *querier.Querier) *payoutRepo.Repository {
	return payoutRepo.New(querier)
}

func provideReportRepository(querier *querier.Querier) *reportRepo.Repository {
	return reportRepo.New(querier)
}

func provideRegistry(cfg *config.Config) (*registry.Registry, error) {
	reg, err := registry.Load(cfg.Couriers.RegistryPath, cfg.Couriers.DeliveryAttemptCeiling)
	if err != nil {
		return nil, fmt.Errorf("courier registry: %w", err)
	}
	return reg, nil
}

func provideRegistrations(
	factory *courier_provider.ProviderFactory,
	reg *registry.Registry,
) ([]courierService.Registration, error) {
	return factory.Registrations(reg)
}

// provideRouter собирает роутер и, если включено, подтягивает зоны покрытия у курьеров.
func provideRouter(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
	reg *registry.Registry,
	registrations []courierService.Registration,
) (*courierService.Router, error) {
	router, err := courierService.New(log, reg.Distances, registrations)
	if err != nil {
		return nil, fmt.Errorf("courier router: %w", err)
	}

	if cfg.Couriers.RefreshCoverage {
		router.RefreshCoverage(ctx)
	}
	return router, nil
}

// provideLocker без Redis отдаёт блокировку в памяти процесса: годится только для одного инстанса.
func provideLocker(log logger.Logger, redisClient redis.UniversalClient) ledgerService.Locker {
	if redisClient == nil {
		log.Warn("settlement lock is process-local, redis is not configured")
		return memory_adapter.New()
	}
	return redis_adapter.New(redisClient, settlementLockPrefix)
}

func provideLedger(
	repository ledgerService.Repository,
	rates ledgerService.RateRepository,
	payouts ledgerService.PayoutTotals,
	locker ledgerService.Locker,
	txManager ledgerService.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *ledgerService.Ledger {
	return ledgerService.New(repository, rates, payouts, locker, txManager, log, ledgerService.Config{
		DefaultRate:         cfg.Ledger.DefaultCommissionRate,
		RequireConfirmation: cfg.Ledger.RequireConfirmation,
		LockTTL:             cfg.Ledger.SettlementLockTTL,
	})
}

func provideShipmentService(
	repository shipmentService.Repository,
	events shipmentService.EventRepository,
	operatorQueue shipmentService.OperatorQueue,
	router shipmentService.CourierRouter,
	ledger shipmentService.Ledger,
	etaFactory shipmentService.DeliveryETAFactory,
	txManager shipmentService.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *shipmentService.Service {
	return shipmentService.New(
		repository,
		events,
		operatorQueue,
		router,
		ledger,
		etaFactory,
		txManager,
		log,
		shipmentService.Config{
			AttemptCeiling:  cfg.Couriers.DeliveryAttemptCeiling,
			PollConcurrency: cfg.Tasks.TrackingPollConcurrency,
			BookingClaimTTL: cfg.Couriers.BookingClaimTTL,
		},
	)
}

func provideOperatorService(repository operatorService.Repository) *operatorService.Queue {
	return operatorService.New(repository, time.Now)
}

func provideReportService(
	repository reportService.Repository,
	ledger reportService.Ledger,
	log logger.Logger,
) *reportService.Reporter {
	return reportService.New(repository, ledger, log, time.Now)
}

func providePayoutService(
	repository payoutService.Repository,
	ledger payoutService.Ledger,
	txManager payoutService.TxManager,
	log logger.Logger,
) *payoutService.Orchestrator {
	return payoutService.New(repository, ledger, txManager, log, time.Now)
}

func provideOrderGateway(conn *grpc.ClientConn) *orderGateway.OrderGateway {
	return orderGateway.New(conn)
}

func provideStatusHandlerFactory(
	shipments orderService.ShipmentService,
	ledger orderService.Ledger,
) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(shipments, ledger)
}

// provideOrderService создает orderService для обработки событий Kafka
func provideOrderService(
	gateway orderService.OrderGateway,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(gateway, handlerFactory)
}

func provideTrackingPollTask(
	log logger.Logger,
	service tracking_poll.Service,
	cfg *config.Config,
) *tracking_poll.TrackingPoll {
	return tracking_poll.NewTrackingPoll(log, service, cfg.Tasks.TrackingPollInterval)
}

func providePayoutProcessingTask(
	log logger.Logger,
	service payout_processing.Service,
	cfg *config.Config,
) *payout_processing.PayoutProcessing {
	return payout_processing.NewPayoutProcessing(log, service, cfg.Tasks.PayoutProcessInterval)
}

func provideTaskList(
	trackingPollTask *tracking_poll.TrackingPoll,
	payoutProcessingTask *payout_processing.PayoutProcessing,
) []background.Task {
	return []background.Task{
		trackingPollTask,
		payoutProcessingTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
