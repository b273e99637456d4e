package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	stdlog "log"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fulfillment/internal/generated/dto"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/logger/zap_adapter"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const (
	defaultTarget   = "http://localhost:8080"
	defaultInterval = 2 * time.Second
	metricsAddr     = ":2112"
	requestTimeout  = 10 * time.Second
)

var (
	generatorRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_generator_requests_total",
			Help: "Requests sent to the fulfillment API",
		},
		[]string{"operation", "status"},
	)

	generatorRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "traffic_generator_request_duration_seconds",
			Help:    "Latency of requests sent to the fulfillment API",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
)

var (
	cities  = []string{"dhaka", "chattogram", "sylhet", "khulna", "rajshahi"}
	stores  = []string{"store-aurora", "store-banyan", "store-cedar", "store-delta"}
	service = []dto.ServiceType{dto.Standard, dto.Express, dto.SameDay}
)

type generator struct {
	target string
	client *http.Client
	log    logger.Logger
}

// Генератор нагрузки для локального стенда: котировки и создание отправок со случайными параметрами.
func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	target := os.Getenv("TRAFFIC_TARGET_URL")
	if target == "" {
		target = defaultTarget
	}

	interval := defaultInterval
	if raw := os.Getenv("TRAFFIC_INTERVAL"); raw != "" {
		interval, err = time.ParseDuration(raw)
		if err != nil {
			zapLogger.Error("invalid TRAFFIC_INTERVAL", logger.NewField("error", err))
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	metricsServer := &http.Server{
		Addr:              metricsAddr,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Error("metrics server", logger.NewField("error", err))
		}
	}()

	g := &generator{
		target: target,
		client: &http.Client{Timeout: requestTimeout},
		log:    zapLogger,
	}

	zapLogger.Info("traffic generator started",
		logger.NewField("target", target),
		logger.NewField("interval", interval.String()),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = metricsServer.Shutdown(shutdownCtx)
			cancel()
			zapLogger.Info("traffic generator stopped")
			return
		case <-ticker.C:
			g.quoteRates(ctx)
			g.createShipment(ctx)
		}
	}
}

func (g *generator) quoteRates(ctx context.Context) {
	query := url.Values{}
	query.Set("origin", pick(cities))
	query.Set("region", pick(cities))
	query.Set("weight_kg", strconv.FormatFloat(0.5+rand.Float64()*9.5, 'f', 2, 64))
	query.Set("service_type", string(pick(service)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.target+"/rates?"+query.Encode(), http.NoBody)
	if err != nil {
		g.log.Error("build rates request", logger.NewField("error", err))
		return
	}
	g.send("rates", req)
}

func (g *generator) createShipment(ctx context.Context) {
	serviceType := pick(service)
	destination := pick(cities)
	amount := decimal.NewFromFloat(200 + rand.Float64()*4800).Round(2)

	body := dto.ShipmentCreateRequest{
		OrderId:     "load-" + uuid.NewString(),
		StoreId:     pick(stores),
		OrderAmount: amount.StringFixed(2),
		OriginCity:  "dhaka",
		ServiceType: &serviceType,
		DeliveryAddress: dto.Address{
			Name:    "Load Test",
			Phone:   "+8801700000000",
			Street:  fmt.Sprintf("House %d, Road %d", rand.IntN(90)+1, rand.IntN(30)+1),
			City:    destination,
			Region:  destination,
			Country: "BD",
		},
		Package: dto.Package{
			WeightKg:      float32(0.3 + rand.Float64()*4.7),
			DeclaredValue: amount.StringFixed(2),
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		g.log.Error("encode shipment request", logger.NewField("error", err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.target+"/shipments", bytes.NewReader(payload))
	if err != nil {
		g.log.Error("build shipment request", logger.NewField("error", err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	g.send("create_shipment", req)
}

func (g *generator) send(operation string, req *http.Request) {
	start := time.Now()
	resp, err := g.client.Do(req)
	generatorRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		generatorRequestsTotal.WithLabelValues(operation, "error").Inc()
		g.log.Warn("request failed",
			logger.NewField("operation", operation),
			logger.NewField("error", err),
		)
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	generatorRequestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
}

func pick[T any](values []T) T {
	return values[rand.IntN(len(values))]
}
