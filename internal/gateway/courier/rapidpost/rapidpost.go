package rapidpost

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/gateway/courier"
	"fulfillment/internal/gateway/courier/httpclient"
	"github.com/shopspring/decimal"
)

const ProviderID entities.ProviderID = "rapidpost"

// RapidPost отдает только текущий статус, без истории.
const timeLayout = "2006-01-02 15:04:05"

type Config struct {
	BaseURL   string
	APIKey    string
	SecretKey string
	Timeout   time.Duration
	Tariff    courier.Tariff
}

type Adapter struct {
	client *httpclient.Client
	tariff courier.Tariff
	now    func() time.Time
}

func New(cfg Config) *Adapter {
	sign := func(_ context.Context, req *http.Request, _ []byte) error {
		req.Header.Set("Api-Key", cfg.APIKey)
		req.Header.Set("Secret-Key", cfg.SecretKey)
		return nil
	}

	return &Adapter{
		client: httpclient.New(ProviderID, cfg.BaseURL, cfg.Timeout, httpclient.WithSigner(sign)),
		tariff: cfg.Tariff,
		now:    time.Now,
	}
}

func (a *Adapter) ID() entities.ProviderID {
	return ProviderID
}

func (a *Adapter) CreateShipment(ctx context.Context, req entities.ShipmentRequest) (*entities.ProviderBooking, error) {
	body := createOrderRequest{
		Invoice:          req.OrderID,
		DeliveryType:     deliveryType(req.ServiceType),
		PickupCity:       req.OriginCity,
		RecipientName:    req.DeliveryAddress.Name,
		RecipientPhone:   req.DeliveryAddress.Phone,
		RecipientAddress: strings.TrimSpace(req.DeliveryAddress.Street + ", " + req.DeliveryAddress.PostalCode),
		RecipientCity:    req.DeliveryAddress.City,
		RecipientZone:    req.DeliveryAddress.Region,
		WeightKg:         courier.ChargeableWeight(req.Package),
		CodAmount:        req.CashOnDelivery,
		DeclaredValue:    req.Package.DeclaredValue,
		Note:             req.Package.Description,
	}

	var resp createOrderResponse
	if err := a.client.Do(ctx, http.MethodPost, "/api/v1/create_order", body, &resp); err != nil {
		return nil, fmt.Errorf("rapidpost create order %s: %w", req.OrderID, err)
	}
	if resp.Status != http.StatusOK || resp.Consignment.TrackingCode == "" {
		return nil, fmt.Errorf("rapidpost create order %s: %w", req.OrderID, a.client.Reject(resp.Message))
	}

	return &entities.ProviderBooking{
		TrackingNumber: resp.Consignment.TrackingCode,
		ProviderRef:    strconv.FormatInt(resp.Consignment.ConsignmentID, 10),
		Status:         entities.ShipmentBooked,
		Fee:            resp.Consignment.DeliveryFee,
	}, nil
}

func (a *Adapter) TrackShipment(ctx context.Context, trackingNumber string) ([]entities.TrackingEvent, error) {
	var resp statusResponse
	path := "/api/v1/status_by_trackingcode/" + url.PathEscape(trackingNumber)
	if err := a.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("rapidpost track %s: %w", trackingNumber, err)
	}
	if resp.DeliveryStatus == "" {
		return nil, nil
	}

	receivedAt := a.now().UTC()
	ts := receivedAt
	if resp.UpdatedAt != "" {
		parsed, err := time.ParseInLocation(timeLayout, resp.UpdatedAt, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("rapidpost track %s: %w", trackingNumber,
				a.client.Reject(fmt.Sprintf("bad updated_at %q", resp.UpdatedAt)))
		}
		ts = parsed
	}

	status := courier.MapStatus(statusTable, resp.DeliveryStatus)
	if status == entities.ShipmentUnknown {
		courier.UnmappedStatusTotal.WithLabelValues(ProviderID.String(), resp.DeliveryStatus).Inc()
	}

	return []entities.TrackingEvent{{
		Timestamp:   ts,
		Status:      status,
		RawStatus:   resp.DeliveryStatus,
		Description: resp.Note,
		ReceivedAt:  receivedAt,
	}}, nil
}

func (a *Adapter) Cancel(ctx context.Context, trackingNumber string) (bool, error) {
	var resp cancelResponse
	path := "/api/v1/cancel_order/" + url.PathEscape(trackingNumber)
	if err := a.client.Do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return false, fmt.Errorf("rapidpost cancel %s: %w", trackingNumber, err)
	}
	return resp.Cancelled, nil
}

func (a *Adapter) QuoteRate(distanceKm float64, pkg entities.Package, service entities.ServiceType) decimal.Decimal {
	return a.tariff.Quote(distanceKm, pkg, service)
}

func (a *Adapter) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	var resp balanceResponse
	if err := a.client.Do(ctx, http.MethodGet, "/api/v1/get_balance", nil, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("rapidpost balance: %w", err)
	}
	return resp.CurrentBalance, nil
}

func deliveryType(s entities.ServiceType) string {
	switch s {
	case entities.ServiceExpress:
		return "express"
	case entities.ServiceSameDay:
		return "same_day"
	default:
		return "regular"
	}
}
