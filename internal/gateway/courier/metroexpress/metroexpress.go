package metroexpress

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/gateway/courier"
	"fulfillment/internal/gateway/courier/httpclient"
	"github.com/shopspring/decimal"
)

const ProviderID entities.ProviderID = "metroexpress"

const (
	deliveryTypeNormal  = 48
	deliveryTypeExpress = 12
	deliveryTypeSameDay = 6
)

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	Tariff       courier.Tariff
}

type Adapter struct {
	client *httpclient.Client
	tokens *tokenSource
	tariff courier.Tariff
	now    func() time.Time
}

func New(cfg Config) *Adapter {
	a := &Adapter{
		tariff: cfg.Tariff,
		now:    time.Now,
	}

	// токен выдается тем же API, но без подписи
	a.tokens = &tokenSource{
		client:       httpclient.New(ProviderID, cfg.BaseURL, cfg.Timeout),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		now:          func() time.Time { return a.now() },
	}

	a.client = httpclient.New(ProviderID, cfg.BaseURL, cfg.Timeout,
		httpclient.WithSigner(func(ctx context.Context, req *http.Request, _ []byte) error {
			token, err := a.tokens.Token(ctx)
			if err != nil {
				return err
			}
			req.Header.Set("Authorization", "Bearer "+token)
			return nil
		}),
	)

	return a
}

func (a *Adapter) ID() entities.ProviderID {
	return ProviderID
}

func (a *Adapter) CreateShipment(ctx context.Context, req entities.ShipmentRequest) (*entities.ProviderBooking, error) {
	body := consignmentRequest{
		MerchantOrderID:  req.OrderID,
		StoreCity:        req.OriginCity,
		RecipientName:    req.DeliveryAddress.Name,
		RecipientPhone:   req.DeliveryAddress.Phone,
		RecipientAddress: req.DeliveryAddress.Street,
		RecipientCity:    req.DeliveryAddress.City,
		RecipientArea:    req.DeliveryAddress.Region,
		DeliveryType:     deliveryType(req.ServiceType),
		ItemWeight:       courier.ChargeableWeight(req.Package),
		AmountToCollect:  req.CashOnDelivery,
		ItemDescription:  req.Package.Description,
	}

	var resp consignmentResponse
	if err := a.do(ctx, http.MethodPost, "/aladdin/api/v1/orders", body, &resp); err != nil {
		return nil, fmt.Errorf("metroexpress create order %s: %w", req.OrderID, err)
	}
	if resp.Type != "success" || resp.Data.ConsignmentID == "" {
		return nil, fmt.Errorf("metroexpress create order %s: %w", req.OrderID, a.client.Reject(resp.Message))
	}

	return &entities.ProviderBooking{
		TrackingNumber: resp.Data.ConsignmentID,
		ProviderRef:    resp.Data.ConsignmentID,
		Status:         entities.ShipmentBooked,
		Fee:            resp.Data.DeliveryFee,
	}, nil
}

func (a *Adapter) TrackShipment(ctx context.Context, trackingNumber string) ([]entities.TrackingEvent, error) {
	var resp eventsResponse
	path := "/aladdin/api/v1/orders/" + url.PathEscape(trackingNumber) + "/events"
	if err := a.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("metroexpress track %s: %w", trackingNumber, err)
	}

	receivedAt := a.now().UTC()
	events := make([]entities.TrackingEvent, 0, len(resp.Data.Events))
	for _, e := range resp.Data.Events {
		ts, err := time.Parse(time.RFC3339, e.EventTime)
		if err != nil {
			return nil, fmt.Errorf("metroexpress track %s: %w", trackingNumber,
				a.client.Reject(fmt.Sprintf("bad event_time %q", e.EventTime)))
		}

		status := courier.MapStatus(statusTable, e.Status)
		if status == entities.ShipmentUnknown {
			courier.UnmappedStatusTotal.WithLabelValues(ProviderID.String(), e.Status).Inc()
		}

		events = append(events, entities.TrackingEvent{
			Timestamp:   ts.UTC(),
			Status:      status,
			RawStatus:   e.Status,
			Location:    e.Hub,
			Description: e.Description,
			Agent:       e.Rider,
			Remarks:     e.Remarks,
			ReceivedAt:  receivedAt,
		})
	}

	return events, nil
}

func (a *Adapter) Cancel(ctx context.Context, trackingNumber string) (bool, error) {
	var resp cancelResponse
	path := "/aladdin/api/v1/orders/" + url.PathEscape(trackingNumber) + "/cancel"
	if err := a.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return false, fmt.Errorf("metroexpress cancel %s: %w", trackingNumber, err)
	}
	return resp.Data.Cancelled, nil
}

func (a *Adapter) QuoteRate(distanceKm float64, pkg entities.Package, service entities.ServiceType) decimal.Decimal {
	return a.tariff.Quote(distanceKm, pkg, service)
}

// do повторяет запрос один раз с новым токеном, если старый отозван до истечения срока.
func (a *Adapter) do(ctx context.Context, method, path string, in, out any) error {
	err := a.client.Do(ctx, method, path, in, out)

	var providerErr *entities.ProviderError
	if errors.As(err, &providerErr) && providerErr.Code == "http_401" {
		a.tokens.Invalidate()
		return a.client.Do(ctx, method, path, in, out)
	}
	return err
}

func deliveryType(s entities.ServiceType) int {
	switch s {
	case entities.ServiceExpress:
		return deliveryTypeExpress
	case entities.ServiceSameDay:
		return deliveryTypeSameDay
	default:
		return deliveryTypeNormal
	}
}
