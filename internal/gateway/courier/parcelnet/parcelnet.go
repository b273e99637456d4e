package parcelnet

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/gateway/courier"
	"fulfillment/internal/gateway/courier/httpclient"
	"github.com/shopspring/decimal"
)

const ProviderID entities.ProviderID = "parcelnet"

const (
	headerAPIKey    = "X-Api-Key"
	headerTimestamp = "X-Timestamp"
	headerSignature = "X-Signature"
)

type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Timeout   time.Duration
	Tariff    courier.Tariff
}

type Adapter struct {
	client *httpclient.Client
	tariff courier.Tariff
	now    func() time.Time
}

func New(cfg Config) *Adapter {
	a := &Adapter{
		tariff: cfg.Tariff,
		now:    time.Now,
	}

	a.client = httpclient.New(ProviderID, cfg.BaseURL, cfg.Timeout,
		httpclient.WithSigner(func(_ context.Context, req *http.Request, body []byte) error {
			ts := a.now().Unix()
			req.Header.Set(headerAPIKey, cfg.APIKey)
			req.Header.Set(headerTimestamp, strconv.FormatInt(ts, 10))
			req.Header.Set(headerSignature, Sign(cfg.APISecret, ts, req.Method, req.URL.Path, body))
			return nil
		}),
	)

	return a
}

func (a *Adapter) ID() entities.ProviderID {
	return ProviderID
}

func (a *Adapter) CreateShipment(ctx context.Context, req entities.ShipmentRequest) (*entities.ProviderBooking, error) {
	body := createParcelRequest{
		ReferenceID:      req.OrderID,
		ServiceLevel:     string(req.ServiceType),
		PickupCity:       req.OriginCity,
		CustomerName:     req.DeliveryAddress.Name,
		CustomerPhone:    req.DeliveryAddress.Phone,
		CustomerAddress:  req.DeliveryAddress.Street,
		DeliveryArea:     req.DeliveryAddress.Region,
		DeliveryCity:     req.DeliveryAddress.City,
		PostalCode:       req.DeliveryAddress.PostalCode,
		WeightGrams:      int64(math.Ceil(courier.ChargeableWeight(req.Package) * 1000)),
		CashCollection:   req.CashOnDelivery,
		ParcelValue:      req.Package.DeclaredValue,
		ParcelDetailText: req.Package.Description,
	}

	var resp createParcelResponse
	if err := a.client.Do(ctx, http.MethodPost, "/v1/parcels", body, &resp); err != nil {
		return nil, fmt.Errorf("parcelnet create parcel %s: %w", req.OrderID, err)
	}
	if !resp.Success || resp.Parcel.TrackingID == "" {
		return nil, fmt.Errorf("parcelnet create parcel %s: %w", req.OrderID, a.client.Reject(resp.Error))
	}

	return &entities.ProviderBooking{
		TrackingNumber: resp.Parcel.TrackingID,
		ProviderRef:    resp.Parcel.ID,
		Status:         entities.ShipmentBooked,
		Fee:            resp.Parcel.Charge,
	}, nil
}

func (a *Adapter) TrackShipment(ctx context.Context, trackingNumber string) ([]entities.TrackingEvent, error) {
	var resp logsResponse
	path := "/v1/parcels/" + url.PathEscape(trackingNumber) + "/logs"
	if err := a.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("parcelnet track %s: %w", trackingNumber, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("parcelnet track %s: %w", trackingNumber, a.client.Reject(resp.Error))
	}

	receivedAt := a.now().UTC()
	events := make([]entities.TrackingEvent, 0, len(resp.Logs))
	for _, l := range resp.Logs {
		status := courier.MapStatus(statusTable, l.StatusKey)
		if status == entities.ShipmentUnknown {
			courier.UnmappedStatusTotal.WithLabelValues(ProviderID.String(), l.StatusKey).Inc()
		}

		events = append(events, entities.TrackingEvent{
			Timestamp:   time.Unix(l.Time, 0).UTC(),
			Status:      status,
			RawStatus:   l.StatusKey,
			Location:    l.Area,
			Description: l.Message,
			Agent:       l.Actor,
			Remarks:     l.Note,
			ReceivedAt:  receivedAt,
		})
	}

	return events, nil
}

func (a *Adapter) Cancel(ctx context.Context, trackingNumber string) (bool, error) {
	var resp successResponse
	path := "/v1/parcels/" + url.PathEscape(trackingNumber)
	if err := a.client.Do(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return false, fmt.Errorf("parcelnet cancel %s: %w", trackingNumber, err)
	}
	return resp.Success, nil
}

func (a *Adapter) QuoteRate(distanceKm float64, pkg entities.Package, service entities.ServiceType) decimal.Decimal {
	return a.tariff.Quote(distanceKm, pkg, service)
}

func (a *Adapter) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	var resp balanceResponse
	if err := a.client.Do(ctx, http.MethodGet, "/v1/merchant/balance", nil, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("parcelnet balance: %w", err)
	}
	return resp.Balance, nil
}

// Areas возвращает зоны доставки в городе. Пустой city - все зоны.
func (a *Adapter) Areas(ctx context.Context, city string) ([]Area, error) {
	path := "/v1/areas"
	if city != "" {
		path += "?" + url.Values{"city": []string{city}}.Encode()
	}

	var resp areasResponse
	if err := a.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("parcelnet areas: %w", err)
	}
	return resp.Areas, nil
}

// Coverage собирает регионы, в которые ParcelNet сейчас доставляет.
func (a *Adapter) Coverage(ctx context.Context) ([]string, error) {
	areas, err := a.Areas(ctx, "")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(areas))
	regions := make([]string, 0, len(areas))
	for _, area := range areas {
		if area.Region == "" {
			continue
		}
		if _, ok := seen[area.Region]; ok {
			continue
		}
		seen[area.Region] = struct{}{}
		regions = append(regions, area.Region)
	}
	sort.Strings(regions)

	return regions, nil
}
