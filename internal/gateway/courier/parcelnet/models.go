package parcelnet

import "github.com/shopspring/decimal"

type createParcelRequest struct {
	ReferenceID      string          `json:"reference_id"`
	ServiceLevel     string          `json:"service_level"`
	PickupCity       string          `json:"pickup_city"`
	CustomerName     string          `json:"customer_name"`
	CustomerPhone    string          `json:"customer_phone"`
	CustomerAddress  string          `json:"customer_address"`
	DeliveryArea     string          `json:"delivery_area"`
	DeliveryCity     string          `json:"delivery_city"`
	PostalCode       string          `json:"postal_code,omitempty"`
	WeightGrams      int64           `json:"weight_grams"`
	CashCollection   decimal.Decimal `json:"cash_collection_amount"`
	ParcelValue      decimal.Decimal `json:"parcel_value"`
	ParcelDetailText string          `json:"parcel_details,omitempty"`
}

type createParcelResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Parcel  struct {
		ID         string          `json:"id"`
		TrackingID string          `json:"tracking_id"`
		Charge     decimal.Decimal `json:"charge"`
	} `json:"parcel"`
}

type logsResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Logs    []parcelLog `json:"logs"`
}

type parcelLog struct {
	Time      int64  `json:"time"`
	StatusKey string `json:"status_key"`
	Area      string `json:"area"`
	Message   string `json:"message"`
	Actor     string `json:"actor"`
	Note      string `json:"note"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type balanceResponse struct {
	Success bool            `json:"success"`
	Balance decimal.Decimal `json:"balance"`
}

type areasResponse struct {
	Success bool   `json:"success"`
	Areas   []Area `json:"areas"`
}

// Area - зона доставки ParcelNet.
type Area struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Region string `json:"region"`
}
