package rapidpost

import "github.com/shopspring/decimal"

type createOrderRequest struct {
	Invoice          string          `json:"invoice"`
	DeliveryType     string          `json:"delivery_type"`
	PickupCity       string          `json:"pickup_city"`
	RecipientName    string          `json:"recipient_name"`
	RecipientPhone   string          `json:"recipient_phone"`
	RecipientAddress string          `json:"recipient_address"`
	RecipientCity    string          `json:"recipient_city"`
	RecipientZone    string          `json:"recipient_zone"`
	WeightKg         float64         `json:"weight_kg"`
	CodAmount        decimal.Decimal `json:"cod_amount"`
	DeclaredValue    decimal.Decimal `json:"declared_value"`
	Note             string          `json:"note,omitempty"`
}

type createOrderResponse struct {
	Status      int    `json:"status"`
	Message     string `json:"message"`
	Consignment struct {
		ConsignmentID int64           `json:"consignment_id"`
		TrackingCode  string          `json:"tracking_code"`
		Status        string          `json:"status"`
		DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	} `json:"consignment"`
}

type statusResponse struct {
	Status         int    `json:"status"`
	TrackingCode   string `json:"tracking_code"`
	DeliveryStatus string `json:"delivery_status"`
	UpdatedAt      string `json:"updated_at"`
	Note           string `json:"note"`
}

type cancelResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Cancelled bool   `json:"cancelled"`
}

type balanceResponse struct {
	Status         int             `json:"status"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}
