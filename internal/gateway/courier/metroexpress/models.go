package metroexpress

import "github.com/shopspring/decimal"

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

type tokenResponse struct {
	TokenType   string `json:"token_type"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type consignmentRequest struct {
	MerchantOrderID    string          `json:"merchant_order_id"`
	StoreCity          string          `json:"store_city"`
	RecipientName      string          `json:"recipient_name"`
	RecipientPhone     string          `json:"recipient_phone"`
	RecipientAddress   string          `json:"recipient_address"`
	RecipientCity      string          `json:"recipient_city"`
	RecipientArea      string          `json:"recipient_area"`
	DeliveryType       int             `json:"delivery_type"`
	ItemWeight         float64         `json:"item_weight"`
	AmountToCollect    decimal.Decimal `json:"amount_to_collect"`
	ItemDescription    string          `json:"item_description,omitempty"`
	SpecialInstruction string          `json:"special_instruction,omitempty"`
}

type consignmentResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Data    struct {
		ConsignmentID string          `json:"consignment_id"`
		OrderStatus   string          `json:"order_status"`
		DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	} `json:"data"`
}

type eventsResponse struct {
	Type string `json:"type"`
	Data struct {
		Events []trackingEvent `json:"events"`
	} `json:"data"`
}

type trackingEvent struct {
	EventTime   string `json:"event_time"`
	Status      string `json:"status"`
	Hub         string `json:"hub"`
	Description string `json:"description"`
	Rider       string `json:"rider"`
	Remarks     string `json:"remarks"`
}

type cancelResponse struct {
	Type string `json:"type"`
	Data struct {
		Cancelled bool `json:"cancelled"`
	} `json:"data"`
}
