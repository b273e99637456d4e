package commission

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionDB struct {
	ID             uuid.UUID
	Seq            int64
	OrderID        string
	StoreID        string
	Amount         decimal.Decimal
	PlatformFee    decimal.Decimal
	NetAmount      decimal.Decimal
	CommissionRate decimal.Decimal
	Status         string
	ReversalReason string
	ReversedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type TransactionModifyDB struct {
	ID             *uuid.UUID
	Status         *string
	ReversalReason *string
	ReversedAt     *time.Time
}

type StoreRateDB struct {
	StoreID   string
	Rate      decimal.Decimal
	UpdatedAt time.Time
}
