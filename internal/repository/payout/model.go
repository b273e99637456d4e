package payout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutDB struct {
	ID             uuid.UUID
	StoreID        string
	Amount         decimal.Decimal
	ApprovedAmount decimal.Decimal
	Status         string
	FailureReason  string
	CreatedAt      time.Time
	ProcessedAt    *time.Time
}

type PayoutModifyDB struct {
	ID             *uuid.UUID
	Status         *string
	ApprovedAmount *decimal.Decimal
	FailureReason  *string
	ProcessedAt    *time.Time
}
