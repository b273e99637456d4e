package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutFailed     PayoutStatus = "failed"
)

func (s PayoutStatus) String() string {
	return string(s)
}

type PayoutRequest struct {
	ID             uuid.UUID
	StoreID        string
	Amount         decimal.Decimal
	ApprovedAmount decimal.Decimal
	Status         PayoutStatus
	FailureReason  string
	CreatedAt      time.Time
	ProcessedAt    *time.Time
}

type PayoutModify struct {
	ID             *uuid.UUID
	Status         *PayoutStatus
	ApprovedAmount *decimal.Decimal
	FailureReason  *string
	ProcessedAt    *time.Time
}
