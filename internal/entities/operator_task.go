package entities

import (
	"time"

	"github.com/google/uuid"
)

type OperatorReason string

const (
	OperatorRetriesExhausted  OperatorReason = "retries_exhausted"
	OperatorAttemptsExhausted OperatorReason = "delivery_attempts_exhausted"
	OperatorProviderCancelled OperatorReason = "provider_cancelled"
	OperatorOrphanedBooking   OperatorReason = "orphaned_booking"
	OperatorCancelConflict    OperatorReason = "cancel_conflict"
)

func (r OperatorReason) String() string {
	return string(r)
}

type OperatorTask struct {
	ID         int64
	ShipmentID uuid.UUID
	OrderID    string
	Reason     OperatorReason
	Details    string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
