package operator_task

import (
	"time"

	"github.com/google/uuid"
)

type OperatorTaskDB struct {
	ID         int64
	ShipmentID uuid.UUID
	OrderID    string
	Reason     string
	Details    string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
