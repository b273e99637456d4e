package tracking_event

import (
	"time"

	"github.com/google/uuid"
)

type TrackingEventDB struct {
	Seq         int64
	ShipmentID  uuid.UUID
	OccurredAt  time.Time
	Status      string
	RawStatus   string
	Location    string
	Description string
	Agent       string
	Remarks     string
	ReceivedAt  time.Time
}
