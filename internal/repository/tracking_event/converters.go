package tracking_event

import "fulfillment/internal/entities"

func ToDomain(e *TrackingEventDB) entities.TrackingEvent {
	return entities.TrackingEvent{
		Seq:         e.Seq,
		ShipmentID:  e.ShipmentID,
		Timestamp:   e.OccurredAt.UTC(),
		Status:      entities.ShipmentStatus(e.Status),
		RawStatus:   e.RawStatus,
		Location:    e.Location,
		Description: e.Description,
		Agent:       e.Agent,
		Remarks:     e.Remarks,
		ReceivedAt:  e.ReceivedAt.UTC(),
	}
}

func FromDomain(e entities.TrackingEvent) TrackingEventDB {
	status := e.Status
	if status == "" {
		status = entities.ShipmentUnknown
	}
	return TrackingEventDB{
		ShipmentID:  e.ShipmentID,
		OccurredAt:  e.Timestamp.UTC(),
		Status:      status.String(),
		RawStatus:   e.RawStatus,
		Location:    e.Location,
		Description: e.Description,
		Agent:       e.Agent,
		Remarks:     e.Remarks,
		ReceivedAt:  e.ReceivedAt.UTC(),
	}
}
