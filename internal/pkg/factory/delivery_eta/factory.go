package delivery_eta

import (
	"time"

	"fulfillment/internal/entities"
)

// DeliveryETAFactory оценивает срок доставки по типу услуги.
type DeliveryETAFactory struct {
	windows map[entities.ServiceType]time.Duration
}

func New() *DeliveryETAFactory {
	return &DeliveryETAFactory{
		windows: map[entities.ServiceType]time.Duration{
			entities.ServiceStandard: 72 * time.Hour,
			entities.ServiceExpress:  24 * time.Hour,
			entities.ServiceSameDay:  8 * time.Hour,
		},
	}
}

func (d *DeliveryETAFactory) EstimateDelivery(serviceType entities.ServiceType, bookedAt time.Time) time.Time {
	window, ok := d.windows[serviceType]
	if !ok {
		window = d.windows[entities.DefaultServiceType]
	}

	eta := bookedAt.Add(window)
	// same_day не может уехать на следующий день
	if serviceType == entities.ServiceSameDay {
		endOfDay := time.Date(bookedAt.Year(), bookedAt.Month(), bookedAt.Day(), 23, 59, 59, 0, bookedAt.Location())
		if eta.After(endOfDay) {
			eta = endOfDay
		}
	}
	return eta
}
