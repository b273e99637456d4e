package render

import (
	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"github.com/AlekSi/pointer"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return pointer.To(s)
}

func Shipment(s *entities.Shipment) dto.Shipment {
	out := dto.Shipment{
		Id:                s.ID.String(),
		OrderId:           s.OrderID,
		StoreId:           s.StoreID,
		CourierId:         s.CourierID.String(),
		TrackingNumber:    optional(s.TrackingNumber),
		ServiceType:       dto.ServiceType(s.ServiceType),
		Status:            s.Status.String(),
		FailedAttempts:    s.FailedAttempts,
		EstimatedDelivery: s.EstimatedDelivery,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}

	if s.TrackingEvents != nil {
		events := make([]dto.TrackingEvent, 0, len(s.TrackingEvents))
		for _, e := range s.TrackingEvents {
			events = append(events, dto.TrackingEvent{
				Timestamp:   e.Timestamp,
				Status:      e.Status.String(),
				RawStatus:   e.RawStatus,
				Location:    optional(e.Location),
				Description: optional(e.Description),
			})
		}
		out.TrackingEvents = &events
	}

	return out
}

func ShipmentCreate(req dto.ShipmentCreateRequest) (entities.ShipmentCreate, error) {
	amount, err := Decimal("order_amount", req.OrderAmount)
	if err != nil {
		return entities.ShipmentCreate{}, err
	}
	declared, err := Decimal("package.declared_value", req.Package.DeclaredValue)
	if err != nil {
		return entities.ShipmentCreate{}, err
	}

	serviceType := entities.DefaultServiceType
	if req.ServiceType != nil {
		serviceType = entities.ServiceType(*req.ServiceType)
	}

	return entities.ShipmentCreate{
		OrderID:     req.OrderId,
		StoreID:     req.StoreId,
		OrderAmount: amount,
		ServiceType: serviceType,
		OriginCity:  req.OriginCity,
		CourierID:   entities.ProviderID(pointer.Get(req.CourierId)),
		DeliveryAddress: entities.Address{
			Name:       req.DeliveryAddress.Name,
			Phone:      req.DeliveryAddress.Phone,
			Street:     req.DeliveryAddress.Street,
			City:       req.DeliveryAddress.City,
			Region:     req.DeliveryAddress.Region,
			PostalCode: pointer.Get(req.DeliveryAddress.PostalCode),
			Country:    req.DeliveryAddress.Country,
		},
		Package: entities.Package{
			WeightKg:      float64(req.Package.WeightKg),
			LengthCm:      float64(pointer.Get(req.Package.LengthCm)),
			WidthCm:       float64(pointer.Get(req.Package.WidthCm)),
			HeightCm:      float64(pointer.Get(req.Package.HeightCm)),
			DeclaredValue: declared,
			Description:   pointer.Get(req.Package.Description),
		},
	}, nil
}

func TrackResult(r *entities.IngestResult) dto.TrackResult {
	return dto.TrackResult{
		Shipment:       Shipment(r.Shipment),
		Appended:       r.Appended,
		PreviousStatus: r.Previous.String(),
		CurrentStatus:  r.Current.String(),
	}
}

func RateQuotes(quotes []entities.RateQuote) []dto.RateQuote {
	out := make([]dto.RateQuote, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, dto.RateQuote{
			CourierId:   q.ProviderID.String(),
			ServiceType: dto.ServiceType(q.ServiceType),
			DistanceKm:  float32(q.DistanceKm),
			Rate:        q.Rate.StringFixed(2),
		})
	}
	return out
}

func Couriers(providers []entities.ProviderInfo) []dto.Courier {
	out := make([]dto.Courier, 0, len(providers))
	for _, p := range providers {
		services := make([]dto.ServiceType, 0, len(p.Services))
		for _, s := range p.Services {
			services = append(services, dto.ServiceType(s))
		}
		coverage := p.Coverage
		if coverage == nil {
			coverage = []string{}
		}
		out = append(out, dto.Courier{
			Id:                  p.ID.String(),
			Coverage:            coverage,
			Services:            services,
			SupportsBalance:     p.SupportsBalance,
			MaxDeliveryAttempts: p.MaxDeliveryAttempts,
		})
	}
	return out
}

func Transaction(t *entities.CommissionTransaction) dto.Transaction {
	return dto.Transaction{
		Id:             t.ID.String(),
		OrderId:        t.OrderID,
		StoreId:        t.StoreID,
		Amount:         t.Amount.StringFixed(2),
		PlatformFee:    t.PlatformFee.StringFixed(2),
		NetAmount:      t.NetAmount.StringFixed(2),
		CommissionRate: t.CommissionRate.String(),
		Status:         t.Status.String(),
		ReversalReason: optional(t.ReversalReason),
		ReversedAt:     t.ReversedAt,
		CreatedAt:      t.CreatedAt,
	}
}

func StoreBalance(b *entities.StoreBalance) dto.StoreBalance {
	return dto.StoreBalance{
		StoreId:   b.StoreID,
		Earned:    b.Earned.StringFixed(2),
		Paid:      b.Paid.StringFixed(2),
		Reserved:  b.Reserved.StringFixed(2),
		Available: b.Available.StringFixed(2),
	}
}

func CommissionRate(r *entities.StoreCommissionRate) dto.CommissionRate {
	return dto.CommissionRate{
		StoreId:   r.StoreID,
		Rate:      r.Rate.String(),
		UpdatedAt: r.UpdatedAt,
	}
}

func Payout(p *entities.PayoutRequest) dto.Payout {
	return dto.Payout{
		Id:             p.ID.String(),
		StoreId:        p.StoreID,
		Amount:         p.Amount.StringFixed(2),
		ApprovedAmount: p.ApprovedAmount.StringFixed(2),
		Status:         p.Status.String(),
		FailureReason:  optional(p.FailureReason),
		CreatedAt:      p.CreatedAt,
		ProcessedAt:    p.ProcessedAt,
	}
}

func OperatorTasks(tasks []entities.OperatorTask) []dto.OperatorTask {
	out := make([]dto.OperatorTask, 0, len(tasks))
	for i := range tasks {
		out = append(out, OperatorTask(&tasks[i]))
	}
	return out
}

func OperatorTask(t *entities.OperatorTask) dto.OperatorTask {
	return dto.OperatorTask{
		Id:         t.ID,
		ShipmentId: t.ShipmentID.String(),
		OrderId:    t.OrderID,
		Reason:     t.Reason.String(),
		Details:    optional(t.Details),
		CreatedAt:  t.CreatedAt,
		ResolvedAt: t.ResolvedAt,
	}
}
