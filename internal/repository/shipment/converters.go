package shipment

import (
	"encoding/json"
	"fmt"

	"fulfillment/internal/entities"
)

func ToDomain(s *ShipmentDB) (*entities.Shipment, error) {
	if s == nil {
		return nil, nil
	}

	shipment := &entities.Shipment{
		ID:                s.ID,
		OrderID:           s.OrderID,
		StoreID:           s.StoreID,
		OrderAmount:       s.OrderAmount,
		CourierID:         entities.ProviderID(s.CourierID),
		ServiceType:       entities.ServiceType(s.ServiceType),
		Status:            entities.ShipmentStatus(s.Status),
		OriginCity:        s.OriginCity,
		FailedAttempts:    s.FailedAttempts,
		EstimatedDelivery: s.EstimatedDelivery,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.TrackingNumber != nil {
		shipment.TrackingNumber = *s.TrackingNumber
	}

	if err := json.Unmarshal(s.DeliveryAddress, &shipment.DeliveryAddress); err != nil {
		return nil, fmt.Errorf("decode delivery address: %w", err)
	}
	if err := json.Unmarshal(s.Package, &shipment.Package); err != nil {
		return nil, fmt.Errorf("decode package: %w", err)
	}

	return shipment, nil
}

func FromDomain(s *entities.Shipment) (*ShipmentDB, error) {
	if s == nil {
		return nil, nil
	}

	address, err := json.Marshal(s.DeliveryAddress)
	if err != nil {
		return nil, fmt.Errorf("encode delivery address: %w", err)
	}
	pkg, err := json.Marshal(s.Package)
	if err != nil {
		return nil, fmt.Errorf("encode package: %w", err)
	}

	shipmentDB := &ShipmentDB{
		ID:                s.ID,
		OrderID:           s.OrderID,
		StoreID:           s.StoreID,
		OrderAmount:       s.OrderAmount,
		CourierID:         s.CourierID.String(),
		ServiceType:       s.ServiceType.String(),
		Status:            s.Status.String(),
		OriginCity:        s.OriginCity,
		DeliveryAddress:   address,
		Package:           pkg,
		FailedAttempts:    s.FailedAttempts,
		EstimatedDelivery: s.EstimatedDelivery,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.TrackingNumber != "" {
		shipmentDB.TrackingNumber = &s.TrackingNumber
	}

	return shipmentDB, nil
}

func FromDomainModify(s *entities.ShipmentModify) *ShipmentModifyDB {
	if s == nil {
		return nil
	}

	shipmentDB := &ShipmentModifyDB{
		ID:             s.ID,
		FailedAttempts: s.FailedAttempts,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.Status != nil {
		status := s.Status.String()
		shipmentDB.Status = &status
	}

	return shipmentDB
}

func ToDomainList(shipmentsDB []ShipmentDB) ([]entities.Shipment, error) {
	result := make([]entities.Shipment, 0, len(shipmentsDB))
	for i := range shipmentsDB {
		shipment, err := ToDomain(&shipmentsDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *shipment)
	}
	return result, nil
}
