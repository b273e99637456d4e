package order

import (
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"
)

func toDomain(protoOrder *structpb.Struct) (*entities.Order, error) {
	if protoOrder == nil {
		return nil, nil
	}

	amount, err := decimalField(protoOrder, "amount")
	if err != nil {
		return nil, err
	}

	pkg, err := toPackage(structField(protoOrder, "package"))
	if err != nil {
		return nil, err
	}

	order := &entities.Order{
		ID:              stringField(protoOrder, "id"),
		StoreID:         stringField(protoOrder, "store_id"),
		Status:          entities.OrderStatusType(stringField(protoOrder, "status")),
		Amount:          amount,
		ServiceType:     entities.ServiceType(stringField(protoOrder, "service_type")),
		OriginCity:      stringField(protoOrder, "origin_city"),
		DeliveryAddress: toAddress(structField(protoOrder, "delivery_address")),
		Package:         pkg,
	}

	if createdAt := stringField(protoOrder, "created_at"); createdAt != "" {
		order.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("created_at: %w", err)
		}
	}

	return order, nil
}

func toAddress(s *structpb.Struct) entities.Address {
	return entities.Address{
		Name:       stringField(s, "name"),
		Phone:      stringField(s, "phone"),
		Street:     stringField(s, "street"),
		City:       stringField(s, "city"),
		Region:     stringField(s, "region"),
		PostalCode: stringField(s, "postal_code"),
		Country:    stringField(s, "country"),
	}
}

func toPackage(s *structpb.Struct) (entities.Package, error) {
	declared, err := decimalField(s, "declared_value")
	if err != nil {
		return entities.Package{}, err
	}

	return entities.Package{
		WeightKg:      numberField(s, "weight_kg"),
		LengthCm:      numberField(s, "length_cm"),
		WidthCm:       numberField(s, "width_cm"),
		HeightCm:      numberField(s, "height_cm"),
		DeclaredValue: declared,
		Description:   stringField(s, "description"),
	}, nil
}

func structField(s *structpb.Struct, key string) *structpb.Struct {
	return s.GetFields()[key].GetStructValue()
}

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func numberField(s *structpb.Struct, key string) float64 {
	return s.GetFields()[key].GetNumberValue()
}

// decimalField принимает деньги и строкой, и числом. Строка предпочтительнее: без потерь точности.
func decimalField(s *structpb.Struct, key string) (decimal.Decimal, error) {
	value, ok := s.GetFields()[key]
	if !ok {
		return decimal.Zero, nil
	}

	switch v := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(v.StringValue)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: %w", key, err)
		}
		return d, nil
	case *structpb.Value_NumberValue:
		return decimal.NewFromFloat(v.NumberValue), nil
	default:
		return decimal.Zero, nil
	}
}
