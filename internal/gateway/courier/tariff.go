package courier

import (
	"math"

	"fulfillment/internal/entities"
	"github.com/shopspring/decimal"
)

// volumetricDivisor: объемный вес = Д*Ш*В (см) / 5000.
const volumetricDivisor = 5000.0

// Tariff описывает формулу тарифа провайдера:
// (Base + PerKm*distance + PerKg*max(вес, объемный вес)) * множитель сервиса.
type Tariff struct {
	Base        decimal.Decimal
	PerKm       decimal.Decimal
	PerKg       decimal.Decimal
	Multipliers map[entities.ServiceType]decimal.Decimal
}

// Quote считает тариф, округленный до копеек.
func (t Tariff) Quote(distanceKm float64, pkg entities.Package, service entities.ServiceType) decimal.Decimal {
	weight := ChargeableWeight(pkg)
	distance := math.Max(distanceKm, 0)

	rate := t.Base.
		Add(t.PerKm.Mul(decimal.NewFromFloat(distance))).
		Add(t.PerKg.Mul(decimal.NewFromFloat(weight)))

	if m, ok := t.Multipliers[service]; ok {
		rate = rate.Mul(m)
	}

	return rate.Round(2)
}

// ChargeableWeight возвращает больший из фактического и объемного веса.
func ChargeableWeight(pkg entities.Package) float64 {
	volumetric := pkg.LengthCm * pkg.WidthCm * pkg.HeightCm / volumetricDivisor
	return math.Max(pkg.WeightKg, volumetric)
}

// MapStatus переводит сырой статус провайдера в каноничный по таблице.
// Все, чего нет в таблице, становится unknown.
func MapStatus(table map[string]entities.ShipmentStatus, raw string) entities.ShipmentStatus {
	if status, ok := table[raw]; ok {
		return status
	}
	return entities.ShipmentUnknown
}
