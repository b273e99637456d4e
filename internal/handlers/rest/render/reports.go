package render

import (
	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
)

func PeriodTotals(t entities.PeriodTotals) dto.PeriodTotals {
	return dto.PeriodTotals{
		Start:         t.Start,
		End:           t.End,
		Revenue:       t.Revenue.StringFixed(2),
		PlatformFees:  t.PlatformFees.StringFixed(2),
		NetAmount:     t.NetAmount.StringFixed(2),
		Transactions:  t.Transactions,
		DataAvailable: t.DataAvailable,
	}
}

func PeriodComparison(c entities.PeriodComparison) dto.PeriodComparison {
	return dto.PeriodComparison{
		Current:           PeriodTotals(c.Current),
		Previous:          PeriodTotals(c.Previous),
		RevenueGrowth:     c.RevenueGrowth.StringFixed(2),
		FeeGrowth:         c.FeeGrowth.StringFixed(2),
		TransactionGrowth: c.TransactionGrowth.StringFixed(2),
		DataAvailable:     c.DataAvailable,
	}
}

func TopStores(r entities.TopStoresReport) dto.TopStores {
	stores := make([]dto.StorePerformance, 0, len(r.Stores))
	for _, s := range r.Stores {
		stores = append(stores, dto.StorePerformance{
			StoreId:      s.StoreID,
			Revenue:      s.Revenue.StringFixed(2),
			PlatformFees: s.PlatformFees.StringFixed(2),
			Transactions: s.Transactions,
		})
	}
	return dto.TopStores{Stores: stores, DataAvailable: r.DataAvailable}
}

func RateDistribution(r entities.RateDistribution) dto.RateDistribution {
	buckets := make([]dto.RateBucket, 0, len(r.Buckets))
	for _, b := range r.Buckets {
		buckets = append(buckets, dto.RateBucket{
			Rate:         b.Rate,
			Transactions: b.Transactions,
			Revenue:      b.Revenue.StringFixed(2),
		})
	}
	return dto.RateDistribution{Buckets: buckets, DataAvailable: r.DataAvailable}
}

func DailySeries(s entities.DailySeries) dto.DailySeries {
	days := make([]dto.DailyBucket, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, dto.DailyBucket{
			Day:          d.Day.Format(dateLayout),
			Revenue:      d.Revenue.StringFixed(2),
			PlatformFees: d.PlatformFees.StringFixed(2),
			Orders:       d.Orders,
		})
	}
	return dto.DailySeries{Days: days, DataAvailable: s.DataAvailable}
}

func PayoutSummary(s entities.PayoutSummary) dto.PayoutSummary {
	statuses := make([]dto.PayoutStatusTotal, 0, len(s.Statuses))
	for _, st := range s.Statuses {
		statuses = append(statuses, dto.PayoutStatusTotal{
			Status: st.Status.String(),
			Count:  st.Count,
			Amount: st.Amount.StringFixed(2),
		})
	}
	return dto.PayoutSummary{
		Statuses:      statuses,
		PendingOwed:   s.PendingOwed.StringFixed(2),
		DataAvailable: s.DataAvailable,
	}
}

func ShipmentSummary(s entities.ShipmentSummary) dto.ShipmentSummary {
	statuses := make([]dto.ShipmentStatusCount, 0, len(s.Statuses))
	for _, st := range s.Statuses {
		statuses = append(statuses, dto.ShipmentStatusCount{Status: st.Status.String(), Count: st.Count})
	}
	return dto.ShipmentSummary{
		Statuses:           statuses,
		DeliveredUnsettled: s.DeliveredUnsettled,
		DataAvailable:      s.DataAvailable,
	}
}

func Dashboard(d entities.Dashboard) dto.Dashboard {
	return dto.Dashboard{
		Start:            d.Start,
		End:              d.End,
		Comparison:       PeriodComparison(d.Comparison),
		Daily:            DailySeries(d.Daily),
		TopStores:        TopStores(d.TopStores),
		RateDistribution: RateDistribution(d.RateDistribution),
		Payouts:          PayoutSummary(d.Payouts),
		Shipments:        ShipmentSummary(d.Shipments),
	}
}
