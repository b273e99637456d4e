package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Все отчёты несут DataAvailable: false означает, что хранилище не ответило
// и значения обнулены.

type PeriodTotals struct {
	Start         time.Time
	End           time.Time
	Revenue       decimal.Decimal
	PlatformFees  decimal.Decimal
	NetAmount     decimal.Decimal
	Transactions  int64
	DataAvailable bool
}

type PeriodComparison struct {
	Current           PeriodTotals
	Previous          PeriodTotals
	RevenueGrowth     decimal.Decimal
	FeeGrowth         decimal.Decimal
	TransactionGrowth decimal.Decimal
	DataAvailable     bool
}

type StorePerformance struct {
	StoreID      string
	Revenue      decimal.Decimal
	PlatformFees decimal.Decimal
	Transactions int64
}

type TopStoresReport struct {
	Stores        []StorePerformance
	DataAvailable bool
}

type RateBucket struct {
	Rate         int64
	Transactions int64
	Revenue      decimal.Decimal
}

type RateDistribution struct {
	Buckets       []RateBucket
	DataAvailable bool
}

type DailyBucket struct {
	Day          time.Time
	Revenue      decimal.Decimal
	PlatformFees decimal.Decimal
	Orders       int64
}

type DailySeries struct {
	Days          []DailyBucket
	DataAvailable bool
}

type PayoutStatusTotal struct {
	Status PayoutStatus
	Count  int64
	Amount decimal.Decimal
}

type PayoutSummary struct {
	Statuses      []PayoutStatusTotal
	PendingOwed   decimal.Decimal
	DataAvailable bool
}

type ShipmentStatusCount struct {
	Status ShipmentStatus
	Count  int64
}

type ShipmentSummary struct {
	Statuses           []ShipmentStatusCount
	DeliveredUnsettled int64
	DataAvailable      bool
}

type Dashboard struct {
	Start            time.Time
	End              time.Time
	Comparison       PeriodComparison
	Daily            DailySeries
	TopStores        TopStoresReport
	RateDistribution RateDistribution
	Payouts          PayoutSummary
	Shipments        ShipmentSummary
}
