package report

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	defaultTopStores = 5
	maxTopStores     = 50
	maxDailyDays     = 366
	growthScale      = 2
	day              = 24 * time.Hour
)

var hundred = decimal.NewFromInt(100)

// Reporter только читает. Ошибка хранилища не пробрасывается наружу:
// отчёт возвращается с нулями и DataAvailable = false.
type Reporter struct {
	repository Repository
	ledger     Ledger
	log        handlerLogger
	now        func() time.Time
}

func New(repository Repository, ledger Ledger, log handlerLogger, now func() time.Time) *Reporter {
	if now == nil {
		now = time.Now
	}
	return &Reporter{
		repository: repository,
		ledger:     ledger,
		log:        log,
		now:        now,
	}
}

// Growth считает прирост в процентах. При нулевой базе прирост 100, если текущее
// значение положительное, иначе 0.
func Growth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(growthScale)
}

func (r *Reporter) PeriodTotals(ctx context.Context, start, end time.Time) entities.PeriodTotals {
	start, end = start.UTC(), end.UTC()
	empty := entities.PeriodTotals{
		Start:        start,
		End:          end,
		Revenue:      decimal.Zero,
		PlatformFees: decimal.Zero,
		NetAmount:    decimal.Zero,
	}
	if !end.After(start) {
		empty.DataAvailable = true
		return empty
	}

	totals, err := r.repository.PeriodTotals(ctx, start, end)
	if err != nil {
		r.failed("period totals", err)
		return empty
	}

	totals.Start, totals.End = start, end
	totals.DataAvailable = true
	return *totals
}

// PeriodComparison сравнивает окно [start, end) с предыдущим окном той же длины.
func (r *Reporter) PeriodComparison(ctx context.Context, start, end time.Time) entities.PeriodComparison {
	length := end.Sub(start)
	current := r.PeriodTotals(ctx, start, end)
	previous := r.PeriodTotals(ctx, start.Add(-length), start)

	return entities.PeriodComparison{
		Current:           current,
		Previous:          previous,
		RevenueGrowth:     Growth(current.Revenue, previous.Revenue),
		FeeGrowth:         Growth(current.PlatformFees, previous.PlatformFees),
		TransactionGrowth: Growth(decimal.NewFromInt(current.Transactions), decimal.NewFromInt(previous.Transactions)),
		DataAvailable:     current.DataAvailable && previous.DataAvailable,
	}
}

func (r *Reporter) TopStores(ctx context.Context, start, end time.Time, limit int) entities.TopStoresReport {
	stores, err := r.repository.TopStores(ctx, start.UTC(), end.UTC(), clampLimit(limit))
	if err != nil {
		r.failed("top stores", err)
		return entities.TopStoresReport{Stores: []entities.StorePerformance{}}
	}
	if stores == nil {
		stores = []entities.StorePerformance{}
	}
	return entities.TopStoresReport{Stores: stores, DataAvailable: true}
}

func (r *Reporter) CommissionRateDistribution(ctx context.Context, start, end time.Time) entities.RateDistribution {
	buckets, err := r.repository.RateDistribution(ctx, start.UTC(), end.UTC())
	if err != nil {
		r.failed("rate distribution", err)
		return entities.RateDistribution{Buckets: []entities.RateBucket{}}
	}
	if buckets == nil {
		buckets = []entities.RateBucket{}
	}
	return entities.RateDistribution{Buckets: buckets, DataAvailable: true}
}

// DailySeries строит ряд по суткам UTC. Границы окна выравниваются на полночь,
// дни без продаж заполняются нулями.
func (r *Reporter) DailySeries(ctx context.Context, start, end time.Time) entities.DailySeries {
	from := truncateDay(start)
	to := truncateDay(end)
	if to.Before(end.UTC()) {
		to = to.Add(day)
	}
	if to.Sub(from) > maxDailyDays*day {
		r.log.Warn("daily series window truncated",
			logger.NewField("start", from.Format(time.RFC3339)),
			logger.NewField("end", to.Format(time.RFC3339)),
		)
		from = to.Add(-maxDailyDays * day)
	}

	if !to.After(from) {
		return entities.DailySeries{Days: []entities.DailyBucket{}, DataAvailable: true}
	}

	rows, err := r.repository.DailyTotals(ctx, from, to)
	if err != nil {
		r.failed("daily totals", err)
		return entities.DailySeries{Days: fillDays(from, to, nil)}
	}
	return entities.DailySeries{Days: fillDays(from, to, rows), DataAvailable: true}
}

func (r *Reporter) PayoutSummary(ctx context.Context) entities.PayoutSummary {
	empty := entities.PayoutSummary{Statuses: []entities.PayoutStatusTotal{}, PendingOwed: decimal.Zero}

	statuses, err := r.repository.PayoutTotals(ctx)
	if err != nil {
		r.failed("payout totals", err)
		return empty
	}

	owed, err := r.ledger.PendingPayoutTotal(ctx)
	if err != nil {
		r.failed("pending payout total", err)
		return empty
	}

	if statuses == nil {
		statuses = []entities.PayoutStatusTotal{}
	}
	return entities.PayoutSummary{Statuses: statuses, PendingOwed: owed, DataAvailable: true}
}

// ShipmentSummary показывает отправления по статусам и доставленные заказы без комиссии.
func (r *Reporter) ShipmentSummary(ctx context.Context, start, end time.Time) entities.ShipmentSummary {
	empty := entities.ShipmentSummary{Statuses: []entities.ShipmentStatusCount{}}

	statuses, err := r.repository.ShipmentCounts(ctx, start.UTC(), end.UTC())
	if err != nil {
		r.failed("shipment counts", err)
		return empty
	}

	unsettled, err := r.repository.DeliveredUnsettled(ctx)
	if err != nil {
		r.failed("delivered unsettled", err)
		return empty
	}

	if statuses == nil {
		statuses = []entities.ShipmentStatusCount{}
	}
	return entities.ShipmentSummary{Statuses: statuses, DeliveredUnsettled: unsettled, DataAvailable: true}
}

func (r *Reporter) Dashboard(ctx context.Context, start, end time.Time) entities.Dashboard {
	return entities.Dashboard{
		Start:            start.UTC(),
		End:              end.UTC(),
		Comparison:       r.PeriodComparison(ctx, start, end),
		Daily:            r.DailySeries(ctx, start, end),
		TopStores:        r.TopStores(ctx, start, end, defaultTopStores),
		RateDistribution: r.CommissionRateDistribution(ctx, start, end),
		Payouts:          r.PayoutSummary(ctx),
		Shipments:        r.ShipmentSummary(ctx, start, end),
	}
}

// LastDays возвращает окно из n полных суток UTC, заканчивающееся завтрашней полуночью.
func (r *Reporter) LastDays(n int) (time.Time, time.Time) {
	if n <= 0 {
		n = 1
	}
	end := truncateDay(r.now()).Add(day)
	return end.Add(-time.Duration(n) * day), end
}

func (r *Reporter) failed(report string, err error) {
	r.log.Error("report unavailable",
		logger.NewField("report", report),
		logger.NewField("error", err.Error()),
	)
}

func clampLimit(limit int) uint64 {
	switch {
	case limit == 0:
		return defaultTopStores
	case limit < 1:
		return 1
	case limit > maxTopStores:
		return maxTopStores
	}
	return uint64(limit)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func fillDays(from, to time.Time, rows []entities.DailyBucket) []entities.DailyBucket {
	byDay := make(map[time.Time]entities.DailyBucket, len(rows))
	for _, row := range rows {
		byDay[truncateDay(row.Day)] = row
	}

	days := make([]entities.DailyBucket, 0, int(to.Sub(from)/day))
	for current := from; current.Before(to); current = current.Add(day) {
		bucket, ok := byDay[current]
		if !ok {
			bucket = entities.DailyBucket{Revenue: decimal.Zero, PlatformFees: decimal.Zero}
		}
		bucket.Day = current
		days = append(days, bucket)
	}
	return days
}
