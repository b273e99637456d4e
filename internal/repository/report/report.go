package report

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository агрегирует ledger и shipments на стороне базы. Периоды полуоткрытые: [start, end).
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func completedIn(start, end time.Time) sq.And {
	return sq.And{
		sq.Eq{"status": entities.TransactionCompleted.String()},
		sq.GtOrEq{"created_at": start},
		sq.Lt{"created_at": end},
	}
}

func (r *Repository) PeriodTotals(ctx context.Context, start, end time.Time) (*entities.PeriodTotals, error) {
	query, args, err := qb.
		Select(
			"COALESCE(SUM(amount), 0)",
			"COALESCE(SUM(platform_fee), 0)",
			"COALESCE(SUM(net_amount), 0)",
			"COUNT(*)",
		).
		From("commission_transactions").
		Where(completedIn(start, end)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository periodtotals error: %w", err)
	}

	totals := entities.PeriodTotals{Start: start, End: end}
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(&totals.Revenue, &totals.PlatformFees, &totals.NetAmount, &totals.Transactions)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository periodtotals error: %w", err)
	}

	return &totals, nil
}

// TopStores сортирует по выручке, при равенстве выше магазин с более ранней первой транзакцией.
func (r *Repository) TopStores(ctx context.Context, start, end time.Time, limit uint64) ([]entities.StorePerformance, error) {
	query, args, err := qb.
		Select("store_id", "SUM(amount)", "SUM(platform_fee)", "COUNT(*)").
		From("commission_transactions").
		Where(completedIn(start, end)).
		GroupBy("store_id").
		OrderBy("SUM(amount) DESC", "MIN(seq) ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository topstores error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository topstores error: %w", err)
	}

	stores, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.StorePerformance, error) {
		var store entities.StorePerformance
		err := row.Scan(&store.StoreID, &store.Revenue, &store.PlatformFees, &store.Transactions)
		return store, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository topstores error: %w", err)
	}

	return stores, nil
}

// RateDistribution группирует по ставке, округлённой до целого процента.
func (r *Repository) RateDistribution(ctx context.Context, start, end time.Time) ([]entities.RateBucket, error) {
	query, args, err := qb.
		Select("ROUND(commission_rate)::BIGINT AS rate", "COUNT(*)", "SUM(amount)").
		From("commission_transactions").
		Where(completedIn(start, end)).
		GroupBy("rate").
		OrderBy("rate").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository ratedistribution error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository ratedistribution error: %w", err)
	}

	buckets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.RateBucket, error) {
		var bucket entities.RateBucket
		err := row.Scan(&bucket.Rate, &bucket.Transactions, &bucket.Revenue)
		return bucket, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository ratedistribution error: %w", err)
	}

	return buckets, nil
}

// DailyTotals: один запрос с группировкой по суткам UTC. Дни без продаж не возвращаются.
func (r *Repository) DailyTotals(ctx context.Context, start, end time.Time) ([]entities.DailyBucket, error) {
	query, args, err := qb.
		Select(
			"date_trunc('day', created_at AT TIME ZONE 'UTC') AS day",
			"SUM(amount)",
			"SUM(platform_fee)",
			"COUNT(*)",
		).
		From("commission_transactions").
		Where(completedIn(start, end)).
		GroupBy("day").
		OrderBy("day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository dailytotals error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository dailytotals error: %w", err)
	}

	days, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.DailyBucket, error) {
		var bucket entities.DailyBucket
		err := row.Scan(&bucket.Day, &bucket.Revenue, &bucket.PlatformFees, &bucket.Orders)
		bucket.Day = time.Date(bucket.Day.Year(), bucket.Day.Month(), bucket.Day.Day(), 0, 0, 0, 0, time.UTC)
		return bucket, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository dailytotals error: %w", err)
	}

	return days, nil
}

func (r *Repository) PayoutTotals(ctx context.Context) ([]entities.PayoutStatusTotal, error) {
	query := `SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM payout_requests
		GROUP BY status
		ORDER BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository payouttotals error: %w", err)
	}

	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.PayoutStatusTotal, error) {
		var (
			total  entities.PayoutStatusTotal
			status string
		)
		err := row.Scan(&status, &total.Count, &total.Amount)
		total.Status = entities.PayoutStatus(status)
		return total, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository payouttotals error: %w", err)
	}

	return totals, nil
}

func (r *Repository) ShipmentCounts(ctx context.Context, start, end time.Time) ([]entities.ShipmentStatusCount, error) {
	query, args, err := qb.
		Select("status", "COUNT(*)").
		From("shipments").
		Where(sq.And{
			sq.GtOrEq{"created_at": start},
			sq.Lt{"created_at": end},
		}).
		GroupBy("status").
		OrderBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository shipmentcounts error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository shipmentcounts error: %w", err)
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.ShipmentStatusCount, error) {
		var (
			count  entities.ShipmentStatusCount
			status string
		)
		err := row.Scan(&status, &count.Count)
		count.Status = entities.ShipmentStatus(status)
		return count, err
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository shipmentcounts error: %w", err)
	}

	return counts, nil
}

// DeliveredUnsettled считает доставленные отправки, по заказам которых нет комиссионной транзакции.
func (r *Repository) DeliveredUnsettled(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*)
		FROM shipments s
		WHERE s.status = $1
		  AND NOT EXISTS (
			SELECT 1
			FROM commission_transactions c
			WHERE c.order_id = s.order_id
		  )`

	var count int64
	err := r.querier.QueryRow(ctx, query, entities.ShipmentDelivered.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository deliveredunsettled error: %w", err)
	}

	return count, nil
}
