package commission

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/ledger"
	"github.com/jackc/pgx/v5"
)

// RateRepository хранит текущую ставку магазина. В транзакцию ставка копируется при записи.
type RateRepository struct {
	querier Querier
}

func NewRateRepository(querier Querier) *RateRepository {
	return &RateRepository{
		querier: querier,
	}
}

func (r *RateRepository) GetRate(ctx context.Context, storeID string) (*entities.StoreCommissionRate, error) {
	query := `SELECT store_id, rate, updated_at
		FROM store_commission_rates
		WHERE store_id = $1`

	var rateModel StoreRateDB
	err := r.querier.QueryRow(ctx, query, storeID).Scan(&rateModel.StoreID, &rateModel.Rate, &rateModel.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrRateNotFound
		}
		return nil, fmt.Errorf("unexpected store rate repository get error: %w", err)
	}

	return RateToDomain(&rateModel), nil
}

func (r *RateRepository) UpsertRate(ctx context.Context, rate entities.StoreCommissionRate) (*entities.StoreCommissionRate, error) {
	query := `INSERT INTO store_commission_rates (store_id, rate, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (store_id) DO UPDATE
		SET rate = EXCLUDED.rate,
			updated_at = EXCLUDED.updated_at
		RETURNING store_id, rate, updated_at`

	var rateModel StoreRateDB
	err := r.querier.QueryRow(ctx, query, rate.StoreID, rate.Rate, rate.UpdatedAt).
		Scan(&rateModel.StoreID, &rateModel.Rate, &rateModel.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected store rate repository upsert error: %w", err)
	}

	return RateToDomain(&rateModel), nil
}
