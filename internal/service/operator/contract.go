//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=operator_test
package operator

import (
	"context"
	"time"

	"fulfillment/internal/entities"
)

type Repository interface {
	List(ctx context.Context, openOnly bool, limit uint64) ([]entities.OperatorTask, error)
	Resolve(ctx context.Context, id int64, resolvedAt time.Time) (*entities.OperatorTask, error)
}
