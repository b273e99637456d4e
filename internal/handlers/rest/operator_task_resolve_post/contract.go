//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=operator_task_resolve_post_test
package operator_task_resolve_post

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Resolve(ctx context.Context, id int64) (*entities.OperatorTask, error)
}
