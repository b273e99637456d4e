package operator

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/entities"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// Queue это очередь ручного разбора: исчерпанные ретраи, лимит попыток доставки, отмена на стороне курьера.
type Queue struct {
	repository Repository
	now        func() time.Time
}

func New(repository Repository, now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{
		repository: repository,
		now:        now,
	}
}

func (q *Queue) List(ctx context.Context, openOnly bool, limit int) ([]entities.OperatorTask, error) {
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	tasks, err := q.repository.List(ctx, openOnly, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("list operator tasks: %w", err)
	}
	return tasks, nil
}

func (q *Queue) Resolve(ctx context.Context, id int64) (*entities.OperatorTask, error) {
	if id <= 0 {
		return nil, entities.NewValidationError("id", "must be positive")
	}

	task, err := q.repository.Resolve(ctx, id, q.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("resolve operator task %d: %w", id, err)
	}
	return task, nil
}
