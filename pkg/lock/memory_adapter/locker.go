package memory_adapter

import (
	"context"
	"sync"
	"time"

	"fulfillment/pkg/lock"
)

// Locker хранит блокировки в памяти процесса. Подходит для одного инстанса и тестов.
type Locker struct {
	mu    sync.Mutex
	held  map[string]entry
	now   func() time.Time
	seqID uint64
}

type entry struct {
	id        uint64
	expiresAt time.Time
}

func New() *Locker {
	return &Locker{
		held: make(map[string]entry),
		now:  time.Now,
	}
}

func (l *Locker) Acquire(_ context.Context, key string, ttl time.Duration) (lock.Lease, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if e, ok := l.held[key]; ok && now.Before(e.expiresAt) {
		return nil, lock.ErrNotAcquired
	}

	l.seqID++
	l.held[key] = entry{id: l.seqID, expiresAt: now.Add(ttl)}

	return &lease{owner: l, key: key, id: l.seqID}, nil
}

type lease struct {
	owner *Locker
	key   string
	id    uint64
}

func (l *lease) Release(context.Context) error {
	l.owner.mu.Lock()
	defer l.owner.mu.Unlock()

	if e, ok := l.owner.held[l.key]; ok && e.id == l.id {
		delete(l.owner.held, l.key)
	}
	return nil
}
