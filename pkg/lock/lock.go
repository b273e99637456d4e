package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired возвращается, если ключ уже занят другим владельцем.
var ErrNotAcquired = errors.New("lock not acquired")

// Locker выдает эксклюзивные блокировки по ключу с ограниченным временем жизни.
type Locker interface {
	// Acquire занимает ключ на ttl. Возвращает ErrNotAcquired, если ключ занят.
	Acquire(ctx context.Context, key string, ttl time.Duration) (Lease, error)
}

// Lease представляет занятую блокировку.
type Lease interface {
	Release(ctx context.Context) error
}
