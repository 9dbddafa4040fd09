package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

const defaultRetryDelay = 100 * time.Millisecond

// RedisLocker implements Locker with the RedLock algorithm on a single Redis.
type RedisLocker struct {
	rs         *redsync.Redsync
	logger     *slog.Logger
	retryDelay time.Duration
}

// NewRedisLocker creates a Locker backed by the given Redis client
func NewRedisLocker(client goredislib.UniversalClient, logger *slog.Logger) *RedisLocker {
	return &RedisLocker{
		rs:         redsync.New(goredis.NewPool(client)),
		logger:     logger,
		retryDelay: defaultRetryDelay,
	}
}

type redisGuard struct {
	mutex  *redsync.Mutex
	logger *slog.Logger
}

// Acquire polls for the lock every retry delay until wait elapses
func (l *RedisLocker) Acquire(ctx context.Context, key string, lease, wait time.Duration) (Guard, error) {
	if key == "" {
		return nil, errors.New("lock key cannot be empty")
	}
	if lease <= 0 || wait <= 0 {
		return nil, fmt.Errorf("lock lease and wait must be positive, got lease=%s wait=%s", lease, wait)
	}

	tries := int(wait/l.retryDelay) + 1

	mutex := l.rs.NewMutex(
		key,
		redsync.WithExpiry(lease),
		redsync.WithTries(tries),
		redsync.WithRetryDelay(l.retryDelay),
	)

	waitCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	if err := mutex.LockContext(waitCtx); err != nil {
		l.logger.Warn("failed to acquire lock", "key", key, "wait", wait, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrNotAcquired, key, err)
	}

	l.logger.Debug("lock acquired", "key", key, "lease", lease)

	return &redisGuard{mutex: mutex, logger: l.logger}, nil
}

// Release unlocks the mutex. An already expired lease is reported but harmless to
// the caller because the critical section has finished.
func (g *redisGuard) Release(ctx context.Context) error {
	ok, err := g.mutex.UnlockContext(ctx)
	if err != nil {
		g.logger.Error("failed to release lock", "key", g.mutex.Name(), "error", err)
		return fmt.Errorf("failed to release lock %s: %w", g.mutex.Name(), err)
	}
	if !ok {
		g.logger.Warn("lock was not held or already expired", "key", g.mutex.Name())
	}
	return nil
}
