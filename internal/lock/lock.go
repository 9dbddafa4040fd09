// Package lock provides short-lived, expiring mutual exclusion keyed by string,
// used to serialize ledger operations on the same account across instances.
package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired is returned when a lock could not be taken within the wait timeout.
// Callers may retry the whole operation.
var ErrNotAcquired = errors.New("lock not acquired")

// Guard is a held lock. Release must be called on every exit path.
type Guard interface {
	Release(ctx context.Context) error
}

// Locker acquires a lock on key that expires after lease, waiting at most wait.
type Locker interface {
	Acquire(ctx context.Context, key string, lease, wait time.Duration) (Guard, error)
}

// AccountKey is the lock key for operations on one account number
func AccountKey(accountNumber string) string {
	return "ledger:account:" + accountNumber
}

type nopLocker struct{}

type nopGuard struct{}

// Nop returns a Locker that always succeeds immediately. It is used when no
// lock provider is configured and the store's row locks are the only serialization.
func Nop() Locker {
	return nopLocker{}
}

func (nopLocker) Acquire(context.Context, string, time.Duration, time.Duration) (Guard, error) {
	return nopGuard{}, nil
}

func (nopGuard) Release(context.Context) error {
	return nil
}
