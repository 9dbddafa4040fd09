package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zerobank/account-ledger/internal/config"
	"github.com/zerobank/account-ledger/internal/db"
	"github.com/zerobank/account-ledger/internal/lock"
	"github.com/zerobank/account-ledger/internal/models"
)

// ledger holds what the account and transaction services share: the store, the
// account lock provider and the timing limits of one operation.
type ledger struct {
	db     *db.DB
	locker lock.Locker
	logger *slog.Logger
	now    func() time.Time
	cfg    config.LedgerConfig
}

func newLedger(database *db.DB, locker lock.Locker, cfg config.LedgerConfig, logger *slog.Logger) ledger {
	if locker == nil {
		locker = lock.Nop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return ledger{
		db:     database,
		locker: locker,
		logger: logger,
		now:    time.Now,
		cfg:    cfg,
	}
}

// operationContext bounds an operation by the lock wait plus the store budget so
// that a lock wait always expires before the operation deadline.
func (l *ledger) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, l.cfg.LockWait+l.cfg.OperationTimeout)
}

// withAccountLock runs fn while holding the lock of accountNumber
func (l *ledger) withAccountLock(ctx context.Context, accountNumber string, fn func(context.Context) error) error {
	guard, err := l.locker.Acquire(ctx, lock.AccountKey(accountNumber), l.cfg.LockLease, l.cfg.LockWait)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeLockUnavailable,
			Message: errorMessages[ErrCodeLockUnavailable],
			Err:     err,
		}
	}
	defer func() {
		if err := guard.Release(context.WithoutCancel(ctx)); err != nil {
			l.logger.Warn("failed to release account lock", "account_number", accountNumber, "error", err)
		}
	}()

	return fn(ctx)
}

// runInTx runs fn in a READ COMMITTED transaction whose row and advisory lock
// waits are capped at the configured lock wait
func (l *ledger) runInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := l.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	lockTimeout := fmt.Sprintf("SET LOCAL lock_timeout = %d", l.cfg.LockWait.Milliseconds())
	if _, err := tx.ExecContext(ctx, lockTimeout); err != nil {
		return internalError("failed to set lock timeout", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return internalError("failed to commit transaction", err)
	}

	return nil
}

// storeError classifies a repository failure. Lock waits that ran out become the
// retryable lock_unavailable, everything else is internal.
func storeError(message string, err error) *ServiceError {
	if db.IsLockNotAvailable(err) {
		return &ServiceError{
			Code:    ErrCodeLockUnavailable,
			Message: errorMessages[ErrCodeLockUnavailable],
			Err:     err,
		}
	}
	return internalError(message, err)
}

// lookupError maps a repository lookup failure to notFoundCode when the entity
// is missing
func lookupError(notFoundCode, what string, err error) *ServiceError {
	if errors.Is(err, models.ErrNotFound) {
		return NewError(notFoundCode)
	}
	return storeError("failed to load "+what, err)
}

// newTransaction builds a ledger entry against account with a fresh transaction id
func (l *ledger) newTransaction(
	account *models.Account,
	txnType models.TransactionType,
	result models.TransactionResult,
	amount int64,
) *models.Transaction {
	return &models.Transaction{
		TransactionID:   newTransactionID(),
		AccountID:       account.ID,
		AccountNumber:   account.AccountNumber,
		Type:            txnType,
		Result:          result,
		Amount:          amount,
		BalanceSnapshot: account.Balance,
		TransactedAt:    l.now(),
	}
}
