package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/zerobank/account-ledger/internal/config"
	"github.com/zerobank/account-ledger/internal/db"
	"github.com/zerobank/account-ledger/internal/lock"
	"github.com/zerobank/account-ledger/internal/models"
	"github.com/zerobank/account-ledger/internal/repository"
)

// TransactionService handles balance use and cancellation and records the
// failed attempts of both
type TransactionService struct {
	cache TransactionCache
	ledger
}

// NewTransactionService creates a new TransactionService. Both locker and cache
// are optional.
func NewTransactionService(
	database *db.DB,
	locker lock.Locker,
	cache TransactionCache,
	cfg config.LedgerConfig,
	logger *slog.Logger,
) *TransactionService {
	return &TransactionService{
		ledger: newLedger(database, locker, cfg, logger),
		cache:  cache,
	}
}

// UseBalance debits amount from the account and records a successful USE
// transaction with the balance left afterwards
func (s *TransactionService) UseBalance(ctx context.Context, userID int64, accountNumber string, amount int64) (*models.Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	var txn *models.Transaction
	err := s.withAccountLock(ctx, accountNumber, func(ctx context.Context) error {
		return s.runInTx(ctx, func(tx *sql.Tx) error {
			used, err := s.performUseBalance(ctx,
				repository.NewUserRepository(tx),
				repository.NewAccountRepository(tx),
				repository.NewTransactionRepository(tx),
				userID, accountNumber, amount,
			)
			if err != nil {
				return err
			}
			txn = used
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("balance used",
		"account_number", accountNumber,
		"transaction_id", txn.TransactionID,
		"amount", amount,
		"balance", txn.BalanceSnapshot,
	)
	return txn, nil
}

// performUseBalance contains the core debit logic
func (s *TransactionService) performUseBalance(
	ctx context.Context,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	userID int64,
	accountNumber string,
	amount int64,
) (*models.Transaction, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(ErrCodeUserNotFound, "user", err)
	}

	account, err := accountRepo.FindByAccountNumberForUpdate(ctx, accountNumber)
	if err != nil {
		return nil, lookupError(ErrCodeAccountNotFound, "account", err)
	}

	if account.UserID != user.ID {
		return nil, NewError(ErrCodeOwnerMismatch)
	}
	if account.IsClosed() {
		return nil, NewError(ErrCodeAccountClosed)
	}
	if amount > account.Balance {
		return nil, NewError(ErrCodeInsufficientBalance)
	}

	account.Balance -= amount
	if err := accountRepo.Update(ctx, account); err != nil {
		return nil, storeError("failed to debit account", err)
	}

	txn := s.newTransaction(account, models.TransactionTypeUse, models.TransactionResultSuccess, amount)
	if err := transactionRepo.Create(ctx, txn); err != nil {
		return nil, storeError("failed to record use", err)
	}

	return txn, nil
}

// RecordFailedUse appends a failed USE transaction carrying the account's current
// balance. The account itself is not touched.
func (s *TransactionService) RecordFailedUse(ctx context.Context, accountNumber string, amount int64) (*models.Transaction, error) {
	return s.recordFailure(ctx, models.TransactionTypeUse, accountNumber, amount)
}

// CancelBalance reverses a prior transaction in full, crediting its amount back
// and recording a successful CANCEL transaction
func (s *TransactionService) CancelBalance(ctx context.Context, transactionID, accountNumber string, amount int64) (*models.Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	var txn *models.Transaction
	err := s.withAccountLock(ctx, accountNumber, func(ctx context.Context) error {
		return s.runInTx(ctx, func(tx *sql.Tx) error {
			cancelled, err := s.performCancelBalance(ctx,
				repository.NewAccountRepository(tx),
				repository.NewTransactionRepository(tx),
				transactionID, accountNumber, amount,
			)
			if err != nil {
				return err
			}
			txn = cancelled
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("balance cancelled",
		"account_number", accountNumber,
		"original_transaction_id", transactionID,
		"transaction_id", txn.TransactionID,
		"amount", amount,
		"balance", txn.BalanceSnapshot,
	)
	return txn, nil
}

// performCancelBalance contains the core cancellation logic
func (s *TransactionService) performCancelBalance(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	transactionID string,
	accountNumber string,
	amount int64,
) (*models.Transaction, error) {
	original, err := transactionRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, lookupError(ErrCodeTransactionNotFound, "transaction", err)
	}

	account, err := accountRepo.FindByAccountNumberForUpdate(ctx, accountNumber)
	if err != nil {
		return nil, lookupError(ErrCodeAccountNotFound, "account", err)
	}

	if original.AccountID != account.ID {
		return nil, NewError(ErrCodeTransactionAccountMismatch)
	}
	if original.Amount != amount {
		return nil, NewError(ErrCodePartialCancelNotAllowed)
	}
	if err := ValidateCancelWindow(original.TransactedAt, s.now()); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeCancelWindowExpired,
			Message: errorMessages[ErrCodeCancelWindowExpired],
			Err:     err,
		}
	}

	account.Balance += amount
	if err := accountRepo.Update(ctx, account); err != nil {
		return nil, storeError("failed to credit account", err)
	}

	txn := s.newTransaction(account, models.TransactionTypeCancel, models.TransactionResultSuccess, amount)
	if err := transactionRepo.Create(ctx, txn); err != nil {
		return nil, storeError("failed to record cancel", err)
	}

	return txn, nil
}

// RecordFailedCancel appends a failed CANCEL transaction carrying the account's
// current balance. The account itself is not touched.
func (s *TransactionService) RecordFailedCancel(ctx context.Context, accountNumber string, amount int64) (*models.Transaction, error) {
	return s.recordFailure(ctx, models.TransactionTypeCancel, accountNumber, amount)
}

func (s *TransactionService) recordFailure(
	ctx context.Context,
	txnType models.TransactionType,
	accountNumber string,
	amount int64,
) (*models.Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	return s.performRecordFailure(ctx,
		repository.NewAccountRepository(s.db),
		repository.NewTransactionRepository(s.db),
		txnType, accountNumber, amount,
	)
}

// performRecordFailure appends a failed transaction without locking the account;
// the snapshot is whatever balance was committed at read time.
func (s *TransactionService) performRecordFailure(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	txnType models.TransactionType,
	accountNumber string,
	amount int64,
) (*models.Transaction, error) {
	account, err := accountRepo.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, lookupError(ErrCodeAccountNotFound, "account", err)
	}

	txn := s.newTransaction(account, txnType, models.TransactionResultFailure, amount)
	if err := transactionRepo.Create(ctx, txn); err != nil {
		return nil, storeError("failed to record failed transaction", err)
	}

	return txn, nil
}

// GetTransaction retrieves a transaction by its transaction id. Transactions
// never change once written, so cached entries do not expire on writes.
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	if s.cache != nil {
		if txn, ok := s.cache.Get(ctx, transactionID); ok {
			return txn, nil
		}
	}

	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	txn, err := repository.NewTransactionRepository(s.db).FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, lookupError(ErrCodeTransactionNotFound, "transaction", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, transactionID, txn)
	}

	return txn, nil
}
