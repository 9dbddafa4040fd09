package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/zerobank/account-ledger/internal/config"
	"github.com/zerobank/account-ledger/internal/db"
	"github.com/zerobank/account-ledger/internal/lock"
	"github.com/zerobank/account-ledger/internal/models"
	"github.com/zerobank/account-ledger/internal/repository"
)

const (
	// accountNumberLockKey is the advisory lock that orders account number
	// allocation across the whole ledger
	accountNumberLockKey int64 = 0x4c6564676572

	createAccountAttempts = 3
)

// AccountService handles the account lifecycle: open, close and list
type AccountService struct {
	ledger
}

// NewAccountService creates a new AccountService. A nil locker falls back to
// row locks only.
func NewAccountService(database *db.DB, locker lock.Locker, cfg config.LedgerConfig, logger *slog.Logger) *AccountService {
	return &AccountService{ledger: newLedger(database, locker, cfg, logger)}
}

// CreateAccount opens a new account for userID with the given opening balance
func (s *AccountService) CreateAccount(ctx context.Context, userID, initialBalance int64) (*models.Account, error) {
	if err := ValidateInitialBalance(initialBalance); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	var (
		account *models.Account
		err     error
	)
	for attempt := 1; attempt <= createAccountAttempts; attempt++ {
		err = s.runInTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", accountNumberLockKey); err != nil {
				return storeError("failed to lock account numbering", err)
			}

			created, err := s.performCreateAccount(ctx,
				repository.NewUserRepository(tx),
				repository.NewAccountRepository(tx),
				userID, initialBalance,
			)
			if err != nil {
				return err
			}
			account = created
			return nil
		})
		if !errors.Is(err, models.ErrDuplicateAccountNumber) {
			break
		}
		s.logger.Warn("account number already taken, retrying",
			"user_id", userID,
			"attempt", attempt,
			"error", err,
		)
	}

	if errors.Is(err, models.ErrDuplicateAccountNumber) {
		return nil, internalError("failed to allocate account number", err)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		"user_id", userID,
		"account_number", account.AccountNumber,
	)
	return account, nil
}

// performCreateAccount contains the core account opening logic. A duplicate
// account number is returned unwrapped so the caller can retry.
func (s *AccountService) performCreateAccount(
	ctx context.Context,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	userID int64,
	initialBalance int64,
) (*models.Account, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(ErrCodeUserNotFound, "user", err)
	}

	count, err := accountRepo.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, storeError("failed to count accounts", err)
	}
	if count >= MaxAccountsPerUser {
		return nil, NewError(ErrCodeMaxAccountsPerUserExceeded)
	}

	latest, err := accountRepo.FindLatest(ctx)
	if err != nil {
		return nil, storeError("failed to load latest account", err)
	}

	accountNumber, err := NextAccountNumber(latest)
	if err != nil {
		return nil, internalError("failed to generate account number", err)
	}

	account := &models.Account{
		UserID:        user.ID,
		AccountNumber: accountNumber,
		Status:        models.AccountStatusInUse,
		Balance:       initialBalance,
		RegisteredAt:  s.now(),
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, models.ErrDuplicateAccountNumber) {
			return nil, err
		}
		return nil, storeError("failed to create account", err)
	}

	return account, nil
}

// CloseAccount unregisters an empty account owned by userID
func (s *AccountService) CloseAccount(ctx context.Context, userID int64, accountNumber string) (*models.Account, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	var account *models.Account
	err := s.withAccountLock(ctx, accountNumber, func(ctx context.Context) error {
		return s.runInTx(ctx, func(tx *sql.Tx) error {
			closed, err := s.performCloseAccount(ctx,
				repository.NewUserRepository(tx),
				repository.NewAccountRepository(tx),
				userID, accountNumber,
			)
			if err != nil {
				return err
			}
			account = closed
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account closed",
		"user_id", userID,
		"account_number", accountNumber,
	)
	return account, nil
}

// performCloseAccount contains the core account closing logic
func (s *AccountService) performCloseAccount(
	ctx context.Context,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	userID int64,
	accountNumber string,
) (*models.Account, error) {
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
		return nil, NewError(ErrCodeAlreadyClosed)
	}
	if account.Balance > 0 {
		return nil, NewError(ErrCodeBalanceNotEmpty)
	}

	unregisteredAt := s.now()
	account.Status = models.AccountStatusUnregistered
	account.UnregisteredAt = &unregisteredAt

	if err := accountRepo.Update(ctx, account); err != nil {
		return nil, storeError("failed to close account", err)
	}

	return account, nil
}

// ListAccounts returns every account of userID, open and closed
func (s *AccountService) ListAccounts(ctx context.Context, userID int64) ([]models.Account, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	return s.performListAccounts(ctx,
		repository.NewUserRepository(s.db),
		repository.NewAccountRepository(s.db),
		userID,
	)
}

func (s *AccountService) performListAccounts(
	ctx context.Context,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	userID int64,
) ([]models.Account, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(ErrCodeUserNotFound, "user", err)
	}

	accounts, err := accountRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, storeError("failed to list accounts", err)
	}

	return accounts, nil
}

// GetAccount retrieves an account by its id
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	ctx, cancel := s.operationContext(ctx)
	defer cancel()

	account, err := repository.NewAccountRepository(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(ErrCodeAccountNotFound, "account", err)
	}

	return account, nil
}
