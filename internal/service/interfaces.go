package service

import (
	"context"

	"github.com/zerobank/account-ledger/internal/cache"
	"github.com/zerobank/account-ledger/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// AccountManager handles the account lifecycle
type AccountManager interface {
	CreateAccount(ctx context.Context, userID, initialBalance int64) (*models.Account, error)
	CloseAccount(ctx context.Context, userID int64, accountNumber string) (*models.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]models.Account, error)
	GetAccount(ctx context.Context, id int64) (*models.Account, error)
}

// TransactionEngine handles balance use and cancellation
type TransactionEngine interface {
	UseBalance(ctx context.Context, userID int64, accountNumber string, amount int64) (*models.Transaction, error)
	RecordFailedUse(ctx context.Context, accountNumber string, amount int64) (*models.Transaction, error)
	CancelBalance(ctx context.Context, transactionID, accountNumber string, amount int64) (*models.Transaction, error)
	RecordFailedCancel(ctx context.Context, accountNumber string, amount int64) (*models.Transaction, error)
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
}

// TransactionCache is a read-through cache of transactions keyed by transaction id
type TransactionCache interface {
	Get(ctx context.Context, transactionID string) (*models.Transaction, bool)
	Set(ctx context.Context, transactionID string, txn *models.Transaction)
}

// Ensure concrete types implement interfaces
var (
	_ AccountManager    = (*AccountService)(nil)
	_ TransactionEngine = (*TransactionService)(nil)
	_ TransactionCache  = (*cache.ViewCache[models.Transaction])(nil)
)
