// Package repository provides data access layer implementations for the ledger.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zerobank/account-ledger/internal/db"
	"github.com/zerobank/account-ledger/internal/models"
)

const accountNumberConstraint = "accounts_account_number_key"

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Account, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	FindByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*models.Account, error)
	FindLatest(ctx context.Context) (*models.Account, error)
	CountByUserID(ctx context.Context, userID int64) (int, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db db.DBTX
}

// NewAccountRepository creates a new AccountRepository on a pool or a transaction
func NewAccountRepository(database db.DBTX) AccountRepository {
	return &accountRepository{db: database}
}

const accountColumns = `
	id, account_user_id, account_number, status, balance,
	registered_at, unregistered_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		account        models.Account
		unregisteredAt sql.NullTime
	)
	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.AccountNumber,
		&account.Status,
		&account.Balance,
		&account.RegisteredAt,
		&unregisteredAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if unregisteredAt.Valid {
		account.UnregisteredAt = &unregisteredAt.Time
	}
	return &account, nil
}

func (r *accountRepository) findOne(ctx context.Context, what, query string, args ...any) (*models.Account, error) {
	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by %s: %w", what, err)
	}
	return account, nil
}

// FindByID retrieves an account by its sequence id
func (r *accountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE id = $1
	`
	return r.findOne(ctx, "id", query, id)
}

// FindByAccountNumber retrieves an account by its account number
func (r *accountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE account_number = $1
	`
	return r.findOne(ctx, "account number", query, accountNumber)
}

// FindByAccountNumberForUpdate retrieves an account and holds its row lock until
// the surrounding transaction ends
func (r *accountRepository) FindByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE account_number = $1
		FOR UPDATE
	`
	return r.findOne(ctx, "account number", query, accountNumber)
}

// FindLatest returns the account with the highest sequence id, or nil when the
// ledger has no accounts yet
func (r *accountRepository) FindLatest(ctx context.Context) (*models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		ORDER BY id DESC
		LIMIT 1
	`
	account, err := scanAccount(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest account: %w", err)
	}
	return account, nil
}

// CountByUserID counts every account of the user, open or closed
func (r *accountRepository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM accounts WHERE account_user_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// FindByUserID lists every account of the user in creation order
func (r *accountRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE account_user_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// Create inserts a new account and fills in its generated id and timestamps
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (account_user_id, account_number, status, balance, registered_at, unregistered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		account.UserID,
		account.AccountNumber,
		account.Status,
		account.Balance,
		account.RegisteredAt,
		account.UnregisteredAt,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)

	if db.IsUniqueViolation(err, accountNumberConstraint) {
		return fmt.Errorf("account number %s: %w", account.AccountNumber, models.ErrDuplicateAccountNumber)
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// Update persists the mutable account state: balance, status and closing time
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET balance = $2,
		    status = $3,
		    unregistered_at = $4,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		account.ID,
		account.Balance,
		account.Status,
		account.UnregisteredAt,
	).Scan(&account.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("account not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}
