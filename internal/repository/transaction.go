package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/zerobank/account-ledger/internal/db"
	"github.com/zerobank/account-ledger/internal/models"
)

const transactionIDConstraint = "transactions_transaction_id_key"

// TransactionRepository defines the interface for ledger transaction data access.
// Transactions are append-only: there is no update or delete.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error)
}

type transactionRepository struct {
	db db.DBTX
}

// NewTransactionRepository creates a new TransactionRepository on a pool or a transaction
func NewTransactionRepository(database db.DBTX) TransactionRepository {
	return &transactionRepository{db: database}
}

const transactionColumns = `
	t.id, t.transaction_id, t.account_id, a.account_number, t.type, t.result,
	t.amount, t.balance_snapshot, t.transacted_at`

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(
		&txn.ID,
		&txn.TransactionID,
		&txn.AccountID,
		&txn.AccountNumber,
		&txn.Type,
		&txn.Result,
		&txn.Amount,
		&txn.BalanceSnapshot,
		&txn.TransactedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Create appends a transaction record. A zero ID is replaced with a fresh UUID.
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}

	query := `
		INSERT INTO transactions (id, transaction_id, account_id, type, result, amount, balance_snapshot, transacted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		txn.ID,
		txn.TransactionID,
		txn.AccountID,
		txn.Type,
		txn.Result,
		txn.Amount,
		txn.BalanceSnapshot,
		txn.TransactedAt,
	)
	if db.IsUniqueViolation(err, transactionIDConstraint) {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, models.ErrDuplicateTransaction)
	}
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// FindByTransactionID retrieves a transaction by its external transaction id
func (r *transactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	query := `SELECT` + transactionColumns + `
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE t.transaction_id = $1
	`

	txn, err := scanTransaction(r.db.QueryRowContext(ctx, query, transactionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction by transaction id: %w", err)
	}

	return txn, nil
}
