package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeUse    TransactionType = "USE"
	TransactionTypeCancel TransactionType = "CANCEL"
)

// TransactionResult records whether the ledger operation was applied
type TransactionResult string

const (
	TransactionResultSuccess TransactionResult = "S"
	TransactionResultFailure TransactionResult = "F"
)

// Transaction is an append-only record of one use or cancel attempt.
// BalanceSnapshot is the account balance after the operation, or the untouched
// balance when the attempt failed.
type Transaction struct {
	TransactedAt    time.Time         `db:"transacted_at"`
	TransactionID   string            `db:"transaction_id"`
	AccountNumber   string            `db:"account_number"`
	Type            TransactionType   `db:"type"`
	Result          TransactionResult `db:"result"`
	Amount          int64             `db:"amount"`
	BalanceSnapshot int64             `db:"balance_snapshot"`
	AccountID       int64             `db:"account_id"`
	ID              uuid.UUID         `db:"id"`
}

// IdempotencyKey tracks processed requests to prevent duplicate transactions
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}

// Pending reports whether the key is reserved by a request that has not
// finished yet
func (k *IdempotencyKey) Pending() bool {
	return k.ResponseStatus == 0
}
