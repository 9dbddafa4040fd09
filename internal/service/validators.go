package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zerobank/account-ledger/internal/models"
)

const (
	// MaxAccountsPerUser caps the accounts a user may own, open or closed
	MaxAccountsPerUser = 10

	// InitialAccountNumber is issued to the first account of an empty ledger
	InitialAccountNumber = "1000000000"
)

// NextAccountNumber returns the account number following latest's, or
// InitialAccountNumber when latest is nil
func NextAccountNumber(latest *models.Account) (string, error) {
	if latest == nil {
		return InitialAccountNumber, nil
	}

	n, err := strconv.ParseUint(latest.AccountNumber, 10, 64)
	if err != nil {
		return "", fmt.Errorf("latest account number %q is not numeric: %w", latest.AccountNumber, err)
	}

	return strconv.FormatUint(n+1, 10), nil
}

// ValidateAmount checks if amount is valid (positive)
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}

// ValidateInitialBalance checks that an opening balance is not negative
func ValidateInitialBalance(balance int64) error {
	if balance < 0 {
		return fmt.Errorf("invalid initial balance: must not be negative")
	}

	return nil
}

// ValidateCancelWindow checks that a transaction made at transactedAt can still be
// cancelled at now. The window is one calendar year.
func ValidateCancelWindow(transactedAt, now time.Time) error {
	if transactedAt.Before(now.AddDate(-1, 0, 0)) {
		return fmt.Errorf("transaction made at %s is older than one year", transactedAt.Format(time.RFC3339))
	}

	return nil
}

// newTransactionID returns an opaque, globally unique transaction identifier
func newTransactionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
