package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateAccountNumber indicates another account already holds the account number
	ErrDuplicateAccountNumber = errors.New("duplicate account number")

	// ErrDuplicateTransaction indicates a transaction with the same transaction id already exists
	ErrDuplicateTransaction = errors.New("duplicate transaction")
)
