package service

import (
	"errors"
	"fmt"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same request may succeed if sent again.
// Only lock contention is retryable; every other code is final for the request.
func (e *ServiceError) Retryable() bool {
	return e.Code == ErrCodeLockUnavailable
}

// IsDomain reports whether the error is a ledger rule outcome on a well-formed
// request, as opposed to a malformed request or an infrastructure failure.
func (e *ServiceError) IsDomain() bool {
	switch e.Code {
	case ErrCodeInternalError, ErrCodeInvalidAmount, ErrCodeInvalidRequest:
		return false
	default:
		return true
	}
}

// Ledger error codes
const (
	ErrCodeUserNotFound               = "user_not_found"
	ErrCodeAccountNotFound            = "account_not_found"
	ErrCodeTransactionNotFound        = "transaction_not_found"
	ErrCodeMaxAccountsPerUserExceeded = "max_accounts_per_user_exceeded"
	ErrCodeOwnerMismatch              = "owner_mismatch"
	ErrCodeAlreadyClosed              = "already_closed"
	ErrCodeBalanceNotEmpty            = "balance_not_empty"
	ErrCodeAccountClosed              = "account_closed"
	ErrCodeInsufficientBalance        = "insufficient_balance"
	ErrCodePartialCancelNotAllowed    = "partial_cancel_not_allowed"
	ErrCodeCancelWindowExpired        = "cancel_window_expired"
	ErrCodeTransactionAccountMismatch = "transaction_account_mismatch"
	ErrCodeLockUnavailable            = "lock_unavailable"
	ErrCodeInvalidAmount              = "invalid_amount"
	ErrCodeInvalidRequest             = "invalid_request"
	ErrCodeInternalError              = "internal_error"
)

var errorMessages = map[string]string{
	ErrCodeUserNotFound:               "user not found",
	ErrCodeAccountNotFound:            "account not found",
	ErrCodeTransactionNotFound:        "transaction not found",
	ErrCodeMaxAccountsPerUserExceeded: fmt.Sprintf("a user can own at most %d accounts", MaxAccountsPerUser),
	ErrCodeOwnerMismatch:              "account does not belong to the user",
	ErrCodeAlreadyClosed:              "account is already unregistered",
	ErrCodeBalanceNotEmpty:            "account balance must be zero to unregister",
	ErrCodeAccountClosed:              "account is unregistered",
	ErrCodeInsufficientBalance:        "amount exceeds account balance",
	ErrCodePartialCancelNotAllowed:    "cancel amount must equal the original transaction amount",
	ErrCodeCancelWindowExpired:        "transactions older than one year cannot be cancelled",
	ErrCodeTransactionAccountMismatch: "transaction does not belong to the account",
	ErrCodeLockUnavailable:            "account is busy, retry later",
	ErrCodeInvalidAmount:              "amount must be greater than 0",
	ErrCodeInvalidRequest:             "invalid request",
	ErrCodeInternalError:              "internal error",
}

// NewError builds a ServiceError carrying the standard message for code
func NewError(code string) *ServiceError {
	return &ServiceError{Code: code, Message: errorMessages[code]}
}

func internalError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: message,
		Err:     err,
	}
}

// ErrorCode extracts the ServiceError code from err, or "" when err is not one
func ErrorCode(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return ""
}
