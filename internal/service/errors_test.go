package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		expected string
	}{
		{
			name: "error without underlying cause",
			err: &ServiceError{
				Code:    "test_error",
				Message: "test message",
			},
			expected: "test message",
		},
		{
			name: "error with underlying cause",
			err: &ServiceError{
				Code:    "test_error",
				Message: "test message",
				Err:     errors.New("underlying error"),
			},
			expected: "test message: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &ServiceError{
		Code:    "test_error",
		Message: "test message",
		Err:     underlying,
	}

	assert.Equal(t, underlying, err.Unwrap())
	assert.True(t, errors.Is(err, underlying))
}

func TestServiceError_Retryable(t *testing.T) {
	codes := []string{
		ErrCodeUserNotFound,
		ErrCodeAccountNotFound,
		ErrCodeTransactionNotFound,
		ErrCodeMaxAccountsPerUserExceeded,
		ErrCodeOwnerMismatch,
		ErrCodeAlreadyClosed,
		ErrCodeBalanceNotEmpty,
		ErrCodeAccountClosed,
		ErrCodeInsufficientBalance,
		ErrCodePartialCancelNotAllowed,
		ErrCodeCancelWindowExpired,
		ErrCodeTransactionAccountMismatch,
		ErrCodeInternalError,
	}

	for _, code := range codes {
		assert.False(t, NewError(code).Retryable(), code)
	}
	assert.True(t, NewError(ErrCodeLockUnavailable).Retryable())
}

func TestNewError_HasMessageForEveryCode(t *testing.T) {
	for code := range errorMessages {
		err := NewError(code)
		assert.Equal(t, code, err.Code)
		assert.NotEmpty(t, err.Message, code)
	}
}

func TestErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewError(ErrCodeOwnerMismatch))

	assert.Equal(t, ErrCodeOwnerMismatch, ErrorCode(wrapped))
	assert.Equal(t, "", ErrorCode(errors.New("plain")))
	assert.Equal(t, "", ErrorCode(nil))
}

func TestServiceError_IsDomain(t *testing.T) {
	assert.True(t, NewError(ErrCodeInsufficientBalance).IsDomain())
	assert.True(t, NewError(ErrCodeLockUnavailable).IsDomain())
	assert.False(t, NewError(ErrCodeInvalidAmount).IsDomain())
	assert.False(t, NewError(ErrCodeInvalidRequest).IsDomain())
	assert.False(t, internalError("boom", errors.New("db down")).IsDomain())
}
