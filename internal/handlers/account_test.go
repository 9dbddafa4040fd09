package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zerobank/account-ledger/internal/api"
	"github.com/zerobank/account-ledger/internal/models"
	"github.com/zerobank/account-ledger/internal/service"
	"github.com/zerobank/account-ledger/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// render writes a strict response object the way the generated server would
func render(t *testing.T, resp any) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	value := reflect.ValueOf(resp)
	for i := 0; i < value.NumMethod(); i++ {
		if strings.HasPrefix(value.Type().Method(i).Name, "Visit") {
			out := value.Method(i).Call([]reflect.Value{reflect.ValueOf(rec)})
			require.Nil(t, out[0].Interface(), "visit %T", resp)
			return rec
		}
	}

	t.Fatalf("%T is not a response object", resp)
	return nil
}

func requireErrorResponse(t *testing.T, resp any, status int, code api.ErrorCode) api.Error {
	t.Helper()

	rec := render(t, resp)
	require.Equal(t, status, rec.Code, "response %T", resp)

	var body api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, code, body.Error)
	return body
}

func TestCreateAccount_Success(t *testing.T) {
	accounts := mocks.NewMockAccountManager(t)
	handler := NewHandler(accounts, nil, nil, testLogger())

	registeredAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	accounts.On("CreateAccount", mock.Anything, int64(1), int64(10000)).
		Return(&models.Account{
			UserID:        1,
			AccountNumber: "1000000000",
			Status:        models.AccountStatusInUse,
			Balance:       10000,
			RegisteredAt:  registeredAt,
		}, nil)

	resp, err := handler.CreateAccount(context.Background(), api.CreateAccountRequestObject{
		Body: &api.CreateAccountJSONRequestBody{UserId: 1, InitialBalance: 10000},
	})

	require.NoError(t, err)
	successResp, ok := resp.(api.CreateAccount200JSONResponse)
	require.True(t, ok, "expected 200 response")
	assert.Equal(t, int64(1), successResp.UserId)
	assert.Equal(t, "1000000000", successResp.AccountNumber)
	assert.Equal(t, registeredAt, successResp.RegisteredAt)
}

func TestCreateAccount_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body *api.CreateAccountJSONRequestBody
		code api.ErrorCode
	}{
		{"missing body", nil, api.ErrorCodeInvalidRequest},
		{"user id zero", &api.CreateAccountJSONRequestBody{UserId: 0, InitialBalance: 100}, api.ErrorCodeInvalidRequest},
		{"negative initial balance", &api.CreateAccountJSONRequestBody{UserId: 1, InitialBalance: -1}, api.ErrorCodeInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := mocks.NewMockAccountManager(t)
			handler := NewHandler(accounts, nil, nil, testLogger())

			resp, err := handler.CreateAccount(context.Background(), api.CreateAccountRequestObject{Body: tt.body})

			require.NoError(t, err)
			requireErrorResponse(t, resp, http.StatusBadRequest, tt.code)
			accounts.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateAccount_ServiceErrors(t *testing.T) {
	tests := []struct {
		serviceErr *service.ServiceError
		name       string
		code       api.ErrorCode
		status     int
	}{
		{service.NewError(service.ErrCodeUserNotFound), "user not found", api.ErrorCodeUserNotFound, http.StatusNotFound},
		{service.NewError(service.ErrCodeMaxAccountsPerUserExceeded), "too many accounts", api.ErrorCodeMaxAccountsPerUserExceeded, http.StatusUnprocessableEntity},
		{service.NewError(service.ErrCodeLockUnavailable), "lock unavailable", api.ErrorCodeLockUnavailable, http.StatusServiceUnavailable},
		{&service.ServiceError{Code: service.ErrCodeInternalError, Message: "failed to commit transaction"}, "internal", api.ErrorCodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := mocks.NewMockAccountManager(t)
			handler := NewHandler(accounts, nil, nil, testLogger())

			accounts.On("CreateAccount", mock.Anything, int64(1), int64(0)).Return(nil, tt.serviceErr)

			resp, err := handler.CreateAccount(context.Background(), api.CreateAccountRequestObject{
				Body: &api.CreateAccountJSONRequestBody{UserId: 1, InitialBalance: 0},
			})

			require.NoError(t, err)
			requireErrorResponse(t, resp, tt.status, tt.code)
		})
	}
}

func TestCreateAccount_TypedResponses(t *testing.T) {
	accounts := mocks.NewMockAccountManager(t)
	handler := NewHandler(accounts, nil, nil, testLogger())

	accounts.On("CreateAccount", mock.Anything, int64(9), int64(0)).Return(nil, service.NewError(service.ErrCodeUserNotFound))
	accounts.On("CreateAccount", mock.Anything, int64(1), int64(0)).Return(nil, service.NewError(service.ErrCodeLockUnavailable))

	resp, err := handler.CreateAccount(context.Background(), api.CreateAccountRequestObject{
		Body: &api.CreateAccountJSONRequestBody{UserId: 9},
	})
	require.NoError(t, err)
	notFound, ok := resp.(api.CreateAccount404JSONResponse)
	require.True(t, ok, "expected 404 response, got %T", resp)
	assert.Equal(t, api.ErrorCodeUserNotFound, notFound.Error)

	resp, err = handler.CreateAccount(context.Background(), api.CreateAccountRequestObject{
		Body: &api.CreateAccountJSONRequestBody{UserId: 1},
	})
	require.NoError(t, err)
	busy, ok := resp.(api.CreateAccount503JSONResponse)
	require.True(t, ok, "expected 503 response, got %T", resp)
	assert.Equal(t, retryAfterSeconds, busy.Headers.RetryAfter)
	assert.Equal(t, "1", render(t, resp).Header().Get("Retry-After"))
}

func TestCreateAccount_InternalErrorHidesCause(t *testing.T) {
	accounts := mocks.NewMockAccountManager(t)
	handler := NewHandler(accounts, nil, nil, testLogger())

	accounts.On("CreateAccount", mock.Anything, int64(1), int64(0)).
		Return(nil, &service.ServiceError{Code: service.ErrCodeInternalError, Message: "failed to start transaction: dial tcp 10.0.0.5:5432"})

	resp, err := handler.CreateAccount(context.Background(), api.CreateAccountRequestObject{
		Body: &api.CreateAccountJSONRequestBody{UserId: 1},
	})

	require.NoError(t, err)
	errResp := requireErrorResponse(t, resp, http.StatusInternalServerError, api.ErrorCodeInternalError)
	assert.Equal(t, "internal error", errResp.Message)
}

func TestListAccounts_Success(t *testing.T) {
	accounts := mocks.NewMockAccountManager(t)
	handler := NewHandler(accounts, nil, nil, testLogger())

	accounts.On("ListAccounts", mock.Anything, int64(1)).Return([]models.Account{
		{AccountNumber: "1000000000", Balance: 1000, Status: models.AccountStatusInUse},
		{AccountNumber: "1000000004", Balance: 0, Status: models.AccountStatusUnregistered},
	}, nil)

	resp, err := handler.ListAccounts(context.Background(), api.ListAccountsRequestObject{
		Params: api.ListAccountsParams{UserId: 1},
	})

	require.NoError(t, err)
	list, ok := resp.(api.ListAccounts200JSONResponse)
	require.True(t, ok, "expected 200 response")
	assert.Equal(t, api.ListAccounts200JSONResponse{
		{AccountNumber: "1000000000", Balance: 1000},
		{AccountNumber: "1000000004", Balance: 0},
	}, list)
}

func TestListAccounts_EmptyIsNotNull(t *testing.T) {
	accounts := mocks.NewMockAccountManager(t)
	handler := NewHandler(accounts, nil, nil, testLogger())

	accounts.On("ListAccounts", mock.Anything, int64(2)).Return([]models.Account{}, nil)

	resp, err := handler.ListAccounts(context.Background(), api.ListAccountsRequestObject{
		Params: api.ListAccountsParams{UserId: 2},
	})

	require.NoError(t, err)
	list, ok := resp.(api.ListAccounts200JSONResponse)
	require.True(t, ok)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCloseAccount_Success(t *testing.T) {
	accounts := mocks.NewMockAccountManager(t)
	handler := NewHandler(accounts, nil, nil, testLogger())

	unregisteredAt := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)
	accounts.On("CloseAccount", mock.Anything, int64(1), "1000000003").Return(&models.Account{
		UserID:         1,
		AccountNumber:  "1000000003",
		Status:         models.AccountStatusUnregistered,
		UnregisteredAt: &unregisteredAt,
	}, nil)

	resp, err := handler.CloseAccount(context.Background(), api.CloseAccountRequestObject{
		Body: &api.CloseAccountJSONRequestBody{UserId: 1, AccountNumber: "1000000003"},
	})

	require.NoError(t, err)
	successResp, ok := resp.(api.CloseAccount200JSONResponse)
	require.True(t, ok, "expected 200 response")
	assert.Equal(t, "1000000003", successResp.AccountNumber)
	assert.Equal(t, unregisteredAt, successResp.UnregisteredAt)
}

func TestCloseAccount_Errors(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		status int
	}{
		{"owner mismatch", service.ErrCodeOwnerMismatch, http.StatusUnprocessableEntity},
		{"already closed", service.ErrCodeAlreadyClosed, http.StatusUnprocessableEntity},
		{"balance not empty", service.ErrCodeBalanceNotEmpty, http.StatusUnprocessableEntity},
		{"account not found", service.ErrCodeAccountNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := mocks.NewMockAccountManager(t)
			handler := NewHandler(accounts, nil, nil, testLogger())

			accounts.On("CloseAccount", mock.Anything, int64(1), "1000000003").Return(nil, service.NewError(tt.code))

			resp, err := handler.CloseAccount(context.Background(), api.CloseAccountRequestObject{
				Body: &api.CloseAccountJSONRequestBody{UserId: 1, AccountNumber: "1000000003"},
			})

			require.NoError(t, err)
			requireErrorResponse(t, resp, tt.status, api.ErrorCode(tt.code))
		})
	}
}

func TestCloseAccount_MalformedAccountNumber(t *testing.T) {
	accounts := mocks.NewMockAccountManager(t)
	handler := NewHandler(accounts, nil, nil, testLogger())

	resp, err := handler.CloseAccount(context.Background(), api.CloseAccountRequestObject{
		Body: &api.CloseAccountJSONRequestBody{UserId: 1, AccountNumber: "10000x0003"},
	})

	require.NoError(t, err)
	errResp := requireErrorResponse(t, resp, http.StatusBadRequest, api.ErrorCodeInvalidRequest)
	assert.Contains(t, errResp.Message, "account_number")
}

func TestGetAccount(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		accounts := mocks.NewMockAccountManager(t)
		handler := NewHandler(accounts, nil, nil, testLogger())

		accounts.On("GetAccount", mock.Anything, int64(7)).Return(&models.Account{
			ID:            7,
			UserID:        1,
			AccountNumber: "1000000006",
			Status:        models.AccountStatusInUse,
			Balance:       500,
		}, nil)

		resp, err := handler.GetAccount(context.Background(), api.GetAccountRequestObject{Id: 7})

		require.NoError(t, err)
		account, ok := resp.(api.GetAccount200JSONResponse)
		require.True(t, ok)
		assert.Equal(t, api.AccountStatusINUSE, account.Status)
		assert.Equal(t, int64(500), account.Balance)
		assert.Nil(t, account.UnregisteredAt)
	})

	t.Run("not found", func(t *testing.T) {
		accounts := mocks.NewMockAccountManager(t)
		handler := NewHandler(accounts, nil, nil, testLogger())

		accounts.On("GetAccount", mock.Anything, int64(404)).Return(nil, service.NewError(service.ErrCodeAccountNotFound))

		resp, err := handler.GetAccount(context.Background(), api.GetAccountRequestObject{Id: 404})

		require.NoError(t, err)
		requireErrorResponse(t, resp, http.StatusNotFound, api.ErrorCodeAccountNotFound)
	})
}
