package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerobank/account-ledger/internal/api"
	"github.com/zerobank/account-ledger/internal/config"
	"github.com/zerobank/account-ledger/internal/db"
)

type testServer struct {
	*httptest.Server
	database *db.DB
}

// setupTestServer serves the full router over a fresh schema seeded with users 1 and 2.
// It is skipped when no database is reachable.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, &cfg.Database, testLogger())
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	schema, err := os.ReadFile(filepath.Join("..", "db", "migrations", "000001_init.up.sql"))
	require.NoError(t, err)
	_, err = database.ExecContext(context.Background(), string(schema))
	require.NoError(t, err)

	_, err = database.ExecContext(context.Background(), `
		TRUNCATE TABLE transactions, idempotency_keys, accounts, account_users RESTART IDENTITY CASCADE;
		INSERT INTO account_users (name) VALUES ('Pororo'), ('Crong');
	`)
	require.NoError(t, err)

	router, err := NewRouter(database, nil, cfg, testLogger())
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, database: database}
}

func (s *testServer) do(t *testing.T, method, path string, body any, out any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *testServer) createAccount(t *testing.T, userID, balance int64) string {
	t.Helper()

	var created api.CreateAccountResponse
	resp := s.do(t, http.MethodPost, "/account", api.CreateAccountRequest{UserId: userID, InitialBalance: balance}, &created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return created.AccountNumber
}

func (s *testServer) countTransactions(t *testing.T, accountNumber, result string) int {
	t.Helper()

	var count int
	err := s.database.QueryRowContext(context.Background(), `
		SELECT COUNT(*) FROM transactions t JOIN accounts a ON a.id = t.account_id
		WHERE a.account_number = $1 AND t.result = $2
	`, accountNumber, result).Scan(&count)
	require.NoError(t, err)
	return count
}

func TestRouter_AccountLifecycle(t *testing.T) {
	srv := setupTestServer(t)

	first := srv.createAccount(t, 1, 10000)
	second := srv.createAccount(t, 1, 0)
	assert.Equal(t, "1000000000", first)
	assert.Equal(t, "1000000001", second)

	var summaries []api.AccountSummary
	resp := srv.do(t, http.MethodGet, "/account?user_id=1", nil, &summaries)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, summaries, 2)
	assert.Equal(t, api.AccountSummary{AccountNumber: first, Balance: 10000}, summaries[0])

	var errResp api.Error
	resp = srv.do(t, http.MethodDelete, "/account", api.CloseAccountRequest{UserId: 1, AccountNumber: first}, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, api.ErrorCodeBalanceNotEmpty, errResp.Error)

	resp = srv.do(t, http.MethodDelete, "/account", api.CloseAccountRequest{UserId: 2, AccountNumber: second}, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, api.ErrorCodeOwnerMismatch, errResp.Error)

	var closed api.CloseAccountResponse
	resp = srv.do(t, http.MethodDelete, "/account", api.CloseAccountRequest{UserId: 1, AccountNumber: second}, &closed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, second, closed.AccountNumber)
	assert.False(t, closed.UnregisteredAt.IsZero())

	resp = srv.do(t, http.MethodDelete, "/account", api.CloseAccountRequest{UserId: 1, AccountNumber: second}, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, api.ErrorCodeAlreadyClosed, errResp.Error)

	resp = srv.do(t, http.MethodGet, "/account?user_id=99", nil, &errResp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, api.ErrorCodeUserNotFound, errResp.Error)
}

func TestRouter_UseAndCancel(t *testing.T) {
	srv := setupTestServer(t)
	accountNumber := srv.createAccount(t, 1, 10000)

	var used api.TransactionResponse
	resp := srv.do(t, http.MethodPost, "/transaction/use",
		api.UseBalanceRequest{UserId: 1, AccountNumber: accountNumber, Amount: 1000}, &used)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, api.TransactionResultS, used.TransactionResult)
	assert.Len(t, used.TransactionId, 32)

	var txn api.Transaction
	resp = srv.do(t, http.MethodGet, "/transaction/"+used.TransactionId, nil, &txn)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, api.TransactionTypeUSE, txn.TransactionType)
	assert.Equal(t, int64(9000), txn.BalanceSnapshot)

	var errResp api.Error
	resp = srv.do(t, http.MethodPost, "/transaction/cancel",
		api.CancelBalanceRequest{TransactionId: used.TransactionId, AccountNumber: accountNumber, Amount: 500}, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, api.ErrorCodePartialCancelNotAllowed, errResp.Error)

	var cancelled api.TransactionResponse
	resp = srv.do(t, http.MethodPost, "/transaction/cancel",
		api.CancelBalanceRequest{TransactionId: used.TransactionId, AccountNumber: accountNumber, Amount: 1000}, &cancelled)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, api.TransactionResultS, cancelled.TransactionResult)

	var summaries []api.AccountSummary
	srv.do(t, http.MethodGet, "/account?user_id=1", nil, &summaries)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(10000), summaries[0].Balance)

	assert.Equal(t, 2, srv.countTransactions(t, accountNumber, "S"))
	assert.Equal(t, 1, srv.countTransactions(t, accountNumber, "F"), "partial cancel is recorded as a failure")
}

func TestRouter_FailedUseIsRecorded(t *testing.T) {
	srv := setupTestServer(t)
	accountNumber := srv.createAccount(t, 1, 100)

	var errResp api.Error
	resp := srv.do(t, http.MethodPost, "/transaction/use",
		api.UseBalanceRequest{UserId: 1, AccountNumber: accountNumber, Amount: 101}, &errResp)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, api.ErrorCodeInsufficientBalance, errResp.Error)

	resp = srv.do(t, http.MethodPost, "/transaction/use",
		api.UseBalanceRequest{UserId: 1, AccountNumber: "9999999999", Amount: 1}, &errResp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, api.ErrorCodeAccountNotFound, errResp.Error)

	resp = srv.do(t, http.MethodPost, "/transaction/use",
		api.UseBalanceRequest{UserId: 1, AccountNumber: accountNumber, Amount: 0}, &errResp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, api.ErrorCodeInvalidAmount, errResp.Error)

	assert.Equal(t, 1, srv.countTransactions(t, accountNumber, "F"))
	assert.Zero(t, srv.countTransactions(t, accountNumber, "S"))
}

func TestRouter_ConcurrentUsesNeverOverdraw(t *testing.T) {
	srv := setupTestServer(t)
	accountNumber := srv.createAccount(t, 1, 500)

	const attempts = 10
	statuses := make([]int, attempts)

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload, _ := json.Marshal(api.UseBalanceRequest{UserId: 1, AccountNumber: accountNumber, Amount: 100})
			resp, err := srv.Client().Post(srv.URL+"/transaction/use", "application/json", bytes.NewReader(payload))
			if err != nil {
				return
			}
			statuses[i] = resp.StatusCode
			resp.Body.Close()
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, status := range statuses {
		if status == http.StatusOK {
			succeeded++
		} else {
			assert.Equal(t, http.StatusPaymentRequired, status)
		}
	}
	assert.Equal(t, 5, succeeded)

	var summaries []api.AccountSummary
	srv.do(t, http.MethodGet, "/account?user_id=1", nil, &summaries)
	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].Balance)
	assert.Equal(t, 5, srv.countTransactions(t, accountNumber, "S"))
}

func TestRouter_IdempotentCreateIsReplayed(t *testing.T) {
	srv := setupTestServer(t)

	create := func() (*http.Response, api.CreateAccountResponse) {
		payload, err := json.Marshal(api.CreateAccountRequest{UserId: 2, InitialBalance: 0})
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPost, srv.URL+"/account", bytes.NewReader(payload))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "create-once")

		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var created api.CreateAccountResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		return resp, created
	}

	_, first := create()
	resp, second := create()

	assert.Equal(t, "true", resp.Header.Get("X-Idempotent-Replayed"))
	assert.Equal(t, first.AccountNumber, second.AccountNumber)

	var summaries []api.AccountSummary
	srv.do(t, http.MethodGet, "/account?user_id=2", nil, &summaries)
	assert.Len(t, summaries, 1)
}
