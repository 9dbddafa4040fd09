package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zerobank/account-ledger/internal/api"

	"github.com/zerobank/account-ledger/internal/models"
	"github.com/zerobank/account-ledger/internal/repository/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test helper
	})
}

func newRequest(method, path, key string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req
}

func TestIdempotency_ReadRequestsBypassed(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, newRequest(http.MethodGet, "/account", "test-key"))

	assert.True(t, handlerCalled)
	repo.AssertNotCalled(t, "Get")
	repo.AssertNotCalled(t, "Reserve")
}

func TestIdempotency_UnlistedRoutesBypassed(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/transaction/refund"},
		{http.MethodDelete, "/transaction/use"},
		{http.MethodGet, "/transaction/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			repo := mocks.NewMockIdempotencyRepository(t)

			handlerCalled := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			Idempotency(repo, testLogger())(handler).ServeHTTP(rec, newRequest(tt.method, tt.path, "test-key"))

			assert.True(t, handlerCalled)
			repo.AssertNotCalled(t, "Get")
		})
	}
}

// memoryIdempotencyRepository keeps keys in a map with the same reservation
// rules as the Postgres repository
type memoryIdempotencyRepository struct {
	keys map[string]models.IdempotencyKey
	mu   sync.Mutex
}

func newMemoryIdempotencyRepository() *memoryIdempotencyRepository {
	return &memoryIdempotencyRepository{keys: make(map[string]models.IdempotencyKey)}
}

func (m *memoryIdempotencyRepository) Get(_ context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k, ok := m.keys[key+"|"+requestPath]
	if !ok {
		return nil, nil
	}
	return &k, nil
}

func (m *memoryIdempotencyRepository) Reserve(_ context.Context, key, requestPath string, staleBefore time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.keys[key+"|"+requestPath]
	if ok && (!existing.Pending() || !existing.CreatedAt.Before(staleBefore)) {
		return false, nil
	}
	m.keys[key+"|"+requestPath] = models.IdempotencyKey{Key: key, RequestPath: requestPath, CreatedAt: time.Now()}
	return true, nil
}

func (m *memoryIdempotencyRepository) Complete(_ context.Context, idemKey *models.IdempotencyKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.keys[idemKey.Key+"|"+idemKey.RequestPath]
	if !ok || !existing.Pending() {
		return errors.New("not reserved")
	}
	m.keys[idemKey.Key+"|"+idemKey.RequestPath] = *idemKey
	return nil
}

func (m *memoryIdempotencyRepository) Release(_ context.Context, key, requestPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.keys[key+"|"+requestPath]; ok && existing.Pending() {
		delete(m.keys, key+"|"+requestPath)
	}
	return nil
}

func TestIdempotency_MissingKeyPassesThrough(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusOK, `{}`)).
		ServeHTTP(rec, newRequest(http.MethodPost, "/transaction/use", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertNotCalled(t, "Get")
	repo.AssertNotCalled(t, "Reserve")
}

func TestIdempotency_FirstRequestReservedThenCompleted(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "use-1", "POST /transaction/use").Return(nil, nil)
	repo.On("Reserve", mock.Anything, "use-1", "POST /transaction/use", mock.AnythingOfType("time.Time")).Return(true, nil)
	repo.On("Complete", mock.Anything, mock.MatchedBy(func(k *models.IdempotencyKey) bool {
		return k.Key == "use-1" &&
			k.RequestPath == "POST /transaction/use" &&
			k.ResponseStatus == http.StatusOK &&
			k.ResponseBody == `{"transaction_result":"S"}`
	})).Return(nil)

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusOK, `{"transaction_result":"S"}`)).
		ServeHTTP(rec, newRequest(http.MethodPost, "/transaction/use", "use-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"transaction_result":"S"}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Idempotent-Replayed"))
	repo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestIdempotency_ReplayReturnsStoredResponse(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "cancel-1", "POST /transaction/cancel").Return(&models.IdempotencyKey{
		Key:            "cancel-1",
		RequestPath:    "POST /transaction/cancel",
		ResponseStatus: http.StatusOK,
		ResponseBody:   `{"transaction_id":"first"}`,
	}, nil)

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, newRequest(http.MethodPost, "/transaction/cancel", "cancel-1"))

	assert.False(t, handlerCalled, "a replayed request must not reach the ledger")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("X-Idempotent-Replayed"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"transaction_id":"first"}`, rec.Body.String())
	repo.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIdempotency_InFlightKeyConflicts(t *testing.T) {
	pending := &models.IdempotencyKey{Key: "use-2", RequestPath: "POST /transaction/use", CreatedAt: time.Now()}

	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "use-2", "POST /transaction/use").Return(pending, nil)
	repo.On("Reserve", mock.Anything, "use-2", "POST /transaction/use", mock.AnythingOfType("time.Time")).Return(false, nil)

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, newRequest(http.MethodPost, "/transaction/use", "use-2"))

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, api.ErrorCodeIdempotencyKeyInUse, body.Error)
}

func TestIdempotency_LostReservationRaceReplays(t *testing.T) {
	completed := &models.IdempotencyKey{
		Key:            "race",
		RequestPath:    "POST /account",
		ResponseStatus: http.StatusOK,
		ResponseBody:   `{"account_number":"1000000000"}`,
	}

	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "race", "POST /account").Return(nil, nil).Once()
	repo.On("Reserve", mock.Anything, "race", "POST /account", mock.AnythingOfType("time.Time")).Return(false, nil)
	repo.On("Get", mock.Anything, "race", "POST /account").Return(completed, nil).Once()

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusOK, `{}`)).
		ServeHTTP(rec, newRequest(http.MethodPost, "/account", "race"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("X-Idempotent-Replayed"))
	assert.Equal(t, completed.ResponseBody, rec.Body.String())
}

func TestIdempotency_ConcurrentSameKeyRunsHandlerOnce(t *testing.T) {
	repo := newMemoryIdempotencyRepository()

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"transaction_result":"S"}`)) //nolint:errcheck // test helper
	})
	mw := Idempotency(repo, testLogger())(handler)

	first := httptest.NewRecorder()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		mw.ServeHTTP(first, newRequest(http.MethodPost, "/transaction/use", "k1"))
	}()
	<-started

	second := httptest.NewRecorder()
	mw.ServeHTTP(second, newRequest(http.MethodPost, "/transaction/use", "k1"))

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "the ledger must be called once per key")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), `"idempotency_key_in_use"`)

	third := httptest.NewRecorder()
	mw.ServeHTTP(third, newRequest(http.MethodPost, "/transaction/use", "k1"))
	assert.Equal(t, http.StatusOK, third.Code)
	assert.Equal(t, "true", third.Header().Get("X-Idempotent-Replayed"))
	assert.Equal(t, `{"transaction_result":"S"}`, third.Body.String())
	assert.Equal(t, int32(1), calls.Load())
}

func TestIdempotency_KeyScopedByMethodAndPath(t *testing.T) {
	repo := newMemoryIdempotencyRepository()

	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	mw := Idempotency(repo, testLogger())(handler)

	for _, req := range []*http.Request{
		newRequest(http.MethodPost, "/account", "shared-key"),
		newRequest(http.MethodDelete, "/account", "shared-key"),
		newRequest(http.MethodPost, "/transaction/use/", "shared-key"),
	} {
		mw.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, int32(3), calls.Load())
	for _, path := range []string{"POST /account", "DELETE /account", "POST /transaction/use"} {
		stored, err := repo.Get(context.Background(), "shared-key", path)
		require.NoError(t, err)
		require.NotNil(t, stored, path)
		assert.False(t, stored.Pending())
	}
}

func TestIdempotency_ErrorResponsesReleaseKey(t *testing.T) {
	statuses := []int{
		http.StatusBadRequest,
		http.StatusPaymentRequired,
		http.StatusUnprocessableEntity,
		http.StatusServiceUnavailable,
		http.StatusInternalServerError,
	}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			repo := mocks.NewMockIdempotencyRepository(t)
			repo.On("Get", mock.Anything, "err-key", "POST /transaction/use").Return(nil, nil)
			repo.On("Reserve", mock.Anything, "err-key", "POST /transaction/use", mock.AnythingOfType("time.Time")).Return(true, nil)
			repo.On("Release", mock.Anything, "err-key", "POST /transaction/use").Return(nil)

			rec := httptest.NewRecorder()
			Idempotency(repo, testLogger())(testHandler(status, `{"error":"x"}`)).
				ServeHTTP(rec, newRequest(http.MethodPost, "/transaction/use", "err-key"))

			assert.Equal(t, status, rec.Code)
			repo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
		})
	}
}

func TestIdempotency_RetryAfterErrorRunsAgain(t *testing.T) {
	repo := newMemoryIdempotencyRepository()

	status := http.StatusServiceUnavailable
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
	})
	mw := Idempotency(repo, testLogger())(handler)

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, newRequest(http.MethodPost, "/transaction/use", "busy"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	status = http.StatusOK
	rec = httptest.NewRecorder()
	mw.ServeHTTP(rec, newRequest(http.MethodPost, "/transaction/use", "busy"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Idempotent-Replayed"))
	assert.Equal(t, int32(2), calls.Load())
}

func TestIdempotency_RepoGetErrorFailsOpen(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "test-key", "POST /account").Return(nil, errors.New("database connection failed"))

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, newRequest(http.MethodPost, "/account", "test-key"))

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdempotency_RepoCompleteErrorDoesNotAffectResponse(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "test-key", "DELETE /account").Return(nil, nil)
	repo.On("Reserve", mock.Anything, "test-key", "DELETE /account", mock.AnythingOfType("time.Time")).Return(true, nil)
	repo.On("Complete", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(errors.New("failed to store"))

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusOK, `{"account_number":"1000000000"}`)).
		ServeHTTP(rec, newRequest(http.MethodDelete, "/account", "test-key"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"account_number":"1000000000"}`, rec.Body.String())
}
