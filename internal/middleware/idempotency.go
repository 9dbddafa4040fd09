// Package middleware provides HTTP middleware components for the ledger API.
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/zerobank/account-ledger/internal/api"
	"github.com/zerobank/account-ledger/internal/models"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"

	// reservationTTL bounds how long a reservation left by a crashed request
	// blocks its key
	reservationTTL = time.Minute
)

// idempotentRoutes lists the mutating routes whose responses can be replayed
var idempotentRoutes = map[string][]string{
	"/account":            {http.MethodPost, http.MethodDelete},
	"/transaction/use":    {http.MethodPost},
	"/transaction/cancel": {http.MethodPost},
}

// IdempotencyRepository defines the interface for idempotency storage
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Reserve(ctx context.Context, key, requestPath string, staleBefore time.Time) (bool, error)
	Complete(ctx context.Context, idemKey *models.IdempotencyKey) error
	Release(ctx context.Context, key, requestPath string) error
}

// Idempotency creates middleware that replays the stored response of a
// completed request and runs the handler at most once per key. The key is
// reserved before the handler runs; a second request arriving while the first
// is in flight gets 409 idempotency_key_in_use. Only 2xx responses are kept,
// any other outcome releases the key so the client may retry.
func Idempotency(repo IdempotencyRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(idempotencyKeyHeader)
			if key == "" || !requiresIdempotency(r) {
				next.ServeHTTP(w, r)
				return
			}

			res := &reservation{
				repo:   repo,
				logger: logger,
				key:    key,
				scope:  requestKey(r),
			}

			switch outcome := res.claim(r.Context()); outcome.kind {
			case claimReplay:
				res.replay(w, outcome.stored)
			case claimBusy:
				res.rejectBusy(w)
			case claimUnguarded:
				next.ServeHTTP(w, r)
			case claimOwned:
				rec := &recorder{ResponseWriter: w, status: http.StatusOK}
				next.ServeHTTP(rec, r)
				// The outcome is recorded even if the client has gone away
				res.finish(context.WithoutCancel(r.Context()), rec)
			}
		})
	}
}

type claimKind int

const (
	// claimOwned means this request holds the key and must run the handler
	claimOwned claimKind = iota
	// claimReplay means a completed response is stored for the key
	claimReplay
	// claimBusy means another request holds the key
	claimBusy
	// claimUnguarded means the store failed and the request runs unprotected
	claimUnguarded
)

type claimOutcome struct {
	stored *models.IdempotencyKey
	kind   claimKind
}

// reservation is one request's hold on an idempotency key
type reservation struct {
	repo   IdempotencyRepository
	logger *slog.Logger
	key    string
	scope  string
}

func (res *reservation) claim(ctx context.Context) claimOutcome {
	stored, err := res.repo.Get(ctx, res.key, res.scope)
	if err != nil {
		res.logger.Error("failed to check idempotency key", "error", err, "key", res.key)
		return claimOutcome{kind: claimUnguarded}
	}
	if stored != nil && !stored.Pending() {
		return claimOutcome{kind: claimReplay, stored: stored}
	}

	owned, err := res.repo.Reserve(ctx, res.key, res.scope, time.Now().Add(-reservationTTL))
	if err != nil {
		res.logger.Error("failed to reserve idempotency key", "error", err, "key", res.key)
		return claimOutcome{kind: claimUnguarded}
	}
	if owned {
		return claimOutcome{kind: claimOwned}
	}

	// Lost the race: the holder may have completed since the first lookup
	stored, err = res.repo.Get(ctx, res.key, res.scope)
	if err == nil && stored != nil && !stored.Pending() {
		return claimOutcome{kind: claimReplay, stored: stored}
	}
	return claimOutcome{kind: claimBusy}
}

// finish completes the key with a 2xx response and releases it otherwise
func (res *reservation) finish(ctx context.Context, rec *recorder) {
	if !isSuccess(rec.status) {
		if err := res.repo.Release(ctx, res.key, res.scope); err != nil {
			res.logger.Error("failed to release idempotency key", "error", err, "key", res.key)
		}
		return
	}

	err := res.repo.Complete(ctx, &models.IdempotencyKey{
		Key:            res.key,
		RequestPath:    res.scope,
		ResponseStatus: rec.status,
		ResponseBody:   rec.body.String(),
		CreatedAt:      time.Now(),
	})
	if err != nil {
		res.logger.Error("failed to complete idempotency key", "error", err, "key", res.key)
	}
}

func (res *reservation) replay(w http.ResponseWriter, stored *models.IdempotencyKey) {
	res.logger.Debug("replaying idempotent response",
		"key", res.key,
		"scope", res.scope,
		"status", stored.ResponseStatus,
	)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(replayedHeader, "true")
	w.WriteHeader(stored.ResponseStatus)
	_, _ = w.Write([]byte(stored.ResponseBody)) //nolint:errcheck // client may be gone
}

func (res *reservation) rejectBusy(w http.ResponseWriter) {
	res.logger.Info("idempotency key in use", "key", res.key, "scope", res.scope)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusConflict)
	//nolint:errcheck // client may be gone
	json.NewEncoder(w).Encode(api.Error{
		Error:   api.ErrorCodeIdempotencyKeyInUse,
		Message: "a request with this idempotency key is still being processed",
	})
}

// recorder passes the response through while keeping a copy for storage
type recorder struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (rec *recorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *recorder) Write(b []byte) (int, error) {
	rec.body.Write(b)
	return rec.ResponseWriter.Write(b)
}

func requiresIdempotency(r *http.Request) bool {
	methods, ok := idempotentRoutes[strings.TrimSuffix(r.URL.Path, "/")]
	return ok && slices.Contains(methods, r.Method)
}

// requestKey scopes a key to method and path, since POST and DELETE /account
// share a path
func requestKey(r *http.Request) string {
	return r.Method + " " + strings.TrimSuffix(r.URL.Path, "/")
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
