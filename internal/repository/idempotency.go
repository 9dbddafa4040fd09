package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zerobank/account-ledger/internal/db"
	"github.com/zerobank/account-ledger/internal/models"
)

// IdempotencyRepository stores replayable responses keyed by Idempotency-Key and path.
// A key is reserved before its request runs and completed with the response
// afterwards; a reserved key has response status 0.
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Reserve(ctx context.Context, key, requestPath string, staleBefore time.Time) (bool, error)
	Complete(ctx context.Context, idemKey *models.IdempotencyKey) error
	Release(ctx context.Context, key, requestPath string) error
}

type idempotencyRepository struct {
	db db.DBTX
}

// NewIdempotencyRepository creates a new IdempotencyRepository
func NewIdempotencyRepository(database db.DBTX) IdempotencyRepository {
	return &idempotencyRepository{db: database}
}

// Get returns the stored response, or nil when the key has not been seen for the path
func (r *idempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	query := `
		SELECT key, request_path, response_status, response_body, created_at
		FROM idempotency_keys
		WHERE key = $1 AND request_path = $2
	`

	var idemKey models.IdempotencyKey
	err := r.db.QueryRowContext(ctx, query, key, requestPath).Scan(
		&idemKey.Key,
		&idemKey.RequestPath,
		&idemKey.ResponseStatus,
		&idemKey.ResponseBody,
		&idemKey.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}

	return &idemKey, nil
}

// Reserve claims key for requestPath. It returns false when another request
// holds the key or has already completed it. A reservation older than
// staleBefore is left behind by a request that never finished and is taken over.
func (r *idempotencyRepository) Reserve(ctx context.Context, key, requestPath string, staleBefore time.Time) (bool, error) {
	query := `
		INSERT INTO idempotency_keys (key, request_path, response_status, response_body, created_at)
		VALUES ($1, $2, 0, '', NOW())
		ON CONFLICT (key, request_path) DO UPDATE
			SET created_at = EXCLUDED.created_at
			WHERE idempotency_keys.response_status = 0
			  AND idempotency_keys.created_at < $3
		RETURNING key
	`

	var reserved string
	err := r.db.QueryRowContext(ctx, query, key, requestPath, staleBefore).Scan(&reserved)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}

	return true, nil
}

// Complete records the response for a reserved key
func (r *idempotencyRepository) Complete(ctx context.Context, idemKey *models.IdempotencyKey) error {
	query := `
		UPDATE idempotency_keys
		SET response_status = $3, response_body = $4, created_at = $5
		WHERE key = $1 AND request_path = $2 AND response_status = 0
	`

	result, err := r.db.ExecContext(ctx, query,
		idemKey.Key,
		idemKey.RequestPath,
		idemKey.ResponseStatus,
		idemKey.ResponseBody,
		idemKey.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("idempotency key %q for %s is not reserved", idemKey.Key, idemKey.RequestPath)
	}

	return nil
}

// Release drops a reservation so the key can be used again. Completed keys
// are kept.
func (r *idempotencyRepository) Release(ctx context.Context, key, requestPath string) error {
	query := `
		DELETE FROM idempotency_keys
		WHERE key = $1 AND request_path = $2 AND response_status = 0
	`

	if _, err := r.db.ExecContext(ctx, query, key, requestPath); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}

	return nil
}
