package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zerobank/account-ledger/internal/db"
	"github.com/zerobank/account-ledger/internal/models"
)

// UserRepository defines the interface for account user lookups
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.AccountUser, error)
}

type userRepository struct {
	db db.DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database db.DBTX) UserRepository {
	return &userRepository{db: database}
}

// FindByID retrieves an account user by id
func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.AccountUser, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM account_users
		WHERE id = $1
	`

	var user models.AccountUser
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return &user, nil
}
