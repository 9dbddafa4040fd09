package repository

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zerobank/account-ledger/internal/config"
	"github.com/zerobank/account-ledger/internal/db"
	"github.com/zerobank/account-ledger/internal/models"
)

// setupTestDB connects to the database named by the DB_* environment and applies
// the schema. Tests are skipped when no database is reachable.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}

	runMigrations(t, database)
	truncateTables(t, database)

	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return database
}

func runMigrations(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "db", "migrations", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	require.NoError(t, err, "failed to read migration file")

	_, err = database.ExecContext(context.Background(), string(sqlBytes))
	require.NoError(t, err, "failed to apply migration")
}

// truncateTables empties the ledger and seeds three users with ids 1, 2 and 3
func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE transactions, idempotency_keys, accounts, account_users RESTART IDENTITY CASCADE;
		INSERT INTO account_users (name) VALUES ('Pororo'), ('Crong'), ('Loopy');
	`)
	require.NoError(t, err, "failed to reset test data")
}

func createTestAccount(t *testing.T, repo AccountRepository, userID int64, number string, balance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:        userID,
		AccountNumber: number,
		Status:        models.AccountStatusInUse,
		Balance:       balance,
		RegisteredAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}
