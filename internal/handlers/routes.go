package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/zerobank/account-ledger/internal/api"
	"github.com/zerobank/account-ledger/internal/cache"
	"github.com/zerobank/account-ledger/internal/config"
	"github.com/zerobank/account-ledger/internal/db"
	"github.com/zerobank/account-ledger/internal/lock"
	"github.com/zerobank/account-ledger/internal/middleware"
	"github.com/zerobank/account-ledger/internal/models"
	"github.com/zerobank/account-ledger/internal/repository"
	"github.com/zerobank/account-ledger/internal/service"
)

const transactionCachePrefix = "ledger:transaction:"

// NewRouter creates and configures the HTTP router with all routes and middleware.
// redisClient may be nil, in which case account locks fall back to row locks and
// transaction lookups are not cached.
func NewRouter(
	database *db.DB,
	redisClient redis.UniversalClient,
	cfg *config.Config,
	logger *slog.Logger,
) (http.Handler, error) {
	locker := lock.Nop()
	var txnCache service.TransactionCache
	if redisClient != nil {
		locker = lock.NewRedisLocker(redisClient, logger)
		txnCache = cache.NewViewCache[models.Transaction](redisClient, transactionCachePrefix, cfg.Ledger.TransactionCacheTTL, logger)
	}

	accountService := service.NewAccountService(database, locker, cfg.Ledger, logger)
	transactionService := service.NewTransactionService(database, locker, txnCache, cfg.Ledger, logger)

	handler := NewHandler(accountService, transactionService, database, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.Mount(mux, handler, []api.StrictMiddlewareFunc{LogOperations(logger)})

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := api.RequestValidator(doc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build request validator: %w", err)
	}

	var finalHandler http.Handler = mux

	finalHandler = validator(finalHandler)

	idempotencyRepo := repository.NewIdempotencyRepository(database)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	return finalHandler, nil
}
