// Package handlers implements HTTP handlers for the ledger API.
package handlers

import (
	"log/slog"

	"github.com/zerobank/account-ledger/internal/api"
	"github.com/zerobank/account-ledger/internal/service"
)

// Handler implements the api.StrictServerInterface for all endpoints
type Handler struct {
	accountService     service.AccountManager
	transactionService service.TransactionEngine
	healthChecker      service.HealthChecker
	logger             *slog.Logger
}

var _ api.StrictServerInterface = (*Handler)(nil)

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	accountService service.AccountManager,
	transactionService service.TransactionEngine,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		accountService:     accountService,
		transactionService: transactionService,
		healthChecker:      healthChecker,
		logger:             logger,
	}
}
