package handlers

import (
	"context"
	"time"

	"github.com/zerobank/account-ledger/internal/api"
)

const healthCheckTimeout = 2 * time.Second

// GetHealth handles GET /health
func (h *Handler) GetHealth(
	ctx context.Context,
	_ api.GetHealthRequestObject,
) (api.GetHealthResponseObject, error) {
	pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := h.healthChecker.PingContext(pingCtx); err != nil {
		h.logger.Error("health check failed: database unreachable", "error", err)
		return api.GetHealth503JSONResponse{
			Status: api.HealthStatusUnhealthy,
		}, nil
	}

	return api.GetHealth200JSONResponse{
		Status: api.HealthStatusHealthy,
	}, nil
}
