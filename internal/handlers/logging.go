package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/zerobank/account-ledger/internal/api"
)

// LogOperations returns a strict middleware that logs every operation with its
// response type and latency. Rejections are logged where they are mapped.
func LogOperations(logger *slog.Logger) api.StrictMiddlewareFunc {
	return func(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
			start := time.Now()
			response, err := f(ctx, w, r, request)

			attrs := []any{
				"operation", operationID,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err != nil {
				attrs = append(attrs, "error", err)
				logger.Error("operation failed", attrs...)
				return response, err
			}

			attrs = append(attrs, "response", fmt.Sprintf("%T", response))
			logger.Debug("operation completed", attrs...)
			return response, err
		}
	}
}
