package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zerobank/account-ledger/internal/api"
	"github.com/zerobank/account-ledger/internal/service/mocks"
)

func TestGetHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		checker := mocks.NewMockHealthChecker(t)
		handler := NewHandler(nil, nil, checker, testLogger())

		checker.On("PingContext", mock.Anything).Return(nil)

		resp, err := handler.GetHealth(context.Background(), api.GetHealthRequestObject{})

		require.NoError(t, err)
		healthy, ok := resp.(api.GetHealth200JSONResponse)
		require.True(t, ok)
		assert.Equal(t, api.HealthStatusHealthy, healthy.Status)
	})

	t.Run("database unreachable", func(t *testing.T) {
		checker := mocks.NewMockHealthChecker(t)
		handler := NewHandler(nil, nil, checker, testLogger())

		checker.On("PingContext", mock.Anything).Return(errors.New("connection refused"))

		resp, err := handler.GetHealth(context.Background(), api.GetHealthRequestObject{})

		require.NoError(t, err)
		unhealthy, ok := resp.(api.GetHealth503JSONResponse)
		require.True(t, ok)
		assert.Equal(t, api.HealthStatusUnhealthy, unhealthy.Status)
	})
}
