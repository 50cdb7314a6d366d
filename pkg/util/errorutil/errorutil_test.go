package errorutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("wrapped domain error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("load: %w", NewMisconfigured("API_KEY"))
		de := ToDomainError(err)
		require.NotNil(t, de)
		assert.Equal(t, "MISCONFIGURED", de.Code)
		assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
		assert.Equal(t, []string{"API_KEY"}, de.Details["missing"])
	})

	t.Run("upstream error keeps cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		de := ToDomainError(NewUpstreamError("ticket api unavailable", cause))
		assert.Equal(t, "UPSTREAM_ERROR", de.Code)
		assert.Equal(t, http.StatusBadGateway, de.HTTPStatus)
		assert.ErrorIs(t, de, cause)
		assert.Equal(t, "ticket api unavailable: connection refused", de.Error())
	})

	t.Run("deadline maps to timeout", func(t *testing.T) {
		de := ToDomainError(fmt.Errorf("get: %w", context.DeadlineExceeded))
		assert.Equal(t, "TIMEOUT", de.Code)
		assert.Equal(t, http.StatusGatewayTimeout, de.HTTPStatus)
	})

	t.Run("timeout keeps message", func(t *testing.T) {
		de := ToDomainError(NewTimeout("failed to load tickets", context.DeadlineExceeded))
		assert.Equal(t, "TIMEOUT", de.Code)
		assert.Equal(t, "failed to load tickets", de.Message)
		assert.ErrorIs(t, de, context.DeadlineExceeded)
	})

	t.Run("anything else is internal", func(t *testing.T) {
		de := ToDomainError(errors.New("boom"))
		assert.Equal(t, "INTERNAL_ERROR", de.Code)
		assert.Equal(t, "internal server error", de.Message)
	})
}

func TestNewMisconfiguredMessage(t *testing.T) {
	err := NewMisconfigured("API_KEY", "PUBLIC_KEY")
	assert.Equal(t, "service is not configured: missing API_KEY, PUBLIC_KEY", err.Error())
}
