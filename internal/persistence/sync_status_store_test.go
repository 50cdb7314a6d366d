package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-board/internal/config"
)

func TestMemorySyncStatusStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySyncStatusStore()

	status, err := store.Status(ctx)
	require.NoError(t, err)
	assert.Nil(t, status.LastSuccessAt)

	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.RecordSuccess(ctx, at, 12))
	require.NoError(t, store.RecordFailure(ctx, at.Add(time.Minute), "upstream down"))

	status, err = store.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, at, *status.LastSuccessAt)
	assert.Equal(t, 12, status.ActiveCount)
	assert.Equal(t, "upstream down", status.LastError)
	assert.False(t, status.Healthy())
}

func TestStatusFromHash(t *testing.T) {
	status := statusFromHash(map[string]string{
		fieldLastSuccessAt: "2024-06-01T09:00:00Z",
		fieldActiveCount:   "7",
		fieldLastError:     "",
	})
	require.NotNil(t, status.LastSuccessAt)
	assert.Equal(t, 2024, status.LastSuccessAt.Year())
	assert.Equal(t, 7, status.ActiveCount)
	assert.Nil(t, status.LastFailureAt)

	assert.Equal(t, 0, statusFromHash(map[string]string{}).ActiveCount)
}

func TestNewRedisDisabled(t *testing.T) {
	r := NewRedis(config.RedisConfig{}, zap.NewNop())
	assert.Nil(t, r)
	assert.Error(t, r.Ping(context.Background()))
	r.Close()
}
