package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-board/internal/events"
	"github.com/spec-kit/ticket-board/internal/persistence"
	"github.com/spec-kit/ticket-board/internal/service"
)

func TestStartSyncWorkerRecordsEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	store := persistence.NewMemorySyncStatusStore()
	StartSyncWorker(service.NewSyncService(dispatcher, store, zap.NewNop()))

	at := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		ID:        "1",
		Type:      events.EventTicketsSynced,
		Timestamp: at,
		Payload:   events.TicketsSyncedPayload{Fetched: 4, Active: 3},
	}))
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		ID:        "2",
		Type:      events.EventSyncFailed,
		Timestamp: at.Add(time.Minute),
		Payload:   events.SyncFailedPayload{Code: "UPSTREAM_ERROR", Message: "failed to load tickets"},
	}))

	status, err := store.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, status.ActiveCount)
	require.NotNil(t, status.LastSuccessAt)
	assert.True(t, at.Equal(*status.LastSuccessAt))
	assert.Equal(t, "failed to load tickets", status.LastError)
	assert.False(t, status.Healthy())
}

func TestStartSyncWorkerNil(t *testing.T) {
	assert.NotPanics(t, func() { StartSyncWorker(nil) })
}
