package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-board/internal/domain"
	"github.com/spec-kit/ticket-board/internal/events"
)

// SyncStatusStore persists the outcome of the latest fetches.
type SyncStatusStore interface {
	RecordSuccess(ctx context.Context, at time.Time, active int) error
	RecordFailure(ctx context.Context, at time.Time, message string) error
	Status(ctx context.Context) (domain.SyncStatus, error)
}

// SyncService records fetch outcomes published by the ticket service.
type SyncService struct {
	dispatcher events.Dispatcher
	store      SyncStatusStore
	logger     *zap.Logger
}

// NewSyncService creates the service.
func NewSyncService(dispatcher events.Dispatcher, store SyncStatusStore, logger *zap.Logger) *SyncService {
	return &SyncService{
		dispatcher: dispatcher,
		store:      store,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (s *SyncService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventTicketsSynced, s.handleTicketsSynced)
	s.dispatcher.Subscribe(events.EventSyncFailed, s.handleSyncFailed)
}

// Status returns the recorded sync status.
func (s *SyncService) Status(ctx context.Context) (domain.SyncStatus, error) {
	return s.store.Status(ctx)
}

func (s *SyncService) handleTicketsSynced(ctx context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.TicketsSyncedPayload)
	s.logger.Info("TicketsSynced",
		zap.String("event_id", event.ID),
		zap.Int("fetched", payload.Fetched),
		zap.Int("active", payload.Active),
		zap.Time("changed_since", payload.ChangedSince))
	return s.store.RecordSuccess(ctx, event.Timestamp, payload.Active)
}

func (s *SyncService) handleSyncFailed(ctx context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.SyncFailedPayload)
	s.logger.Warn("SyncFailed",
		zap.String("event_id", event.ID),
		zap.String("code", payload.Code),
		zap.String("message", payload.Message))
	return s.store.RecordFailure(ctx, event.Timestamp, payload.Message)
}
